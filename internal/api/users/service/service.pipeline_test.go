package usersvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestChannelProfilePipeline_MatchByUsername(t *testing.T) {
	pipeline := ChannelProfilePipeline("tester", nil)

	match := pipeline[0][0].Value.(bson.M)
	assert.Equal(t, "tester", match["username"])
}

func TestChannelProfilePipeline_SubscriptionLookups(t *testing.T) {
	pipeline := ChannelProfilePipeline("tester", nil)

	// Lookup hai chiều trên subscriptions: theo channel và theo subscriber
	subscribers := pipeline[1][0].Value.(bson.M)
	assert.Equal(t, "subscriptions", subscribers["from"])
	assert.Equal(t, "channel", subscribers["foreignField"])

	subscribed := pipeline[2][0].Value.(bson.M)
	assert.Equal(t, "subscriptions", subscribed["from"])
	assert.Equal(t, "subscriber", subscribed["foreignField"])
}

func TestChannelProfilePipeline_ViewerSubscriptionCheck(t *testing.T) {
	viewerID := primitive.NewObjectID()
	pipeline := ChannelProfilePipeline("tester", &viewerID)

	addFields := pipeline[3][0].Value.(bson.M)
	isSubscribed := addFields["isSubscribed"].(bson.M)
	in := isSubscribed["$in"].(bson.A)
	assert.Equal(t, viewerID, in[0])

	// Không có viewer: $in dùng NilObjectID nên isSubscribed luôn false
	anon := ChannelProfilePipeline("tester", nil)
	anonAddFields := anon[3][0].Value.(bson.M)
	anonIn := anonAddFields["isSubscribed"].(bson.M)["$in"].(bson.A)
	assert.Equal(t, primitive.NilObjectID, anonIn[0])
}

// Trang kênh chỉ trả về hồ sơ công khai, không được lộ credential
func TestChannelProfilePipeline_ProjectionIsPublicOnly(t *testing.T) {
	pipeline := ChannelProfilePipeline("tester", nil)

	last := pipeline[len(pipeline)-1]
	assert.Equal(t, "$project", last[0].Key)
	project := last[0].Value.(bson.M)

	for _, field := range []string{"fullname", "username", "avatar", "subscriberCount", "subscribedCount", "isSubscribed"} {
		assert.Contains(t, project, field)
	}
	for _, field := range []string{"password", "refreshToken", "otp", "otpExpires"} {
		assert.NotContains(t, project, field)
	}
}

func TestWatchHistoryPipeline(t *testing.T) {
	userID := primitive.NewObjectID()
	pipeline := WatchHistoryPipeline(userID)

	match := pipeline[0][0].Value.(bson.M)
	assert.Equal(t, userID, match["_id"])

	lookup := pipeline[1][0].Value.(bson.M)
	assert.Equal(t, "videos", lookup["from"])
	assert.Equal(t, "watchHistory", lookup["localField"])

	// Trong mỗi video, owner được lookup tiếp và chỉ lấy hồ sơ tóm tắt
	nested := lookup["pipeline"].(bson.A)
	ownerLookup := nested[0].(bson.M)["$lookup"].(bson.M)
	assert.Equal(t, "users", ownerLookup["from"])
	ownerProject := ownerLookup["pipeline"].(bson.A)[0].(bson.M)["$project"].(bson.M)
	assert.Contains(t, ownerProject, "username")
	assert.NotContains(t, ownerProject, "password")
}
