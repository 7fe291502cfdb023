package playlistsvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestUserPlaylistsPipeline(t *testing.T) {
	ownerID := primitive.NewObjectID()
	pipeline := UserPlaylistsPipeline(ownerID)

	match := pipeline[0][0].Value.(bson.M)
	assert.Equal(t, ownerID, match["owner"])

	sort := pipeline[1][0].Value.(bson.D)
	assert.Equal(t, "createdAt", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value)

	// Chủ playlist chỉ lấy hồ sơ rút gọn
	lookup := pipeline[2][0].Value.(bson.M)
	project := lookup["pipeline"].(bson.A)[0].(bson.M)["$project"].(bson.M)
	assert.Contains(t, project, "username")
	assert.NotContains(t, project, "password")
}

func TestPlaylistDetailPipeline(t *testing.T) {
	playlistID := primitive.NewObjectID()
	pipeline := PlaylistDetailPipeline(playlistID)

	match := pipeline[0][0].Value.(bson.M)
	assert.Equal(t, playlistID, match["_id"])

	// Video trong playlist được populate đầy đủ theo mảng videos
	videoLookup := pipeline[1][0].Value.(bson.M)
	assert.Equal(t, "videos", videoLookup["from"])
	assert.Equal(t, "videos", videoLookup["localField"])
	assert.NotContains(t, videoLookup, "pipeline")
}
