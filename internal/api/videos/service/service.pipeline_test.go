package videosvc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	videodto "vidtube/internal/api/videos/dto"
)

func TestListMatchFilter(t *testing.T) {
	ownerID := primitive.NewObjectID()

	t.Run("không có tham số", func(t *testing.T) {
		filter := ListMatchFilter(videodto.ListVideosQuery{})
		assert.Empty(t, filter)
	})

	t.Run("lọc theo owner", func(t *testing.T) {
		filter := ListMatchFilter(videodto.ListVideosQuery{OwnerID: ownerID.Hex()})
		assert.Equal(t, ownerID, filter["owner"])
	})

	t.Run("owner không hợp lệ bị bỏ qua", func(t *testing.T) {
		filter := ListMatchFilter(videodto.ListVideosQuery{OwnerID: "xxx"})
		assert.NotContains(t, filter, "owner")
	})

	t.Run("tìm theo title không phân biệt hoa thường", func(t *testing.T) {
		filter := ListMatchFilter(videodto.ListVideosQuery{Query: "golang"})
		title, ok := filter["title"].(bson.M)
		assert.True(t, ok, "filter title phải là bson.M")
		assert.Equal(t, "golang", title["$regex"])
		assert.Equal(t, "i", title["$options"])
	})
}

func TestVideoListPipeline_Defaults(t *testing.T) {
	pipeline := VideoListPipeline(videodto.ListVideosQuery{})

	// $match, $sort, $skip, $limit rồi tới các stage lookup owner
	assert.GreaterOrEqual(t, len(pipeline), 4)
	assert.Equal(t, "$match", pipeline[0][0].Key)

	assert.Equal(t, "$sort", pipeline[1][0].Key)
	sort := pipeline[1][0].Value.(bson.D)
	assert.Equal(t, "createdAt", sort[0].Key)
	assert.Equal(t, -1, sort[0].Value, "sort mặc định phải là createdAt giảm dần")

	assert.Equal(t, "$skip", pipeline[2][0].Key)
	assert.Equal(t, int64(0), pipeline[2][0].Value)

	assert.Equal(t, "$limit", pipeline[3][0].Key)
	assert.Equal(t, int64(10), pipeline[3][0].Value)
}

func TestVideoListPipeline_Paging(t *testing.T) {
	pipeline := VideoListPipeline(videodto.ListVideosQuery{
		Page:     3,
		Limit:    20,
		SortBy:   "views",
		SortType: "asc",
	})

	sort := pipeline[1][0].Value.(bson.D)
	assert.Equal(t, "views", sort[0].Key)
	assert.Equal(t, 1, sort[0].Value)

	assert.Equal(t, int64(40), pipeline[2][0].Value, "$skip = (page-1)*limit")
	assert.Equal(t, int64(20), pipeline[3][0].Value)
}

// Pipeline danh sách phải project sạch các field nhạy cảm của owner
func TestVideoListPipeline_ProjectsOutOwnerCredentials(t *testing.T) {
	pipeline := VideoListPipeline(videodto.ListVideosQuery{})

	var project bson.M
	for _, stage := range pipeline {
		if stage[0].Key == "$project" {
			project = stage[0].Value.(bson.M)
		}
	}
	assert.NotNil(t, project, "pipeline phải có stage $project sau lookup owner")
	for _, field := range []string{"owner.password", "owner.refreshToken", "owner.otp", "owner.otpExpires"} {
		assert.Contains(t, project, field)
		assert.Equal(t, 0, project[field])
	}
}

func TestVideoByIDPipeline(t *testing.T) {
	videoID := primitive.NewObjectID()
	pipeline := VideoByIDPipeline(videoID)

	match := pipeline[0][0].Value.(bson.M)
	assert.Equal(t, videoID, match["_id"])

	// Stage lookup owner phải đi ngay sau $match
	assert.Equal(t, "$lookup", pipeline[1][0].Key)
	lookup := pipeline[1][0].Value.(bson.M)
	assert.Equal(t, "users", lookup["from"])
}
