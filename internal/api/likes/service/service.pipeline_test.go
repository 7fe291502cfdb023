package likesvc

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	likemodels "vidtube/internal/api/likes/models"
)

func TestLikedVideosPipeline(t *testing.T) {
	userID := primitive.NewObjectID()
	pipeline := LikedVideosPipeline(userID)

	if len(pipeline) != 4 {
		t.Fatalf("pipeline phải có 4 stage, có %d", len(pipeline))
	}

	match := pipeline[0][0].Value.(bson.M)
	if match["likedBy"] != userID {
		t.Errorf("$match phải lọc theo likedBy = %s", userID.Hex())
	}
	if match["targetType"] != likemodels.TargetVideo {
		t.Errorf("$match phải lọc targetType = %q, got %v", likemodels.TargetVideo, match["targetType"])
	}

	lookup := pipeline[1][0].Value.(bson.M)
	if lookup["from"] != "videos" || lookup["localField"] != "target" {
		t.Errorf("$lookup phải join videos theo target, got: %v", lookup)
	}

	if pipeline[2][0].Key != "$unwind" {
		t.Errorf("stage 3 phải là $unwind, got %s", pipeline[2][0].Key)
	}

	// $replaceRoot trả thẳng document video, client không thấy record like
	replaceRoot := pipeline[3][0].Value.(bson.M)
	if replaceRoot["newRoot"] != "$video" {
		t.Errorf("$replaceRoot phải dùng newRoot $video, got: %v", replaceRoot)
	}
}
