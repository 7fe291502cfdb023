// Package likesvc chứa nghiệp vụ lượt thích: toggle trên video/bình luận/tweet
// và danh sách video đã thích.
package likesvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "vidtube/internal/api/base/service"
	likemodels "vidtube/internal/api/likes/models"
	videomodels "vidtube/internal/api/videos/models"
	"vidtube/internal/common"
	"vidtube/internal/global"
)

// LikeService quản lý collection likes
type LikeService struct {
	basesvc.BaseServiceMongo[likemodels.Like]
}

// NewLikeService tạo LikeService từ collection đã đăng ký trong registry
func NewLikeService() (*LikeService, error) {
	col, exists := global.RegistryCollections.Get(global.ColNames.Likes)
	if !exists {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.ColNames.Likes)
	}
	return &LikeService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[likemodels.Like](col),
	}, nil
}

// Toggle đảo trạng thái thích của user trên một đối tượng:
// đã thích thì bỏ thích, chưa thích thì tạo lượt thích.
// Trả về true nếu sau thao tác user đang thích đối tượng.
// Toggle hai lần liên tiếp đưa trạng thái về như ban đầu.
func (s *LikeService) Toggle(ctx context.Context, targetType string, targetID, userID primitive.ObjectID) (bool, error) {
	filter := bson.M{"target": targetID, "likedBy": userID}

	existing, err := s.FindOne(ctx, filter, nil)
	if err == nil {
		if err := s.DeleteById(ctx, existing.ID); err != nil {
			return false, err
		}
		return false, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return false, err
	}

	_, err = s.InsertOne(ctx, likemodels.Like{
		TargetType: targetType,
		Target:     targetID,
		LikedBy:    userID,
	})
	if err != nil {
		// Hai request toggle đua nhau: unique index đã ghi nhận lượt thích
		if errors.Is(err, common.ErrMongoDuplicate) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// ListLikedVideos trả về danh sách video user đã thích, kèm chủ video
func (s *LikeService) ListLikedVideos(ctx context.Context, userID primitive.ObjectID) ([]videomodels.VideoWithOwner, error) {
	videos := []videomodels.VideoWithOwner{}
	if err := s.Aggregate(ctx, LikedVideosPipeline(userID), &videos); err != nil {
		return nil, err
	}
	return videos, nil
}
