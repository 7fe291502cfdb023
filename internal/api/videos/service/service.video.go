// Package videosvc chứa nghiệp vụ video: đăng, liệt kê có phân trang,
// cập nhật/xóa/đổi trạng thái với kiểm tra chủ sở hữu.
package videosvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "vidtube/internal/api/base/models"
	basesvc "vidtube/internal/api/base/service"
	videodto "vidtube/internal/api/videos/dto"
	videomodels "vidtube/internal/api/videos/models"
	"vidtube/internal/common"
	"vidtube/internal/global"
	"vidtube/internal/logger"
)

// VideoService quản lý collection videos
type VideoService struct {
	*basesvc.BaseServiceMongoImpl[videomodels.Video]
}

// NewVideoService tạo VideoService từ collection đã đăng ký trong registry
func NewVideoService() (*VideoService, error) {
	col, exists := global.RegistryCollections.Get(global.ColNames.Videos)
	if !exists {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.ColNames.Videos)
	}
	return &VideoService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[videomodels.Video](col),
	}, nil
}

// Publish tạo video mới sau khi media đã upload xong. Video mới mặc định published.
func (s *VideoService) Publish(ctx context.Context, owner primitive.ObjectID, input *videodto.PublishVideoInput, videoURL, thumbnailURL string) (*videomodels.Video, error) {
	video, err := s.InsertOne(ctx, videomodels.Video{
		Title:       input.Title,
		Description: input.Description,
		VideoFile:   videoURL,
		Thumbnail:   thumbnailURL,
		Duration:    input.Duration,
		IsPublished: true,
		Owner:       owner,
	})
	if err != nil {
		return nil, err
	}

	logger.GetAuditLogger().WithField("videoId", video.ID.Hex()).Info("Video published")
	return &video, nil
}

// List trả về danh sách video phân trang kèm chủ video.
// Tổng số được đếm bằng CountDocuments trên cùng filter với pipeline.
func (s *VideoService) List(ctx context.Context, q videodto.ListVideosQuery) (*basemodels.PaginateResult[videomodels.VideoWithOwner], error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit <= 0 {
		limit = 10
	}

	total, err := s.CountDocuments(ctx, ListMatchFilter(q))
	if err != nil {
		return nil, err
	}

	items := []videomodels.VideoWithOwner{}
	if err := s.Aggregate(ctx, VideoListPipeline(q), &items); err != nil {
		return nil, err
	}

	return basemodels.NewPaginateResult(items, page, limit, total), nil
}

// GetByID trả về một video kèm chủ video
func (s *VideoService) GetByID(ctx context.Context, videoID primitive.ObjectID) (*videomodels.VideoWithOwner, error) {
	var results []videomodels.VideoWithOwner
	if err := s.Aggregate(ctx, VideoByIDPipeline(videoID), &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, common.ErrNotFound
	}
	return &results[0], nil
}

// Update cập nhật một phần title/description/thumbnail. Chỉ chủ video được sửa.
func (s *VideoService) Update(ctx context.Context, videoID, requesterID primitive.ObjectID, title, description, thumbnailURL string) (*videomodels.Video, error) {
	if _, err := s.requireOwner(ctx, videoID, requesterID); err != nil {
		return nil, err
	}

	set := bson.M{}
	if title != "" {
		set["title"] = title
	}
	if description != "" {
		set["description"] = description
	}
	if thumbnailURL != "" {
		set["thumbnail"] = thumbnailURL
	}
	if len(set) == 0 {
		return nil, common.ErrRequiredField
	}

	updated, err := s.UpdateById(ctx, videoID, set)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete xóa video. Chỉ chủ video được xóa.
func (s *VideoService) Delete(ctx context.Context, videoID, requesterID primitive.ObjectID) error {
	if _, err := s.requireOwner(ctx, videoID, requesterID); err != nil {
		return err
	}
	if err := s.DeleteById(ctx, videoID); err != nil {
		return err
	}

	logger.GetAuditLogger().WithField("videoId", videoID.Hex()).Info("Video deleted")
	return nil
}

// TogglePublish đảo trạng thái published của video. Chỉ chủ video được đổi.
func (s *VideoService) TogglePublish(ctx context.Context, videoID, requesterID primitive.ObjectID) (*videomodels.Video, error) {
	video, err := s.requireOwner(ctx, videoID, requesterID)
	if err != nil {
		return nil, err
	}

	updated, err := s.UpdateById(ctx, videoID, bson.M{"isPublished": !video.IsPublished})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// RegisterView tăng lượt xem của video thêm 1.
// Dùng $inc trực tiếp trên collection để thao tác atomic.
func (s *VideoService) RegisterView(ctx context.Context, videoID primitive.ObjectID) error {
	result, err := s.Collection().UpdateOne(ctx, bson.M{"_id": videoID}, bson.M{"$inc": bson.M{"views": 1}})
	if err != nil {
		return common.ConvertMongoError(err)
	}
	if result.MatchedCount == 0 {
		return common.ErrNotFound
	}
	return nil
}

// requireOwner nạp video và kiểm tra requester là chủ sở hữu
func (s *VideoService) requireOwner(ctx context.Context, videoID, requesterID primitive.ObjectID) (*videomodels.Video, error) {
	video, err := s.FindOneById(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if video.Owner != requesterID {
		return nil, common.ErrNotOwner
	}
	return &video, nil
}
