// Package commentsvc chứa nghiệp vụ bình luận: danh sách phân trang theo video,
// thêm/sửa/xóa với kiểm tra chủ sở hữu.
package commentsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basemodels "vidtube/internal/api/base/models"
	basesvc "vidtube/internal/api/base/service"
	commentmodels "vidtube/internal/api/comments/models"
	"vidtube/internal/common"
	"vidtube/internal/global"
)

// CommentService quản lý collection comments
type CommentService struct {
	*basesvc.BaseServiceMongoImpl[commentmodels.Comment]
}

// NewCommentService tạo CommentService từ collection đã đăng ký trong registry
func NewCommentService() (*CommentService, error) {
	col, exists := global.RegistryCollections.Get(global.ColNames.Comments)
	if !exists {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.ColNames.Comments)
	}
	return &CommentService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[commentmodels.Comment](col),
	}, nil
}

// ListByVideo trả về danh sách bình luận phân trang của một video, mới nhất trước
func (s *CommentService) ListByVideo(ctx context.Context, videoID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[commentmodels.CommentWithRelations], error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}

	total, err := s.CountDocuments(ctx, bson.M{"video": videoID})
	if err != nil {
		return nil, err
	}

	items := []commentmodels.CommentWithRelations{}
	if err := s.Aggregate(ctx, VideoCommentsPipeline(videoID, page, limit), &items); err != nil {
		return nil, err
	}

	return basemodels.NewPaginateResult(items, page, limit, total), nil
}

// Add thêm bình luận mới vào một video
func (s *CommentService) Add(ctx context.Context, videoID, ownerID primitive.ObjectID, content string) (*commentmodels.Comment, error) {
	comment, err := s.InsertOne(ctx, commentmodels.Comment{
		Content: content,
		Video:   videoID,
		Owner:   ownerID,
	})
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// Update sửa nội dung bình luận. Chỉ chủ bình luận được sửa.
func (s *CommentService) Update(ctx context.Context, commentID, requesterID primitive.ObjectID, content string) (*commentmodels.Comment, error) {
	if err := s.requireOwner(ctx, commentID, requesterID); err != nil {
		return nil, err
	}

	updated, err := s.UpdateById(ctx, commentID, bson.M{"content": content})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete xóa bình luận. Chỉ chủ bình luận được xóa.
func (s *CommentService) Delete(ctx context.Context, commentID, requesterID primitive.ObjectID) error {
	if err := s.requireOwner(ctx, commentID, requesterID); err != nil {
		return err
	}
	return s.DeleteById(ctx, commentID)
}

// requireOwner kiểm tra requester là chủ bình luận
func (s *CommentService) requireOwner(ctx context.Context, commentID, requesterID primitive.ObjectID) error {
	comment, err := s.FindOneById(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.Owner != requesterID {
		return common.ErrNotOwner
	}
	return nil
}
