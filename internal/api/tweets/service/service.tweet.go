// Package tweetsvc chứa nghiệp vụ tweet: tạo, liệt kê theo chủ sở hữu,
// sửa/xóa với kiểm tra chủ sở hữu.
package tweetsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "vidtube/internal/api/base/models"
	basesvc "vidtube/internal/api/base/service"
	tweetmodels "vidtube/internal/api/tweets/models"
	"vidtube/internal/common"
	"vidtube/internal/global"
)

// TweetService quản lý collection tweets
type TweetService struct {
	*basesvc.BaseServiceMongoImpl[tweetmodels.Tweet]
}

// NewTweetService tạo TweetService từ collection đã đăng ký trong registry
func NewTweetService() (*TweetService, error) {
	col, exists := global.RegistryCollections.Get(global.ColNames.Tweets)
	if !exists {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.ColNames.Tweets)
	}
	return &TweetService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[tweetmodels.Tweet](col),
	}, nil
}

// Create tạo tweet mới
func (s *TweetService) Create(ctx context.Context, ownerID primitive.ObjectID, content string) (*tweetmodels.Tweet, error) {
	tweet, err := s.InsertOne(ctx, tweetmodels.Tweet{
		Content: content,
		Owner:   ownerID,
	})
	if err != nil {
		return nil, err
	}
	return &tweet, nil
}

// ListByOwner trả về danh sách tweet của một user, mới nhất trước
func (s *TweetService) ListByOwner(ctx context.Context, ownerID primitive.ObjectID, page, limit int64) (*basemodels.PaginateResult[tweetmodels.Tweet], error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return s.FindWithPagination(ctx, bson.M{"owner": ownerID}, page, limit, opts)
}

// Update sửa nội dung tweet. Chỉ chủ tweet được sửa.
func (s *TweetService) Update(ctx context.Context, tweetID, requesterID primitive.ObjectID, content string) (*tweetmodels.Tweet, error) {
	if err := s.requireOwner(ctx, tweetID, requesterID); err != nil {
		return nil, err
	}

	updated, err := s.UpdateById(ctx, tweetID, bson.M{"content": content})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete xóa tweet. Chỉ chủ tweet được xóa.
func (s *TweetService) Delete(ctx context.Context, tweetID, requesterID primitive.ObjectID) error {
	if err := s.requireOwner(ctx, tweetID, requesterID); err != nil {
		return err
	}
	return s.DeleteById(ctx, tweetID)
}

// requireOwner kiểm tra requester là chủ tweet
func (s *TweetService) requireOwner(ctx context.Context, tweetID, requesterID primitive.ObjectID) error {
	tweet, err := s.FindOneById(ctx, tweetID)
	if err != nil {
		return err
	}
	if tweet.Owner != requesterID {
		return common.ErrNotOwner
	}
	return nil
}
