// Package subsvc chứa nghiệp vụ đăng ký kênh: toggle và các danh sách liên quan.
package subsvc

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "vidtube/internal/api/base/service"
	submodels "vidtube/internal/api/subscriptions/models"
	"vidtube/internal/common"
	"vidtube/internal/global"
)

// SubscriptionService quản lý collection subscriptions
type SubscriptionService struct {
	basesvc.BaseServiceMongo[submodels.Subscription]
}

// NewSubscriptionService tạo SubscriptionService từ collection đã đăng ký trong registry
func NewSubscriptionService() (*SubscriptionService, error) {
	col, exists := global.RegistryCollections.Get(global.ColNames.Subscriptions)
	if !exists {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.ColNames.Subscriptions)
	}
	return &SubscriptionService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[submodels.Subscription](col),
	}, nil
}

// Toggle đảo trạng thái đăng ký của subscriber trên một kênh.
// Tự đăng ký chính mình bị từ chối. Trả về true nếu sau thao tác đang đăng ký.
func (s *SubscriptionService) Toggle(ctx context.Context, subscriberID, channelID primitive.ObjectID) (bool, error) {
	if subscriberID == channelID {
		return false, common.NewError(common.ErrCodeValidationInput, "Không thể tự đăng ký kênh của chính mình", common.StatusBadRequest, nil)
	}

	filter := bson.M{"subscriber": subscriberID, "channel": channelID}

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

	_, err = s.InsertOne(ctx, submodels.Subscription{
		Subscriber: subscriberID,
		Channel:    channelID,
	})
	if err != nil {
		// Hai request toggle đua nhau: unique index đã ghi nhận đăng ký
		if errors.Is(err, common.ErrMongoDuplicate) {
			return true, nil
		}
		return false, err
	}
	return true, nil
}

// ListChannelSubscribers trả về danh sách người đăng ký của một kênh
func (s *SubscriptionService) ListChannelSubscribers(ctx context.Context, channelID primitive.ObjectID) ([]submodels.SubscriberEntry, error) {
	subscribers := []submodels.SubscriberEntry{}
	if err := s.Aggregate(ctx, ChannelSubscribersPipeline(channelID), &subscribers); err != nil {
		return nil, err
	}
	return subscribers, nil
}

// ListSubscribedChannels trả về danh sách kênh một user đã đăng ký
func (s *SubscriptionService) ListSubscribedChannels(ctx context.Context, subscriberID primitive.ObjectID) ([]submodels.SubscribedChannelEntry, error) {
	channels := []submodels.SubscribedChannelEntry{}
	if err := s.Aggregate(ctx, SubscribedChannelsPipeline(subscriberID), &channels); err != nil {
		return nil, err
	}
	return channels, nil
}
