// Package submodels chứa model đăng ký kênh và các read model liên quan.
package submodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	usermodels "vidtube/internal/api/users/models"
)

// Subscription là model đăng ký kênh trong collection subscriptions.
// Sự tồn tại của document nghĩa là subscriber đang đăng ký channel;
// index unique (subscriber, channel) chặn đăng ký trùng.
type Subscription struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Subscriber primitive.ObjectID `json:"subscriber" bson:"subscriber" index:"compound:subscriber_channel_unique"`
	Channel    primitive.ObjectID `json:"channel" bson:"channel" index:"compound:subscriber_channel_unique"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}

// SubscriberEntry là một người đăng ký trong danh sách subscriber của kênh
type SubscriberEntry struct {
	ID         primitive.ObjectID      `json:"id" bson:"_id"`
	Subscriber usermodels.OwnerSummary `json:"subscriber" bson:"subscriber"`
	CreatedAt  int64                   `json:"createdAt" bson:"createdAt"`
}

// SubscribedChannelEntry là một kênh trong danh sách kênh user đã đăng ký
type SubscribedChannelEntry struct {
	ID        primitive.ObjectID      `json:"id" bson:"_id"`
	Channel   usermodels.OwnerSummary `json:"channel" bson:"channel"`
	CreatedAt int64                   `json:"createdAt" bson:"createdAt"`
}
