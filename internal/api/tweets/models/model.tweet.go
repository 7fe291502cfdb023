// Package tweetmodels chứa model tweet.
package tweetmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Tweet là model bài đăng ngắn trong collection tweets
type Tweet struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Content   string             `json:"content" bson:"content"`
	Owner     primitive.ObjectID `json:"owner" bson:"owner" index:"single"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
