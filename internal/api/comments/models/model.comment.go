// Package commentmodels chứa model bình luận và read model liên quan.
package commentmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	usermodels "vidtube/internal/api/users/models"
)

// Comment là model bình luận trong collection comments
type Comment struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Content   string             `json:"content" bson:"content"`
	Video     primitive.ObjectID `json:"video" bson:"video" index:"single"`
	Owner     primitive.ObjectID `json:"owner" bson:"owner"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// VideoSummary là thông tin rút gọn của video trong read model bình luận
type VideoSummary struct {
	ID        primitive.ObjectID `json:"id" bson:"_id"`
	Title     string             `json:"title" bson:"title"`
	Thumbnail string             `json:"thumbnail" bson:"thumbnail"`
}

// CommentWithRelations là read model bình luận kèm chủ bình luận và video,
// dựng từ aggregation pipeline.
type CommentWithRelations struct {
	ID        primitive.ObjectID      `json:"id" bson:"_id"`
	Content   string                  `json:"content" bson:"content"`
	Video     VideoSummary            `json:"video" bson:"video"`
	Owner     usermodels.OwnerSummary `json:"owner" bson:"owner"`
	CreatedAt int64                   `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64                   `json:"updatedAt" bson:"updatedAt"`
}
