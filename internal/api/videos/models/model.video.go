// Package videomodels chứa model video và các read model liên quan.
package videomodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	usermodels "vidtube/internal/api/users/models"
)

// Video là model video trong collection videos
type Video struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"` // URL file video trên object storage
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"` // URL ảnh thumbnail
	Duration    float64            `json:"duration" bson:"duration"`   // Thời lượng tính bằng giây
	Views       int64              `json:"views" bson:"views"`
	IsPublished bool               `json:"isPublished" bson:"isPublished"`
	Owner       primitive.ObjectID `json:"owner" bson:"owner" index:"single"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}

// VideoWithOwner là read model video kèm thông tin rút gọn của chủ video,
// dựng từ aggregation pipeline với $lookup sang users.
type VideoWithOwner struct {
	ID          primitive.ObjectID      `json:"id" bson:"_id"`
	Title       string                  `json:"title" bson:"title"`
	Description string                  `json:"description" bson:"description"`
	VideoFile   string                  `json:"videoFile" bson:"videoFile"`
	Thumbnail   string                  `json:"thumbnail" bson:"thumbnail"`
	Duration    float64                 `json:"duration" bson:"duration"`
	Views       int64                   `json:"views" bson:"views"`
	IsPublished bool                    `json:"isPublished" bson:"isPublished"`
	Owner       usermodels.OwnerSummary `json:"owner" bson:"owner"`
	CreatedAt   int64                   `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                   `json:"updatedAt" bson:"updatedAt"`
}
