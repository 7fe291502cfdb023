// Package likemodels chứa model lượt thích.
package likemodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Các loại đối tượng có thể thích
const (
	TargetVideo   = "video"
	TargetComment = "comment"
	TargetTweet   = "tweet"
)

// Like là model lượt thích trong collection likes.
// Sự tồn tại của document nghĩa là "đã thích"; toggle xóa hoặc tạo document.
// Index unique (target, likedBy) chặn double-like khi hai request đua nhau.
type Like struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	TargetType string             `json:"targetType" bson:"targetType"` // video | comment | tweet
	Target     primitive.ObjectID `json:"target" bson:"target" index:"compound:target_liked_unique"`
	LikedBy    primitive.ObjectID `json:"likedBy" bson:"likedBy" index:"compound:target_liked_unique"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
