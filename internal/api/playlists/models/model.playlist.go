// Package playlistmodels chứa model playlist và các read model liên quan.
package playlistmodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	usermodels "vidtube/internal/api/users/models"
	videomodels "vidtube/internal/api/videos/models"
)

// Playlist là model playlist trong collection playlists
type Playlist struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Name        string               `json:"name" bson:"name"`
	Description string               `json:"description" bson:"description"`
	Owner       primitive.ObjectID   `json:"owner" bson:"owner" index:"single"`
	Videos      []primitive.ObjectID `json:"videos" bson:"videos,omitempty"`
	CreatedAt   int64                `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                `json:"updatedAt" bson:"updatedAt"`
}

// PlaylistWithOwner là read model playlist kèm chủ playlist rút gọn
type PlaylistWithOwner struct {
	ID          primitive.ObjectID      `json:"id" bson:"_id"`
	Name        string                  `json:"name" bson:"name"`
	Description string                  `json:"description" bson:"description"`
	Owner       usermodels.OwnerSummary `json:"owner" bson:"owner"`
	Videos      []primitive.ObjectID    `json:"videos" bson:"videos"`
	CreatedAt   int64                   `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                   `json:"updatedAt" bson:"updatedAt"`
}

// PlaylistDetail là read model chi tiết playlist: video đã populate đầy đủ
type PlaylistDetail struct {
	ID          primitive.ObjectID      `json:"id" bson:"_id"`
	Name        string                  `json:"name" bson:"name"`
	Description string                  `json:"description" bson:"description"`
	Owner       usermodels.OwnerSummary `json:"owner" bson:"owner"`
	Videos      []videomodels.Video     `json:"videos" bson:"videos"`
	CreatedAt   int64                   `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64                   `json:"updatedAt" bson:"updatedAt"`
}
