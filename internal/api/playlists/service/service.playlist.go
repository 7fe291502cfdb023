// Package playlistsvc chứa nghiệp vụ playlist: tạo, liệt kê, thêm/gỡ video,
// sửa/xóa với kiểm tra chủ sở hữu.
package playlistsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basesvc "vidtube/internal/api/base/service"
	playlistmodels "vidtube/internal/api/playlists/models"
	"vidtube/internal/common"
	"vidtube/internal/global"
)

// PlaylistService quản lý collection playlists
type PlaylistService struct {
	basesvc.BaseServiceMongo[playlistmodels.Playlist]
}

// NewPlaylistService tạo PlaylistService từ collection đã đăng ký trong registry
func NewPlaylistService() (*PlaylistService, error) {
	col, exists := global.RegistryCollections.Get(global.ColNames.Playlists)
	if !exists {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.ColNames.Playlists)
	}
	return &PlaylistService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[playlistmodels.Playlist](col),
	}, nil
}

// Create tạo playlist mới
func (s *PlaylistService) Create(ctx context.Context, ownerID primitive.ObjectID, name, description string) (*playlistmodels.Playlist, error) {
	playlist, err := s.InsertOne(ctx, playlistmodels.Playlist{
		Name:        name,
		Description: description,
		Owner:       ownerID,
	})
	if err != nil {
		return nil, err
	}
	return &playlist, nil
}

// ListByUser trả về danh sách playlist của một user kèm chủ playlist
func (s *PlaylistService) ListByUser(ctx context.Context, ownerID primitive.ObjectID) ([]playlistmodels.PlaylistWithOwner, error) {
	playlists := []playlistmodels.PlaylistWithOwner{}
	if err := s.Aggregate(ctx, UserPlaylistsPipeline(ownerID), &playlists); err != nil {
		return nil, err
	}
	return playlists, nil
}

// GetByID trả về chi tiết một playlist với video đã populate
func (s *PlaylistService) GetByID(ctx context.Context, playlistID primitive.ObjectID) (*playlistmodels.PlaylistDetail, error) {
	var results []playlistmodels.PlaylistDetail
	if err := s.Aggregate(ctx, PlaylistDetailPipeline(playlistID), &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, common.ErrNotFound
	}
	return &results[0], nil
}

// AddVideo thêm một video vào cuối playlist ($push). Video đã có trong
// playlist vẫn được thêm lần nữa. Chỉ chủ playlist được thêm.
func (s *PlaylistService) AddVideo(ctx context.Context, playlistID, videoID, requesterID primitive.ObjectID) (*playlistmodels.Playlist, error) {
	if err := s.requireOwner(ctx, playlistID, requesterID); err != nil {
		return nil, err
	}

	updated, err := s.UpdateOne(ctx, bson.M{"_id": playlistID}, &basesvc.UpdateData{
		Push: map[string]interface{}{"videos": videoID},
	}, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// RemoveVideo gỡ một video khỏi playlist ($pull). Chỉ chủ playlist được gỡ.
func (s *PlaylistService) RemoveVideo(ctx context.Context, playlistID, videoID, requesterID primitive.ObjectID) (*playlistmodels.Playlist, error) {
	if err := s.requireOwner(ctx, playlistID, requesterID); err != nil {
		return nil, err
	}

	updated, err := s.UpdateOne(ctx, bson.M{"_id": playlistID}, &basesvc.UpdateData{
		Pull: map[string]interface{}{"videos": videoID},
	}, nil)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Update cập nhật name/description của playlist. Chỉ chủ playlist được sửa.
func (s *PlaylistService) Update(ctx context.Context, playlistID, requesterID primitive.ObjectID, name, description string) (*playlistmodels.Playlist, error) {
	if err := s.requireOwner(ctx, playlistID, requesterID); err != nil {
		return nil, err
	}

	set := bson.M{}
	if name != "" {
		set["name"] = name
	}
	if description != "" {
		set["description"] = description
	}
	if len(set) == 0 {
		return nil, common.ErrRequiredField
	}

	updated, err := s.UpdateById(ctx, playlistID, set)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete xóa playlist. Chỉ chủ playlist được xóa.
func (s *PlaylistService) Delete(ctx context.Context, playlistID, requesterID primitive.ObjectID) error {
	if err := s.requireOwner(ctx, playlistID, requesterID); err != nil {
		return err
	}
	return s.DeleteById(ctx, playlistID)
}

// requireOwner kiểm tra requester là chủ playlist
func (s *PlaylistService) requireOwner(ctx context.Context, playlistID, requesterID primitive.ObjectID) error {
	playlist, err := s.FindOneById(ctx, playlistID)
	if err != nil {
		return err
	}
	if playlist.Owner != requesterID {
		return common.ErrNotOwner
	}
	return nil
}
