package playlistsvc

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "vidtube/internal/api/base/models"
	basesvc "vidtube/internal/api/base/service"
	playlistmodels "vidtube/internal/api/playlists/models"
	"vidtube/internal/common"
)

// fakePlaylistStore giả lập collection playlists trong bộ nhớ để test
// thêm/gỡ video mà không cần MongoDB thật.
type fakePlaylistStore struct {
	playlists map[primitive.ObjectID]playlistmodels.Playlist
}

func newFakePlaylistStore(seed ...playlistmodels.Playlist) *fakePlaylistStore {
	store := &fakePlaylistStore{playlists: map[primitive.ObjectID]playlistmodels.Playlist{}}
	for _, playlist := range seed {
		store.playlists[playlist.ID] = playlist
	}
	return store
}

// applyPlaylistUpdate áp $set/$push/$pull lên playlist như MongoDB:
// $push thêm vào cuối mảng kể cả khi phần tử đã tồn tại, $pull gỡ mọi lần xuất hiện.
func applyPlaylistUpdate(playlist *playlistmodels.Playlist, update *basesvc.UpdateData) {
	for key, value := range update.Set {
		switch key {
		case "name":
			playlist.Name = value.(string)
		case "description":
			playlist.Description = value.(string)
		}
	}
	if value, ok := update.Push["videos"]; ok {
		playlist.Videos = append(playlist.Videos, value.(primitive.ObjectID))
	}
	if value, ok := update.Pull["videos"]; ok {
		videoID := value.(primitive.ObjectID)
		kept := playlist.Videos[:0]
		for _, id := range playlist.Videos {
			if id != videoID {
				kept = append(kept, id)
			}
		}
		playlist.Videos = kept
	}
	if value, ok := update.AddToSet["videos"]; ok {
		videoID := value.(primitive.ObjectID)
		for _, id := range playlist.Videos {
			if id == videoID {
				return
			}
		}
		playlist.Videos = append(playlist.Videos, videoID)
	}
}

func (f *fakePlaylistStore) InsertOne(ctx context.Context, data playlistmodels.Playlist) (playlistmodels.Playlist, error) {
	data.ID = primitive.NewObjectID()
	f.playlists[data.ID] = data
	return data, nil
}

func (f *fakePlaylistStore) FindOneById(ctx context.Context, id primitive.ObjectID) (playlistmodels.Playlist, error) {
	playlist, ok := f.playlists[id]
	if !ok {
		return playlistmodels.Playlist{}, common.ErrNotFound
	}
	return playlist, nil
}

func (f *fakePlaylistStore) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (playlistmodels.Playlist, error) {
	id, ok := filter.(bson.M)["_id"].(primitive.ObjectID)
	if !ok {
		return playlistmodels.Playlist{}, common.ErrNotFound
	}
	playlist, exists := f.playlists[id]
	if !exists {
		return playlistmodels.Playlist{}, common.ErrNotFound
	}

	updateData, err := basesvc.ToUpdateData(update)
	if err != nil {
		return playlistmodels.Playlist{}, common.ErrInvalidFormat
	}
	applyPlaylistUpdate(&playlist, updateData)
	f.playlists[id] = playlist
	return playlist, nil
}

func (f *fakePlaylistStore) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (playlistmodels.Playlist, error) {
	return f.UpdateOne(ctx, bson.M{"_id": id}, data, nil)
}

func (f *fakePlaylistStore) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.playlists[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.playlists, id)
	return nil
}

func (f *fakePlaylistStore) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return int64(len(f.playlists)), nil
}

// Các hàm còn lại của interface không được các test này sử dụng
func (f *fakePlaylistStore) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (playlistmodels.Playlist, error) {
	return playlistmodels.Playlist{}, common.ErrNotFound
}

func (f *fakePlaylistStore) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]playlistmodels.Playlist, error) {
	return []playlistmodels.Playlist{}, nil
}

func (f *fakePlaylistStore) DeleteOne(ctx context.Context, filter interface{}) error {
	return common.ErrNotFound
}

func (f *fakePlaylistStore) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (playlistmodels.Playlist, error) {
	return playlistmodels.Playlist{}, common.ErrNotFound
}

func (f *fakePlaylistStore) FindOneAndDelete(ctx context.Context, filter interface{}, opts *options.FindOneAndDeleteOptions) (playlistmodels.Playlist, error) {
	return playlistmodels.Playlist{}, common.ErrNotFound
}

func (f *fakePlaylistStore) Aggregate(ctx context.Context, pipeline mongo.Pipeline, results interface{}) error {
	return nil
}

func (f *fakePlaylistStore) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[playlistmodels.Playlist], error) {
	return basemodels.NewPaginateResult([]playlistmodels.Playlist{}, page, limit, 0), nil
}

func (f *fakePlaylistStore) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	return false, nil
}

// Thêm cùng một video hai lần: cả hai lần đều được ghi nhận,
// playlist không ép uniqueness trên danh sách video.
func TestAddVideo_ChoPhepTrungLap(t *testing.T) {
	ownerID := primitive.NewObjectID()
	playlist := playlistmodels.Playlist{
		ID:    primitive.NewObjectID(),
		Name:  "Xem sau",
		Owner: ownerID,
	}
	store := newFakePlaylistStore(playlist)
	svc := &PlaylistService{BaseServiceMongo: store}
	videoID := primitive.NewObjectID()

	if _, err := svc.AddVideo(context.Background(), playlist.ID, videoID, ownerID); err != nil {
		t.Fatalf("thêm video lần đầu lỗi: %v", err)
	}
	updated, err := svc.AddVideo(context.Background(), playlist.ID, videoID, ownerID)
	if err != nil {
		t.Fatalf("thêm video lần hai lỗi: %v", err)
	}

	if len(updated.Videos) != 2 {
		t.Fatalf("video thêm hai lần phải xuất hiện hai lần trong playlist, got %d", len(updated.Videos))
	}
	if updated.Videos[0] != videoID || updated.Videos[1] != videoID {
		t.Errorf("cả hai entry phải là cùng video %s, got %v", videoID.Hex(), updated.Videos)
	}
}

// RemoveVideo gỡ mọi lần xuất hiện của video ($pull)
func TestRemoveVideo_GoMoiLanXuatHien(t *testing.T) {
	ownerID := primitive.NewObjectID()
	videoID := primitive.NewObjectID()
	otherID := primitive.NewObjectID()
	playlist := playlistmodels.Playlist{
		ID:     primitive.NewObjectID(),
		Name:   "Xem sau",
		Owner:  ownerID,
		Videos: []primitive.ObjectID{videoID, otherID, videoID},
	}
	store := newFakePlaylistStore(playlist)
	svc := &PlaylistService{BaseServiceMongo: store}

	updated, err := svc.RemoveVideo(context.Background(), playlist.ID, videoID, ownerID)
	if err != nil {
		t.Fatalf("gỡ video lỗi: %v", err)
	}
	if len(updated.Videos) != 1 || updated.Videos[0] != otherID {
		t.Errorf("phải còn đúng video khác, got %v", updated.Videos)
	}
}

func TestAddVideo_ChiChuPlaylistDuocThem(t *testing.T) {
	ownerID := primitive.NewObjectID()
	playlist := playlistmodels.Playlist{
		ID:    primitive.NewObjectID(),
		Name:  "Xem sau",
		Owner: ownerID,
	}
	store := newFakePlaylistStore(playlist)
	svc := &PlaylistService{BaseServiceMongo: store}

	_, err := svc.AddVideo(context.Background(), playlist.ID, primitive.NewObjectID(), primitive.NewObjectID())
	if !errors.Is(err, common.ErrNotOwner) {
		t.Fatalf("requester không phải chủ playlist phải bị từ chối, got %v", err)
	}
	if len(store.playlists[playlist.ID].Videos) != 0 {
		t.Error("request bị từ chối không được thay đổi playlist")
	}
}
