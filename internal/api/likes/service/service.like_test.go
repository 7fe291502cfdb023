package likesvc

import (
	"context"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "vidtube/internal/api/base/models"
	likemodels "vidtube/internal/api/likes/models"
	"vidtube/internal/common"
)

// fakeLikeStore giả lập collection likes trong bộ nhớ để test logic toggle
// mà không cần MongoDB thật.
type fakeLikeStore struct {
	likes map[primitive.ObjectID]likemodels.Like

	// insertErr giả lập lỗi từ unique index cho lần InsertOne kế tiếp
	insertErr error
}

func newFakeLikeStore() *fakeLikeStore {
	return &fakeLikeStore{likes: map[primitive.ObjectID]likemodels.Like{}}
}

func (f *fakeLikeStore) InsertOne(ctx context.Context, data likemodels.Like) (likemodels.Like, error) {
	if f.insertErr != nil {
		err := f.insertErr
		f.insertErr = nil
		return likemodels.Like{}, err
	}
	data.ID = primitive.NewObjectID()
	f.likes[data.ID] = data
	return data, nil
}

func (f *fakeLikeStore) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (likemodels.Like, error) {
	m := filter.(bson.M)
	target, _ := m["target"].(primitive.ObjectID)
	likedBy, _ := m["likedBy"].(primitive.ObjectID)
	for _, like := range f.likes {
		if like.Target == target && like.LikedBy == likedBy {
			return like, nil
		}
	}
	return likemodels.Like{}, common.ErrNotFound
}

func (f *fakeLikeStore) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.likes[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.likes, id)
	return nil
}

func (f *fakeLikeStore) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return int64(len(f.likes)), nil
}

// Các hàm còn lại của interface không được logic toggle sử dụng
func (f *fakeLikeStore) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]likemodels.Like, error) {
	return []likemodels.Like{}, nil
}

func (f *fakeLikeStore) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (likemodels.Like, error) {
	return likemodels.Like{}, common.ErrNotFound
}

func (f *fakeLikeStore) DeleteOne(ctx context.Context, filter interface{}) error {
	return common.ErrNotFound
}

func (f *fakeLikeStore) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (likemodels.Like, error) {
	return likemodels.Like{}, common.ErrNotFound
}

func (f *fakeLikeStore) FindOneAndDelete(ctx context.Context, filter interface{}, opts *options.FindOneAndDeleteOptions) (likemodels.Like, error) {
	return likemodels.Like{}, common.ErrNotFound
}

func (f *fakeLikeStore) Aggregate(ctx context.Context, pipeline mongo.Pipeline, results interface{}) error {
	return nil
}

func (f *fakeLikeStore) FindOneById(ctx context.Context, id primitive.ObjectID) (likemodels.Like, error) {
	like, ok := f.likes[id]
	if !ok {
		return likemodels.Like{}, common.ErrNotFound
	}
	return like, nil
}

func (f *fakeLikeStore) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[likemodels.Like], error) {
	return basemodels.NewPaginateResult([]likemodels.Like{}, page, limit, 0), nil
}

func (f *fakeLikeStore) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (likemodels.Like, error) {
	return likemodels.Like{}, common.ErrNotFound
}

func (f *fakeLikeStore) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	_, err := f.FindOne(ctx, filter, nil)
	return err == nil, nil
}

func TestToggle_HaiLanVeTrangThaiBanDau(t *testing.T) {
	store := newFakeLikeStore()
	svc := &LikeService{BaseServiceMongo: store}
	videoID := primitive.NewObjectID()
	userID := primitive.NewObjectID()

	liked, err := svc.Toggle(context.Background(), likemodels.TargetVideo, videoID, userID)
	if err != nil {
		t.Fatalf("toggle lần đầu lỗi: %v", err)
	}
	if !liked {
		t.Error("toggle lần đầu phải trả về đang thích")
	}
	if len(store.likes) != 1 {
		t.Fatalf("sau toggle lần đầu phải có 1 lượt thích, got %d", len(store.likes))
	}

	liked, err = svc.Toggle(context.Background(), likemodels.TargetVideo, videoID, userID)
	if err != nil {
		t.Fatalf("toggle lần hai lỗi: %v", err)
	}
	if liked {
		t.Error("toggle lần hai phải bỏ thích")
	}
	if len(store.likes) != 0 {
		t.Errorf("toggle hai lần phải đưa trạng thái về như ban đầu, còn %d lượt thích", len(store.likes))
	}
}

func TestToggle_DocLapGiuaCacUser(t *testing.T) {
	store := newFakeLikeStore()
	svc := &LikeService{BaseServiceMongo: store}
	videoID := primitive.NewObjectID()
	userA := primitive.NewObjectID()
	userB := primitive.NewObjectID()

	if _, err := svc.Toggle(context.Background(), likemodels.TargetVideo, videoID, userA); err != nil {
		t.Fatalf("toggle của user A lỗi: %v", err)
	}
	if _, err := svc.Toggle(context.Background(), likemodels.TargetVideo, videoID, userB); err != nil {
		t.Fatalf("toggle của user B lỗi: %v", err)
	}

	// User B bỏ thích không ảnh hưởng lượt thích của user A
	if _, err := svc.Toggle(context.Background(), likemodels.TargetVideo, videoID, userB); err != nil {
		t.Fatalf("toggle lần hai của user B lỗi: %v", err)
	}
	if len(store.likes) != 1 {
		t.Fatalf("phải còn đúng lượt thích của user A, got %d", len(store.likes))
	}
	for _, like := range store.likes {
		if like.LikedBy != userA {
			t.Errorf("lượt thích còn lại phải thuộc user A, got %s", like.LikedBy.Hex())
		}
	}
}

// Hai request toggle đua nhau: request thua race nhận lỗi duplicate từ
// unique index nhưng trạng thái cuối vẫn là đang thích.
func TestToggle_RaceUniqueIndex(t *testing.T) {
	store := newFakeLikeStore()
	store.insertErr = common.ErrMongoDuplicate
	svc := &LikeService{BaseServiceMongo: store}

	liked, err := svc.Toggle(context.Background(), likemodels.TargetVideo, primitive.NewObjectID(), primitive.NewObjectID())
	if err != nil {
		t.Fatalf("request thua race không được trả về lỗi: %v", err)
	}
	if !liked {
		t.Error("request thua race vẫn phải báo trạng thái đang thích")
	}
}
