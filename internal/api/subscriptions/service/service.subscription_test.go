package subsvc

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	basemodels "vidtube/internal/api/base/models"
	submodels "vidtube/internal/api/subscriptions/models"
	"vidtube/internal/common"
)

// fakeSubscriptionStore giả lập collection subscriptions trong bộ nhớ
// để test logic toggle mà không cần MongoDB thật.
type fakeSubscriptionStore struct {
	subs map[primitive.ObjectID]submodels.Subscription

	// insertErr giả lập lỗi từ unique index cho lần InsertOne kế tiếp
	insertErr error
}

func newFakeSubscriptionStore() *fakeSubscriptionStore {
	return &fakeSubscriptionStore{subs: map[primitive.ObjectID]submodels.Subscription{}}
}

func (f *fakeSubscriptionStore) InsertOne(ctx context.Context, data submodels.Subscription) (submodels.Subscription, error) {
	if f.insertErr != nil {
		err := f.insertErr
		f.insertErr = nil
		return submodels.Subscription{}, err
	}
	data.ID = primitive.NewObjectID()
	f.subs[data.ID] = data
	return data, nil
}

func (f *fakeSubscriptionStore) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (submodels.Subscription, error) {
	m := filter.(bson.M)
	subscriber, _ := m["subscriber"].(primitive.ObjectID)
	channel, _ := m["channel"].(primitive.ObjectID)
	for _, sub := range f.subs {
		if sub.Subscriber == subscriber && sub.Channel == channel {
			return sub, nil
		}
	}
	return submodels.Subscription{}, common.ErrNotFound
}

func (f *fakeSubscriptionStore) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.subs[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.subs, id)
	return nil
}

func (f *fakeSubscriptionStore) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	return int64(len(f.subs)), nil
}

// Các hàm còn lại của interface không được logic toggle sử dụng
func (f *fakeSubscriptionStore) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]submodels.Subscription, error) {
	return []submodels.Subscription{}, nil
}

func (f *fakeSubscriptionStore) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (submodels.Subscription, error) {
	return submodels.Subscription{}, common.ErrNotFound
}

func (f *fakeSubscriptionStore) DeleteOne(ctx context.Context, filter interface{}) error {
	return common.ErrNotFound
}

func (f *fakeSubscriptionStore) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (submodels.Subscription, error) {
	return submodels.Subscription{}, common.ErrNotFound
}

func (f *fakeSubscriptionStore) FindOneAndDelete(ctx context.Context, filter interface{}, opts *options.FindOneAndDeleteOptions) (submodels.Subscription, error) {
	return submodels.Subscription{}, common.ErrNotFound
}

func (f *fakeSubscriptionStore) Aggregate(ctx context.Context, pipeline mongo.Pipeline, results interface{}) error {
	return nil
}

func (f *fakeSubscriptionStore) FindOneById(ctx context.Context, id primitive.ObjectID) (submodels.Subscription, error) {
	sub, ok := f.subs[id]
	if !ok {
		return submodels.Subscription{}, common.ErrNotFound
	}
	return sub, nil
}

func (f *fakeSubscriptionStore) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[submodels.Subscription], error) {
	return basemodels.NewPaginateResult([]submodels.Subscription{}, page, limit, 0), nil
}

func (f *fakeSubscriptionStore) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (submodels.Subscription, error) {
	return submodels.Subscription{}, common.ErrNotFound
}

func (f *fakeSubscriptionStore) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	_, err := f.FindOne(ctx, filter, nil)
	return err == nil, nil
}

func TestToggle_HaiLanVeTrangThaiBanDau(t *testing.T) {
	store := newFakeSubscriptionStore()
	svc := &SubscriptionService{BaseServiceMongo: store}
	subscriberID := primitive.NewObjectID()
	channelID := primitive.NewObjectID()

	subscribed, err := svc.Toggle(context.Background(), subscriberID, channelID)
	if err != nil {
		t.Fatalf("toggle lần đầu lỗi: %v", err)
	}
	if !subscribed {
		t.Error("toggle lần đầu phải trả về đang đăng ký")
	}
	if len(store.subs) != 1 {
		t.Fatalf("sau toggle lần đầu phải có 1 đăng ký, got %d", len(store.subs))
	}

	subscribed, err = svc.Toggle(context.Background(), subscriberID, channelID)
	if err != nil {
		t.Fatalf("toggle lần hai lỗi: %v", err)
	}
	if subscribed {
		t.Error("toggle lần hai phải hủy đăng ký")
	}
	if len(store.subs) != 0 {
		t.Errorf("toggle hai lần phải đưa trạng thái về như ban đầu, còn %d đăng ký", len(store.subs))
	}
}

func TestToggle_TuDangKyChinhMinh(t *testing.T) {
	store := newFakeSubscriptionStore()
	svc := &SubscriptionService{BaseServiceMongo: store}
	userID := primitive.NewObjectID()

	_, err := svc.Toggle(context.Background(), userID, userID)
	if err == nil {
		t.Fatal("tự đăng ký kênh của chính mình phải bị từ chối")
	}

	var customErr *common.Error
	if !errors.As(err, &customErr) {
		t.Fatalf("lỗi phải thuộc taxonomy chung, got %T", err)
	}
	if customErr.StatusCode != common.StatusBadRequest {
		t.Errorf("status code phải là %d, got %d", common.StatusBadRequest, customErr.StatusCode)
	}
	if len(store.subs) != 0 {
		t.Error("tự đăng ký không được ghi gì vào collection")
	}
}

// Hai request toggle đua nhau: request thua race nhận lỗi duplicate từ
// unique index nhưng trạng thái cuối vẫn là đang đăng ký.
func TestToggle_RaceUniqueIndex(t *testing.T) {
	store := newFakeSubscriptionStore()
	store.insertErr = common.ErrMongoDuplicate
	svc := &SubscriptionService{BaseServiceMongo: store}

	subscribed, err := svc.Toggle(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	if err != nil {
		t.Fatalf("request thua race không được trả về lỗi: %v", err)
	}
	if !subscribed {
		t.Error("request thua race vẫn phải báo trạng thái đang đăng ký")
	}
}
