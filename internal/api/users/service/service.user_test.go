package usersvc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"vidtube/config"
	basemodels "vidtube/internal/api/base/models"
	basesvc "vidtube/internal/api/base/service"
	usermodels "vidtube/internal/api/users/models"
	"vidtube/internal/common"
)

// fakeUserStore giả lập collection users trong bộ nhớ để test logic phiên
// đăng nhập mà không cần MongoDB thật.
type fakeUserStore struct {
	users map[primitive.ObjectID]usermodels.User
}

func newFakeUserStore(seed ...usermodels.User) *fakeUserStore {
	store := &fakeUserStore{users: map[primitive.ObjectID]usermodels.User{}}
	for _, user := range seed {
		store.users[user.ID] = user
	}
	return store
}

// matchUser đánh giá các filter mà UserService sử dụng: _id, username, email
// và tổ hợp $or của chúng.
func matchUser(user usermodels.User, filter bson.M) bool {
	for key, value := range filter {
		switch key {
		case "_id":
			if user.ID != value.(primitive.ObjectID) {
				return false
			}
		case "username":
			if user.UserName != value.(string) {
				return false
			}
		case "email":
			if user.Email != value.(string) {
				return false
			}
		case "$or":
			matched := false
			for _, sub := range value.(bson.A) {
				if matchUser(user, sub.(bson.M)) {
					matched = true
					break
				}
			}
			if !matched {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// applyUserUpdate áp $set/$unset lên các field mà UserService cập nhật
func applyUserUpdate(user *usermodels.User, update *basesvc.UpdateData) {
	for key, value := range update.Set {
		switch key {
		case "refreshToken":
			user.RefreshToken = value.(string)
		case "password":
			user.Password = value.(string)
		case "otp":
			user.Otp = value.(string)
		case "otpExpires":
			user.OtpExpires = value.(int64)
		case "fullname":
			user.FullName = value.(string)
		case "email":
			user.Email = value.(string)
		case "avatar":
			user.Avatar = value.(string)
		case "coverImage":
			user.CoverImage = value.(string)
		}
	}
	for key := range update.Unset {
		switch key {
		case "refreshToken":
			user.RefreshToken = ""
		case "otp":
			user.Otp = ""
		case "otpExpires":
			user.OtpExpires = 0
		}
	}
}

func (f *fakeUserStore) InsertOne(ctx context.Context, data usermodels.User) (usermodels.User, error) {
	data.ID = primitive.NewObjectID()
	f.users[data.ID] = data
	return data, nil
}

func (f *fakeUserStore) FindOne(ctx context.Context, filter interface{}, opts *options.FindOneOptions) (usermodels.User, error) {
	for _, user := range f.users {
		if matchUser(user, filter.(bson.M)) {
			return user, nil
		}
	}
	return usermodels.User{}, common.ErrNotFound
}

func (f *fakeUserStore) FindOneById(ctx context.Context, id primitive.ObjectID) (usermodels.User, error) {
	user, ok := f.users[id]
	if !ok {
		return usermodels.User{}, common.ErrNotFound
	}
	return user, nil
}

func (f *fakeUserStore) UpdateOne(ctx context.Context, filter interface{}, update interface{}, opts *options.UpdateOptions) (usermodels.User, error) {
	updateData, err := basesvc.ToUpdateData(update)
	if err != nil {
		return usermodels.User{}, common.ErrInvalidFormat
	}
	for id, user := range f.users {
		if matchUser(user, filter.(bson.M)) {
			applyUserUpdate(&user, updateData)
			f.users[id] = user
			return user, nil
		}
	}
	return usermodels.User{}, common.ErrNotFound
}

func (f *fakeUserStore) UpdateById(ctx context.Context, id primitive.ObjectID, data interface{}) (usermodels.User, error) {
	return f.UpdateOne(ctx, bson.M{"_id": id}, data, nil)
}

func (f *fakeUserStore) DocumentExists(ctx context.Context, filter interface{}) (bool, error) {
	for _, user := range f.users {
		if matchUser(user, filter.(bson.M)) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeUserStore) CountDocuments(ctx context.Context, filter interface{}) (int64, error) {
	count := int64(0)
	for _, user := range f.users {
		if matchUser(user, filter.(bson.M)) {
			count++
		}
	}
	return count, nil
}

// Các hàm còn lại của interface không được các test này sử dụng
func (f *fakeUserStore) Find(ctx context.Context, filter interface{}, opts *options.FindOptions) ([]usermodels.User, error) {
	return []usermodels.User{}, nil
}

func (f *fakeUserStore) DeleteOne(ctx context.Context, filter interface{}) error {
	return common.ErrNotFound
}

func (f *fakeUserStore) FindOneAndUpdate(ctx context.Context, filter interface{}, update interface{}, opts *options.FindOneAndUpdateOptions) (usermodels.User, error) {
	return usermodels.User{}, common.ErrNotFound
}

func (f *fakeUserStore) FindOneAndDelete(ctx context.Context, filter interface{}, opts *options.FindOneAndDeleteOptions) (usermodels.User, error) {
	return usermodels.User{}, common.ErrNotFound
}

func (f *fakeUserStore) Aggregate(ctx context.Context, pipeline mongo.Pipeline, results interface{}) error {
	return nil
}

func (f *fakeUserStore) FindWithPagination(ctx context.Context, filter interface{}, page, limit int64, opts *options.FindOptions) (*basemodels.PaginateResult[usermodels.User], error) {
	return basemodels.NewPaginateResult([]usermodels.User{}, page, limit, 0), nil
}

func (f *fakeUserStore) DeleteById(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.users[id]; !ok {
		return common.ErrNotFound
	}
	delete(f.users, id)
	return nil
}

// ====================================
// XOAY VÒNG REFRESH TOKEN
// ====================================

func TestRefreshSession_RotateVaChanReplay(t *testing.T) {
	tokens := newTestTokenService()
	// Cùng secret nhưng hạn khác để chuỗi token chắc chắn khác nhau
	staleTokens := NewTokenService(&config.Configuration{
		JwtAccessSecret:  "test-access-secret",
		JwtRefreshSecret: "test-refresh-secret",
		JwtAccessExpiry:  900,
		JwtRefreshExpiry: 3600,
	})

	user := *newTestUser()
	current, err := tokens.GenerateTokenPair(&user)
	assert.NoError(t, err)
	stale, err := staleTokens.GenerateTokenPair(&user)
	assert.NoError(t, err)
	assert.NotEqual(t, current.RefreshToken, stale.RefreshToken)

	// Phiên hiện tại đang lưu token mới nhất
	user.RefreshToken = current.RefreshToken
	store := newFakeUserStore(user)
	svc := &UserService{BaseServiceMongo: store, tokens: tokens}

	// Token cũ đã bị ghi đè: chữ ký hợp lệ nhưng không khớp giá trị đang lưu
	_, err = svc.RefreshSession(context.Background(), stale.RefreshToken)
	assert.ErrorIs(t, err, common.ErrTokenMismatch, "token đã bị thay thế phải bị từ chối")
	assert.Equal(t, current.RefreshToken, store.users[user.ID].RefreshToken, "replay không được thay đổi phiên đang lưu")

	// Token đang lưu xoay vòng thành công và giá trị mới được ghi đè
	pair, err := svc.RefreshSession(context.Background(), current.RefreshToken)
	assert.NoError(t, err)
	assert.NotEmpty(t, pair.RefreshToken)
	assert.Equal(t, pair.RefreshToken, store.users[user.ID].RefreshToken)
}

func TestRefreshSession_TokenThieuHoacSai(t *testing.T) {
	store := newFakeUserStore()
	svc := &UserService{BaseServiceMongo: store, tokens: newTestTokenService()}

	_, err := svc.RefreshSession(context.Background(), "")
	assert.ErrorIs(t, err, common.ErrTokenMissing)

	_, err = svc.RefreshSession(context.Background(), "not.a.jwt")
	assert.ErrorIs(t, err, common.ErrTokenInvalid)
}

func TestRefreshSession_UserDaBiXoa(t *testing.T) {
	tokens := newTestTokenService()
	user := newTestUser()
	pair, err := tokens.GenerateTokenPair(user)
	assert.NoError(t, err)

	// Token hợp lệ nhưng user không còn trong database
	svc := &UserService{BaseServiceMongo: newFakeUserStore(), tokens: tokens}
	_, err = svc.RefreshSession(context.Background(), pair.RefreshToken)
	assert.ErrorIs(t, err, common.ErrTokenInvalid)
}

// ====================================
// KIỂM TRA TRÙNG KHI ĐĂNG KÝ
// ====================================

func TestCheckAvailability_UsernameEmailTrung(t *testing.T) {
	existing := usermodels.User{
		ID:       primitive.NewObjectID(),
		UserName: "alice",
		Email:    "alice@example.com",
	}
	store := newFakeUserStore(existing)
	svc := &UserService{BaseServiceMongo: store, tokens: newTestTokenService()}

	// Username trùng (so sánh sau khi lowercase)
	err := svc.CheckAvailability(context.Background(), "ALICE", "new@example.com")
	assert.ErrorIs(t, err, common.ErrDuplicate)

	// Email trùng
	err = svc.CheckAvailability(context.Background(), "bob", "Alice@Example.com")
	assert.ErrorIs(t, err, common.ErrDuplicate)

	// Cả hai đều chưa có tài khoản
	err = svc.CheckAvailability(context.Background(), "bob", "bob@example.com")
	assert.NoError(t, err)
}

func TestRegister_TuChoiTaiKhoanTrung(t *testing.T) {
	existing := usermodels.User{
		ID:       primitive.NewObjectID(),
		UserName: "alice",
		Email:    "alice@example.com",
	}
	store := newFakeUserStore(existing)
	svc := &UserService{BaseServiceMongo: store, tokens: newTestTokenService()}

	_, err := svc.Register(context.Background(), "Alice B", "Alice", "other@example.com", "Str0ng!pass", "http://cdn/avatar.png", "")
	assert.ErrorIs(t, err, common.ErrDuplicate)
	assert.Len(t, store.users, 1, "đăng ký trùng không được tạo thêm user")
}
