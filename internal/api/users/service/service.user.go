// Package usersvc chứa nghiệp vụ người dùng: đăng ký, phiên đăng nhập với
// cặp token xoay vòng, đặt lại mật khẩu bằng OTP và các read model kênh/lịch sử xem.
package usersvc

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "vidtube/internal/api/base/service"
	usermodels "vidtube/internal/api/users/models"
	"vidtube/internal/common"
	"vidtube/internal/global"
	"vidtube/internal/logger"
	"vidtube/internal/mailer"
	"vidtube/internal/utility"
)

// otpTTL là hiệu lực của mã OTP đặt lại mật khẩu
const otpTTL = 15 * time.Minute

// publicProjection loại các field nhạy cảm khỏi kết quả trả về client
var publicProjection = bson.M{"password": 0, "refreshToken": 0, "otp": 0, "otpExpires": 0}

// UserService quản lý collection users
type UserService struct {
	basesvc.BaseServiceMongo[usermodels.User]
	tokens *TokenService
	mail   *mailer.Mailer
}

// NewUserService tạo UserService từ collection đã đăng ký trong registry
func NewUserService(tokens *TokenService, mail *mailer.Mailer) (*UserService, error) {
	col, exists := global.RegistryCollections.Get(global.ColNames.Users)
	if !exists {
		return nil, fmt.Errorf("collection %s chưa được đăng ký", global.ColNames.Users)
	}
	return &UserService{
		BaseServiceMongo: basesvc.NewBaseServiceMongo[usermodels.User](col),
		tokens:           tokens,
		mail:             mail,
	}, nil
}

// ====================================
// ĐĂNG KÝ VÀ PHIÊN ĐĂNG NHẬP
// ====================================

// CheckAvailability trả về ErrDuplicate khi username hoặc email đã có tài khoản.
// Handler gọi trước khi upload media để không tạo file mồ côi trên storage
// khi đăng ký bị từ chối.
func (s *UserService) CheckAvailability(ctx context.Context, userName, email string) error {
	userName = strings.ToLower(strings.TrimSpace(userName))
	email = strings.ToLower(strings.TrimSpace(email))

	exists, err := s.DocumentExists(ctx, bson.M{"$or": bson.A{
		bson.M{"username": userName},
		bson.M{"email": email},
	}})
	if err != nil {
		return err
	}
	if exists {
		return common.ErrDuplicate
	}
	return nil
}

// Register tạo user mới. Username được lowercase trước khi lưu.
// Trả về ErrDuplicate khi username hoặc email đã tồn tại.
func (s *UserService) Register(ctx context.Context, fullName, userName, email, password, avatarURL, coverURL string) (*usermodels.User, error) {
	userName = strings.ToLower(strings.TrimSpace(userName))
	email = strings.ToLower(strings.TrimSpace(email))

	// Kiểm tra trùng lần nữa sát thời điểm ghi; unique index chặn race còn lại
	if err := s.CheckAvailability(ctx, userName, email); err != nil {
		return nil, err
	}

	hashed, err := utility.HashPassword(password)
	if err != nil {
		return nil, err
	}

	created, err := s.InsertOne(ctx, usermodels.User{
		FullName:   fullName,
		UserName:   userName,
		Email:      email,
		Password:   hashed,
		Avatar:     avatarURL,
		CoverImage: coverURL,
	})
	if err != nil {
		return nil, err
	}

	logger.GetAuditLogger().WithField("username", userName).Info("User registered")

	// Đọc lại qua projection để response không mang field nhạy cảm
	return s.findPublicByID(ctx, created.ID)
}

// Login xác thực theo email hoặc username, sinh cặp token và lưu refresh token
// lên document user (ghi đè phiên cũ nếu có).
func (s *UserService) Login(ctx context.Context, identifier, password string) (*usermodels.User, *TokenPair, error) {
	identifier = strings.ToLower(strings.TrimSpace(identifier))

	user, err := s.FindOne(ctx, bson.M{"$or": bson.A{
		bson.M{"email": identifier},
		bson.M{"username": identifier},
	}}, nil)
	if err != nil {
		return nil, nil, common.ErrUserNotFound
	}

	if err := utility.ComparePassword(user.Password, password); err != nil {
		return nil, nil, common.ErrInvalidCredentials
	}

	pair, err := s.tokens.GenerateTokenPair(&user)
	if err != nil {
		return nil, nil, err
	}

	if _, err := s.UpdateById(ctx, user.ID, bson.M{"refreshToken": pair.RefreshToken}); err != nil {
		return nil, nil, err
	}

	logger.GetAuditLogger().WithField("userId", user.ID.Hex()).Info("User logged in")

	public, err := s.findPublicByID(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return public, pair, nil
}

// Logout xóa refresh token của phiên hiện tại ($unset), đưa user về trạng thái no-session
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID) error {
	_, err := s.UpdateOne(ctx, bson.M{"_id": userID}, &basesvc.UpdateData{
		Unset: map[string]interface{}{"refreshToken": "", "otp": "", "otpExpires": ""},
	}, nil)
	return err
}

// RefreshSession xoay vòng cặp token từ một refresh token hợp lệ.
// Token phải xác minh được, user phải tồn tại và token phải khớp đúng
// giá trị đang lưu — token đã dùng (replay) hoặc đã bị ghi đè đều bị từ chối.
func (s *UserService) RefreshSession(ctx context.Context, incoming string) (*TokenPair, error) {
	if incoming == "" {
		return nil, common.ErrTokenMissing
	}

	userID, err := s.tokens.VerifyRefreshToken(incoming)
	if err != nil {
		return nil, err
	}

	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return nil, common.ErrTokenInvalid
	}

	if user.RefreshToken == "" || user.RefreshToken != incoming {
		return nil, common.ErrTokenMismatch
	}

	pair, err := s.tokens.GenerateTokenPair(&user)
	if err != nil {
		return nil, err
	}

	if _, err := s.UpdateById(ctx, user.ID, bson.M{"refreshToken": pair.RefreshToken}); err != nil {
		return nil, err
	}

	return pair, nil
}

// ====================================
// MẬT KHẨU VÀ HỒ SƠ
// ====================================

// ChangePassword đổi mật khẩu sau khi xác minh mật khẩu cũ
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, oldPassword, newPassword string) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if err := utility.ComparePassword(user.Password, oldPassword); err != nil {
		return common.ErrInvalidCredentials
	}

	hashed, err := utility.HashPassword(newPassword)
	if err != nil {
		return err
	}

	_, err = s.UpdateById(ctx, userID, bson.M{"password": hashed})
	if err == nil {
		logger.GetAuditLogger().WithField("userId", userID.Hex()).Info("Password changed")
	}
	return err
}

// GetProfile trả về hồ sơ user hiện tại (không có field nhạy cảm)
func (s *UserService) GetProfile(ctx context.Context, userID primitive.ObjectID) (*usermodels.User, error) {
	return s.findPublicByID(ctx, userID)
}

// UpdateProfile cập nhật một phần hồ sơ (fullname, email). Field rỗng được bỏ qua.
func (s *UserService) UpdateProfile(ctx context.Context, userID primitive.ObjectID, fullName, email string) (*usermodels.User, error) {
	set := bson.M{}
	if fullName != "" {
		set["fullname"] = fullName
	}
	if email != "" {
		set["email"] = strings.ToLower(strings.TrimSpace(email))
	}
	if len(set) == 0 {
		return nil, common.ErrRequiredField
	}

	if _, err := s.UpdateById(ctx, userID, set); err != nil {
		return nil, err
	}
	return s.findPublicByID(ctx, userID)
}

// UpdateAvatar thay URL ảnh đại diện sau khi upload thành công
func (s *UserService) UpdateAvatar(ctx context.Context, userID primitive.ObjectID, avatarURL string) (*usermodels.User, error) {
	if _, err := s.UpdateById(ctx, userID, bson.M{"avatar": avatarURL}); err != nil {
		return nil, err
	}
	return s.findPublicByID(ctx, userID)
}

// UpdateCoverImage thay URL ảnh bìa sau khi upload thành công
func (s *UserService) UpdateCoverImage(ctx context.Context, userID primitive.ObjectID, coverURL string) (*usermodels.User, error) {
	if _, err := s.UpdateById(ctx, userID, bson.M{"coverImage": coverURL}); err != nil {
		return nil, err
	}
	return s.findPublicByID(ctx, userID)
}

// ====================================
// ĐẶT LẠI MẬT KHẨU BẰNG OTP
// ====================================

// RequestPasswordReset sinh OTP ngẫu nhiên, lưu kèm hạn 15 phút và gửi qua email.
// Email không tồn tại trả về ErrUserNotFound.
func (s *UserService) RequestPasswordReset(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return common.ErrUserNotFound
	}

	otp, err := generateOTP()
	if err != nil {
		return err
	}

	expires := utility.UnixMilli(time.Now().Add(otpTTL))
	if _, err := s.UpdateById(ctx, user.ID, bson.M{"otp": otp, "otpExpires": expires}); err != nil {
		return err
	}

	if err := s.mail.SendPasswordResetOTP(user.Email, otp); err != nil {
		return err
	}

	logger.GetAuditLogger().WithField("userId", user.ID.Hex()).Info("Password reset OTP issued")
	return nil
}

// ConfirmPasswordReset xác minh OTP, đặt mật khẩu mới, xóa OTP và phiên cũ,
// rồi sinh cặp token mới cho user.
func (s *UserService) ConfirmPasswordReset(ctx context.Context, email, otp, newPassword string) (*TokenPair, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.FindOne(ctx, bson.M{"email": email}, nil)
	if err != nil {
		return nil, common.ErrUserNotFound
	}

	if user.Otp == "" || user.Otp != otp {
		return nil, common.ErrOTPInvalid
	}
	if user.OtpExpires < utility.CurrentTimeInMilli() {
		return nil, common.ErrOTPExpired
	}

	hashed, err := utility.HashPassword(newPassword)
	if err != nil {
		return nil, err
	}

	pair, err := s.tokens.GenerateTokenPair(&user)
	if err != nil {
		return nil, err
	}

	_, err = s.UpdateOne(ctx, bson.M{"_id": user.ID}, &basesvc.UpdateData{
		Set:   map[string]interface{}{"password": hashed, "refreshToken": pair.RefreshToken},
		Unset: map[string]interface{}{"otp": "", "otpExpires": ""},
	}, nil)
	if err != nil {
		return nil, err
	}

	logger.GetAuditLogger().WithField("userId", user.ID.Hex()).Info("Password reset confirmed")
	return pair, nil
}

// ====================================
// READ MODEL: KÊNH VÀ LỊCH SỬ XEM
// ====================================

// GetChannelProfile trả về trang kênh theo username.
// Kênh chưa có subscription nào vẫn trả về profile với các count = 0.
func (s *UserService) GetChannelProfile(ctx context.Context, username string, viewerID *primitive.ObjectID) (*usermodels.ChannelProfile, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if username == "" {
		return nil, common.ErrRequiredField
	}

	var results []usermodels.ChannelProfile
	if err := s.Aggregate(ctx, ChannelProfilePipeline(username, viewerID), &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, common.ErrNotFound
	}
	return &results[0], nil
}

// GetWatchHistory trả về danh sách video đã xem của user, owner đã populate
func (s *UserService) GetWatchHistory(ctx context.Context, userID primitive.ObjectID) ([]usermodels.WatchHistoryEntry, error) {
	var results []struct {
		WatchHistory []usermodels.WatchHistoryEntry `bson:"watchHistory"`
	}
	if err := s.Aggregate(ctx, WatchHistoryPipeline(userID), &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, common.ErrNotFound
	}
	if results[0].WatchHistory == nil {
		return []usermodels.WatchHistoryEntry{}, nil
	}
	return results[0].WatchHistory, nil
}

// AppendWatchHistory ghi videoID vào đầu watchHistory của user.
// Video đã có trong lịch sử được gỡ ra trước để không trùng lặp.
func (s *UserService) AppendWatchHistory(ctx context.Context, userID, videoID primitive.ObjectID) error {
	// Gỡ entry cũ nếu có
	if _, err := s.UpdateOne(ctx, bson.M{"_id": userID}, &basesvc.UpdateData{
		Pull: map[string]interface{}{"watchHistory": videoID},
	}, nil); err != nil {
		return err
	}

	// Chèn vào vị trí đầu
	_, err := s.UpdateOne(ctx, bson.M{"_id": userID}, &basesvc.UpdateData{
		Push: map[string]interface{}{
			"watchHistory": bson.M{"$each": bson.A{videoID}, "$position": 0},
		},
	}, nil)
	return err
}

// findPublicByID đọc user với projection loại field nhạy cảm
func (s *UserService) findPublicByID(ctx context.Context, id primitive.ObjectID) (*usermodels.User, error) {
	user, err := s.FindOne(ctx, bson.M{"_id": id}, options.FindOne().SetProjection(publicProjection))
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// generateOTP sinh mã OTP hex từ 4 byte ngẫu nhiên
func generateOTP() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không thể sinh OTP", common.StatusInternalServerError, err)
	}
	return hex.EncodeToString(buf), nil
}
