// Package middleware chứa các middleware của API: xác thực phiên và chuẩn hóa response lỗi.
package middleware

import (
	"context"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v3"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "vidtube/internal/api/base/service"
	usermodels "vidtube/internal/api/users/models"
	usersvc "vidtube/internal/api/users/service"
	"vidtube/internal/common"
	"vidtube/internal/global"
	"vidtube/internal/logger"
)

// AuthManager xác thực phiên đăng nhập từ JWT access token
type AuthManager struct {
	Tokens   *usersvc.TokenService
	UserCRUD basesvc.BaseServiceMongo[usermodels.User]
}

var (
	authManagerInstance *AuthManager
	authManagerOnce     sync.Once
)

// GetAuthManager trả về instance duy nhất của AuthManager (singleton pattern)
func GetAuthManager() *AuthManager {
	authManagerOnce.Do(func() {
		var err error
		authManagerInstance, err = newAuthManager()
		if err != nil {
			panic(err)
		}
	})
	return authManagerInstance
}

// newAuthManager khởi tạo AuthManager từ config và registry collection
func newAuthManager() (*AuthManager, error) {
	col, exists := global.RegistryCollections.Get(global.ColNames.Users)
	if !exists {
		return nil, common.ErrConnection
	}
	return &AuthManager{
		Tokens:   usersvc.NewTokenService(global.ServerConfig),
		UserCRUD: basesvc.NewBaseServiceMongo[usermodels.User](col),
	}, nil
}

// sessionProjection loại các field nhạy cảm khi nạp user vào context
var sessionProjection = bson.M{"password": 0, "refreshToken": 0, "otp": 0, "otpExpires": 0}

// extractToken lấy access token từ cookie "accessToken" hoặc header "Authorization: Bearer"
func extractToken(c fiber.Ctx) string {
	if token := c.Cookies("accessToken"); token != "" {
		return token
	}

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// authenticate xác minh token và nạp user tương ứng từ database
func (am *AuthManager) authenticate(c fiber.Ctx, token string) (*usermodels.User, error) {
	userID, _, err := am.Tokens.VerifyAccessToken(token)
	if err != nil {
		return nil, err
	}

	user, err := am.UserCRUD.FindOne(context.Background(), bson.M{"_id": userID},
		options.FindOne().SetProjection(sessionProjection))
	if err != nil {
		// Token hợp lệ nhưng user đã bị xóa
		return nil, common.ErrTokenInvalid
	}

	c.Locals("user_id", user.ID.Hex())
	c.Locals("user", user)
	return &user, nil
}

// SessionMiddleware yêu cầu phiên đăng nhập hợp lệ.
// Request không có token hoặc token không xác minh được bị chặn với 401.
func SessionMiddleware() fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		token := extractToken(c)
		if token == "" {
			// Chỉ log khi thiếu token (lỗi quan trọng)
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":   c.Path(),
				"method": c.Method(),
			}).Warn("❌ [AUTH] Missing access token")
			HandleErrorResponse(c, common.ErrTokenMissing)
			return nil
		}

		if _, err := authManager.authenticate(c, token); err != nil {
			logger.GetAppLogger().WithFields(logrus.Fields{
				"path":  c.Path(),
				"error": err.Error(),
			}).Warn("❌ [AUTH] Invalid access token")
			HandleErrorResponse(c, err)
			return nil
		}

		return c.Next()
	}
}

// OptionalSessionMiddleware nạp user vào context nếu request mang token hợp lệ,
// nhưng không chặn request ẩn danh. Dùng cho các endpoint đọc công khai
// cần biết viewer là ai (ví dụ trang kênh với cờ isSubscribed).
func OptionalSessionMiddleware() fiber.Handler {
	authManager := GetAuthManager()

	return func(c fiber.Ctx) error {
		if token := extractToken(c); token != "" {
			// Token sai trên endpoint công khai được bỏ qua, không chặn request
			authManager.authenticate(c, token)
		}
		return c.Next()
	}
}
