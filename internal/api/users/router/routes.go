// Package userrouter đăng ký các route thuộc domain users.
package userrouter

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"vidtube/internal/api/middleware"
	apirouter "vidtube/internal/api/router"
	userhdl "vidtube/internal/api/users/handler"
)

// Register đăng ký các route users lên v1.
// Các endpoint đăng ký/đăng nhập/refresh/đặt lại mật khẩu là công khai,
// phần còn lại yêu cầu phiên đăng nhập.
func Register(v1 fiber.Router) error {
	userHandler, err := userhdl.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %w", err)
	}

	v1.Post("/users/register", userHandler.HandleRegister)
	v1.Post("/users/login", userHandler.HandleLogin)
	v1.Post("/users/refresh-token", userHandler.HandleRefreshToken)
	v1.Post("/users/forgot-password", userHandler.HandleRequestPasswordReset)
	v1.Post("/users/reset-password", userHandler.HandleConfirmPasswordReset)

	sessionMiddleware := middleware.SessionMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "POST", "/logout", []fiber.Handler{sessionMiddleware}, userHandler.HandleLogout)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "GET", "/me", []fiber.Handler{sessionMiddleware}, userHandler.HandleGetProfile)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "PATCH", "/me", []fiber.Handler{sessionMiddleware}, userHandler.HandleUpdateProfile)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "POST", "/change-password", []fiber.Handler{sessionMiddleware}, userHandler.HandleChangePassword)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "PATCH", "/me/avatar", []fiber.Handler{sessionMiddleware}, userHandler.HandleUpdateAvatar)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "PATCH", "/me/cover-image", []fiber.Handler{sessionMiddleware}, userHandler.HandleUpdateCoverImage)
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "GET", "/watch-history", []fiber.Handler{sessionMiddleware}, userHandler.HandleGetWatchHistory)

	// Trang kênh công khai, viewer đăng nhập (nếu có) dùng để tính isSubscribed
	optionalSession := middleware.OptionalSessionMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/users", "GET", "/channel/:username", []fiber.Handler{optionalSession}, userHandler.HandleGetChannelProfile)

	return nil
}
