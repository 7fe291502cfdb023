// Package commentrouter đăng ký các route thuộc domain comments.
package commentrouter

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	commenthdl "vidtube/internal/api/comments/handler"
	"vidtube/internal/api/middleware"
	apirouter "vidtube/internal/api/router"
)

// Register đăng ký các route comments lên v1.
// Danh sách bình luận là công khai, các thao tác ghi yêu cầu phiên đăng nhập.
func Register(v1 fiber.Router) error {
	commentHandler, err := commenthdl.NewCommentHandler()
	if err != nil {
		return fmt.Errorf("failed to create comment handler: %w", err)
	}

	v1.Get("/comments/video/:videoId", commentHandler.HandleListComments)

	sessionMiddleware := middleware.SessionMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "POST", "/video/:videoId", []fiber.Handler{sessionMiddleware}, commentHandler.HandleAddComment)
	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "PATCH", "/:id", []fiber.Handler{sessionMiddleware}, commentHandler.HandleUpdateComment)
	apirouter.RegisterRouteWithMiddleware(v1, "/comments", "DELETE", "/:id", []fiber.Handler{sessionMiddleware}, commentHandler.HandleDeleteComment)

	return nil
}
