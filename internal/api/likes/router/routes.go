// Package likerouter đăng ký các route thuộc domain likes.
package likerouter

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	likehdl "vidtube/internal/api/likes/handler"
	"vidtube/internal/api/middleware"
	apirouter "vidtube/internal/api/router"
)

// Register đăng ký các route likes lên v1. Tất cả đều yêu cầu phiên đăng nhập.
func Register(v1 fiber.Router) error {
	likeHandler, err := likehdl.NewLikeHandler()
	if err != nil {
		return fmt.Errorf("failed to create like handler: %w", err)
	}

	sessionMiddleware := middleware.SessionMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/likes", "POST", "/toggle/video/:videoId", []fiber.Handler{sessionMiddleware}, likeHandler.HandleToggleVideoLike)
	apirouter.RegisterRouteWithMiddleware(v1, "/likes", "POST", "/toggle/comment/:commentId", []fiber.Handler{sessionMiddleware}, likeHandler.HandleToggleCommentLike)
	apirouter.RegisterRouteWithMiddleware(v1, "/likes", "POST", "/toggle/tweet/:tweetId", []fiber.Handler{sessionMiddleware}, likeHandler.HandleToggleTweetLike)
	apirouter.RegisterRouteWithMiddleware(v1, "/likes", "GET", "/videos", []fiber.Handler{sessionMiddleware}, likeHandler.HandleListLikedVideos)

	return nil
}
