// Package videorouter đăng ký các route thuộc domain videos.
package videorouter

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"vidtube/internal/api/middleware"
	apirouter "vidtube/internal/api/router"
	videohdl "vidtube/internal/api/videos/handler"
)

// Register đăng ký các route videos lên v1.
// Danh sách và chi tiết video là công khai, các thao tác ghi yêu cầu phiên đăng nhập.
func Register(v1 fiber.Router) error {
	videoHandler, err := videohdl.NewVideoHandler()
	if err != nil {
		return fmt.Errorf("failed to create video handler: %w", err)
	}

	v1.Get("/videos", videoHandler.HandleListVideos)
	v1.Get("/videos/:id", videoHandler.HandleGetVideoByID)

	sessionMiddleware := middleware.SessionMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "POST", "/", []fiber.Handler{sessionMiddleware}, videoHandler.HandlePublishVideo)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "PATCH", "/:id", []fiber.Handler{sessionMiddleware}, videoHandler.HandleUpdateVideo)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "DELETE", "/:id", []fiber.Handler{sessionMiddleware}, videoHandler.HandleDeleteVideo)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "PATCH", "/:id/toggle-publish", []fiber.Handler{sessionMiddleware}, videoHandler.HandleTogglePublishStatus)
	apirouter.RegisterRouteWithMiddleware(v1, "/videos", "POST", "/:id/watch", []fiber.Handler{sessionMiddleware}, videoHandler.HandleWatchVideo)

	return nil
}
