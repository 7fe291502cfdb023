// Package playlistrouter đăng ký các route thuộc domain playlists.
package playlistrouter

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"vidtube/internal/api/middleware"
	playlisthdl "vidtube/internal/api/playlists/handler"
	apirouter "vidtube/internal/api/router"
)

// Register đăng ký các route playlists lên v1.
// Xem playlist là công khai, các thao tác ghi yêu cầu phiên đăng nhập.
func Register(v1 fiber.Router) error {
	playlistHandler, err := playlisthdl.NewPlaylistHandler()
	if err != nil {
		return fmt.Errorf("failed to create playlist handler: %w", err)
	}

	v1.Get("/playlists/user/:userId", playlistHandler.HandleListUserPlaylists)
	v1.Get("/playlists/:id", playlistHandler.HandleGetPlaylistByID)

	sessionMiddleware := middleware.SessionMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "POST", "/", []fiber.Handler{sessionMiddleware}, playlistHandler.HandleCreatePlaylist)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "PATCH", "/:id", []fiber.Handler{sessionMiddleware}, playlistHandler.HandleUpdatePlaylist)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "DELETE", "/:id", []fiber.Handler{sessionMiddleware}, playlistHandler.HandleDeletePlaylist)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "PATCH", "/:id/videos/:videoId", []fiber.Handler{sessionMiddleware}, playlistHandler.HandleAddVideoToPlaylist)
	apirouter.RegisterRouteWithMiddleware(v1, "/playlists", "DELETE", "/:id/videos/:videoId", []fiber.Handler{sessionMiddleware}, playlistHandler.HandleRemoveVideoFromPlaylist)

	return nil
}
