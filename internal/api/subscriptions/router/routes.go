// Package subrouter đăng ký các route thuộc domain subscriptions.
package subrouter

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"vidtube/internal/api/middleware"
	apirouter "vidtube/internal/api/router"
	subhdl "vidtube/internal/api/subscriptions/handler"
)

// Register đăng ký các route subscriptions lên v1.
func Register(v1 fiber.Router) error {
	subHandler, err := subhdl.NewSubscriptionHandler()
	if err != nil {
		return fmt.Errorf("failed to create subscription handler: %w", err)
	}

	v1.Get("/subscriptions/channel/:channelId", subHandler.HandleListChannelSubscribers)

	sessionMiddleware := middleware.SessionMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/subscriptions", "POST", "/toggle/:channelId", []fiber.Handler{sessionMiddleware}, subHandler.HandleToggleSubscription)
	apirouter.RegisterRouteWithMiddleware(v1, "/subscriptions", "GET", "/subscribed", []fiber.Handler{sessionMiddleware}, subHandler.HandleListSubscribedChannels)

	return nil
}
