// Package tweetrouter đăng ký các route thuộc domain tweets.
package tweetrouter

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	"vidtube/internal/api/middleware"
	apirouter "vidtube/internal/api/router"
	tweethdl "vidtube/internal/api/tweets/handler"
)

// Register đăng ký các route tweets lên v1.
func Register(v1 fiber.Router) error {
	tweetHandler, err := tweethdl.NewTweetHandler()
	if err != nil {
		return fmt.Errorf("failed to create tweet handler: %w", err)
	}

	v1.Get("/tweets/user/:userId", tweetHandler.HandleListUserTweets)

	sessionMiddleware := middleware.SessionMiddleware()
	apirouter.RegisterRouteWithMiddleware(v1, "/tweets", "POST", "/", []fiber.Handler{sessionMiddleware}, tweetHandler.HandleCreateTweet)
	apirouter.RegisterRouteWithMiddleware(v1, "/tweets", "PATCH", "/:id", []fiber.Handler{sessionMiddleware}, tweetHandler.HandleUpdateTweet)
	apirouter.RegisterRouteWithMiddleware(v1, "/tweets", "DELETE", "/:id", []fiber.Handler{sessionMiddleware}, tweetHandler.HandleDeleteTweet)

	return nil
}
