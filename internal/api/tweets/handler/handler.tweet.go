// Package tweethdl xử lý các request của domain tweets.
package tweethdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	basehdl "vidtube/internal/api/base/handler"
	tweetdto "vidtube/internal/api/tweets/dto"
	tweetsvc "vidtube/internal/api/tweets/service"
)

// TweetHandler xử lý các request quản lý tweet
type TweetHandler struct {
	basehdl.BaseHandler
	tweetService *tweetsvc.TweetService
}

// NewTweetHandler tạo instance mới của TweetHandler
func NewTweetHandler() (*TweetHandler, error) {
	tweetService, err := tweetsvc.NewTweetService()
	if err != nil {
		return nil, fmt.Errorf("failed to create tweet service: %v", err)
	}
	return &TweetHandler{tweetService: tweetService}, nil
}

// HandleCreateTweet tạo tweet mới
func (h *TweetHandler) HandleCreateTweet(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input tweetdto.CreateTweetInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	tweet, err := h.tweetService.Create(c.Context(), userID, input.Content)
	h.HandleCreatedResponse(c, tweet, err)
	return nil
}

// HandleListUserTweets trả về danh sách tweet của một user
func (h *TweetHandler) HandleListUserTweets(c fiber.Ctx) error {
	ownerID, err := h.ParseObjectIDParam(c, "userId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	page, limit := h.ParsePagination(c)
	result, err := h.tweetService.ListByOwner(c.Context(), ownerID, page, limit)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleUpdateTweet sửa nội dung tweet. Chỉ chủ tweet được sửa.
func (h *TweetHandler) HandleUpdateTweet(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	tweetID, err := h.ParseObjectIDParam(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input tweetdto.UpdateTweetInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	tweet, err := h.tweetService.Update(c.Context(), tweetID, userID, input.Content)
	h.HandleResponse(c, tweet, err)
	return nil
}

// HandleDeleteTweet xóa tweet. Chỉ chủ tweet được xóa.
func (h *TweetHandler) HandleDeleteTweet(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	tweetID, err := h.ParseObjectIDParam(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	err = h.tweetService.Delete(c.Context(), tweetID, userID)
	h.HandleResponse(c, nil, err)
	return nil
}
