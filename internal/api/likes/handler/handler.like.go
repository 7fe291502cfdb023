// Package likehdl xử lý các request của domain likes.
package likehdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basehdl "vidtube/internal/api/base/handler"
	commentsvc "vidtube/internal/api/comments/service"
	likemodels "vidtube/internal/api/likes/models"
	likesvc "vidtube/internal/api/likes/service"
	tweetsvc "vidtube/internal/api/tweets/service"
	videosvc "vidtube/internal/api/videos/service"
	"vidtube/internal/common"
)

// LikeHandler xử lý các request toggle lượt thích và danh sách video đã thích
type LikeHandler struct {
	basehdl.BaseHandler
	likeService    *likesvc.LikeService
	videoService   *videosvc.VideoService
	commentService *commentsvc.CommentService
	tweetService   *tweetsvc.TweetService
}

// NewLikeHandler tạo instance mới của LikeHandler
func NewLikeHandler() (*LikeHandler, error) {
	likeService, err := likesvc.NewLikeService()
	if err != nil {
		return nil, fmt.Errorf("failed to create like service: %v", err)
	}
	videoService, err := videosvc.NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}
	commentService, err := commentsvc.NewCommentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %v", err)
	}
	tweetService, err := tweetsvc.NewTweetService()
	if err != nil {
		return nil, fmt.Errorf("failed to create tweet service: %v", err)
	}
	return &LikeHandler{
		likeService:    likeService,
		videoService:   videoService,
		commentService: commentService,
		tweetService:   tweetService,
	}, nil
}

// handleToggle là phần chung của các endpoint toggle: đọc param, kiểm tra
// đối tượng tồn tại rồi đảo trạng thái thích.
func (h *LikeHandler) handleToggle(c fiber.Ctx, paramName, targetType string, exists func(c fiber.Ctx, filter bson.M) (bool, error)) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	targetID, err := h.ParseObjectIDParam(c, paramName)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	found, err := exists(c, bson.M{"_id": targetID})
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if !found {
		h.HandleResponse(c, nil, common.ErrNotFound)
		return nil
	}

	liked, err := h.likeService.Toggle(c.Context(), targetType, targetID, userID)
	h.HandleResponse(c, fiber.Map{"liked": liked}, err)
	return nil
}

// HandleToggleVideoLike đảo trạng thái thích trên một video
func (h *LikeHandler) HandleToggleVideoLike(c fiber.Ctx) error {
	return h.handleToggle(c, "videoId", likemodels.TargetVideo, func(c fiber.Ctx, filter bson.M) (bool, error) {
		return h.videoService.DocumentExists(c.Context(), filter)
	})
}

// HandleToggleCommentLike đảo trạng thái thích trên một bình luận
func (h *LikeHandler) HandleToggleCommentLike(c fiber.Ctx) error {
	return h.handleToggle(c, "commentId", likemodels.TargetComment, func(c fiber.Ctx, filter bson.M) (bool, error) {
		return h.commentService.DocumentExists(c.Context(), filter)
	})
}

// HandleToggleTweetLike đảo trạng thái thích trên một tweet
func (h *LikeHandler) HandleToggleTweetLike(c fiber.Ctx) error {
	return h.handleToggle(c, "tweetId", likemodels.TargetTweet, func(c fiber.Ctx, filter bson.M) (bool, error) {
		return h.tweetService.DocumentExists(c.Context(), filter)
	})
}

// HandleListLikedVideos trả về danh sách video user hiện tại đã thích
func (h *LikeHandler) HandleListLikedVideos(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	videos, err := h.likeService.ListLikedVideos(c.Context(), userID)
	h.HandleResponse(c, videos, err)
	return nil
}
