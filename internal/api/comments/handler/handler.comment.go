// Package commenthdl xử lý các request của domain comments.
package commenthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basehdl "vidtube/internal/api/base/handler"
	commentdto "vidtube/internal/api/comments/dto"
	commentsvc "vidtube/internal/api/comments/service"
	videosvc "vidtube/internal/api/videos/service"
	"vidtube/internal/common"
)

// CommentHandler xử lý các request quản lý bình luận
type CommentHandler struct {
	basehdl.BaseHandler
	commentService *commentsvc.CommentService
	videoService   *videosvc.VideoService
}

// NewCommentHandler tạo instance mới của CommentHandler
func NewCommentHandler() (*CommentHandler, error) {
	commentService, err := commentsvc.NewCommentService()
	if err != nil {
		return nil, fmt.Errorf("failed to create comment service: %v", err)
	}
	videoService, err := videosvc.NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}
	return &CommentHandler{commentService: commentService, videoService: videoService}, nil
}

// HandleListComments trả về danh sách bình luận phân trang của một video
func (h *CommentHandler) HandleListComments(c fiber.Ctx) error {
	videoID, err := h.ParseObjectIDParam(c, "videoId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	page, limit := h.ParsePagination(c)
	result, err := h.commentService.ListByVideo(c.Context(), videoID, page, limit)
	h.HandleResponse(c, result, err)
	return nil
}

// HandleAddComment thêm bình luận vào một video. Video phải tồn tại.
func (h *CommentHandler) HandleAddComment(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	videoID, err := h.ParseObjectIDParam(c, "videoId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input commentdto.AddCommentInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	exists, err := h.videoService.DocumentExists(c.Context(), bson.M{"_id": videoID})
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	if !exists {
		h.HandleResponse(c, nil, common.ErrNotFound)
		return nil
	}

	comment, err := h.commentService.Add(c.Context(), videoID, userID, input.Content)
	h.HandleCreatedResponse(c, comment, err)
	return nil
}

// HandleUpdateComment sửa nội dung bình luận. Chỉ chủ bình luận được sửa.
func (h *CommentHandler) HandleUpdateComment(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	commentID, err := h.ParseObjectIDParam(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input commentdto.UpdateCommentInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	comment, err := h.commentService.Update(c.Context(), commentID, userID, input.Content)
	h.HandleResponse(c, comment, err)
	return nil
}

// HandleDeleteComment xóa bình luận. Chỉ chủ bình luận được xóa.
func (h *CommentHandler) HandleDeleteComment(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	commentID, err := h.ParseObjectIDParam(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	err = h.commentService.Delete(c.Context(), commentID, userID)
	h.HandleResponse(c, nil, err)
	return nil
}
