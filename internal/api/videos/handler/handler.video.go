// Package videohdl xử lý các request của domain videos.
package videohdl

import (
	"fmt"
	"strconv"
	"sync"

	"github.com/gofiber/fiber/v3"

	basehdl "vidtube/internal/api/base/handler"
	usersvc "vidtube/internal/api/users/service"
	videodto "vidtube/internal/api/videos/dto"
	videosvc "vidtube/internal/api/videos/service"
	"vidtube/internal/common"
	"vidtube/internal/global"
	"vidtube/internal/utility"
)

// VideoHandler xử lý các request quản lý video
type VideoHandler struct {
	basehdl.BaseHandler
	videoService *videosvc.VideoService
	userService  *usersvc.UserService
}

// NewVideoHandler tạo instance mới của VideoHandler
func NewVideoHandler() (*VideoHandler, error) {
	videoService, err := videosvc.NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}
	tokens := usersvc.NewTokenService(global.ServerConfig)
	userService, err := usersvc.NewUserService(tokens, global.Mail)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	return &VideoHandler{videoService: videoService, userService: userService}, nil
}

// HandleListVideos trả về danh sách video phân trang.
// Query params: page, limit, sortBy, sortType, query, ownerId.
func (h *VideoHandler) HandleListVideos(c fiber.Ctx) error {
	page, limit := h.ParsePagination(c)
	query := videodto.ListVideosQuery{
		Page:     page,
		Limit:    limit,
		SortBy:   c.Query("sortBy"),
		SortType: c.Query("sortType"),
		Query:    c.Query("query"),
		OwnerID:  c.Query("ownerId"),
	}
	if err := h.ValidateInput(&query); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	result, err := h.videoService.List(c.Context(), query)
	h.HandleResponse(c, result, err)
	return nil
}

// HandlePublishVideo đăng video mới (multipart form với file video + thumbnail).
// Hai file được upload song song lên object storage.
func (h *VideoHandler) HandlePublishVideo(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	duration, _ := strconv.ParseFloat(c.FormValue("duration"), 64)
	input := videodto.PublishVideoInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Duration:    duration,
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	if _, err := c.FormFile("videoFile"); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu file videoFile", common.StatusBadRequest, nil))
		return nil
	}
	if _, err := c.FormFile("thumbnail"); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu file thumbnail", common.StatusBadRequest, nil))
		return nil
	}

	// Upload video và thumbnail song song
	var (
		wg                 sync.WaitGroup
		videoURL, thumbURL string
		videoErr, thumbErr error
	)
	wg.Add(2)
	go utility.GoProtect(func() {
		defer wg.Done()
		videoURL, videoErr = basehdl.UploadFormFile(c, "videoFile", "videos")
	})
	go utility.GoProtect(func() {
		defer wg.Done()
		thumbURL, thumbErr = basehdl.UploadFormFile(c, "thumbnail", "thumbnails")
	})
	wg.Wait()

	if videoErr != nil {
		h.HandleResponse(c, nil, videoErr)
		return nil
	}
	if thumbErr != nil {
		h.HandleResponse(c, nil, thumbErr)
		return nil
	}

	video, err := h.videoService.Publish(c.Context(), userID, &input, videoURL, thumbURL)
	h.HandleCreatedResponse(c, video, err)
	return nil
}

// HandleGetVideoByID trả về một video theo id kèm chủ video
func (h *VideoHandler) HandleGetVideoByID(c fiber.Ctx) error {
	videoID, err := h.ParseObjectIDParam(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	video, err := h.videoService.GetByID(c.Context(), videoID)
	h.HandleResponse(c, video, err)
	return nil
}

// HandleUpdateVideo cập nhật title/description và thumbnail (nếu gửi kèm file).
// Chỉ chủ video được sửa.
func (h *VideoHandler) HandleUpdateVideo(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	videoID, err := h.ParseObjectIDParam(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	input := videodto.UpdateVideoInput{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	// Thumbnail mới là tùy chọn
	thumbnailURL := ""
	if _, err := c.FormFile("thumbnail"); err == nil {
		thumbnailURL, err = basehdl.UploadFormFile(c, "thumbnail", "thumbnails")
		if err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
	}

	video, err := h.videoService.Update(c.Context(), videoID, userID, input.Title, input.Description, thumbnailURL)
	h.HandleResponse(c, video, err)
	return nil
}

// HandleDeleteVideo xóa video. Chỉ chủ video được xóa.
func (h *VideoHandler) HandleDeleteVideo(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	videoID, err := h.ParseObjectIDParam(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	err = h.videoService.Delete(c.Context(), videoID, userID)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleTogglePublishStatus đảo trạng thái published. Chỉ chủ video được đổi.
func (h *VideoHandler) HandleTogglePublishStatus(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	videoID, err := h.ParseObjectIDParam(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	video, err := h.videoService.TogglePublish(c.Context(), videoID, userID)
	h.HandleResponse(c, video, err)
	return nil
}

// HandleWatchVideo ghi nhận lượt xem: tăng views của video và
// đưa video lên đầu lịch sử xem của user hiện tại.
func (h *VideoHandler) HandleWatchVideo(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	videoID, err := h.ParseObjectIDParam(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	if err := h.videoService.RegisterView(c.Context(), videoID); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	err = h.userService.AppendWatchHistory(c.Context(), userID, videoID)
	h.HandleResponse(c, nil, err)
	return nil
}
