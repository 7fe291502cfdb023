// Package playlisthdl xử lý các request của domain playlists.
package playlisthdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson"

	basehdl "vidtube/internal/api/base/handler"
	playlistdto "vidtube/internal/api/playlists/dto"
	playlistsvc "vidtube/internal/api/playlists/service"
	videosvc "vidtube/internal/api/videos/service"
	"vidtube/internal/common"
)

// PlaylistHandler xử lý các request quản lý playlist
type PlaylistHandler struct {
	basehdl.BaseHandler
	playlistService *playlistsvc.PlaylistService
	videoService    *videosvc.VideoService
}

// NewPlaylistHandler tạo instance mới của PlaylistHandler
func NewPlaylistHandler() (*PlaylistHandler, error) {
	playlistService, err := playlistsvc.NewPlaylistService()
	if err != nil {
		return nil, fmt.Errorf("failed to create playlist service: %v", err)
	}
	videoService, err := videosvc.NewVideoService()
	if err != nil {
		return nil, fmt.Errorf("failed to create video service: %v", err)
	}
	return &PlaylistHandler{playlistService: playlistService, videoService: videoService}, nil
}

// HandleCreatePlaylist tạo playlist mới
func (h *PlaylistHandler) HandleCreatePlaylist(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input playlistdto.CreatePlaylistInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	playlist, err := h.playlistService.Create(c.Context(), userID, input.Name, input.Description)
	h.HandleCreatedResponse(c, playlist, err)
	return nil
}

// HandleListUserPlaylists trả về danh sách playlist của một user
func (h *PlaylistHandler) HandleListUserPlaylists(c fiber.Ctx) error {
	ownerID, err := h.ParseObjectIDParam(c, "userId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	playlists, err := h.playlistService.ListByUser(c.Context(), ownerID)
	h.HandleResponse(c, playlists, err)
	return nil
}

// HandleGetPlaylistByID trả về chi tiết một playlist với video đã populate
func (h *PlaylistHandler) HandleGetPlaylistByID(c fiber.Ctx) error {
	playlistID, err := h.ParseObjectIDParam(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	playlist, err := h.playlistService.GetByID(c.Context(), playlistID)
	h.HandleResponse(c, playlist, err)
	return nil
}

// HandleAddVideoToPlaylist thêm video vào playlist. Video phải tồn tại,
// chỉ chủ playlist được thêm.
func (h *PlaylistHandler) HandleAddVideoToPlaylist(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	playlistID, err := h.ParseObjectIDParam(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	videoID, err := h.ParseObjectIDParam(c, "videoId")
	if err != nil {
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

	playlist, err := h.playlistService.AddVideo(c.Context(), playlistID, videoID, userID)
	h.HandleResponse(c, playlist, err)
	return nil
}

// HandleRemoveVideoFromPlaylist gỡ video khỏi playlist. Chỉ chủ playlist được gỡ.
func (h *PlaylistHandler) HandleRemoveVideoFromPlaylist(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	playlistID, err := h.ParseObjectIDParam(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}
	videoID, err := h.ParseObjectIDParam(c, "videoId")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	playlist, err := h.playlistService.RemoveVideo(c.Context(), playlistID, videoID, userID)
	h.HandleResponse(c, playlist, err)
	return nil
}

// HandleUpdatePlaylist cập nhật name/description. Chỉ chủ playlist được sửa.
func (h *PlaylistHandler) HandleUpdatePlaylist(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	playlistID, err := h.ParseObjectIDParam(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input playlistdto.UpdatePlaylistInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	playlist, err := h.playlistService.Update(c.Context(), playlistID, userID, input.Name, input.Description)
	h.HandleResponse(c, playlist, err)
	return nil
}

// HandleDeletePlaylist xóa playlist. Chỉ chủ playlist được xóa.
func (h *PlaylistHandler) HandleDeletePlaylist(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	playlistID, err := h.ParseObjectIDParam(c, "id")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	err = h.playlistService.Delete(c.Context(), playlistID, userID)
	h.HandleResponse(c, nil, err)
	return nil
}
