// Package userhdl xử lý các request của domain users: đăng ký, phiên đăng nhập,
// hồ sơ, đặt lại mật khẩu, trang kênh và lịch sử xem.
package userhdl

import (
	"fmt"
	"sync"
	"time"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"

	basehdl "vidtube/internal/api/base/handler"
	userdto "vidtube/internal/api/users/dto"
	usersvc "vidtube/internal/api/users/service"
	"vidtube/internal/common"
	"vidtube/internal/global"
	"vidtube/internal/utility"
)

// UserHandler xử lý các request xác thực và quản lý người dùng
type UserHandler struct {
	basehdl.BaseHandler
	userService *usersvc.UserService
}

// NewUserHandler tạo instance mới của UserHandler
func NewUserHandler() (*UserHandler, error) {
	tokens := usersvc.NewTokenService(global.ServerConfig)
	userService, err := usersvc.NewUserService(tokens, global.Mail)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %v", err)
	}
	return &UserHandler{userService: userService}, nil
}

// ====================================
// COOKIE HELPERS
// ====================================

// setAuthCookies ghi cặp token vào cookie httpOnly
func setAuthCookies(c fiber.Ctx, pair *usersvc.TokenPair) {
	cfg := global.ServerConfig
	c.Cookie(&fiber.Cookie{
		Name:     "accessToken",
		Value:    pair.AccessToken,
		HTTPOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(time.Duration(cfg.JwtAccessExpiry) * time.Second),
	})
	c.Cookie(&fiber.Cookie{
		Name:     "refreshToken",
		Value:    pair.RefreshToken,
		HTTPOnly: true,
		Secure:   cfg.CookieSecure,
		SameSite: fiber.CookieSameSiteLaxMode,
		Expires:  time.Now().Add(time.Duration(cfg.JwtRefreshExpiry) * time.Second),
	})
}

// clearAuthCookies xóa cặp cookie token khi logout
func clearAuthCookies(c fiber.Ctx) {
	c.ClearCookie("accessToken")
	c.ClearCookie("refreshToken")
}

// ====================================
// ĐĂNG KÝ VÀ PHIÊN ĐĂNG NHẬP
// ====================================

// HandleRegister xử lý đăng ký tài khoản (multipart form).
// Avatar là bắt buộc, ảnh bìa tùy chọn; hai file được upload song song.
func (h *UserHandler) HandleRegister(c fiber.Ctx) error {
	input := userdto.RegisterInput{
		FullName: c.FormValue("fullname"),
		UserName: c.FormValue("username"),
		Email:    c.FormValue("email"),
		Password: c.FormValue("password"),
	}
	if err := h.ValidateInput(&input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	// Kiểm tra username/email trước khi upload để không tạo file mồ côi
	// trên storage khi đăng ký bị từ chối
	if err := h.userService.CheckAvailability(c.Context(), input.UserName, input.Email); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	if _, err := c.FormFile("avatar"); err != nil {
		h.HandleResponse(c, nil, common.NewError(common.ErrCodeValidationInput, "Thiếu file avatar", common.StatusBadRequest, nil))
		return nil
	}
	_, coverMissing := c.FormFile("coverImage")

	// Upload avatar và ảnh bìa song song
	var (
		wg                  sync.WaitGroup
		avatarURL, coverURL string
		avatarErr, coverErr error
	)
	wg.Add(1)
	go utility.GoProtect(func() {
		defer wg.Done()
		avatarURL, avatarErr = basehdl.UploadFormFile(c, "avatar", "avatars")
	})
	if coverMissing == nil {
		wg.Add(1)
		go utility.GoProtect(func() {
			defer wg.Done()
			coverURL, coverErr = basehdl.UploadFormFile(c, "coverImage", "covers")
		})
	}
	wg.Wait()

	if avatarErr != nil {
		h.HandleResponse(c, nil, avatarErr)
		return nil
	}
	if coverErr != nil {
		h.HandleResponse(c, nil, coverErr)
		return nil
	}

	user, err := h.userService.Register(c.Context(), input.FullName, input.UserName, input.Email, input.Password, avatarURL, coverURL)
	h.HandleCreatedResponse(c, user, err)
	return nil
}

// HandleLogin xử lý đăng nhập bằng email hoặc username
func (h *UserHandler) HandleLogin(c fiber.Ctx) error {
	var input userdto.LoginInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	user, pair, err := h.userService.Login(c.Context(), input.Identifier, input.Password)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	setAuthCookies(c, pair)
	h.HandleResponse(c, fiber.Map{
		"user":         user,
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	}, nil)
	return nil
}

// HandleLogout xử lý đăng xuất: xóa refresh token trong database và cookie phía client
func (h *UserHandler) HandleLogout(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	if err := h.userService.Logout(c.Context(), userID); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	clearAuthCookies(c)
	h.HandleResponse(c, nil, nil)
	return nil
}

// HandleRefreshToken xoay vòng cặp token. Refresh token đọc từ body hoặc cookie.
func (h *UserHandler) HandleRefreshToken(c fiber.Ctx) error {
	var input userdto.RefreshInput
	// Body rỗng hợp lệ khi client dùng cookie
	if len(c.Body()) > 0 {
		if err := h.ParseRequestBody(c, &input); err != nil {
			h.HandleResponse(c, nil, err)
			return nil
		}
	}
	incoming := input.RefreshToken
	if incoming == "" {
		incoming = c.Cookies("refreshToken")
	}

	pair, err := h.userService.RefreshSession(c.Context(), incoming)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	setAuthCookies(c, pair)
	h.HandleResponse(c, pair, nil)
	return nil
}

// ====================================
// HỒ SƠ VÀ MẬT KHẨU
// ====================================

// HandleGetProfile trả về hồ sơ của user hiện tại
func (h *UserHandler) HandleGetProfile(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	user, err := h.userService.GetProfile(c.Context(), userID)
	h.HandleResponse(c, user, err)
	return nil
}

// HandleChangePassword đổi mật khẩu sau khi xác minh mật khẩu cũ
func (h *UserHandler) HandleChangePassword(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input userdto.ChangePasswordInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	err = h.userService.ChangePassword(c.Context(), userID, input.OldPassword, input.NewPassword)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleUpdateProfile cập nhật một phần hồ sơ (fullname, email)
func (h *UserHandler) HandleUpdateProfile(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	var input userdto.UpdateProfileInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	user, err := h.userService.UpdateProfile(c.Context(), userID, input.FullName, input.Email)
	h.HandleResponse(c, user, err)
	return nil
}

// HandleUpdateAvatar thay ảnh đại diện (multipart, field "avatar")
func (h *UserHandler) HandleUpdateAvatar(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	avatarURL, err := basehdl.UploadFormFile(c, "avatar", "avatars")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	user, err := h.userService.UpdateAvatar(c.Context(), userID, avatarURL)
	h.HandleResponse(c, user, err)
	return nil
}

// HandleUpdateCoverImage thay ảnh bìa (multipart, field "coverImage")
func (h *UserHandler) HandleUpdateCoverImage(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	coverURL, err := basehdl.UploadFormFile(c, "coverImage", "covers")
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	user, err := h.userService.UpdateCoverImage(c.Context(), userID, coverURL)
	h.HandleResponse(c, user, err)
	return nil
}

// HandleRequestPasswordReset gửi OTP đặt lại mật khẩu qua email
func (h *UserHandler) HandleRequestPasswordReset(c fiber.Ctx) error {
	var input userdto.PasswordResetRequestInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	err := h.userService.RequestPasswordReset(c.Context(), input.Email)
	h.HandleResponse(c, nil, err)
	return nil
}

// HandleConfirmPasswordReset xác minh OTP, đặt mật khẩu mới và mở phiên mới
func (h *UserHandler) HandleConfirmPasswordReset(c fiber.Ctx) error {
	var input userdto.PasswordResetConfirmInput
	if err := h.ParseRequestBody(c, &input); err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	pair, err := h.userService.ConfirmPasswordReset(c.Context(), input.Email, input.Otp, input.NewPassword)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	setAuthCookies(c, pair)
	h.HandleResponse(c, pair, nil)
	return nil
}

// ====================================
// TRANG KÊNH VÀ LỊCH SỬ XEM
// ====================================

// HandleGetChannelProfile trả về trang kênh theo username.
// Endpoint công khai: viewer đăng nhập thì isSubscribed được tính, ẩn danh thì luôn false.
func (h *UserHandler) HandleGetChannelProfile(c fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		h.HandleResponse(c, nil, common.ErrRequiredField)
		return nil
	}

	var viewerID *primitive.ObjectID
	if id, err := h.CurrentUserID(c); err == nil {
		viewerID = &id
	}

	profile, err := h.userService.GetChannelProfile(c.Context(), username, viewerID)
	h.HandleResponse(c, profile, err)
	return nil
}

// HandleGetWatchHistory trả về danh sách video đã xem của user hiện tại
func (h *UserHandler) HandleGetWatchHistory(c fiber.Ctx) error {
	userID, err := h.CurrentUserID(c)
	if err != nil {
		h.HandleResponse(c, nil, err)
		return nil
	}

	history, err := h.userService.GetWatchHistory(c.Context(), userID)
	h.HandleResponse(c, history, err)
	return nil
}
