// Package userdto chứa các struct đầu vào của domain users, validate bằng struct tag.
package userdto

// RegisterInput đầu vào đăng ký tài khoản (các field text của multipart form).
type RegisterInput struct {
	FullName string `json:"fullname" form:"fullname" validate:"required,min=1,max=100,no_xss"`
	UserName string `json:"username" form:"username" validate:"required,min=3,max=30,alphanum"`
	Email    string `json:"email" form:"email" validate:"required,email"`
	Password string `json:"password" form:"password" validate:"required,strong_password"`
}

// LoginInput đầu vào đăng nhập. Identifier nhận email hoặc username.
type LoginInput struct {
	Identifier string `json:"identifier" validate:"required,min=1"`
	Password   string `json:"password" validate:"required,min=1"`
}

// RefreshInput đầu vào xoay vòng token. RefreshToken trong body là tùy chọn,
// nếu vắng thì đọc từ cookie.
type RefreshInput struct {
	RefreshToken string `json:"refreshToken"`
}

// ChangePasswordInput đầu vào đổi mật khẩu.
type ChangePasswordInput struct {
	OldPassword string `json:"oldPassword" validate:"required,min=1"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}

// UpdateProfileInput đầu vào cập nhật hồ sơ. Field rỗng được giữ nguyên.
type UpdateProfileInput struct {
	FullName string `json:"fullname" validate:"omitempty,min=1,max=100,no_xss"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// PasswordResetRequestInput đầu vào yêu cầu gửi OTP đặt lại mật khẩu.
type PasswordResetRequestInput struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirmInput đầu vào xác nhận OTP và đặt mật khẩu mới.
type PasswordResetConfirmInput struct {
	Email       string `json:"email" validate:"required,email"`
	Otp         string `json:"otp" validate:"required,min=1"`
	NewPassword string `json:"newPassword" validate:"required,strong_password"`
}
