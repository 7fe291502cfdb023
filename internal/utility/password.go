package utility

import (
	"vidtube/internal/common"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword băm mật khẩu bằng bcrypt với cost mặc định
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", common.NewError(common.ErrCodeInternalServer, "Không thể băm mật khẩu", common.StatusInternalServerError, err)
	}
	return string(hashed), nil
}

// ComparePassword so sánh mật khẩu plain với hash đã lưu.
// Trả về ErrInvalidCredentials khi không khớp.
func ComparePassword(hashed string, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)); err != nil {
		return common.ErrInvalidCredentials
	}
	return nil
}
