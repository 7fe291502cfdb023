// Package utility chứa các helper dùng chung: chuyển đổi ObjectID,
// bson map, timestamp mili giây và hash mật khẩu.
package utility

import (
	"fmt"
	"time"
)

// GoProtect bọc một hàm để bắt panic, tránh làm dừng chương trình.
func GoProtect(f func()) {
	defer func() {
		if err := recover(); err != nil {
			fmt.Printf("Đã bắt lỗi panic: %v\n", err)
		}
	}()

	f()
}

// UnixMilli lấy mili giây của thời gian cho trước
func UnixMilli(t time.Time) int64 {
	return t.Round(time.Millisecond).UnixNano() / (int64(time.Millisecond) / int64(time.Nanosecond))
}

// CurrentTimeInMilli lấy timestamp hiện tại tính bằng mili giây.
// Dùng cho các trường createdAt/updatedAt trong MongoDB.
func CurrentTimeInMilli() int64 {
	return UnixMilli(time.Now())
}
