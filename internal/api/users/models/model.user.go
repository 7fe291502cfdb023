// Package usermodels chứa model người dùng và các read model aggregation liên quan.
package usermodels

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User là model người dùng trong collection users.
// Các field nhạy cảm (password, refreshToken, otp) không bao giờ được serialize ra JSON.
type User struct {
	ID         primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	FullName   string             `json:"fullname" bson:"fullname"`
	UserName   string             `json:"username" bson:"username" index:"unique"` // Luôn lowercase
	Email      string             `json:"email" bson:"email" index:"unique"`
	Password   string             `json:"-" bson:"password"`
	Avatar     string             `json:"avatar" bson:"avatar"`         // URL ảnh đại diện trên object storage
	CoverImage string             `json:"coverImage" bson:"coverImage"` // URL ảnh bìa

	// RefreshToken là token của phiên đăng nhập hiện tại (một phiên duy nhất).
	// Ghi đè khi login/refresh, $unset khi logout.
	RefreshToken string `json:"-" bson:"refreshToken,omitempty"`

	// OTP đặt lại mật khẩu, hiệu lực 15 phút kể từ OtpExpires
	Otp        string `json:"-" bson:"otp,omitempty"`
	OtpExpires int64  `json:"-" bson:"otpExpires,omitempty"` // Unix mili giây

	// WatchHistory chứa id video đã xem, video mới xem nhất đứng đầu
	WatchHistory []primitive.ObjectID `json:"watchHistory" bson:"watchHistory,omitempty"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}

// PublicProfile là hình chiếu công khai của User (không có field nhạy cảm)
type PublicProfile struct {
	ID         primitive.ObjectID `json:"id" bson:"_id"`
	FullName   string             `json:"fullname" bson:"fullname"`
	UserName   string             `json:"username" bson:"username"`
	Avatar     string             `json:"avatar" bson:"avatar"`
	CoverImage string             `json:"coverImage" bson:"coverImage"`
}

// ChannelProfile là read model của trang kênh, dựng từ aggregation pipeline
// trên users + subscriptions.
type ChannelProfile struct {
	ID              primitive.ObjectID `json:"id" bson:"_id"`
	FullName        string             `json:"fullname" bson:"fullname"`
	UserName        string             `json:"username" bson:"username"`
	Email           string             `json:"email" bson:"email"`
	Avatar          string             `json:"avatar" bson:"avatar"`
	CoverImage      string             `json:"coverImage" bson:"coverImage"`
	SubscriberCount int64              `json:"subscriberCount" bson:"subscriberCount"` // Số người đăng ký kênh này
	SubscribedCount int64              `json:"subscribedCount" bson:"subscribedCount"` // Số kênh mà kênh này đăng ký
	IsSubscribed    bool               `json:"isSubscribed" bson:"isSubscribed"`       // Viewer hiện tại có đăng ký kênh không
}

// WatchHistoryEntry là một video trong lịch sử xem, owner đã được populate
type WatchHistoryEntry struct {
	ID          primitive.ObjectID `json:"id" bson:"_id"`
	Title       string             `json:"title" bson:"title"`
	Description string             `json:"description" bson:"description"`
	VideoFile   string             `json:"videoFile" bson:"videoFile"`
	Thumbnail   string             `json:"thumbnail" bson:"thumbnail"`
	Duration    float64            `json:"duration" bson:"duration"`
	Views       int64              `json:"views" bson:"views"`
	Owner       OwnerSummary       `json:"owner" bson:"owner"`
}

// OwnerSummary là thông tin rút gọn của chủ video dùng trong các read model
type OwnerSummary struct {
	ID       primitive.ObjectID `json:"id" bson:"_id"`
	FullName string             `json:"fullname" bson:"fullname"`
	UserName string             `json:"username" bson:"username"`
	Avatar   string             `json:"avatar" bson:"avatar"`
}
