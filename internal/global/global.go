// Package global chứa các biến toàn cục của ứng dụng:
// cấu hình server, phiên MongoDB, validator và registry collections.
package global

import (
	"vidtube/config"
	"vidtube/internal/mailer"
	"vidtube/internal/registry"
	"vidtube/internal/storage"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/mongo"
)

// CollectionName chứa tên các collection trong MongoDB
type CollectionName struct {
	Users         string // Tên collection cho người dùng
	Videos        string // Tên collection cho video
	Comments      string // Tên collection cho bình luận
	Likes         string // Tên collection cho lượt thích
	Playlists     string // Tên collection cho playlist
	Subscriptions string // Tên collection cho đăng ký kênh
	Tweets        string // Tên collection cho tweet
}

// Các biến toàn cục
var Validate *validator.Validate       // Validator dùng chung cho DTO
var MongoDB_Session *mongo.Client      // Phiên kết nối tới MongoDB
var ServerConfig *config.Configuration // Cấu hình của server
var MediaStore *storage.MediaStorage   // Client object storage cho media upload
var Mail *mailer.Mailer                // Mailer gửi OTP đặt lại mật khẩu
var ColNames = CollectionName{
	Users:         "users",
	Videos:        "videos",
	Comments:      "comments",
	Likes:         "likes",
	Playlists:     "playlists",
	Subscriptions: "subscriptions",
	Tweets:        "tweets",
}

// RegistryCollections chứa các *mongo.Collection singleton, đăng ký lúc khởi động
var RegistryCollections = registry.NewRegistry[*mongo.Collection]()
