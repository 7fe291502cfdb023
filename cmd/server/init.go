package main

import (
	"context"

	"github.com/sirupsen/logrus"

	"vidtube/config"
	commentmodels "vidtube/internal/api/comments/models"
	likemodels "vidtube/internal/api/likes/models"
	playlistmodels "vidtube/internal/api/playlists/models"
	submodels "vidtube/internal/api/subscriptions/models"
	tweetmodels "vidtube/internal/api/tweets/models"
	usermodels "vidtube/internal/api/users/models"
	videomodels "vidtube/internal/api/videos/models"
	"vidtube/internal/database"
	"vidtube/internal/global"
	"vidtube/internal/mailer"
	"vidtube/internal/storage"
)

// Hàm khởi tạo các biến toàn cục
func InitGlobal() {
	initValidator()        // Khởi tạo validator
	initConfig()           // Khởi tạo cấu hình server
	initDatabase_MongoDB() // Khởi tạo kết nối database
	initMediaStore()       // Khởi tạo object storage cho media
	initMailer()           // Khởi tạo mailer gửi OTP
}

// Hàm khởi tạo validator (dùng global.InitValidator để đăng ký custom validators: no_xss, strong_password, objectid)
func initValidator() {
	global.InitValidator()
	logrus.Info("Initialized validator") // Ghi log thông báo đã khởi tạo validator
}

// Hàm khởi tạo cấu hình server
func initConfig() {
	global.ServerConfig = config.NewConfig()
	if global.ServerConfig == nil {
		logrus.Fatalf("Failed to initialize config: config is nil") // Ghi log lỗi nếu khởi tạo cấu hình thất bại
	}
	logrus.Info("Initialized server config") // Ghi log thông báo đã khởi tạo cấu hình server
}

// Hàm khởi tạo kết nối database
func initDatabase_MongoDB() {
	var err error
	global.MongoDB_Session, err = database.GetInstance(global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to get database instance: %v", err) // Ghi log lỗi nếu kết nối database thất bại
	}
	logrus.Info("Connected to MongoDB") // Ghi log thông báo đã kết nối database thành công

	// Khởi tạo các db và collections nếu chưa có
	if err := database.EnsureDatabaseAndCollections(global.MongoDB_Session); err != nil {
		logrus.Fatalf("Failed to ensure database and collections: %v", err)
	}
	logrus.Info("Ensured database and collections") // Ghi log thông báo đã đảm bảo database và các collection

	// Khởi tạo các index cho các collection
	dbName := global.ServerConfig.MongoDB_Name
	db := global.MongoDB_Session.Database(dbName)
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Users), usermodels.User{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Videos), videomodels.Video{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Comments), commentmodels.Comment{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Likes), likemodels.Like{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Playlists), playlistmodels.Playlist{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Subscriptions), submodels.Subscription{})
	database.CreateIndexes(context.TODO(), db.Collection(global.ColNames.Tweets), tweetmodels.Tweet{})
}

// initMediaStore khởi tạo client object storage (S3-compatible) cho upload media
func initMediaStore() {
	store, err := storage.NewMediaStorage(context.TODO(), global.ServerConfig)
	if err != nil {
		logrus.Fatalf("Failed to initialize media storage: %v", err)
	}
	global.MediaStore = store
	logrus.Info("Initialized media storage")
}

// initMailer khởi tạo mailer SMTP gửi OTP đặt lại mật khẩu
func initMailer() {
	global.Mail = mailer.NewMailer(global.ServerConfig)
	logrus.Info("Initialized mailer")
}
