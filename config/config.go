package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
)

// Configuration chứa thông tin tĩnh cần thiết để chạy ứng dụng:
// địa chỉ server, kết nối MongoDB, bí mật JWT, SMTP và object storage.
type Configuration struct {
	Address       string `env:"ADDRESS" envDefault:":8080"`     // Địa chỉ server
	MongoDB_URI   string `env:"MONGODB_CONNECTION_URI,required"` // URI kết nối MongoDB
	MongoDB_Name  string `env:"MONGODB_DBNAME,required"`         // Tên cơ sở dữ liệu

	// JWT: access và refresh dùng secret riêng biệt
	JwtAccessSecret   string `env:"JWT_ACCESS_SECRET,required"`           // Bí mật ký access token
	JwtRefreshSecret  string `env:"JWT_REFRESH_SECRET,required"`          // Bí mật ký refresh token
	JwtAccessExpiry   int    `env:"JWT_ACCESS_EXPIRY" envDefault:"900"`   // TTL access token (giây)
	JwtRefreshExpiry  int    `env:"JWT_REFRESH_EXPIRY" envDefault:"864000"` // TTL refresh token (giây)

	CORS_Origins          string `env:"CORS_ORIGINS" envDefault:"*"`               // Các origins được phép (phân cách bởi dấu phẩy, * = tất cả)
	CORS_AllowCredentials bool   `env:"CORS_ALLOW_CREDENTIALS" envDefault:"false"` // Cho phép gửi credentials

	RateLimit_Max     int  `env:"RATE_LIMIT_MAX" envDefault:"100"`      // Số request tối đa trong window
	RateLimit_Window  int  `env:"RATE_LIMIT_WINDOW" envDefault:"60"`    // Thời gian window (giây)
	RateLimit_Enabled bool `env:"RATE_LIMIT_ENABLED" envDefault:"true"` // Bật/tắt rate limiting

	// Object storage (S3-compatible) cho media: video, thumbnail, avatar, cover
	S3_Endpoint      string `env:"S3_ENDPOINT"`               // Endpoint S3-compatible (rỗng = AWS mặc định)
	S3_Region        string `env:"S3_REGION" envDefault:"us-east-1"`
	S3_Bucket        string `env:"S3_BUCKET,required"`        // Bucket chứa media
	S3_PublicBaseURL string `env:"S3_PUBLIC_BASE_URL"`        // Base URL public của bucket

	// SMTP cho OTP đặt lại mật khẩu
	SMTP_Host     string `env:"SMTP_HOST"`
	SMTP_Port     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTP_Username string `env:"SMTP_USERNAME"`
	SMTP_Password string `env:"SMTP_PASSWORD"`
	SMTP_From     string `env:"SMTP_FROM"`

	// Cookie cho token pair
	CookieSecure bool `env:"COOKIE_SECURE" envDefault:"true"` // Secure flag trên cookie accessToken/refreshToken

	// TLS/HTTPS Configuration
	EnableTLS   bool   `env:"ENABLE_TLS" envDefault:"false"` // Bật HTTPS
	TLSCertFile string `env:"TLS_CERT_FILE"`                 // Đường dẫn file certificate (.crt hoặc .pem)
	TLSKeyFile  string `env:"TLS_KEY_FILE"`                  // Đường dẫn file private key (.key)
}

// getEnvPath trả về đường dẫn đến file env dựa trên môi trường (GO_ENV)
func getEnvPath() string {
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	currentDir, err := os.Getwd()
	if err != nil {
		// fmt.Printf vì logger có thể chưa được init ở đây
		fmt.Printf("Không thể lấy được thư mục hiện tại: %v\n", err)
		return ""
	}

	// Đi lên từ working directory tới khi gặp thư mục config/env
	for {
		envDir := filepath.Join(currentDir, "config", "env")
		if _, err := os.Stat(envDir); err == nil {
			return filepath.Join(envDir, fmt.Sprintf("%s.env", env))
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			return ""
		}
		currentDir = parentDir
	}
}

// NewConfig đọc cấu hình từ file env theo GO_ENV rồi parse vào Configuration
func NewConfig() *Configuration {
	envPath := getEnvPath()
	if envPath == "" {
		fmt.Printf("Không tìm thấy thư mục config/env\n")
		return nil
	}

	if err := godotenv.Load(envPath); err != nil {
		fmt.Printf("Không thể load file env tại %s: %v\n", envPath, err)
		return nil
	}

	cfg := Configuration{}
	if err := env.Parse(&cfg); err != nil {
		fmt.Printf("Lỗi khi parse config: %+v\n", err)
		return nil
	}

	return &cfg
}
