package logger

// LogConfig chứa cấu hình cho hệ thống logging
type LogConfig struct {
	Level    string // Log level: debug, info, warn, error
	Format   string // Định dạng: json hoặc text
	Output   string // Đích ghi log: file, stdout, both
	LogPath  string // Thư mục chứa file log (tương đối so với root project)
	MaxSize  int    // Kích thước tối đa mỗi file log (MB)
	MaxBackups int  // Số file cũ giữ lại
	MaxAge   int    // Số ngày giữ file log
	Compress bool   // Nén file log cũ

	AppFile   string // Tên file log chính
	AuditFile string // Tên file log audit
	ErrorFile string // Tên file log lỗi
}

// DefaultConfig trả về cấu hình logging mặc định
func DefaultConfig() *LogConfig {
	return &LogConfig{
		Level:      "info",
		Format:     "json",
		Output:     "both",
		LogPath:    "logs",
		MaxSize:    100,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
		AppFile:    "app.log",
		AuditFile:  "audit.log",
		ErrorFile:  "error.log",
	}
}
