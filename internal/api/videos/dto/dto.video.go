// Package videodto chứa các struct đầu vào của domain videos.
package videodto

// PublishVideoInput đầu vào đăng video (các field text của multipart form).
// Duration do client gửi kèm, đơn vị giây.
type PublishVideoInput struct {
	Title       string  `json:"title" form:"title" validate:"required,min=1,max=200,no_xss"`
	Description string  `json:"description" form:"description" validate:"omitempty,max=5000,no_xss"`
	Duration    float64 `json:"duration" form:"duration" validate:"omitempty,gte=0"`
}

// UpdateVideoInput đầu vào cập nhật video. Field rỗng được giữ nguyên.
type UpdateVideoInput struct {
	Title       string `json:"title" validate:"omitempty,min=1,max=200,no_xss"`
	Description string `json:"description" validate:"omitempty,max=5000,no_xss"`
}

// ListVideosQuery là bộ tham số truy vấn danh sách video.
// SortType nhận "asc" hoặc "desc"; Query khớp title không phân biệt hoa thường.
type ListVideosQuery struct {
	Page     int64  `json:"page" validate:"omitempty,gte=1"`
	Limit    int64  `json:"limit" validate:"omitempty,gte=1,lte=100"`
	SortBy   string `json:"sortBy" validate:"omitempty,oneof=createdAt views duration title"`
	SortType string `json:"sortType" validate:"omitempty,oneof=asc desc"`
	Query    string `json:"query" validate:"omitempty,max=200"`
	OwnerID  string `json:"ownerId" validate:"omitempty,objectid"`
}
