// Package commentdto chứa các struct đầu vào của domain comments.
package commentdto

// AddCommentInput đầu vào thêm bình luận.
type AddCommentInput struct {
	Content string `json:"content" validate:"required,min=1,max=2000,no_xss"`
}

// UpdateCommentInput đầu vào sửa bình luận.
type UpdateCommentInput struct {
	Content string `json:"content" validate:"required,min=1,max=2000,no_xss"`
}
