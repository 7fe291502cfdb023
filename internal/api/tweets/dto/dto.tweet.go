// Package tweetdto chứa các struct đầu vào của domain tweets.
package tweetdto

// CreateTweetInput đầu vào tạo tweet.
type CreateTweetInput struct {
	Content string `json:"content" validate:"required,min=1,max=500,no_xss"`
}

// UpdateTweetInput đầu vào sửa tweet.
type UpdateTweetInput struct {
	Content string `json:"content" validate:"required,min=1,max=500,no_xss"`
}
