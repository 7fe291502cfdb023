// Package playlistdto chứa các struct đầu vào của domain playlists.
package playlistdto

// CreatePlaylistInput đầu vào tạo playlist.
type CreatePlaylistInput struct {
	Name        string `json:"name" validate:"required,min=1,max=100,no_xss"`
	Description string `json:"description" validate:"omitempty,max=1000,no_xss"`
}

// UpdatePlaylistInput đầu vào cập nhật playlist. Field rỗng được giữ nguyên.
type UpdatePlaylistInput struct {
	Name        string `json:"name" validate:"omitempty,min=1,max=100,no_xss"`
	Description string `json:"description" validate:"omitempty,max=1000,no_xss"`
}
