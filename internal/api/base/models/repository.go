// Package basemodels chứa các kiểu dùng chung cho layer base (kết quả phân trang).
package basemodels

// PaginateResult đại diện cho kết quả phân trang
type PaginateResult[T any] struct {
	// Trang hiện tại
	Page int64 `json:"page" bson:"page"`
	// Số lượng mục trên mỗi trang
	Limit int64 `json:"limit" bson:"limit"`
	// Số lượng mục trong trang hiện tại
	ItemCount int64 `json:"itemCount" bson:"itemCount"`
	// Danh sách các mục
	Items []T `json:"items" bson:"items"`
	// Tổng số mục
	Total int64 `json:"total" bson:"total"`
	// Tổng số trang
	TotalPage int64 `json:"totalPage" bson:"totalPage"`
	// Có trang kế tiếp không
	HasNextPage bool `json:"hasNextPage" bson:"hasNextPage"`
	// Có trang trước không
	HasPrevPage bool `json:"hasPrevPage" bson:"hasPrevPage"`
}

// NewPaginateResult dựng kết quả phân trang từ items và tổng số bản ghi.
// totalPage = ceil(total/limit); total = 0 cho totalPage = 0.
func NewPaginateResult[T any](items []T, page, limit, total int64) *PaginateResult[T] {
	if items == nil {
		items = []T{}
	}

	var totalPage int64
	if total > 0 && limit > 0 {
		totalPage = (total + limit - 1) / limit
	}

	return &PaginateResult[T]{
		Page:        page,
		Limit:       limit,
		ItemCount:   int64(len(items)),
		Items:       items,
		Total:       total,
		TotalPage:   totalPage,
		HasNextPage: page < totalPage,
		HasPrevPage: page > 1 && total > 0,
	}
}
