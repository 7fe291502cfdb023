package basemodels

import "testing"

func TestNewPaginateResult_Math(t *testing.T) {
	cases := []struct {
		name      string
		items     int
		page      int64
		limit     int64
		total     int64
		totalPage int64
		hasNext   bool
		hasPrev   bool
	}{
		{"trang đầu còn trang sau", 10, 1, 10, 25, 3, true, false},
		{"trang giữa", 10, 2, 10, 25, 3, true, true},
		{"trang cuối", 5, 3, 10, 25, 3, false, true},
		{"total chia hết cho limit", 10, 2, 10, 20, 2, false, true},
		{"không có dữ liệu", 0, 1, 10, 0, 0, false, false},
		{"một trang duy nhất", 3, 1, 10, 3, 1, false, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			items := make([]int, tc.items)
			result := NewPaginateResult(items, tc.page, tc.limit, tc.total)

			if result.TotalPage != tc.totalPage {
				t.Errorf("TotalPage = %d, muốn %d", result.TotalPage, tc.totalPage)
			}
			if result.HasNextPage != tc.hasNext {
				t.Errorf("HasNextPage = %v, muốn %v", result.HasNextPage, tc.hasNext)
			}
			if result.HasPrevPage != tc.hasPrev {
				t.Errorf("HasPrevPage = %v, muốn %v", result.HasPrevPage, tc.hasPrev)
			}
			if result.ItemCount != int64(tc.items) {
				t.Errorf("ItemCount = %d, muốn %d", result.ItemCount, tc.items)
			}
		})
	}
}

// Items nil phải được chuẩn hóa thành slice rỗng để JSON trả về [] thay vì null
func TestNewPaginateResult_NilItems(t *testing.T) {
	result := NewPaginateResult[int](nil, 1, 10, 0)
	if result.Items == nil {
		t.Fatal("Items phải là slice rỗng, không phải nil")
	}
	if len(result.Items) != 0 {
		t.Errorf("Items phải rỗng, có %d phần tử", len(result.Items))
	}
}
