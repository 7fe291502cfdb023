package registry

import (
	"errors"
	"sync"
	"testing"
)

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry[int]()

	isNew, err := r.Register("a", 1)
	if err != nil || !isNew {
		t.Fatalf("Register lần đầu phải trả về isNew=true, got isNew=%v err=%v", isNew, err)
	}

	isNew, err = r.Register("a", 2)
	if err != nil || isNew {
		t.Fatalf("Register trùng name phải ghi đè với isNew=false, got isNew=%v err=%v", isNew, err)
	}

	v, exists := r.Get("a")
	if !exists || v != 2 {
		t.Errorf("Get sau khi ghi đè phải trả về 2, got %d exists=%v", v, exists)
	}

	if _, exists := r.Get("missing"); exists {
		t.Error("Get key chưa đăng ký phải trả về exists=false")
	}
}

func TestRegistry_EmptyName(t *testing.T) {
	r := NewRegistry[string]()
	if _, err := r.Register("", "x"); err == nil {
		t.Error("Register với name rỗng phải lỗi")
	}
	if _, err := r.GetOrCreate("", func() (string, error) { return "x", nil }); err == nil {
		t.Error("GetOrCreate với name rỗng phải lỗi")
	}
}

func TestRegistry_GetOrCreate(t *testing.T) {
	r := NewRegistry[string]()
	calls := 0
	creator := func() (string, error) {
		calls++
		return "made", nil
	}

	v, err := r.GetOrCreate("k", creator)
	if err != nil || v != "made" {
		t.Fatalf("GetOrCreate phải tạo item, got %q err=%v", v, err)
	}
	// Lần hai trả về item cũ, không gọi creator
	v, err = r.GetOrCreate("k", creator)
	if err != nil || v != "made" || calls != 1 {
		t.Errorf("GetOrCreate lần hai phải dùng item cũ, calls=%d", calls)
	}

	_, err = r.GetOrCreate("fail", func() (string, error) { return "", errors.New("boom") })
	if err == nil {
		t.Error("GetOrCreate phải lan truyền lỗi từ creator")
	}
}

func TestRegistry_Clear(t *testing.T) {
	r := NewRegistry[int]()
	r.Register("a", 1)

	cleaned := false
	deleted, err := r.Clear("a", func(v int) error {
		cleaned = true
		return nil
	})
	if err != nil || !deleted || !cleaned {
		t.Errorf("Clear phải gọi cleanup rồi xóa, deleted=%v cleaned=%v err=%v", deleted, cleaned, err)
	}

	deleted, err = r.Clear("a", nil)
	if err != nil || deleted {
		t.Errorf("Clear item không tồn tại phải trả về false, got %v", deleted)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := NewRegistry[int]()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			r.Register("shared", n)
		}(i)
		go func() {
			defer wg.Done()
			r.Get("shared")
		}()
	}
	wg.Wait()

	if _, exists := r.Get("shared"); !exists {
		t.Error("item phải tồn tại sau các thao tác đồng thời")
	}
}
