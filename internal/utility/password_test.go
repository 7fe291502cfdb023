package utility

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hashed, err := HashPassword("S3cret!pass")
	if err != nil {
		t.Fatalf("HashPassword lỗi: %v", err)
	}
	if hashed == "S3cret!pass" {
		t.Fatal("hash không được trùng plaintext")
	}

	if err := ComparePassword(hashed, "S3cret!pass"); err != nil {
		t.Errorf("ComparePassword phải khớp với mật khẩu đúng: %v", err)
	}
	if err := ComparePassword(hashed, "sai-mat-khau"); err == nil {
		t.Error("ComparePassword phải từ chối mật khẩu sai")
	}
}

// Cùng một mật khẩu phải cho hash khác nhau mỗi lần (salt ngẫu nhiên)
func TestHashPassword_Salted(t *testing.T) {
	h1, err := HashPassword("S3cret!pass")
	if err != nil {
		t.Fatal(err)
	}
	h2, err := HashPassword("S3cret!pass")
	if err != nil {
		t.Fatal(err)
	}
	if h1 == h2 {
		t.Error("hai lần hash cùng mật khẩu không được giống nhau")
	}
}
