package utility

import (
	"testing"
	"time"
)

func TestUnixMilli(t *testing.T) {
	at := time.UnixMilli(1700000000123)
	if got := UnixMilli(at); got != 1700000000123 {
		t.Errorf("UnixMilli trả về %d, muốn 1700000000123", got)
	}
}

func TestCurrentTimeInMilli(t *testing.T) {
	before := time.Now().UnixMilli()
	got := CurrentTimeInMilli()
	after := time.Now().UnixMilli()

	if got < before-1 || got > after+1 {
		t.Errorf("CurrentTimeInMilli = %d nằm ngoài khoảng [%d, %d]", got, before, after)
	}
}

func TestGoProtect(t *testing.T) {
	ran := false
	GoProtect(func() {
		ran = true
		panic("boom")
	})
	if !ran {
		t.Error("GoProtect phải chạy hàm được bọc")
	}
}
