package global

import "testing"

func TestValidateNoXSS(t *testing.T) {
	InitValidator()

	type input struct {
		Content string `validate:"no_xss"`
	}

	cases := []struct {
		name    string
		content string
		valid   bool
	}{
		{"text thường", "Video hay quá", true},
		{"text có html vô hại", "a < b và b > c", true},
		{"script tag", "<script>alert(1)</script>", false},
		{"script tag viết hoa", "<SCRIPT>alert(1)</SCRIPT>", false},
		{"javascript protocol", "javascript:alert(1)", false},
		{"event handler", "<img src=x onerror=alert(1)>", false},
		{"iframe", "<iframe src='evil'></iframe>", false},
		{"chuỗi rỗng", "", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate.Struct(input{Content: tc.content})
			if tc.valid && err != nil {
				t.Errorf("no_xss từ chối giá trị hợp lệ %q: %v", tc.content, err)
			}
			if !tc.valid && err == nil {
				t.Errorf("no_xss chấp nhận giá trị nguy hiểm %q", tc.content)
			}
		})
	}
}

func TestValidateStrongPassword(t *testing.T) {
	InitValidator()

	type input struct {
		Password string `validate:"strong_password"`
	}

	cases := []struct {
		name     string
		password string
		valid    bool
	}{
		{"đủ 3 nhóm hoa thường số", "Password1", true},
		{"đủ 4 nhóm", "Password1!", true},
		{"thường số đặc biệt", "password1!", true},
		{"quá ngắn", "Pa1!", false},
		{"chỉ chữ thường", "passwordpassword", false},
		{"chỉ hoa và thường", "PasswordPassword", false},
		{"chỉ số", "1234567890", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := Validate.Struct(input{Password: tc.password})
			if tc.valid && err != nil {
				t.Errorf("strong_password từ chối mật khẩu hợp lệ %q: %v", tc.password, err)
			}
			if !tc.valid && err == nil {
				t.Errorf("strong_password chấp nhận mật khẩu yếu %q", tc.password)
			}
		})
	}
}

func TestValidateObjectID(t *testing.T) {
	InitValidator()

	type input struct {
		ID string `validate:"objectid"`
	}

	if err := Validate.Struct(input{ID: "507f1f77bcf86cd799439011"}); err != nil {
		t.Errorf("objectid từ chối hex 24 ký tự hợp lệ: %v", err)
	}
	// Rỗng hợp lệ để dùng chung với omitempty
	if err := Validate.Struct(input{ID: ""}); err != nil {
		t.Errorf("objectid phải chấp nhận chuỗi rỗng: %v", err)
	}
	if err := Validate.Struct(input{ID: "not-an-objectid"}); err == nil {
		t.Error("objectid chấp nhận chuỗi không phải hex")
	}
	if err := Validate.Struct(input{ID: "507f1f77bcf86cd79943901"}); err == nil {
		t.Error("objectid chấp nhận hex 23 ký tự")
	}
}
