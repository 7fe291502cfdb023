// Package mailer gửi email giao dịch qua SMTP (gomail),
// hiện dùng cho mã OTP đặt lại mật khẩu.
package mailer

import (
	"fmt"

	"vidtube/config"
	"vidtube/internal/common"

	"gopkg.in/gomail.v2"
)

// Mailer gửi email qua một SMTP relay cấu hình sẵn
type Mailer struct {
	host     string
	port     int
	username string
	password string
	from     string
}

// NewMailer tạo mailer từ cấu hình SMTP của server
func NewMailer(cfg *config.Configuration) *Mailer {
	return &Mailer{
		host:     cfg.SMTP_Host,
		port:     cfg.SMTP_Port,
		username: cfg.SMTP_Username,
		password: cfg.SMTP_Password,
		from:     cfg.SMTP_From,
	}
}

// SendPasswordResetOTP gửi mã OTP đặt lại mật khẩu tới địa chỉ email của user.
// OTP có hiệu lực 15 phút, nội dung email nêu rõ thời hạn này.
func (m *Mailer) SendPasswordResetOTP(recipient string, otp string) error {
	htmlContent := fmt.Sprintf(`
		<div style="font-family:Arial,sans-serif;max-width:480px;margin:0 auto;">
			<h2>Đặt lại mật khẩu</h2>
			<p>Mã OTP của bạn là:</p>
			<p style="font-size:28px;font-weight:bold;letter-spacing:4px;">%s</p>
			<p>Mã có hiệu lực trong 15 phút. Nếu bạn không yêu cầu đặt lại mật khẩu, hãy bỏ qua email này.</p>
		</div>`, otp)

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", recipient)
	msg.SetHeader("Subject", "Mã OTP đặt lại mật khẩu")
	msg.SetBody("text/html", htmlContent)

	dialer := gomail.NewDialer(m.host, m.port, m.username, m.password)
	if err := dialer.DialAndSend(msg); err != nil {
		return common.NewError(common.ErrCodeBusinessMail, common.MsgInternalError, common.StatusInternalServerError, err)
	}
	return nil
}
