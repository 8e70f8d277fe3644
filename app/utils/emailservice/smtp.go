package emailservice

import (
	"fmt"
	"net/smtp"
	"strings"

	"edukasi.ai/edu-api-gateway/config/environment_variables"
)

// SendEmail sends a single HTML email through the configured SMTP relay.
func SendEmail(to string, subject string, htmlBody string) error {
	envs := environment_variables.EnvironmentVariables
	auth := smtp.PlainAuth(
		"", envs.SMTP_USERNAME, envs.SMTP_PASSWORD, envs.SMTP_HOST,
	)

	var msg strings.Builder
	msg.WriteString(fmt.Sprintf("From: %s\r\n", envs.SMTP_USERNAME))
	msg.WriteString(fmt.Sprintf("To: %s\r\n", to))
	msg.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(htmlBody)

	addr := fmt.Sprintf("%s:%s", envs.SMTP_HOST, envs.SMTP_PORT)
	return smtp.SendMail(addr, auth, envs.SMTP_USERNAME, []string{to}, []byte(msg.String()))
}

// SMTPMailer sends the transactional emails of the platform.
type SMTPMailer struct{}

func NewSMTPMailer() *SMTPMailer {
	return &SMTPMailer{}
}

func (m *SMTPMailer) SendOTPEmail(address string, code string) error {
	expiry := environment_variables.EnvironmentVariables.OTP_EXPIRY_MINUTES
	body := fmt.Sprintf(`
	<h2>Verifikasi OTP</h2>
	<p>Kode OTP Anda adalah: <strong>%s</strong></p>
	<p>Kode ini berlaku selama %d menit.</p>
	<p>Jangan berikan kode ini kepada siapapun.</p>
	<hr>
	<p><small>Email ini dikirim secara otomatis, mohon tidak membalas.</small></p>
	`, code, expiry)
	return SendEmail(address, "OTP Verification - AI Education Platform", body)
}

func (m *SMTPMailer) SendReminderEmail(address string, reminderTime string) error {
	body := fmt.Sprintf(`
	<h2>Pengingat Belajar</h2>
	<p>Saatnya belajar! Pengingat harian Anda pukul <strong>%s</strong>.</p>
	<hr>
	<p><small>Email ini dikirim secara otomatis, mohon tidak membalas.</small></p>
	`, reminderTime)
	return SendEmail(address, "Pengingat Belajar - AI Education Platform", body)
}
