package auth

import (
	"fmt"
	"net/smtp"

	"campus-portal/config"
)

func SendVerificationEmail(to string, token string) error {
	link := fmt.Sprintf("%s/verify?token=%s", config.APP_URL, token)
	body := fmt.Sprintf("Click the following link to verify your student portal account:\n\n%s", link)
	return sendMail(to, "Verify Your Account", body)
}

func SendPasswordResetEmail(to string, resetLink string) error {
	body := fmt.Sprintf("A password reset was requested for your account. Follow the link to set a new password:\n\n%s\n\nIf this wasn't you, ignore this email.", resetLink)
	return sendMail(to, "Reset Your Password", body)
}

func sendMail(to string, subject string, body string) error {
	from := config.SMTP_FROM
	password := config.SMTP_PASSWORD
	host := config.SMTP_HOST
	port := config.SMTP_PORT

	auth := smtp.PlainAuth("", from, password, host)

	message := []byte("Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"To: " + to + "\r\n" +
		"Content-Type: text/plain; charset=UTF-8\r\n" +
		"\r\n" +
		body + "\r\n")

	err := smtp.SendMail(host+":"+port, auth, from, []string{to}, message)
	if err != nil {
		fmt.Println("❌ SMTP error:", err)
	}
	return err
}
