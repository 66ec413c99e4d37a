package utils

import (
	"fmt"
	"log"

	"coursecraft/config"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendWelcomeEmail sends a greeting to a freshly registered account. It is a
// best-effort side call: failures are logged and never surfaced to the
// request that triggered it. A missing API key disables sending entirely.
func SendWelcomeEmail(cfg *config.Config, toEmail, username string) {
	if cfg.SendGridKey == "" {
		return
	}

	from := mail.NewEmail("CourseCraft", cfg.EmailSender)
	to := mail.NewEmail(username, toEmail)
	subject := "Welcome to CourseCraft"

	plainText := fmt.Sprintf("Hi %s, your account is ready. Log in and create your first course.", username)
	htmlBody := fmt.Sprintf(`
	<div style="font-family: Helvetica, Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2>Welcome, %s!</h2>
		<p>Your account is ready. Log in and create your first course.</p>
	</div>`, username)

	message := mail.NewSingleEmail(from, subject, to, plainText, htmlBody)
	client := sendgrid.NewSendClient(cfg.SendGridKey)

	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending welcome email to %s: %v", toEmail, err)
		return
	}
	if resp.StatusCode >= 400 {
		log.Printf("Welcome email to %s rejected: %d %s", toEmail, resp.StatusCode, resp.Body)
	}
}
