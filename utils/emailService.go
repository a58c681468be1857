package utils

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
	"time"

	"github.com/AliEmadEldin/SpaceCourseSystem/config"
)

// SendEmail delivers an HTML mail through the configured SMTP account. It is
// a no-op when no sender is configured, so local setups work without SMTP.
func SendEmail(to []string, subject string, htmlBody string) error {
	from := config.AppConfig.EmailSender
	if from == "" {
		return nil
	}
	password := config.AppConfig.EmailPassword

	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: SpaceCourse <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += getEmailTemplate(subject, htmlBody)

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		log.Printf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

func getEmailTemplate(title string, bodyContent string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html>
	<head>
		<style>
			body { font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #0B0D17; margin: 0; padding: 0; }
			.container { max-width: 600px; margin: 40px auto; background: #FFFFFF; border-radius: 8px; overflow: hidden; }
			.header { background-color: #1B1D2A; padding: 30px; text-align: center; }
			.header h1 { color: #FFFFFF; margin: 0; font-size: 24px; letter-spacing: 1px; }
			.content { padding: 40px 30px; color: #1B1D2A; line-height: 1.6; }
			.footer { background-color: #F6F6F6; padding: 20px; text-align: center; font-size: 12px; color: #666666; }
		</style>
	</head>
	<body>
		<div class="container">
			<div class="header">
				<h1>SPACECOURSE</h1>
			</div>
			<div class="content">
				<h2>%s</h2>
				%s
			</div>
			<div class="footer">
				&copy; 2026 SpaceCourse. All rights reserved.
			</div>
		</div>
	</body>
	</html>
	`, title, bodyContent)
}

// SendWelcomeEmail greets a freshly registered user.
func SendWelcomeEmail(email string) {
	body := `<p>Welcome aboard! Your account is ready.</p>
	<p>Browse the catalog and enroll in your first course to get started.</p>`
	SendEmail([]string{email}, "Welcome to SpaceCourse", body)
}

// SendEnrollmentEmail confirms an enrollment.
func SendEnrollmentEmail(email, courseTitle string) {
	body := fmt.Sprintf(`<p>You are now enrolled in <b>%s</b>.</p>
	<p>Your course content and live sessions are available in your dashboard.</p>`, courseTitle)
	SendEmail([]string{email}, "Enrollment confirmed", body)
}

// SendSessionReminderEmail notifies an enrolled student of an imminent session.
func SendSessionReminderEmail(email, sessionTitle string, startTime time.Time, meetingURL string) {
	body := fmt.Sprintf(`<p>Your live session <b>%s</b> starts at %s.</p>
	<p>Join here: <a href="%s">%s</a></p>`,
		sessionTitle, startTime.Format(time.RFC1123), meetingURL, meetingURL)
	SendEmail([]string{email}, "Live session starting soon", body)
}
