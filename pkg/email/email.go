package email

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	FromName     string
	FromEmail    string
	AdminEmail   string
}

// EmailService handles email sending
type EmailService struct {
	config EmailConfig
}

// NewEmailService creates a new email service
func NewEmailService(config EmailConfig) *EmailService {
	return &EmailService{config: config}
}

// ContactNotification carries the fields of a contact form submission
// forwarded to the admin inbox.
type ContactNotification struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Message string
}

// SendContactNotification emails a contact form submission to the
// configured admin address.
func (s *EmailService) SendContactNotification(n ContactNotification) error {
	if n.Company == "" {
		n.Company = "Not Provided"
	}

	htmlContent, err := s.renderContactNotification(n)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	subject := "New Contact Form Submission"
	message := s.buildHTMLEmail(s.config.AdminEmail, subject, htmlContent)

	return s.sendEmail(s.config.AdminEmail, message)
}

// sendEmail sends an email using SMTP
func (s *EmailService) sendEmail(to string, message []byte) error {
	addr := fmt.Sprintf("%s:%d", s.config.SMTPHost, s.config.SMTPPort)

	// Gmail requires TLS authentication
	auth := smtp.PlainAuth("", s.config.SMTPUsername, s.config.SMTPPassword, s.config.SMTPHost)

	err := smtp.SendMail(addr, auth, s.config.FromEmail, []string{to}, message)
	if err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

// buildHTMLEmail builds an HTML email message
func (s *EmailService) buildHTMLEmail(to, subject, htmlBody string) []byte {
	headers := fmt.Sprintf(
		"From: %s <%s>\r\n"+
			"To: %s\r\n"+
			"Subject: %s\r\n"+
			"MIME-Version: 1.0\r\n"+
			"Content-Type: text/html; charset=\"UTF-8\"\r\n"+
			"\r\n",
		s.config.FromName,
		s.config.FromEmail,
		to,
		subject,
	)

	return []byte(headers + htmlBody)
}

// renderContactNotification renders the contact notification template
func (s *EmailService) renderContactNotification(n ContactNotification) (string, error) {
	tmpl, err := template.New("contact_notification").Parse(contactNotificationTemplate)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, n); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// contactNotificationTemplate is the HTML template for contact form notifications
const contactNotificationTemplate = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>New Contact Form Submission</title>
</head>
<body style="margin: 0; padding: 0; font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background-color: #f4f7fa;">
    <table role="presentation" style="width: 100%; border-collapse: collapse;">
        <tr>
            <td style="padding: 40px 0;">
                <table role="presentation" style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 6px rgba(0, 0, 0, 0.1);">
                    <tr>
                        <td style="background-color: #1a1a2e; padding: 30px; text-align: center;">
                            <h1 style="color: #ffffff; margin: 0; font-size: 24px; font-weight: 600;">New Contact Form Submission</h1>
                        </td>
                    </tr>
                    <tr>
                        <td style="padding: 30px;">
                            <table role="presentation" style="width: 100%; border-collapse: collapse; color: #4a5568; font-size: 15px; line-height: 1.8;">
                                <tr><td style="font-weight: 600; width: 120px;">Name</td><td>{{.Name}}</td></tr>
                                <tr><td style="font-weight: 600;">Company</td><td>{{.Company}}</td></tr>
                                <tr><td style="font-weight: 600;">Email</td><td>{{.Email}}</td></tr>
                                <tr><td style="font-weight: 600;">Phone</td><td>{{.Phone}}</td></tr>
                            </table>
                            <p style="color: #4a5568; font-size: 15px; line-height: 1.6; margin: 20px 0 0 0; white-space: pre-wrap;">{{.Message}}</p>
                        </td>
                    </tr>
                </table>
            </td>
        </tr>
    </table>
</body>
</html>
`
