package services

import (
	"fmt"
	"net/smtp"
	"strings"

	"workshophub/config"
)

type EmailService struct {
	host     string
	port     string
	username string
	password string
}

func NewEmailService() *EmailService {
	return &EmailService{
		host:     config.MailHost,
		port:     config.MailPort,
		username: config.MailUsername,
		password: config.MailPassword,
	}
}

// Enabled reports whether an SMTP host is configured
func (s *EmailService) Enabled() bool {
	return s.host != ""
}

// SendAnnouncementEmail mails an announcement to workshop participants
func (s *EmailService) SendAnnouncementEmail(to []string, workshopTitle string, message string) error {
	if len(to) == 0 {
		return nil
	}

	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	body := strings.TrimSpace(fmt.Sprintf(`
To: %s
MIME-version: 1.0
Content-Type: text/plain; charset="UTF-8"
Subject: [%s] Announcement

%s
`, strings.Join(to, ", "), workshopTitle, message))

	err := smtp.SendMail(
		fmt.Sprintf("%s:%s", s.host, s.port),
		auth,
		s.username,
		to,
		[]byte(body),
	)
	if err != nil {
		return fmt.Errorf("failed to send announcement email: %w", err)
	}

	return nil
}
