package email

import (
	"context"
	"fmt"
	"net/smtp"

	"portfolio-backend/pkg/logger"
)

type ContactNotificationData struct {
	OwnerEmail   string
	FullName     string
	EmailAddress string
	MobileNumber string
	City         string
}

type WelcomeEmailData struct {
	EmailAddress string
}

type ContactSummaryData struct {
	OwnerEmail       string
	TotalSubmissions int
	TodaySubmissions int
}

type EmailService interface {
	SendContactNotification(ctx context.Context, data ContactNotificationData) error
	SendWelcomeEmail(ctx context.Context, data WelcomeEmailData) error
	SendContactSummary(ctx context.Context, data ContactSummaryData) error
}

type smtpEmailService struct {
	smtpAddr string
	smtpFrom string
}

func NewSMTPEmailService(smtpHost, smtpPort, from string) EmailService {
	return &smtpEmailService{
		smtpAddr: smtpHost + ":" + smtpPort,
		smtpFrom: from,
	}
}

func (s *smtpEmailService) SendContactNotification(ctx context.Context, data ContactNotificationData) error {
	subject := "New contact form submission"
	body := fmt.Sprintf(`You have a new contact form submission:

	Name:   %s
	Email:  %s
	Mobile: %s
	City:   %s`, data.FullName, data.EmailAddress, data.MobileNumber, data.City)

	return s.send(data.OwnerEmail, subject, body)
}

func (s *smtpEmailService) SendWelcomeEmail(ctx context.Context, data WelcomeEmailData) error {
	subject := "Thank you for subscribing!"
	body := `Hi,

	Thank you for subscribing to our newsletter!

	You will receive updates about our latest projects and news.

	If you did not subscribe, you can safely ignore this email.`

	return s.send(data.EmailAddress, subject, body)
}

func (s *smtpEmailService) SendContactSummary(ctx context.Context, data ContactSummaryData) error {
	subject := "Daily contact form summary"
	body := fmt.Sprintf(`Daily summary of contact form submissions:

	Today: %d
	Total: %d`, data.TodaySubmissions, data.TotalSubmissions)

	return s.send(data.OwnerEmail, subject, body)
}

func (s *smtpEmailService) send(to, subject, body string) error {
	msg := []byte(fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		s.smtpFrom, to, subject, body))

	err := smtp.SendMail(s.smtpAddr, nil, s.smtpFrom, []string{to}, msg)
	if err != nil {
		logger.Info("Failed to send email", map[string]interface{}{
			"error":     err.Error(),
			"to":        to,
			"smtp_addr": s.smtpAddr,
		})
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
