package main

import (
	"github.com/hibiken/asynq"

	contactJob "portfolio-backend/internal/domains/contact/job"
	newsletterJob "portfolio-backend/internal/domains/newsletter/job"
	"portfolio-backend/internal/infrastructure/email"
	"portfolio-backend/internal/shared"
	"portfolio-backend/pkg/container"
)

// HandlerRegistry holds all job handlers
type HandlerRegistry struct {
	// Contact handlers
	contactNotify  *contactJob.NotifyHandler
	contactSummary *contactJob.SummaryHandler

	// Newsletter handlers
	welcomeEmail *newsletterJob.WelcomeHandler
}

// initializeHandlers creates all job handlers with their dependencies
func initializeHandlers(c *container.Container, cfg *Config) *HandlerRegistry {
	emailSvc := email.NewSMTPEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailFrom)

	return &HandlerRegistry{
		contactNotify:  contactJob.NewNotifyHandler(emailSvc, cfg.OwnerEmail),
		contactSummary: contactJob.NewSummaryHandler(c.ContactRepo, emailSvc, cfg.OwnerEmail),
		welcomeEmail:   newsletterJob.NewWelcomeHandler(emailSvc),
	}
}

// RegisterHandlers registers all handlers with the mux
func (h *HandlerRegistry) RegisterHandlers(mux *asynq.ServeMux) {
	// Contact tasks
	mux.HandleFunc(shared.TypeSendContactNotification, h.contactNotify.ProcessTask)
	mux.HandleFunc(shared.TypeDailyContactSummary, h.contactSummary.ProcessTask)

	// Newsletter tasks
	mux.HandleFunc(shared.TypeSendWelcomeEmail, h.welcomeEmail.ProcessTask)
}
