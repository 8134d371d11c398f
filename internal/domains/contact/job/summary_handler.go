package job

import (
	"context"
	"fmt"
	"time"

	"github.com/hibiken/asynq"

	"portfolio-backend/internal/domains/contact"
	"portfolio-backend/internal/infrastructure/email"
	"portfolio-backend/pkg/logger"
)

// SummaryHandler xử lý task contact:daily_summary
// Scheduler enqueue mỗi sáng - gửi owner tổng hợp submissions
type SummaryHandler struct {
	repo         contact.Repository
	emailService email.EmailService
	ownerEmail   string
}

func NewSummaryHandler(repo contact.Repository, emailService email.EmailService, ownerEmail string) *SummaryHandler {
	return &SummaryHandler{
		repo:         repo,
		emailService: emailService,
		ownerEmail:   ownerEmail,
	}
}

func (h *SummaryHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	total, err := h.repo.CountAll(ctx)
	if err != nil {
		return fmt.Errorf("failed to count contacts: %w", err)
	}

	now := time.Now()
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	today, err := h.repo.CountSince(ctx, todayStart)
	if err != nil {
		return fmt.Errorf("failed to count today's contacts: %w", err)
	}

	logger.Info("Sending daily contact summary", map[string]interface{}{
		"total": total,
		"today": today,
	})

	err = h.emailService.SendContactSummary(ctx, email.ContactSummaryData{
		OwnerEmail:       h.ownerEmail,
		TotalSubmissions: total,
		TodaySubmissions: today,
	})
	if err != nil {
		return fmt.Errorf("failed to send contact summary: %w", err)
	}

	return nil
}
