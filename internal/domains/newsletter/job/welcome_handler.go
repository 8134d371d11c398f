package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"

	"portfolio-backend/internal/infrastructure/email"
	"portfolio-backend/internal/shared"
	"portfolio-backend/pkg/logger"
)

// WelcomeHandler xử lý task newsletter:welcome_email
type WelcomeHandler struct {
	emailService email.EmailService
}

func NewWelcomeHandler(emailService email.EmailService) *WelcomeHandler {
	return &WelcomeHandler{emailService: emailService}
}

func (h *WelcomeHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload shared.WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	logger.Info("Sending welcome email", map[string]interface{}{
		"email": payload.EmailAddress,
	})

	err := h.emailService.SendWelcomeEmail(ctx, email.WelcomeEmailData{
		EmailAddress: payload.EmailAddress,
	})
	if err != nil {
		return fmt.Errorf("failed to send welcome email: %w", err)
	}

	return nil
}
