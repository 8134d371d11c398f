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

// NotifyHandler xử lý task contact:send_notification
// Gửi email cho owner khi có contact form submission mới
type NotifyHandler struct {
	emailService email.EmailService
	ownerEmail   string
}

func NewNotifyHandler(emailService email.EmailService, ownerEmail string) *NotifyHandler {
	return &NotifyHandler{
		emailService: emailService,
		ownerEmail:   ownerEmail,
	}
}

func (h *NotifyHandler) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var payload shared.ContactNotificationPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		// Payload hỏng thì retry vô ích
		return fmt.Errorf("failed to unmarshal payload: %v: %w", err, asynq.SkipRetry)
	}

	logger.Info("Processing contact notification", map[string]interface{}{
		"contact_id": payload.ContactID,
	})

	err := h.emailService.SendContactNotification(ctx, email.ContactNotificationData{
		OwnerEmail:   h.ownerEmail,
		FullName:     payload.FullName,
		EmailAddress: payload.EmailAddress,
		MobileNumber: payload.MobileNumber,
		City:         payload.City,
	})
	if err != nil {
		return fmt.Errorf("failed to send contact notification: %w", err)
	}

	return nil
}
