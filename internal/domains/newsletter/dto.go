package newsletter

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

// SubscribeRequest - JSON body của POST /api/newsletter/subscribe và /unsubscribe
type SubscribeRequest struct {
	EmailAddress string `json:"emailAddress"`
}

// Sanitize lowercase email - unique constraint là case-insensitive về semantics
func (r SubscribeRequest) Sanitize() SubscribeRequest {
	return SubscribeRequest{
		EmailAddress: strings.ToLower(strings.TrimSpace(r.EmailAddress)),
	}
}

func (r SubscribeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.EmailAddress,
			validation.Required.Error("Email address is required"),
			validation.Length(0, 100).Error("Email address must not exceed 100 characters"),
			is.EmailFormat.Error("Please provide a valid email address"),
		),
	)
}

// SubscriberDTO - public representation
type SubscriberDTO struct {
	ID           uuid.UUID `json:"id"`
	EmailAddress string    `json:"emailAddress"`
	IsActive     bool      `json:"isActive"`
	SubscribedAt time.Time `json:"subscribedAt"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (sub *Subscriber) ToDTO() SubscriberDTO {
	return SubscriberDTO{
		ID:           sub.ID,
		EmailAddress: sub.EmailAddress,
		IsActive:     sub.IsActive,
		SubscribedAt: sub.SubscribedAt,
		CreatedAt:    sub.CreatedAt,
		UpdatedAt:    sub.UpdatedAt,
	}
}
