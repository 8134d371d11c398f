package contact

import (
	"errors"
	"regexp"
	"strings"
	"time"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
)

var (
	fullNamePattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)
	mobilePattern   = regexp.MustCompile(`^[+]?[\d\s\-()]+$`)
	cityPattern     = regexp.MustCompile(`^[a-zA-Z\s\-']+$`)
)

// CreateContactRequest - JSON body của POST /api/contact
type CreateContactRequest struct {
	FullName     string `json:"fullName"`
	EmailAddress string `json:"emailAddress"`
	MobileNumber string `json:"mobileNumber"`
	City         string `json:"city"`
}

// Sanitize trim whitespace và lowercase email
func (r CreateContactRequest) Sanitize() CreateContactRequest {
	return CreateContactRequest{
		FullName:     strings.TrimSpace(r.FullName),
		EmailAddress: strings.ToLower(strings.TrimSpace(r.EmailAddress)),
		MobileNumber: strings.TrimSpace(r.MobileNumber),
		City:         strings.TrimSpace(r.City),
	}
}

func (r CreateContactRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName,
			validation.Required.Error("Full name is required"),
			validation.Length(2, 50).Error("Full name must be 2-50 characters long"),
			validation.Match(fullNamePattern).Error("Full name can only contain letters and spaces"),
		),
		validation.Field(&r.EmailAddress,
			validation.Required.Error("Email address is required"),
			validation.Length(0, 100).Error("Email address must not exceed 100 characters"),
			is.EmailFormat.Error("Please provide a valid email address"),
		),
		validation.Field(&r.MobileNumber,
			validation.Required.Error("Mobile number is required"),
			validation.Length(10, 15).Error("Mobile number must be 10-15 characters long"),
			validation.Match(mobilePattern).Error("Please provide a valid mobile number"),
			validation.By(minTenDigits),
		),
		validation.Field(&r.City,
			validation.Required.Error("City is required"),
			validation.Length(2, 50).Error("City must be 2-50 characters long"),
			validation.Match(cityPattern).Error("City can only contain letters, spaces, hyphens, and apostrophes"),
		),
	)
}

// minTenDigits - pattern cho phép space/hyphen/parens nên phải đếm
// riêng số digit thực sự
func minTenDigits(value interface{}) error {
	s, _ := value.(string)
	digits := 0
	for _, r := range s {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if digits < 10 {
		return errors.New("Mobile number must contain at least 10 digits")
	}
	return nil
}

// ContactDTO - public representation
type ContactDTO struct {
	ID           uuid.UUID `json:"id"`
	FullName     string    `json:"fullName"`
	EmailAddress string    `json:"emailAddress"`
	MobileNumber string    `json:"mobileNumber"`
	City         string    `json:"city"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (ct *Contact) ToDTO() ContactDTO {
	return ContactDTO{
		ID:           ct.ID,
		FullName:     ct.FullName,
		EmailAddress: ct.EmailAddress,
		MobileNumber: ct.MobileNumber,
		City:         ct.City,
		CreatedAt:    ct.CreatedAt,
		UpdatedAt:    ct.UpdatedAt,
	}
}
