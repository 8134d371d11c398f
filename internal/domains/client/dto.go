package client

import (
	"regexp"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"portfolio-backend/internal/infrastructure/storage"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z\s]+$`)

// CreateClientRequest - multipart form fields của POST /api/clients
// File field "image" (avatar) xử lý riêng qua upload pipeline
type CreateClientRequest struct {
	ClientName        string `form:"clientName" json:"clientName"`
	ClientDescription string `form:"clientDescription" json:"clientDescription"`
	ClientDesignation string `form:"clientDesignation" json:"clientDesignation"`
}

func (r CreateClientRequest) Sanitize() CreateClientRequest {
	return CreateClientRequest{
		ClientName:        strings.TrimSpace(r.ClientName),
		ClientDescription: strings.TrimSpace(r.ClientDescription),
		ClientDesignation: strings.TrimSpace(r.ClientDesignation),
	}
}

func (r CreateClientRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ClientName,
			validation.Required.Error("Client name is required"),
			validation.Length(2, 50).Error("Client name must be 2-50 characters long"),
			validation.Match(namePattern).Error("Client name can only contain letters and spaces"),
		),
		validation.Field(&r.ClientDescription,
			validation.Required.Error("Client description is required"),
			validation.Length(10, 300).Error("Client description must be 10-300 characters long"),
		),
		validation.Field(&r.ClientDesignation,
			validation.Required.Error("Client designation is required"),
			validation.In(Designations...).Error("Invalid designation selected"),
		),
	)
}

// ClientDTO - public representation
type ClientDTO struct {
	ID                uuid.UUID `json:"id"`
	ClientName        string    `json:"clientName"`
	ClientDescription string    `json:"clientDescription"`
	ClientDesignation string    `json:"clientDesignation"`
	ClientImage       string    `json:"clientImage"`
	ImageURL          string    `json:"imageUrl"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

func (cl *Client) ToDTO(backendURL string) ClientDTO {
	return ClientDTO{
		ID:                cl.ID,
		ClientName:        cl.Name,
		ClientDescription: cl.Description,
		ClientDesignation: cl.Designation,
		ClientImage:       cl.ImageFilename,
		ImageURL:          storage.ImageURL(backendURL, storage.FolderClients, cl.ImageFilename),
		CreatedAt:         cl.CreatedAt,
		UpdatedAt:         cl.UpdatedAt,
	}
}
