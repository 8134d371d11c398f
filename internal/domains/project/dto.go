package project

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"portfolio-backend/internal/infrastructure/storage"
)

// CreateProjectRequest - multipart form fields của POST /api/projects
// File field "image" xử lý riêng qua upload pipeline
type CreateProjectRequest struct {
	ProjectName        string `form:"projectName" json:"projectName"`
	ProjectDescription string `form:"projectDescription" json:"projectDescription"`
}

// Sanitize trả về copy đã trim - không mutate request gốc
func (r CreateProjectRequest) Sanitize() CreateProjectRequest {
	return CreateProjectRequest{
		ProjectName:        strings.TrimSpace(r.ProjectName),
		ProjectDescription: strings.TrimSpace(r.ProjectDescription),
	}
}

func (r CreateProjectRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProjectName,
			validation.Required.Error("Project name is required"),
			validation.Length(3, 100).Error("Project name must be 3-100 characters long"),
		),
		validation.Field(&r.ProjectDescription,
			validation.Required.Error("Project description is required"),
			validation.Length(10, 500).Error("Project description must be 10-500 characters long"),
		),
	)
}

// ProjectDTO - public representation, imageUrl derive từ backend origin
type ProjectDTO struct {
	ID                 uuid.UUID `json:"id"`
	ProjectName        string    `json:"projectName"`
	ProjectDescription string    `json:"projectDescription"`
	ProjectImage       string    `json:"projectImage"`
	ImageURL           string    `json:"imageUrl"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// ToDTO converts Project entity to ProjectDTO
func (p *Project) ToDTO(backendURL string) ProjectDTO {
	return ProjectDTO{
		ID:                 p.ID,
		ProjectName:        p.Name,
		ProjectDescription: p.Description,
		ProjectImage:       p.ImageFilename,
		ImageURL:           storage.ImageURL(backendURL, storage.FolderProjects, p.ImageFilename),
		CreatedAt:          p.CreatedAt,
		UpdatedAt:          p.UpdatedAt,
	}
}
