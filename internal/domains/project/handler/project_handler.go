package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/project"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

type ProjectHandler struct {
	service project.Service
}

func NewProjectHandler(service project.Service) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// CreateProject - POST /api/projects
// Multipart form: projectName, projectDescription + file field "image"
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req := project.CreateProjectRequest{
		ProjectName:        c.PostForm("projectName"),
		ProjectDescription: c.PostForm("projectDescription"),
	}
	req = req.Sanitize()

	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, response.FieldErrorsFrom(err))
		return
	}

	form, _ := c.MultipartForm()

	dto, err := h.service.Create(c.Request.Context(), req, form)
	if err != nil {
		h.handleCreateError(c, err)
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, "Project created successfully", gin.H{
		"project": dto,
	})
}

// GetProjects - GET /api/projects
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	dtos, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to list projects", err)
		response.InternalServerError(c, "Failed to fetch projects")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"projects": dtos,
		"count":    len(dtos),
	})
}

// GetProjectByID - GET /api/projects/:id
func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	dto, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, project.ErrInvalidProjectID):
			response.BadRequest(c, "Invalid project ID")
		case errors.Is(err, project.ErrProjectNotFound):
			response.NotFound(c, "Project not found")
		default:
			logger.Error("failed to get project", err)
			response.InternalServerError(c, "Failed to fetch project")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"project": dto,
	})
}

// handleCreateError map pipeline errors sang status codes
// Client-side upload errors trả message verbatim (400)
// Server-side errors chỉ trả generic message, detail vào log (500)
func (h *ProjectHandler) handleCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrMissingFile),
		errors.Is(err, storage.ErrInvalidFileType),
		errors.Is(err, storage.ErrFileTooLarge),
		errors.Is(err, storage.ErrTooManyFiles),
		errors.Is(err, storage.ErrUnexpectedField):
		response.BadRequest(c, err.Error())
	case errors.Is(err, storage.ErrImageProcessing):
		logger.Error("project image processing failed", err)
		response.InternalServerError(c, "Failed to process image")
	case errors.Is(err, storage.ErrStorageWrite):
		logger.Error("project image storage failed", err)
		response.InternalServerError(c, "Failed to store image")
	default:
		logger.Error("failed to create project", err)
		response.InternalServerError(c, "Failed to create project")
	}
}
