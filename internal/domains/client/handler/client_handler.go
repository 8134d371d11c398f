package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/client"
	"portfolio-backend/internal/infrastructure/storage"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

type ClientHandler struct {
	service client.Service
}

func NewClientHandler(service client.Service) *ClientHandler {
	return &ClientHandler{service: service}
}

// CreateClient - POST /api/clients
// Multipart form: clientName, clientDescription, clientDesignation + file "image"
func (h *ClientHandler) CreateClient(c *gin.Context) {
	req := client.CreateClientRequest{
		ClientName:        c.PostForm("clientName"),
		ClientDescription: c.PostForm("clientDescription"),
		ClientDesignation: c.PostForm("clientDesignation"),
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

	response.SuccessWithMessage(c, http.StatusCreated, "Client created successfully", gin.H{
		"client": dto,
	})
}

// GetClients - GET /api/clients
func (h *ClientHandler) GetClients(c *gin.Context) {
	dtos, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to list clients", err)
		response.InternalServerError(c, "Failed to fetch clients")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"clients": dtos,
		"count":   len(dtos),
	})
}

// GetClientByID - GET /api/clients/:id
func (h *ClientHandler) GetClientByID(c *gin.Context) {
	dto, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, client.ErrInvalidClientID):
			response.BadRequest(c, "Invalid client ID")
		case errors.Is(err, client.ErrClientNotFound):
			response.NotFound(c, "Client not found")
		default:
			logger.Error("failed to get client", err)
			response.InternalServerError(c, "Failed to fetch client")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"client": dto,
	})
}

func (h *ClientHandler) handleCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, storage.ErrMissingFile),
		errors.Is(err, storage.ErrInvalidFileType),
		errors.Is(err, storage.ErrFileTooLarge),
		errors.Is(err, storage.ErrTooManyFiles),
		errors.Is(err, storage.ErrUnexpectedField):
		response.BadRequest(c, err.Error())
	case errors.Is(err, storage.ErrImageProcessing):
		logger.Error("client image processing failed", err)
		response.InternalServerError(c, "Failed to process image")
	case errors.Is(err, storage.ErrStorageWrite):
		logger.Error("client image storage failed", err)
		response.InternalServerError(c, "Failed to store image")
	default:
		logger.Error("failed to create client", err)
		response.InternalServerError(c, "Failed to create client")
	}
}
