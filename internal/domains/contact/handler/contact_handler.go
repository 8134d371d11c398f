package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/contact"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

type ContactHandler struct {
	service contact.Service
}

func NewContactHandler(service contact.Service) *ContactHandler {
	return &ContactHandler{service: service}
}

// SubmitContact - POST /api/contact
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req contact.CreateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	req = req.Sanitize()

	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, response.FieldErrorsFrom(err))
		return
	}

	dto, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		logger.Error("failed to submit contact", err)
		response.InternalServerError(c, "Failed to submit contact form")
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, "Contact form submitted successfully", gin.H{
		"contact": dto,
	})
}

// GetContacts - GET /api/contact
func (h *ContactHandler) GetContacts(c *gin.Context) {
	dtos, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to list contacts", err)
		response.InternalServerError(c, "Failed to fetch contacts")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"contacts": dtos,
		"count":    len(dtos),
	})
}

// GetContactByID - GET /api/contact/:id
func (h *ContactHandler) GetContactByID(c *gin.Context) {
	dto, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, contact.ErrInvalidContactID):
			response.BadRequest(c, "Invalid contact ID")
		case errors.Is(err, contact.ErrContactNotFound):
			response.NotFound(c, "Contact not found")
		default:
			logger.Error("failed to get contact", err)
			response.InternalServerError(c, "Failed to fetch contact")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"contact": dto,
	})
}

// GetStats - GET /api/contact/stats/summary
func (h *ContactHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		logger.Error("failed to get contact stats", err)
		response.InternalServerError(c, "Failed to fetch contact statistics")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"stats": stats,
	})
}

// ExportContacts - GET /api/contact/export
// Trả file XLSX attachment thay vì JSON envelope
func (h *ContactHandler) ExportContacts(c *gin.Context) {
	data, err := h.service.ExportToExcel(c.Request.Context())
	if err != nil {
		logger.Error("failed to export contacts", err)
		response.InternalServerError(c, "Failed to export contacts")
		return
	}

	filename := fmt.Sprintf("contacts-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
