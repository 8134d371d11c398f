package handler

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/domains/newsletter"
	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/logger"
)

type NewsletterHandler struct {
	service newsletter.Service
}

func NewNewsletterHandler(service newsletter.Service) *NewsletterHandler {
	return &NewsletterHandler{service: service}
}

// Subscribe - POST /api/newsletter/subscribe
// 201 subscription mới, 200 reactivation, 400 đã active
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req newsletter.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	req = req.Sanitize()

	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, response.FieldErrorsFrom(err))
		return
	}

	result, err := h.service.Subscribe(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, newsletter.ErrAlreadySubscribed) {
			response.BadRequest(c, "Email is already subscribed to the newsletter")
			return
		}
		logger.Error("failed to subscribe", err)
		response.InternalServerError(c, "Failed to subscribe to newsletter")
		return
	}

	if result.Reactivated {
		response.SuccessWithMessage(c, http.StatusOK, "Subscription reactivated successfully", gin.H{
			"subscriber": result.Subscriber,
		})
		return
	}

	response.SuccessWithMessage(c, http.StatusCreated, "Subscribed to newsletter successfully", gin.H{
		"subscriber": result.Subscriber,
	})
}

// Unsubscribe - POST /api/newsletter/unsubscribe
// 404 khi email không có active subscription
func (h *NewsletterHandler) Unsubscribe(c *gin.Context) {
	var req newsletter.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	req = req.Sanitize()

	if err := req.Validate(); err != nil {
		response.ValidationFailed(c, response.FieldErrorsFrom(err))
		return
	}

	if err := h.service.Unsubscribe(c.Request.Context(), req); err != nil {
		if errors.Is(err, newsletter.ErrNotSubscribed) {
			response.NotFound(c, "No active subscription found for this email")
			return
		}
		logger.Error("failed to unsubscribe", err)
		response.InternalServerError(c, "Failed to unsubscribe from newsletter")
		return
	}

	response.Message(c, http.StatusOK, "Unsubscribed from newsletter successfully")
}

// GetSubscribers - GET /api/newsletter
func (h *NewsletterHandler) GetSubscribers(c *gin.Context) {
	dtos, err := h.service.List(c.Request.Context())
	if err != nil {
		logger.Error("failed to list subscribers", err)
		response.InternalServerError(c, "Failed to fetch subscribers")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"subscribers": dtos,
		"count":       len(dtos),
	})
}

// GetStats - GET /api/newsletter/stats
func (h *NewsletterHandler) GetStats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		logger.Error("failed to get newsletter stats", err)
		response.InternalServerError(c, "Failed to fetch newsletter statistics")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"stats": stats,
	})
}

// ExportSubscribers - GET /api/newsletter/export
func (h *NewsletterHandler) ExportSubscribers(c *gin.Context) {
	data, err := h.service.ExportToExcel(c.Request.Context())
	if err != nil {
		logger.Error("failed to export subscribers", err)
		response.InternalServerError(c, "Failed to export subscribers")
		return
	}

	filename := fmt.Sprintf("newsletter-subscribers-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
