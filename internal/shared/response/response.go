package response

import (
	"github.com/gin-gonic/gin"
)

// Response là envelope chung cho mọi API response
// Format: {status: "success"|"error", message?, data?, errors?}
type Response struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// FieldError mô tả một lỗi validation trên field cụ thể
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Success responses
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Status: "success",
		Data:   data,
	})
}

func SuccessWithMessage(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Status:  "success",
		Message: message,
		Data:    data,
	})
}

func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "success",
		Message: message,
	})
}

// Error responses
func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, Response{
		Status:  "error",
		Message: message,
	})
}

// ValidationFailed trả 400 kèm field-level errors
func ValidationFailed(c *gin.Context, errors []FieldError) {
	c.JSON(400, Response{
		Status:  "error",
		Message: "Validation failed",
		Errors:  errors,
	})
}

// Common error responses
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, 404, message)
}

func InternalServerError(c *gin.Context, message string) {
	Error(c, 500, message)
}
