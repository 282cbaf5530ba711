package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"magala-server/internal/models"
	"magala-server/internal/repository"
	"magala-server/internal/services"
)

// ResponseData represents the structure of a standard API response.
type ResponseData struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Success sends a standard success response.
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, ResponseData{
		Status:  http.StatusOK,
		Message: message,
		Data:    data,
	})
}

// Created sends a standard resource created response.
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, ResponseData{
		Status:  http.StatusCreated,
		Message: message,
		Data:    data,
	})
}

// Error sends a standard error response.
func Error(c *gin.Context, statusCode int, errorMessage string) {
	c.JSON(statusCode, ResponseData{
		Status:  statusCode,
		Message: "An error occurred",
		Error:   errorMessage,
	})
}

// BadRequest sends a 400 Bad Request error response.
func BadRequest(c *gin.Context, errorMessage string) {
	Error(c, http.StatusBadRequest, errorMessage)
}

// Unauthorized sends a 401 Unauthorized error response.
func Unauthorized(c *gin.Context, errorMessage string) {
	Error(c, http.StatusUnauthorized, errorMessage)
}

// Forbidden sends a 403 Forbidden error response.
func Forbidden(c *gin.Context, errorMessage string) {
	Error(c, http.StatusForbidden, errorMessage)
}

// NotFound sends a 404 Not Found error response.
func NotFound(c *gin.Context, errorMessage string) {
	Error(c, http.StatusNotFound, errorMessage)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, errorMessage string) {
	Error(c, http.StatusInternalServerError, errorMessage)
}

// FromError maps a service or repository error onto the response taxonomy:
// gate rejections become 403, validation failures 400, missing targets 404,
// anything else is passed through as a 500 with its original message.
func FromError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	switch {
	case errors.Is(err, services.ErrUnauthorized):
		Forbidden(c, err.Error())
	case errors.As(err, &validationErr):
		BadRequest(c, err.Error())
	case errors.Is(err, services.ErrProfessionnelUnavailable):
		BadRequest(c, err.Error())
	case errors.Is(err, repository.ErrNotFound):
		NotFound(c, err.Error())
	default:
		InternalServerError(c, err.Error())
	}
}
