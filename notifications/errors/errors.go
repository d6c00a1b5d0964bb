package errors

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrValidationFailed     = errors.New("validation failed")
	ErrDatabaseOperation    = errors.New("database operation failed")
)

// ErrorResponse is the JSON error envelope for notification endpoints
type ErrorResponse struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleServiceError maps domain errors onto HTTP responses
func HandleServiceError(c *fiber.Ctx, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, ErrNotificationNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    "NOTIFICATION_NOT_FOUND",
			Message: "Notification not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrValidationFailed):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    "VALIDATION_FAILED",
			Message: "Validation failed",
			Details: err.Error(),
		})
	case errors.Is(err, ErrDatabaseOperation):
		return c.Status(http.StatusServiceUnavailable).JSON(ErrorResponse{
			Code:    "DATABASE_OPERATION_FAILED",
			Message: "Database operation failed",
			Details: err.Error(),
		})
	default:
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Code:    "INTERNAL_ERROR",
			Message: "An unexpected error occurred",
			Details: err.Error(),
		})
	}
}

// HandleUnauthorizedError rejects unauthenticated requests
func HandleUnauthorizedError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
		Code:    "UNAUTHORIZED",
		Message: message,
		Details: message,
	})
}

// HandleInvalidRequestError rejects malformed request bodies
func HandleInvalidRequestError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    "INVALID_REQUEST",
		Message: message,
		Details: message,
	})
}
