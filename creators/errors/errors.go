package errors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrCreatorNotFound      = errors.New("creator profile not found")
	ErrCreatorAlreadyExists = errors.New("creator profile already exists")
	ErrUsernameTaken        = errors.New("username is already taken")
	ErrNotPublishable       = errors.New("required sections are incomplete")
	ErrAlreadyPublished     = errors.New("profile is already published")
	ErrProfileSuspended     = errors.New("profile is suspended")
	ErrUnauthorized         = errors.New("unauthorized access to creator profile")
	ErrValidationFailed     = errors.New("validation failed")
	ErrVerificationRequired = errors.New("verification has not been completed")
	ErrWrongCode            = errors.New("verification code does not match")
	ErrCodeExpired          = errors.New("verification code has expired")
	ErrSessionNotFound      = errors.New("no active verification session")
	ErrInvalidState         = errors.New("operation not allowed in current verification state")
	ErrTooManyAttempts      = errors.New("too many verification attempts")
	ErrDraftQuotaExceeded   = errors.New("draft storage quota exceeded")
	ErrDatabaseOperation    = errors.New("database operation failed")
)

// ErrorResponse is the JSON error envelope shared by all creator endpoints
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
	case errors.Is(err, ErrCreatorNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    "CREATOR_NOT_FOUND",
			Message: "Creator profile not found",
			Details: err.Error(),
		})
	case errors.Is(err, ErrCreatorAlreadyExists):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Code:    "DUPLICATE_KEY",
			Message: "Creator profile already exists",
			Details: err.Error(),
		})
	case errors.Is(err, ErrUsernameTaken):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Code:    "USERNAME_TAKEN",
			Message: "Username is already taken",
			Details: err.Error(),
		})
	case errors.Is(err, ErrNotPublishable):
		return c.Status(http.StatusUnprocessableEntity).JSON(ErrorResponse{
			Code:    "NOT_PUBLISHABLE",
			Message: "Required sections are incomplete",
			Details: err.Error(),
		})
	case errors.Is(err, ErrAlreadyPublished):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Code:    "ALREADY_PUBLISHED",
			Message: "Profile is already published",
			Details: err.Error(),
		})
	case errors.Is(err, ErrProfileSuspended):
		return c.Status(http.StatusForbidden).JSON(ErrorResponse{
			Code:    "PROFILE_SUSPENDED",
			Message: "Profile is suspended",
			Details: err.Error(),
		})
	case errors.Is(err, ErrUnauthorized):
		return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
			Code:    "UNAUTHORIZED",
			Message: "Unauthorized access",
			Details: err.Error(),
		})
	case errors.Is(err, ErrValidationFailed):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    "VALIDATION_FAILED",
			Message: "Validation failed",
			Details: err.Error(),
		})
	case errors.Is(err, ErrWrongCode):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Code:    "WRONG_CODE",
			Message: "Verification code does not match",
			Details: err.Error(),
		})
	case errors.Is(err, ErrCodeExpired):
		return c.Status(http.StatusGone).JSON(ErrorResponse{
			Code:    "CODE_EXPIRED",
			Message: "Verification code has expired",
			Details: err.Error(),
		})
	case errors.Is(err, ErrSessionNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Code:    "SESSION_NOT_FOUND",
			Message: "No active verification session",
			Details: err.Error(),
		})
	case errors.Is(err, ErrInvalidState):
		return c.Status(http.StatusConflict).JSON(ErrorResponse{
			Code:    "INVALID_STATE",
			Message: "Operation not allowed in current verification state",
			Details: err.Error(),
		})
	case errors.Is(err, ErrTooManyAttempts):
		return c.Status(http.StatusTooManyRequests).JSON(ErrorResponse{
			Code:    "TOO_MANY_ATTEMPTS",
			Message: "Too many verification attempts",
			Details: err.Error(),
		})
	case errors.Is(err, ErrVerificationRequired):
		return c.Status(http.StatusForbidden).JSON(ErrorResponse{
			Code:    "VERIFICATION_REQUIRED",
			Message: "Verification has not been completed",
			Details: err.Error(),
		})
	case errors.Is(err, ErrDraftQuotaExceeded):
		return c.Status(http.StatusInsufficientStorage).JSON(ErrorResponse{
			Code:    "DRAFT_QUOTA_EXCEEDED",
			Message: "Draft storage quota exceeded",
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

// HandleValidationError surfaces the first violated rule to the client
func HandleValidationError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
		Code:    "VALIDATION_FAILED",
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

// HandleUnauthorizedError rejects unauthenticated requests
func HandleUnauthorizedError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusUnauthorized).JSON(ErrorResponse{
		Code:    "UNAUTHORIZED",
		Message: message,
		Details: message,
	})
}

// HandleNotFoundError returns a 404 with the creator code
func HandleNotFoundError(c *fiber.Ctx, message string) error {
	return c.Status(http.StatusNotFound).JSON(ErrorResponse{
		Code:    "CREATOR_NOT_FOUND",
		Message: message,
		Details: message,
	})
}

// WrapDatabaseError tags an infrastructure failure so the handler can map it
func WrapDatabaseError(err error) error {
	return fmt.Errorf("%w: %v", ErrDatabaseOperation, err)
}
