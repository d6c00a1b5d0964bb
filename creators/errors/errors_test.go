package errors

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func serveError(t *testing.T, err error) (int, ErrorResponse) {
	t.Helper()

	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return HandleServiceError(c, err)
	})

	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, reqErr)
	defer resp.Body.Close()

	body, readErr := io.ReadAll(resp.Body)
	require.NoError(t, readErr)

	var payload ErrorResponse
	require.NoError(t, json.Unmarshal(body, &payload))
	return resp.StatusCode, payload
}

func TestHandleServiceError(t *testing.T) {
	t.Run("validation failures are client errors", func(t *testing.T) {
		status, payload := serveError(t, fmt.Errorf("%w: username must be at least 3 characters", ErrValidationFailed))

		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "VALIDATION_FAILED", payload.Code)
		require.Contains(t, payload.Details.(string), "at least 3 characters")
	})

	t.Run("missing profile is a 404", func(t *testing.T) {
		status, payload := serveError(t, ErrCreatorNotFound)

		require.Equal(t, http.StatusNotFound, status)
		require.Equal(t, "CREATOR_NOT_FOUND", payload.Code)
	})

	t.Run("wrong verification code stays a 400", func(t *testing.T) {
		status, payload := serveError(t, ErrWrongCode)

		require.Equal(t, http.StatusBadRequest, status)
		require.Equal(t, "WRONG_CODE", payload.Code)
	})

	t.Run("unknown errors fall back to 500", func(t *testing.T) {
		status, payload := serveError(t, fmt.Errorf("disk on fire"))

		require.Equal(t, http.StatusInternalServerError, status)
		require.Equal(t, "INTERNAL_ERROR", payload.Code)
	})
}
