package media

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid"

	"github.com/ankitsaini000/rwew-sub002/internal/types"
	"github.com/ankitsaini000/rwew-sub002/media/models"
	"github.com/ankitsaini000/rwew-sub002/media/services"
)

type MediaHandler struct {
	mediaService services.MediaService
}

func NewMediaHandler(mediaService services.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// RequestUpload handles POST /media/upload-url
func (h *MediaHandler) RequestUpload(c *fiber.Ctx) error {
	uc, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok || uc.UserID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"code":    "UNAUTHORIZED",
			"message": "Authentication required",
		})
	}

	var req models.UploadRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "INVALID_REQUEST",
			"message": "Invalid JSON body",
		})
	}

	ticket, err := h.mediaService.RequestUpload(c.Context(), uc.UserID, &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "UPLOAD_REJECTED",
			"message": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(ticket)
}

// Delete handles DELETE /media with the object key in the body
func (h *MediaHandler) Delete(c *fiber.Ctx) error {
	uc, ok := c.Locals(types.UserCtxName).(types.UserContext)
	if !ok || uc.UserID == uuid.Nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"code":    "UNAUTHORIZED",
			"message": "Authentication required",
		})
	}

	var req struct {
		Key string `json:"key"`
	}
	if err := c.BodyParser(&req); err != nil || req.Key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "INVALID_REQUEST",
			"message": "Object key is required",
		})
	}

	if err := h.mediaService.Delete(c.Context(), uc.UserID, req.Key); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"code":    "ACCESS_FORBIDDEN",
			"message": err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
