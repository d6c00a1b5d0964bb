package admin

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/gofrs/uuid"

	creatorerrors "github.com/ankitsaini000/rwew-sub002/creators/errors"
	"github.com/ankitsaini000/rwew-sub002/creators/repository"
	"github.com/ankitsaini000/rwew-sub002/creators/services"
)

type Handler struct {
	creatorService services.CreatorService
}

func NewHandler(creatorService services.CreatorService) *Handler {
	return &Handler{creatorService: creatorService}
}

// ListCreators handles GET /admin/creators with optional status and search filters
func (h *Handler) ListCreators(c *fiber.Ctx) error {
	page := 1
	limit := 20
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}

	filter := repository.CreatorFilter{}
	if status := c.Query("status"); status != "" {
		filter.Status = &status
	}
	if search := c.Query("search"); search != "" {
		filter.SearchText = &search
	}

	result, err := h.creatorService.ListCreators(c.Context(), filter, page, limit)
	if err != nil {
		return creatorerrors.HandleServiceError(c, err)
	}
	return c.JSON(result)
}

// UpdateCreatorStatus handles PUT /admin/creators/:userId/status
func (h *Handler) UpdateCreatorStatus(c *fiber.Ctx) error {
	userID, err := uuid.FromString(c.Params("userId"))
	if err != nil {
		return creatorerrors.HandleInvalidRequestError(c, "Invalid user id")
	}

	var body struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&body); err != nil || body.Status == "" {
		return creatorerrors.HandleInvalidRequestError(c, "Status is required")
	}

	if err := h.creatorService.UpdateCreatorStatus(c.Context(), userID, body.Status); err != nil {
		return creatorerrors.HandleServiceError(c, err)
	}
	return c.JSON(fiber.Map{"message": "Status updated"})
}
