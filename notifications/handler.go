package notifications

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/gofrs/uuid"

	"github.com/ankitsaini000/rwew-sub002/internal/types"
	"github.com/ankitsaini000/rwew-sub002/notifications/errors"
	"github.com/ankitsaini000/rwew-sub002/notifications/models"
	"github.com/ankitsaini000/rwew-sub002/notifications/services"
	"github.com/ankitsaini000/rwew-sub002/notifications/ws"
)

type NotificationHandler struct {
	notificationService services.NotificationService
	hub                 *ws.Hub
}

func NewNotificationHandler(notificationService services.NotificationService, hub *ws.Hub) *NotificationHandler {
	return &NotificationHandler{
		notificationService: notificationService,
		hub:                 hub,
	}
}

func (h *NotificationHandler) currentUser(c *fiber.Ctx) (types.UserContext, bool) {
	uc, ok := c.Locals(types.UserCtxName).(types.UserContext)
	return uc, ok && uc.UserID != uuid.Nil
}

// List handles GET /notifications
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	uc, ok := h.currentUser(c)
	if !ok {
		return errors.HandleUnauthorizedError(c, "Authentication required")
	}

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	resp, err := h.notificationService.List(c.Context(), uc.UserID, page, limit)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(resp)
}

// MarkRead handles PUT /notifications/:id/read
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	uc, ok := h.currentUser(c)
	if !ok {
		return errors.HandleUnauthorizedError(c, "Authentication required")
	}

	notificationID, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid notification id")
	}

	if err := h.notificationService.MarkRead(c.Context(), uc.UserID, notificationID); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// MarkAllRead handles PUT /notifications/read-all
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	uc, ok := h.currentUser(c)
	if !ok {
		return errors.HandleUnauthorizedError(c, "Authentication required")
	}

	if err := h.notificationService.MarkAllRead(c.Context(), uc.UserID); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Delete handles DELETE /notifications/:id
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	uc, ok := h.currentUser(c)
	if !ok {
		return errors.HandleUnauthorizedError(c, "Authentication required")
	}

	notificationID, err := uuid.FromString(c.Params("id"))
	if err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid notification id")
	}

	if err := h.notificationService.Delete(c.Context(), uc.UserID, notificationID); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Create handles POST /notifications (admin broadcast channel)
func (h *NotificationHandler) Create(c *fiber.Ctx) error {
	var req models.CreateNotificationRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid JSON body")
	}

	notification, err := h.notificationService.Create(c.Context(), &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(notification)
}

// Socket is the websocket read loop. The JWT middleware runs on the upgrade
// request, so the user context is already in Locals.
func (h *NotificationHandler) Socket(conn *websocket.Conn) {
	uc, ok := conn.Locals(types.UserCtxName).(types.UserContext)
	if !ok || uc.UserID == uuid.Nil {
		_ = conn.Close()
		return
	}

	registered := h.hub.Add(uc.UserID, conn)
	defer h.hub.Remove(registered)

	conn.SetPongHandler(func(string) error {
		registered.Touch()
		return nil
	})

	// Clients only listen; inbound frames just refresh liveness.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		registered.Touch()
	}
}
