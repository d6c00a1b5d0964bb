package notifications

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"

	"github.com/ankitsaini000/rwew-sub002/internal/middleware/authjwt"
	"github.com/ankitsaini000/rwew-sub002/internal/middleware/authrole"
	platformconfig "github.com/ankitsaini000/rwew-sub002/internal/platform/config"
	"github.com/ankitsaini000/rwew-sub002/internal/types"
)

type NotificationHandlers struct {
	NotificationHandler *NotificationHandler
}

func RegisterRoutes(app *fiber.App, handlers *NotificationHandlers, cfg *platformconfig.Config) {
	group := app.Group("/notifications")

	jwtMiddleware := authjwt.New(authjwt.Config{
		PublicKey: cfg.JWT.PublicKey,
	})

	h := handlers.NotificationHandler

	group.Get("/", jwtMiddleware, h.List)
	group.Put("/read-all", jwtMiddleware, h.MarkAllRead)
	group.Put("/:id/read", jwtMiddleware, h.MarkRead)
	group.Delete("/:id", jwtMiddleware, h.Delete)

	// Direct creation is an admin tool; lifecycle events come from services.
	group.Post("/", jwtMiddleware, authrole.Require(types.AdminRole), h.Create)

	// Realtime channel. The handshake carries the JWT as a query parameter.
	group.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	group.Get("/ws", jwtMiddleware, websocket.New(h.Socket))
}
