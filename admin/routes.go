package admin

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ankitsaini000/rwew-sub002/internal/middleware/authjwt"
	"github.com/ankitsaini000/rwew-sub002/internal/middleware/authrole"
	platformconfig "github.com/ankitsaini000/rwew-sub002/internal/platform/config"
	"github.com/ankitsaini000/rwew-sub002/internal/types"
)

type Handlers struct {
	AdminHandler *Handler
}

func RegisterRoutes(app *fiber.App, handlers *Handlers, cfg *platformconfig.Config) {
	group := app.Group("/admin",
		authjwt.New(authjwt.Config{PublicKey: cfg.JWT.PublicKey}),
		authrole.Require(types.AdminRole),
	)

	h := handlers.AdminHandler
	group.Get("/creators", h.ListCreators)
	group.Put("/creators/:userId/status", h.UpdateCreatorStatus)
}
