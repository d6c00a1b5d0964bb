package categories

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ankitsaini000/rwew-sub002/internal/middleware/authjwt"
	"github.com/ankitsaini000/rwew-sub002/internal/middleware/authrole"
	platformconfig "github.com/ankitsaini000/rwew-sub002/internal/platform/config"
	"github.com/ankitsaini000/rwew-sub002/internal/types"
)

type CategoryHandlers struct {
	CategoryHandler *CategoryHandler
}

func RegisterRoutes(app *fiber.App, handlers *CategoryHandlers, cfg *platformconfig.Config) {
	group := app.Group("/categories")

	jwtMiddleware := authjwt.New(authjwt.Config{
		PublicKey: cfg.JWT.PublicKey,
	})

	group.Get("/", handlers.CategoryHandler.List)
	group.Post("/", jwtMiddleware, authrole.Require(types.AdminRole), handlers.CategoryHandler.Create)
}
