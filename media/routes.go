package media

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ankitsaini000/rwew-sub002/internal/middleware/authjwt"
	platformconfig "github.com/ankitsaini000/rwew-sub002/internal/platform/config"
)

type MediaHandlers struct {
	MediaHandler *MediaHandler
}

func RegisterRoutes(app *fiber.App, handlers *MediaHandlers, cfg *platformconfig.Config) {
	group := app.Group("/media")

	jwtMiddleware := authjwt.New(authjwt.Config{
		PublicKey: cfg.JWT.PublicKey,
	})

	group.Post("/upload-url", jwtMiddleware, handlers.MediaHandler.RequestUpload)
	group.Delete("/", jwtMiddleware, handlers.MediaHandler.Delete)
}
