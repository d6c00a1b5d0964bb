package creators

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ankitsaini000/rwew-sub002/creators/models"
	"github.com/ankitsaini000/rwew-sub002/internal/middleware/authjwt"
	platformconfig "github.com/ankitsaini000/rwew-sub002/internal/platform/config"
)

type CreatorHandlers struct {
	CreatorHandler *CreatorHandler
}

func RegisterRoutes(app *fiber.App, handlers *CreatorHandlers, cfg *platformconfig.Config) {
	group := app.Group("/creators")

	jwtMiddleware := authjwt.New(authjwt.Config{
		PublicKey: cfg.JWT.PublicKey,
	})

	h := handlers.CreatorHandler

	// Public routes. Keep the fixed paths above the :username catch-all.
	group.Get("/username-available/:username", h.CheckUsername)

	// Owner routes
	group.Post("/", jwtMiddleware, h.CreateProfile)
	group.Get("/me", jwtMiddleware, h.ReadMyProfile)
	group.Put("/me", jwtMiddleware, h.UpdateSections)
	group.Get("/profile-data", jwtMiddleware, h.GetProfileData)
	group.Get("/completion-status", jwtMiddleware, h.GetCompletionStatus)
	group.Delete("/me/drafts", jwtMiddleware, h.ResetDrafts)

	// Single-section submits, one fixed path per wizard step
	group.Post("/personal-info", jwtMiddleware, h.SubmitSection(models.SectionPersonalInfo))
	group.Post("/professional-info", jwtMiddleware, h.SubmitSection(models.SectionProfessionalInfo))
	group.Post("/description-faq", jwtMiddleware, h.SubmitSection(models.SectionDescriptionFaq))
	group.Post("/pricing", jwtMiddleware, h.SubmitSection(models.SectionPricing))
	group.Post("/gallery", jwtMiddleware, h.SubmitSection(models.SectionGalleryPortfolio))
	group.Post("/social-media", jwtMiddleware, h.SubmitSection(models.SectionSocialMedia))

	// Publish verification flow
	group.Post("/publish/start", jwtMiddleware, h.StartPublish)
	group.Post("/publish/phone", jwtMiddleware, h.SubmitPhone)
	group.Post("/publish/phone/verify", jwtMiddleware, h.VerifyPhone)
	group.Post("/publish/email/verify", jwtMiddleware, h.VerifyEmail)
	group.Get("/publish", jwtMiddleware, h.PublishStatus)
	// PUT is the transport-level fallback clients use when POST fails
	group.Post("/publish", jwtMiddleware, h.Publish)
	group.Put("/publish", jwtMiddleware, h.Publish)

	// Public profile page, last so it does not shadow the fixed paths
	group.Get("/:username", h.GetByUsername)
}
