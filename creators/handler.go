package creators

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofrs/uuid"

	"github.com/ankitsaini000/rwew-sub002/creators/errors"
	"github.com/ankitsaini000/rwew-sub002/creators/models"
	"github.com/ankitsaini000/rwew-sub002/creators/publish"
	"github.com/ankitsaini000/rwew-sub002/creators/services"
	"github.com/ankitsaini000/rwew-sub002/internal/types"
)

type CreatorHandler struct {
	creatorService services.CreatorService
	publishService *publish.Service
}

func NewCreatorHandler(creatorService services.CreatorService, publishService *publish.Service) *CreatorHandler {
	return &CreatorHandler{
		creatorService: creatorService,
		publishService: publishService,
	}
}

func (h *CreatorHandler) currentUser(c *fiber.Ctx) (types.UserContext, bool) {
	uc, ok := c.Locals(types.UserCtxName).(types.UserContext)
	return uc, ok && uc.UserID != uuid.Nil
}

// CreateProfile handles POST /creators
func (h *CreatorHandler) CreateProfile(c *fiber.Ctx) error {
	uc, ok := h.currentUser(c)
	if !ok {
		return errors.HandleUnauthorizedError(c, "Authentication required")
	}

	var req models.CreateCreatorRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid JSON body")
	}

	creator, err := h.creatorService.CreateProfile(c.Context(), uc.UserID, &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(creator)
}

// ReadMyProfile handles GET /creators/me
func (h *CreatorHandler) ReadMyProfile(c *fiber.Ctx) error {
	uc, ok := h.currentUser(c)
	if !ok {
		return errors.HandleUnauthorizedError(c, "Authentication required")
	}

	creator, err := h.creatorService.GetMyProfile(c.Context(), uc.UserID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(creator)
}

// UpdateSections handles PUT /creators/me
func (h *CreatorHandler) UpdateSections(c *fiber.Ctx) error {
	uc, ok := h.currentUser(c)
	if !ok {
		return errors.HandleUnauthorizedError(c, "Authentication required")
	}

	var req models.UpdateSectionsRequest
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid JSON body")
	}

	creator, err := h.creatorService.UpdateSections(c.Context(), uc.UserID, &req)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(creator)
}

// SubmitSection returns a handler for the fixed single-section endpoints
// (POST /creators/personal-info and friends). The body is the bare section
// object.
func (h *CreatorHandler) SubmitSection(section string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		uc, ok := h.currentUser(c)
		if !ok {
			return errors.HandleUnauthorizedError(c, "Authentication required")
		}

		req, err := sectionRequest(c, section)
		if err != nil {
			return errors.HandleInvalidRequestError(c, err.Error())
		}

		creator, err := h.creatorService.UpdateSections(c.Context(), uc.UserID, req)
		if err != nil {
			return errors.HandleServiceError(c, err)
		}
		return c.JSON(creator)
	}
}

// GetProfileData handles GET /creators/profile-data: the persisted document
// with draft overlays for the onboarding wizard.
func (h *CreatorHandler) GetProfileData(c *fiber.Ctx) error {
	uc, ok := h.currentUser(c)
	if !ok {
		return errors.HandleUnauthorizedError(c, "Authentication required")
	}

	creator, err := h.creatorService.GetProfileData(c.Context(), uc.UserID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(creator)
}

// GetCompletionStatus handles GET /creators/completion-status
func (h *CreatorHandler) GetCompletionStatus(c *fiber.Ctx) error {
	uc, ok := h.currentUser(c)
	if !ok {
		return errors.HandleUnauthorizedError(c, "Authentication required")
	}

	resp, err := h.creatorService.GetCompletionStatus(c.Context(), uc.UserID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(resp)
}

// ResetDrafts handles DELETE /creators/me/drafts
func (h *CreatorHandler) ResetDrafts(c *fiber.Ctx) error {
	uc, ok := h.currentUser(c)
	if !ok {
		return errors.HandleUnauthorizedError(c, "Authentication required")
	}

	if err := h.creatorService.ResetDrafts(c.Context(), uc.UserID); err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CheckUsername handles GET /creators/username-available/:username
func (h *CreatorHandler) CheckUsername(c *fiber.Ctx) error {
	resp, err := h.creatorService.CheckUsername(c.Context(), c.Params("username"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(resp)
}

// GetByUsername handles GET /creators/:username (public profile page)
func (h *CreatorHandler) GetByUsername(c *fiber.Ctx) error {
	creator, err := h.creatorService.GetByUsername(c.Context(), c.Params("username"))
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(creator)
}

// StartPublish handles POST /creators/publish/start
func (h *CreatorHandler) StartPublish(c *fiber.Ctx) error {
	uc, ok := h.currentUser(c)
	if !ok {
		return errors.HandleUnauthorizedError(c, "Authentication required")
	}

	var req struct {
		Email string `json:"email"`
	}
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid JSON body")
	}

	view, err := h.publishService.Start(c.Context(), uc.UserID, req.Email)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(view)
}

// SubmitPhone handles POST /creators/publish/phone
func (h *CreatorHandler) SubmitPhone(c *fiber.Ctx) error {
	uc, ok := h.currentUser(c)
	if !ok {
		return errors.HandleUnauthorizedError(c, "Authentication required")
	}

	var req struct {
		Phone string `json:"phone"`
	}
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid JSON body")
	}

	view, err := h.publishService.SubmitPhone(c.Context(), uc.UserID, req.Phone)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(view)
}

// VerifyPhone handles POST /creators/publish/phone/verify
func (h *CreatorHandler) VerifyPhone(c *fiber.Ctx) error {
	uc, ok := h.currentUser(c)
	if !ok {
		return errors.HandleUnauthorizedError(c, "Authentication required")
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid JSON body")
	}

	view, err := h.publishService.VerifyPhone(c.Context(), uc.UserID, req.Code, c.IP())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(view)
}

// VerifyEmail handles POST /creators/publish/email/verify
func (h *CreatorHandler) VerifyEmail(c *fiber.Ctx) error {
	uc, ok := h.currentUser(c)
	if !ok {
		return errors.HandleUnauthorizedError(c, "Authentication required")
	}

	var req struct {
		Code string `json:"code"`
	}
	if err := c.BodyParser(&req); err != nil {
		return errors.HandleInvalidRequestError(c, "Invalid JSON body")
	}

	view, err := h.publishService.VerifyEmail(c.Context(), uc.UserID, req.Code, c.IP())
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(view)
}

// PublishStatus handles GET /creators/publish
func (h *CreatorHandler) PublishStatus(c *fiber.Ctx) error {
	uc, ok := h.currentUser(c)
	if !ok {
		return errors.HandleUnauthorizedError(c, "Authentication required")
	}

	view, err := h.publishService.Status(c.Context(), uc.UserID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(view)
}

// Publish handles POST and PUT /creators/publish
func (h *CreatorHandler) Publish(c *fiber.Ctx) error {
	uc, ok := h.currentUser(c)
	if !ok {
		return errors.HandleUnauthorizedError(c, "Authentication required")
	}

	creator, err := h.publishService.Finalize(c.Context(), uc.UserID)
	if err != nil {
		return errors.HandleServiceError(c, err)
	}
	return c.JSON(creator)
}

// sectionRequest lifts a bare section payload into an UpdateSectionsRequest.
func sectionRequest(c *fiber.Ctx, section string) (*models.UpdateSectionsRequest, error) {
	req := &models.UpdateSectionsRequest{}

	switch section {
	case models.SectionPersonalInfo:
		var payload models.PersonalInfo
		if err := c.BodyParser(&payload); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
		}
		req.PersonalInfo = &payload
	case models.SectionProfessionalInfo:
		var payload models.ProfessionalInfo
		if err := c.BodyParser(&payload); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
		}
		req.ProfessionalInfo = &payload
	case models.SectionDescriptionFaq:
		var payload models.DescriptionFaq
		if err := c.BodyParser(&payload); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
		}
		req.DescriptionFaq = &payload
	case models.SectionPricing:
		var payload models.Pricing
		if err := c.BodyParser(&payload); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
		}
		req.Pricing = &payload
	case models.SectionGalleryPortfolio:
		var payload models.GalleryPortfolio
		if err := c.BodyParser(&payload); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
		}
		req.GalleryPortfolio = &payload
	case models.SectionSocialMedia:
		var payload models.SocialMedia
		if err := c.BodyParser(&payload); err != nil {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Invalid JSON body")
		}
		req.SocialMedia = &payload
	default:
		return nil, fiber.NewError(fiber.StatusBadRequest, "Unknown section: "+section)
	}

	return req, nil
}
