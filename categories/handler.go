package categories

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ankitsaini000/rwew-sub002/categories/models"
	"github.com/ankitsaini000/rwew-sub002/categories/services"
)

type CategoryHandler struct {
	categoryService services.CategoryService
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List handles GET /categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.categoryService.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"code":    "DATABASE_OPERATION_FAILED",
			"message": "Failed to load categories",
		})
	}
	return c.JSON(categories)
}

// Create handles POST /categories (admin only)
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req models.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "INVALID_REQUEST",
			"message": "Invalid JSON body",
		})
	}

	category, err := h.categoryService.Create(c.Context(), &req)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"code":    "VALIDATION_FAILED",
			"message": err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}
