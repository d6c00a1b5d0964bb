package authrole

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ankitsaini000/rwew-sub002/internal/types"
)

// Require returns a middleware that rejects requests whose authenticated user
// does not carry one of the allowed roles. It must run after the JWT
// middleware has populated the user context.
func Require(roles ...string) fiber.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, role := range roles {
		allowed[role] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		uc, ok := c.Locals(types.UserCtxName).(types.UserContext)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"code":    "UNAUTHORIZED",
				"message": "Authentication required",
			})
		}

		if _, ok := allowed[uc.SystemRole]; !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"code":    "ACCESS_FORBIDDEN",
				"message": "Insufficient role",
			})
		}
		return c.Next()
	}
}
