package auth

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"rumahjogja_backend/internals/constants"
)

// RoleMiddlewareWithCustomError validasi role + custom error message
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"success": false,
				"error":   "Unauthorized: missing role information",
			})
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "Forbidden: you are not authorized to access this resource"
		}
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"success": false,
			"error":   customForbiddenMessage,
		})
	}
}

// OnlyAdmin membatasi route ke role admin
func OnlyAdmin(feature string) fiber.Handler {
	return RoleMiddlewareWithCustomError(
		[]string{constants.RoleAdmin},
		fmt.Sprintf(constants.ErrOnlyAdminsCanAccess, feature),
	)
}
