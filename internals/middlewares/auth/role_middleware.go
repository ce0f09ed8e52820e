package auth

import (
	"github.com/gofiber/fiber/v2"
)

// RoleMiddleware membatasi akses berdasarkan klaim role di token
func RoleMiddleware(allowedRoles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(allowedRoles, "Akses ditolak: role Anda tidak diizinkan")
}

// RoleMiddlewareWithCustomError validasi role + custom error message
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("userRole").(string)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized: missing role information",
			})
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"message": customForbiddenMessage,
		})
	}
}
