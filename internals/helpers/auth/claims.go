// file: internals/helpers/auth/claims.go
package auth

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"schoolku_backend/internals/constants"
)

// Klaim dasar diisi oleh middleware auth ke c.Locals:
// "user_id" (string uuid), "userRole" (string), "user_name" (string).

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || strings.TrimSpace(raw) == "" {
		return uuid.Nil, fmt.Errorf("user_id tidak ditemukan di token")
	}
	return uuid.Parse(raw)
}

func GetRoleFromToken(c *fiber.Ctx) string {
	role, _ := c.Locals("userRole").(string)
	return role
}

func IsOwner(c *fiber.Ctx) bool   { return GetRoleFromToken(c) == constants.RoleOwner }
func IsAdmin(c *fiber.Ctx) bool   { return GetRoleFromToken(c) == constants.RoleAdmin }
func IsTeacher(c *fiber.Ctx) bool { return GetRoleFromToken(c) == constants.RoleTeacher }
func IsStudent(c *fiber.Ctx) bool { return GetRoleFromToken(c) == constants.RoleStudent }

// CanManageMasterData: owner/admin saja
func CanManageMasterData(c *fiber.Ctx) bool {
	return IsOwner(c) || IsAdmin(c)
}
