// internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "schoolku_backend/internals/features/users/auth/service"
	helpers "schoolku_backend/internals/helpers"
)

type AuthController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AuthController {
	return &AuthController{DB: db, Validate: v}
}

// POST /api/auth/register
func (ctl *AuthController) Register(c *fiber.Ctx) error {
	var input authService.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(input); err != nil {
		return helpers.ValidationError(c, err)
	}
	return authService.Register(ctl.DB, c, input)
}

// POST /api/auth/login
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var input authService.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(input); err != nil {
		return helpers.ValidationError(c, err)
	}
	return authService.Login(ctl.DB, c, input)
}

// POST /api/auth/login-google
func (ctl *AuthController) LoginGoogle(c *fiber.Ctx) error {
	return authService.LoginGoogle(ctl.DB, c)
}

// POST /api/auth/refresh-token
func (ctl *AuthController) RefreshToken(c *fiber.Ctx) error {
	return authService.RefreshToken(ctl.DB, c)
}

// POST /api/auth/logout
func (ctl *AuthController) Logout(c *fiber.Ctx) error {
	return authService.Logout(ctl.DB, c)
}
