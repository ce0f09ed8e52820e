// file: internals/route/details/public_route.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "schoolku_backend/internals/features/finance/payments/controller"
)

// PublicRoutes: endpoint tanpa auth (webhook gateway).
func PublicRoutes(public fiber.Router, db *gorm.DB, v *validator.Validate) {
	paymentCtl := paymentController.New(db, v)

	public.Post("/payments/notification", paymentCtl.HandleNotification)
}
