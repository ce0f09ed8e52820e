// file: internals/route/details/user_route.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "schoolku_backend/internals/features/finance/payments/controller"
	attendanceController "schoolku_backend/internals/features/school/attendance/controller"
	scheduleController "schoolku_backend/internals/features/school/schedules/controller"
	userController "schoolku_backend/internals/features/users/user/controller"
)

// UserRoutes: endpoint /api/u — butuh JWT, semua role.
func UserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	userCtl := userController.New(db, v)
	scheduleCtl := scheduleController.New(db, v)
	attendanceCtl := attendanceController.New(db, v)
	paymentCtl := paymentController.New(db, v)

	user.Get("/me", userCtl.Me)

	user.Get("/schedules", scheduleCtl.ListMine)
	user.Get("/attendances", attendanceCtl.ListMine)
	user.Get("/payments", paymentCtl.ListMine)
}
