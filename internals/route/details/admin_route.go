// file: internals/route/details/admin_route.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolku_backend/internals/constants"
	expenseCategoryController "schoolku_backend/internals/features/finance/expense_categories/controller"
	paymentController "schoolku_backend/internals/features/finance/payments/controller"
	attendanceController "schoolku_backend/internals/features/school/attendance/controller"
	campusController "schoolku_backend/internals/features/school/campuses/controller"
	classroomController "schoolku_backend/internals/features/school/classrooms/controller"
	lessonMaterialController "schoolku_backend/internals/features/school/lesson_materials/controller"
	roomController "schoolku_backend/internals/features/school/rooms/controller"
	scheduleController "schoolku_backend/internals/features/school/schedules/controller"
	studentController "schoolku_backend/internals/features/school/students/controller"
	subjectController "schoolku_backend/internals/features/school/subjects/controller"
	teacherController "schoolku_backend/internals/features/school/teachers/controller"
	userController "schoolku_backend/internals/features/users/user/controller"
	authMiddleware "schoolku_backend/internals/middlewares/auth"
)

// AdminRoutes: endpoint /api/a. Master data & jadwal khusus admin/owner;
// absensi & materi juga boleh diakses teacher.
func AdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	campusCtl := campusController.New(db, v)
	roomCtl := roomController.New(db, v)
	subjectCtl := subjectController.New(db, v)
	teacherCtl := teacherController.New(db, v)
	studentCtl := studentController.New(db, v)
	classroomCtl := classroomController.New(db, v)
	scheduleCtl := scheduleController.New(db, v)
	attendanceCtl := attendanceController.New(db, v)
	lessonMaterialCtl := lessonMaterialController.New(db, v)
	expenseCategoryCtl := expenseCategoryController.New(db, v)
	paymentCtl := paymentController.New(db, v)
	userCtl := userController.New(db, v)

	adminOnly := authMiddleware.RoleMiddleware(constants.AdminAndAbove...)
	staffOnly := authMiddleware.RoleMiddleware(constants.StaffAndAbove...)

	// ===================== MASTER DATA =====================
	admin.Post("/campuses", adminOnly, campusCtl.Create)
	admin.Get("/campuses", adminOnly, campusCtl.List)
	admin.Get("/campuses/:id", adminOnly, campusCtl.GetByID)
	admin.Put("/campuses/:id", adminOnly, campusCtl.Update)
	admin.Delete("/campuses/:id", adminOnly, campusCtl.Delete)

	admin.Post("/rooms", adminOnly, roomCtl.Create)
	admin.Get("/rooms", adminOnly, roomCtl.List)
	admin.Get("/rooms/:id", adminOnly, roomCtl.GetByID)
	admin.Put("/rooms/:id", adminOnly, roomCtl.Update)
	admin.Delete("/rooms/:id", adminOnly, roomCtl.Delete)

	admin.Post("/subjects", adminOnly, subjectCtl.Create)
	admin.Get("/subjects", adminOnly, subjectCtl.List)
	admin.Get("/subjects/:id", adminOnly, subjectCtl.GetByID)
	admin.Put("/subjects/:id", adminOnly, subjectCtl.Update)
	admin.Delete("/subjects/:id", adminOnly, subjectCtl.Delete)

	admin.Post("/teachers", adminOnly, teacherCtl.Create)
	admin.Get("/teachers", adminOnly, teacherCtl.List)
	admin.Get("/teachers/:id", adminOnly, teacherCtl.GetByID)
	admin.Put("/teachers/:id", adminOnly, teacherCtl.Update)
	admin.Delete("/teachers/:id", adminOnly, teacherCtl.Delete)

	admin.Post("/students", adminOnly, studentCtl.Create)
	admin.Get("/students", adminOnly, studentCtl.List)
	admin.Get("/students/:id", adminOnly, studentCtl.GetByID)
	admin.Put("/students/:id", adminOnly, studentCtl.Update)
	admin.Delete("/students/:id", adminOnly, studentCtl.Delete)

	// next-code harus terdaftar sebelum :id.
	admin.Get("/classrooms/next-code", adminOnly, classroomCtl.NextCode)
	admin.Post("/classrooms", adminOnly, classroomCtl.Create)
	admin.Get("/classrooms", adminOnly, classroomCtl.List)
	admin.Get("/classrooms/:id", adminOnly, classroomCtl.GetByID)
	admin.Put("/classrooms/:id", adminOnly, classroomCtl.Update)
	admin.Delete("/classrooms/:id", adminOnly, classroomCtl.Delete)

	// ===================== JADWAL =====================
	admin.Post("/schedules", adminOnly, scheduleCtl.Create)
	admin.Get("/schedules", adminOnly, scheduleCtl.List)
	admin.Get("/schedules/:id", adminOnly, scheduleCtl.GetByID)
	admin.Put("/schedules/:id", adminOnly, scheduleCtl.Update)
	admin.Delete("/schedules/:id", adminOnly, scheduleCtl.Delete)

	// ===================== KEUANGAN =====================
	admin.Get("/expense-categories/next-code", adminOnly, expenseCategoryCtl.NextCode)
	admin.Post("/expense-categories", adminOnly, expenseCategoryCtl.Create)
	admin.Get("/expense-categories", adminOnly, expenseCategoryCtl.List)
	admin.Get("/expense-categories/:id", adminOnly, expenseCategoryCtl.GetByID)
	admin.Put("/expense-categories/:id", adminOnly, expenseCategoryCtl.Update)
	admin.Delete("/expense-categories/:id", adminOnly, expenseCategoryCtl.Delete)

	admin.Post("/payments", adminOnly, paymentCtl.Create)
	admin.Get("/payments", adminOnly, paymentCtl.List)
	admin.Get("/payments/:id", adminOnly, paymentCtl.GetByID)

	// ===================== USER MANAGEMENT =====================
	admin.Get("/users", adminOnly, userCtl.List)
	admin.Get("/users/:id", adminOnly, userCtl.GetByID)
	admin.Put("/users/:id", adminOnly, userCtl.Update)
	admin.Delete("/users/:id", adminOnly, userCtl.Deactivate)

	// ===================== ABSENSI & MATERI (admin + teacher) =====================
	admin.Post("/attendances", staffOnly, attendanceCtl.Create)
	admin.Get("/attendances", staffOnly, attendanceCtl.List)
	admin.Put("/attendances/:id", staffOnly, attendanceCtl.Update)
	admin.Delete("/attendances/:id", staffOnly, attendanceCtl.Delete)

	admin.Post("/lesson-materials", staffOnly, lessonMaterialCtl.Create)
	admin.Get("/lesson-materials", staffOnly, lessonMaterialCtl.List)
	admin.Get("/lesson-materials/:id", staffOnly, lessonMaterialCtl.GetByID)
	admin.Put("/lesson-materials/:id", staffOnly, lessonMaterialCtl.Update)
	admin.Delete("/lesson-materials/:id", staffOnly, lessonMaterialCtl.Delete)
}
