// file: internals/features/school/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/school/attendance/dto"
	m "schoolku_backend/internals/features/school/attendance/model"
	scheduleModel "schoolku_backend/internals/features/school/schedules/model"
	studentModel "schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *AttendanceController {
	return &AttendanceController{DB: db, Validate: v}
}

// POST /api/a/attendances
func (ctl *AttendanceController) Create(c *fiber.Ctx) error {
	var req d.CreateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var n int64
	if err := ctl.DB.Model(&studentModel.StudentModel{}).
		Where("student_id = ?", req.AttendanceStudentID).Count(&n).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
	}
	if err := ctl.DB.Model(&scheduleModel.ClassScheduleModel{}).
		Where("class_schedule_id = ?", req.AttendanceScheduleID).Count(&n).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	if n == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule tidak ditemukan")
	}

	row, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict,
				"Absensi untuk student, jadwal, dan tanggal ini sudah dicatat")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Attendance recorded", d.FromModel(row))
}

// GET /api/a/attendances
func (ctl *AttendanceController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&m.AttendanceModel{})
	if sid := strings.TrimSpace(c.Query("student_id")); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "student_id tidak valid")
		}
		q = q.Where("attendance_student_id = ?", id)
	}
	if scid := strings.TrimSpace(c.Query("schedule_id")); scid != "" {
		id, err := uuid.Parse(scid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "schedule_id tidak valid")
		}
		q = q.Where("attendance_schedule_id = ?", id)
	}
	if date := strings.TrimSpace(c.Query("date")); date != "" {
		q = q.Where("attendance_date = ?", date)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("attendance_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.AttendanceModel
	if err := q.Order("attendance_date DESC, attendance_created_at DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", d.FromModels(rows), &p)
}

// PUT /api/a/attendances/:id
func (ctl *AttendanceController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var row m.AttendanceModel
	if err := ctl.DB.First(&row, "attendance_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Attendance tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	req.Apply(&row)

	if err := ctl.DB.Save(&row).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Attendance updated", d.FromModel(row))
}

// DELETE /api/a/attendances/:id
func (ctl *AttendanceController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	res := ctl.DB.Delete(&m.AttendanceModel{}, "attendance_id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Attendance tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Attendance deleted", fiber.Map{"attendance_id": id})
}

// GET /api/u/attendances — riwayat absensi milik student yang login.
func (ctl *AttendanceController) ListMine(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	if !helperAuth.IsStudent(c) {
		return helper.JsonError(c, fiber.StatusForbidden, "Hanya untuk siswa")
	}

	var student studentModel.StudentModel
	if err := ctl.DB.First(&student, "student_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profil student tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	var rows []m.AttendanceModel
	if err := ctl.DB.
		Where("attendance_student_id = ?", student.StudentID).
		Order("attendance_date DESC").
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "", d.FromModels(rows), nil)
}
