// file: internals/features/school/schedules/controller/class_schedule_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/school/schedules/dto"
	m "schoolku_backend/internals/features/school/schedules/model"
	"schoolku_backend/internals/features/school/schedules/service"
	studentModel "schoolku_backend/internals/features/school/students/model"
	teacherModel "schoolku_backend/internals/features/school/teachers/model"
	helper "schoolku_backend/internals/helpers"
	helperAuth "schoolku_backend/internals/helpers/auth"
)

type ClassScheduleController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Service  *service.ScheduleService
}

func New(db *gorm.DB, v *validator.Validate) *ClassScheduleController {
	return &ClassScheduleController{DB: db, Validate: v, Service: service.NewScheduleService(db)}
}

// writeScheduleError memetakan error pipeline ke status HTTP.
func writeScheduleError(c *fiber.Ctx, err error) error {
	var nf *service.NotFoundError
	if errors.As(err, &nf) {
		return helper.JsonError(c, fiber.StatusNotFound, nf.Error())
	}

	var conflict *service.ConflictError
	var dup *service.DuplicateError
	switch {
	case errors.As(err, &conflict),
		errors.As(err, &dup),
		errors.Is(err, service.ErrMissingCampus),
		errors.Is(err, service.ErrMissingDaySelector),
		errors.Is(err, service.ErrInvalidTimeRange):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	return helper.WritePGError(c, err)
}

// POST /api/a/schedules
func (ctl *ClassScheduleController) Create(c *fiber.Ctx) error {
	var req d.UpsertClassScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if err := ctl.Service.Create(&row); err != nil {
		return writeScheduleError(c, err)
	}
	return helper.JsonCreated(c, "Schedule created", d.FromModel(row))
}

// PUT /api/a/schedules/:id — full replacement; sesi ini sendiri tidak
// dihitung sebagai kandidat bentrok.
func (ctl *ClassScheduleController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var existing m.ClassScheduleModel
	if err := ctl.DB.First(&existing, "class_schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Schedule tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UpsertClassScheduleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row, err := req.ToModel()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	row.ClassScheduleID = existing.ClassScheduleID
	row.ClassScheduleCreatedAt = existing.ClassScheduleCreatedAt

	if err := ctl.Service.Update(&row); err != nil {
		return writeScheduleError(c, err)
	}
	return helper.JsonUpdated(c, "Schedule updated", d.FromModel(row))
}

// GET /api/a/schedules
func (ctl *ClassScheduleController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&m.ClassScheduleModel{})
	if cid := strings.TrimSpace(c.Query("classroom_id")); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "classroom_id tidak valid")
		}
		q = q.Where("class_schedule_classroom_id = ?", id)
	}
	if tid := strings.TrimSpace(c.Query("teacher_id")); tid != "" {
		id, err := uuid.Parse(tid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "teacher_id tidak valid")
		}
		q = q.Where("class_schedule_teacher_id = ?", id)
	}
	if dow := strings.TrimSpace(c.Query("day_of_week")); dow != "" {
		q = q.Where("class_schedule_day_of_week = ?", dow)
	}
	if date := strings.TrimSpace(c.Query("date")); date != "" {
		q = q.Where("class_schedule_date = ?", date)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.ClassScheduleModel
	if err := q.
		Preload("Classroom").Preload("Subject").Preload("Teacher").Preload("Campus").
		Order("class_schedule_day_of_week ASC NULLS LAST, class_schedule_date ASC NULLS LAST, class_schedule_start_time ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", d.FromModels(rows), &p)
}

// GET /api/a/schedules/:id
func (ctl *ClassScheduleController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var row m.ClassScheduleModel
	if err := ctl.DB.
		Preload("Classroom").Preload("Subject").Preload("Teacher").Preload("Room").Preload("Campus").
		First(&row, "class_schedule_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Schedule tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", d.FromModel(row))
}

// DELETE /api/a/schedules/:id — hard delete.
func (ctl *ClassScheduleController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	res := ctl.DB.Delete(&m.ClassScheduleModel{}, "class_schedule_id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Schedule tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Schedule deleted", fiber.Map{"class_schedule_id": id})
}

// GET /api/u/schedules — jadwal kelas milik student yang sedang login.
// User ber-role teacher mendapat jadwal mengajarnya sendiri.
func (ctl *ClassScheduleController) ListMine(c *fiber.Ctx) error {
	userID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	if helperAuth.IsTeacher(c) {
		var teacher teacherModel.TeacherModel
		if err := ctl.DB.First(&teacher, "teacher_user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helper.JsonError(c, fiber.StatusNotFound, "Profil teacher tidak ditemukan")
			}
			return helper.WritePGError(c, err)
		}
		var rows []m.ClassScheduleModel
		if err := ctl.DB.
			Preload("Classroom").Preload("Subject").
			Where("class_schedule_teacher_id = ?", teacher.TeacherID).
			Order("class_schedule_day_of_week ASC NULLS LAST, class_schedule_start_time ASC").
			Find(&rows).Error; err != nil {
			return helper.WritePGError(c, err)
		}
		return helper.JsonList(c, "", d.FromModels(rows), nil)
	}

	var student studentModel.StudentModel
	if err := ctl.DB.First(&student, "student_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Profil student tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	if student.StudentClassroomID == nil {
		return helper.JsonList(c, "", []d.ClassScheduleResponse{}, nil)
	}

	var rows []m.ClassScheduleModel
	if err := ctl.DB.
		Preload("Subject").Preload("Teacher").
		Where("class_schedule_classroom_id = ?", *student.StudentClassroomID).
		Order("class_schedule_day_of_week ASC NULLS LAST, class_schedule_start_time ASC").
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}
	return helper.JsonList(c, "", d.FromModels(rows), nil)
}
