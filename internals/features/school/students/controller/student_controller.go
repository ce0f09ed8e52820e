// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classroomModel "schoolku_backend/internals/features/school/classrooms/model"
	d "schoolku_backend/internals/features/school/students/dto"
	m "schoolku_backend/internals/features/school/students/model"
	helper "schoolku_backend/internals/helpers"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *StudentController {
	return &StudentController{DB: db, Validate: v}
}

func (ctl *StudentController) ensureClassroomExists(id *uuid.UUID) (bool, error) {
	if id == nil {
		return true, nil
	}
	var n int64
	if err := ctl.DB.Model(&classroomModel.ClassroomModel{}).
		Where("classroom_id = ?", *id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// POST /api/a/students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	var req d.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ok, err := ctl.ensureClassroomExists(req.StudentClassroomID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Classroom tidak ditemukan")
	}

	row := req.ToModel()
	if err := ctl.DB.Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "NIS sudah terdaftar")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Student created", d.FromModel(row))
}

// GET /api/a/students
func (ctl *StudentController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&m.StudentModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("student_name ILIKE ? OR student_nis ILIKE ?", like, like)
	}
	if cid := strings.TrimSpace(c.Query("classroom_id")); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "classroom_id tidak valid")
		}
		q = q.Where("student_classroom_id = ?", id)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.StudentModel
	if err := q.Order("student_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", d.FromModels(rows), &p)
}

// GET /api/a/students/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var row m.StudentModel
	if err := ctl.DB.First(&row, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", d.FromModel(row))
}

// PUT /api/a/students/:id
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var row m.StudentModel
	if err := ctl.DB.First(&row, "student_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.StudentClassroomID != nil {
		ok, err := ctl.ensureClassroomExists(req.StudentClassroomID)
		if err != nil {
			return helper.WritePGError(c, err)
		}
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "Classroom tidak ditemukan")
		}
	}
	req.Apply(&row)

	if err := ctl.DB.Save(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "NIS sudah terdaftar")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Student updated", d.FromModel(row))
}

// DELETE /api/a/students/:id (soft delete)
func (ctl *StudentController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	res := ctl.DB.Delete(&m.StudentModel{}, "student_id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Student deleted", fiber.Map{"student_id": id})
}
