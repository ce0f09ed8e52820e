// file: internals/features/school/teachers/controller/teacher_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/school/teachers/dto"
	m "schoolku_backend/internals/features/school/teachers/model"
	userModel "schoolku_backend/internals/features/users/user/model"
	helper "schoolku_backend/internals/helpers"
)

type TeacherController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *TeacherController {
	return &TeacherController{DB: db, Validate: v}
}

// ensureUserExists memastikan teacher_user_id (jika diisi) valid.
func (ctl *TeacherController) ensureUserExists(id *uuid.UUID) (bool, error) {
	if id == nil {
		return true, nil
	}
	var n int64
	if err := ctl.DB.Model(&userModel.UserModel{}).
		Where("id = ?", *id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

// POST /api/a/teachers
func (ctl *TeacherController) Create(c *fiber.Ctx) error {
	var req d.CreateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	ok, err := ctl.ensureUserExists(req.TeacherUserID)
	if err != nil {
		return helper.WritePGError(c, err)
	}
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "User tidak ditemukan")
	}

	row := req.ToModel()
	if err := ctl.DB.Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "NIP sudah terdaftar")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Teacher created", d.FromModel(row))
}

// GET /api/a/teachers
func (ctl *TeacherController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&m.TeacherModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("teacher_name ILIKE ? OR teacher_nip ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.TeacherModel
	if err := q.Order("teacher_name ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", d.FromModels(rows), &p)
}

// GET /api/a/teachers/:id
func (ctl *TeacherController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var row m.TeacherModel
	if err := ctl.DB.First(&row, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", d.FromModel(row))
}

// PUT /api/a/teachers/:id
func (ctl *TeacherController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var row m.TeacherModel
	if err := ctl.DB.First(&row, "teacher_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UpdateTeacherRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.TeacherUserID != nil {
		ok, err := ctl.ensureUserExists(req.TeacherUserID)
		if err != nil {
			return helper.WritePGError(c, err)
		}
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "User tidak ditemukan")
		}
	}
	req.Apply(&row)

	if err := ctl.DB.Save(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "NIP sudah terdaftar")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonUpdated(c, "Teacher updated", d.FromModel(row))
}

// DELETE /api/a/teachers/:id (soft delete)
func (ctl *TeacherController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	res := ctl.DB.Delete(&m.TeacherModel{}, "teacher_id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Teacher tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Teacher deleted", fiber.Map{"teacher_id": id})
}
