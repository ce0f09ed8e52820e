// file: internals/features/school/classrooms/controller/classroom_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	campusModel "schoolku_backend/internals/features/school/campuses/model"
	d "schoolku_backend/internals/features/school/classrooms/dto"
	m "schoolku_backend/internals/features/school/classrooms/model"
	helper "schoolku_backend/internals/helpers"
)

const (
	classroomCodePrefix = "Class"
	classroomCodeWidth  = 4
	classroomCodeMax    = 9999
)

type ClassroomController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ClassroomController {
	return &ClassroomController{DB: db, Validate: v}
}

// GET /api/a/classrooms/next-code
// Preview saja — kode baru benar-benar dipakai saat create.
func (ctl *ClassroomController) NextCode(c *fiber.Ctx) error {
	code, err := helper.NextSequentialCode(ctl.DB, "classrooms", "classroom_code",
		classroomCodePrefix, classroomCodeWidth, classroomCodeMax)
	if err != nil {
		if errors.Is(err, helper.ErrSequenceExhausted) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode kelas sudah habis")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", fiber.Map{"next_code": code})
}

// POST /api/a/classrooms
func (ctl *ClassroomController) Create(c *fiber.Ctx) error {
	var req d.CreateClassroomRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	if req.ClassroomCampusID != nil {
		var n int64
		if err := ctl.DB.Model(&campusModel.CampusModel{}).
			Where("campus_id = ?", *req.ClassroomCampusID).Count(&n).Error; err != nil {
			return helper.WritePGError(c, err)
		}
		if n == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Campus tidak ditemukan")
		}
	}

	row := req.ToModel()
	if row.ClassroomCode == "" {
		code, err := helper.NextSequentialCode(ctl.DB, "classrooms", "classroom_code",
			classroomCodePrefix, classroomCodeWidth, classroomCodeMax)
		if err != nil {
			if errors.Is(err, helper.ErrSequenceExhausted) {
				return helper.JsonError(c, fiber.StatusConflict, "Kode kelas sudah habis")
			}
			return helper.WritePGError(c, err)
		}
		row.ClassroomCode = code
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode kelas sudah dipakai")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Classroom created", d.FromModel(row))
}

// GET /api/a/classrooms
func (ctl *ClassroomController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&m.ClassroomModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("classroom_name ILIKE ? OR classroom_code ILIKE ?", like, like)
	}
	if cid := strings.TrimSpace(c.Query("campus_id")); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "campus_id tidak valid")
		}
		q = q.Where("classroom_campus_id = ?", id)
	}
	if year := strings.TrimSpace(c.Query("academic_year")); year != "" {
		q = q.Where("classroom_academic_year = ?", year)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.ClassroomModel
	if err := q.Order("classroom_code ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", d.FromModels(rows), &p)
}

// GET /api/a/classrooms/:id
func (ctl *ClassroomController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var row m.ClassroomModel
	if err := ctl.DB.First(&row, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Classroom tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", d.FromModel(row))
}

// PUT /api/a/classrooms/:id — kode tidak bisa diubah lewat update.
func (ctl *ClassroomController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var row m.ClassroomModel
	if err := ctl.DB.First(&row, "classroom_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Classroom tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UpdateClassroomRequest
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
	return helper.JsonUpdated(c, "Classroom updated", d.FromModel(row))
}

// DELETE /api/a/classrooms/:id (soft delete — kode tidak di-backfill)
func (ctl *ClassroomController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	res := ctl.DB.Delete(&m.ClassroomModel{}, "classroom_id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Classroom tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Classroom deleted", fiber.Map{"classroom_id": id})
}
