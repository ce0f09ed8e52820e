// file: internals/features/finance/expense_categories/controller/expense_category_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	d "schoolku_backend/internals/features/finance/expense_categories/dto"
	m "schoolku_backend/internals/features/finance/expense_categories/model"
	helper "schoolku_backend/internals/helpers"
)

const (
	expenseCodePrefix = "DM"
	expenseCodeWidth  = 3
	expenseCodeMax    = 999
)

type ExpenseCategoryController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func New(db *gorm.DB, v *validator.Validate) *ExpenseCategoryController {
	return &ExpenseCategoryController{DB: db, Validate: v}
}

// GET /api/a/expense-categories/next-code
// Preview saja — kode benar-benar dipakai saat create.
func (ctl *ExpenseCategoryController) NextCode(c *fiber.Ctx) error {
	code, err := helper.NextSequentialCode(ctl.DB, "expense_categories", "expense_category_code",
		expenseCodePrefix, expenseCodeWidth, expenseCodeMax)
	if err != nil {
		if errors.Is(err, helper.ErrSequenceExhausted) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode kategori sudah habis")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", fiber.Map{"next_code": code})
}

// POST /api/a/expense-categories
func (ctl *ExpenseCategoryController) Create(c *fiber.Ctx) error {
	var req d.CreateExpenseCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	row := req.ToModel()
	if row.ExpenseCategoryCode == "" {
		code, err := helper.NextSequentialCode(ctl.DB, "expense_categories", "expense_category_code",
			expenseCodePrefix, expenseCodeWidth, expenseCodeMax)
		if err != nil {
			if errors.Is(err, helper.ErrSequenceExhausted) {
				return helper.JsonError(c, fiber.StatusConflict, "Kode kategori sudah habis")
			}
			return helper.WritePGError(c, err)
		}
		row.ExpenseCategoryCode = code
	}

	if err := ctl.DB.Create(&row).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Kode kategori sudah dipakai")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonCreated(c, "Expense category created", d.FromModel(row))
}

// GET /api/a/expense-categories
func (ctl *ExpenseCategoryController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&m.ExpenseCategoryModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("expense_category_name ILIKE ? OR expense_category_code ILIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	var rows []m.ExpenseCategoryModel
	if err := q.Order("expense_category_code ASC").
		Limit(paging.Limit).Offset(paging.Offset).
		Find(&rows).Error; err != nil {
		return helper.WritePGError(c, err)
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "", d.FromModels(rows), &p)
}

// GET /api/a/expense-categories/:id
func (ctl *ExpenseCategoryController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var row m.ExpenseCategoryModel
	if err := ctl.DB.First(&row, "expense_category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Expense category tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}
	return helper.JsonOK(c, "", d.FromModel(row))
}

// PUT /api/a/expense-categories/:id — kode tidak bisa diubah.
func (ctl *ExpenseCategoryController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var row m.ExpenseCategoryModel
	if err := ctl.DB.First(&row, "expense_category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Expense category tidak ditemukan")
		}
		return helper.WritePGError(c, err)
	}

	var req d.UpdateExpenseCategoryRequest
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
	return helper.JsonUpdated(c, "Expense category updated", d.FromModel(row))
}

// DELETE /api/a/expense-categories/:id (soft delete — kode tidak di-backfill)
func (ctl *ExpenseCategoryController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	res := ctl.DB.Delete(&m.ExpenseCategoryModel{}, "expense_category_id = ?", id)
	if res.Error != nil {
		return helper.WritePGError(c, res.Error)
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Expense category tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Expense category deleted", fiber.Map{"expense_category_id": id})
}
