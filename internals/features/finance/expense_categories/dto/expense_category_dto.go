// file: internals/features/finance/expense_categories/dto/expense_category_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/finance/expense_categories/model"
)

/* ============ REQUESTS ============ */

// Kode boleh kosong: controller mengisi kode urut berikutnya.
type CreateExpenseCategoryRequest struct {
	ExpenseCategoryCode *string `json:"expense_category_code" validate:"omitempty,max=10"`
	ExpenseCategoryName string  `json:"expense_category_name" validate:"required,min=2,max=120"`
}

func (r CreateExpenseCategoryRequest) ToModel() model.ExpenseCategoryModel {
	m := model.ExpenseCategoryModel{
		ExpenseCategoryName: strings.TrimSpace(r.ExpenseCategoryName),
	}
	if r.ExpenseCategoryCode != nil {
		m.ExpenseCategoryCode = strings.TrimSpace(*r.ExpenseCategoryCode)
	}
	return m
}

type UpdateExpenseCategoryRequest struct {
	ExpenseCategoryName *string `json:"expense_category_name" validate:"omitempty,min=2,max=120"`
}

func (r UpdateExpenseCategoryRequest) Apply(m *model.ExpenseCategoryModel) {
	if r.ExpenseCategoryName != nil {
		m.ExpenseCategoryName = strings.TrimSpace(*r.ExpenseCategoryName)
	}
}

/* ============ RESPONSES ============ */

type ExpenseCategoryResponse struct {
	ExpenseCategoryID        uuid.UUID `json:"expense_category_id"`
	ExpenseCategoryCode      string    `json:"expense_category_code"`
	ExpenseCategoryName      string    `json:"expense_category_name"`
	ExpenseCategoryCreatedAt time.Time `json:"expense_category_created_at"`
}

func FromModel(m model.ExpenseCategoryModel) ExpenseCategoryResponse {
	return ExpenseCategoryResponse{
		ExpenseCategoryID:        m.ExpenseCategoryID,
		ExpenseCategoryCode:      m.ExpenseCategoryCode,
		ExpenseCategoryName:      m.ExpenseCategoryName,
		ExpenseCategoryCreatedAt: m.ExpenseCategoryCreatedAt,
	}
}

func FromModels(list []model.ExpenseCategoryModel) []ExpenseCategoryResponse {
	out := make([]ExpenseCategoryResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
