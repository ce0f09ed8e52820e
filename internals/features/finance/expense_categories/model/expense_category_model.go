// file: internals/features/finance/expense_categories/model/expense_category_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ExpenseCategoryModel struct {
	ExpenseCategoryID uuid.UUID `gorm:"column:expense_category_id;type:uuid;default:gen_random_uuid();primaryKey" json:"expense_category_id"`

	// Kode urut (DM001, DM002, ...) — unik global.
	ExpenseCategoryCode string `gorm:"column:expense_category_code;type:varchar(10);not null;uniqueIndex:uq_expense_categories_code" json:"expense_category_code"`
	ExpenseCategoryName string `gorm:"column:expense_category_name;type:varchar(120);not null" json:"expense_category_name"`

	ExpenseCategoryCreatedAt time.Time      `gorm:"column:expense_category_created_at;autoCreateTime" json:"expense_category_created_at"`
	ExpenseCategoryUpdatedAt time.Time      `gorm:"column:expense_category_updated_at;autoUpdateTime" json:"expense_category_updated_at"`
	ExpenseCategoryDeletedAt gorm.DeletedAt `gorm:"column:expense_category_deleted_at;index" json:"-"`
}

func (ExpenseCategoryModel) TableName() string { return "expense_categories" }

func (m *ExpenseCategoryModel) BeforeCreate(tx *gorm.DB) error {
	if m.ExpenseCategoryID == uuid.Nil {
		m.ExpenseCategoryID = uuid.New()
	}
	return nil
}
