// file: internals/features/school/campuses/model/campus_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CampusModel struct {
	CampusID uuid.UUID `gorm:"type:uuid;primaryKey;column:campus_id" json:"campus_id"`

	CampusName    string  `gorm:"size:120;not null;column:campus_name" json:"campus_name"`
	CampusAddress *string `gorm:"column:campus_address" json:"campus_address,omitempty"`
	CampusPhone   *string `gorm:"size:30;column:campus_phone" json:"campus_phone,omitempty"`

	CampusCreatedAt time.Time      `gorm:"column:campus_created_at;autoCreateTime" json:"campus_created_at"`
	CampusUpdatedAt time.Time      `gorm:"column:campus_updated_at;autoUpdateTime" json:"campus_updated_at"`
	CampusDeletedAt gorm.DeletedAt `gorm:"column:campus_deleted_at;index" json:"-"`
}

func (CampusModel) TableName() string { return "campuses" }

func (m *CampusModel) BeforeCreate(tx *gorm.DB) error {
	if m.CampusID == uuid.Nil {
		m.CampusID = uuid.New()
	}
	return nil
}
