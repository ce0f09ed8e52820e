// file: internals/features/school/teachers/model/teacher_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeacherModel struct {
	TeacherID     uuid.UUID  `gorm:"column:teacher_id;type:uuid;default:gen_random_uuid();primaryKey" json:"teacher_id"`
	TeacherUserID *uuid.UUID `gorm:"column:teacher_user_id;type:uuid" json:"teacher_user_id,omitempty"`

	TeacherName     string  `gorm:"column:teacher_name;type:varchar(120);not null" json:"teacher_name"`
	TeacherNIP      *string `gorm:"column:teacher_nip;type:varchar(30);uniqueIndex:uq_teachers_nip" json:"teacher_nip,omitempty"`
	TeacherPhone    *string `gorm:"column:teacher_phone;type:varchar(30)" json:"teacher_phone,omitempty"`
	TeacherSubjects *string `gorm:"column:teacher_subjects;type:text" json:"teacher_subjects,omitempty"`

	TeacherCreatedAt time.Time      `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt time.Time      `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at"`
	TeacherDeletedAt gorm.DeletedAt `gorm:"column:teacher_deleted_at;index" json:"-"`
}

func (TeacherModel) TableName() string { return "teachers" }

func (m *TeacherModel) BeforeCreate(tx *gorm.DB) error {
	if m.TeacherID == uuid.Nil {
		m.TeacherID = uuid.New()
	}
	return nil
}
