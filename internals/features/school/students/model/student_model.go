// file: internals/features/school/students/model/student_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudentModel struct {
	StudentID     uuid.UUID  `gorm:"column:student_id;type:uuid;default:gen_random_uuid();primaryKey" json:"student_id"`
	StudentUserID *uuid.UUID `gorm:"column:student_user_id;type:uuid" json:"student_user_id,omitempty"`

	StudentName        string     `gorm:"column:student_name;type:varchar(120);not null" json:"student_name"`
	StudentNIS         *string    `gorm:"column:student_nis;type:varchar(30);uniqueIndex:uq_students_nis" json:"student_nis,omitempty"`
	StudentClassroomID *uuid.UUID `gorm:"column:student_classroom_id;type:uuid" json:"student_classroom_id,omitempty"`

	StudentGuardianName  *string `gorm:"column:student_guardian_name;type:varchar(120)" json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string `gorm:"column:student_guardian_phone;type:varchar(30)" json:"student_guardian_phone,omitempty"`

	StudentCreatedAt time.Time      `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (StudentModel) TableName() string { return "students" }

func (m *StudentModel) BeforeCreate(tx *gorm.DB) error {
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	return nil
}
