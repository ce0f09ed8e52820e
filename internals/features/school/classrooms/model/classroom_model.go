// file: internals/features/school/classrooms/model/classroom_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ClassroomModel struct {
	ClassroomID uuid.UUID `gorm:"column:classroom_id;type:uuid;default:gen_random_uuid();primaryKey" json:"classroom_id"`

	// Kode urut (Class0001, Class0002, ...) — unik global.
	ClassroomCode string `gorm:"column:classroom_code;type:varchar(20);not null;uniqueIndex:uq_classrooms_code" json:"classroom_code"`

	ClassroomName     string     `gorm:"column:classroom_name;type:varchar(120);not null" json:"classroom_name"`
	ClassroomCampusID *uuid.UUID `gorm:"column:classroom_campus_id;type:uuid" json:"classroom_campus_id,omitempty"`

	ClassroomHomeroomTeacherID *uuid.UUID `gorm:"column:classroom_homeroom_teacher_id;type:uuid" json:"classroom_homeroom_teacher_id,omitempty"`
	ClassroomAcademicYear      *string    `gorm:"column:classroom_academic_year;type:varchar(20)" json:"classroom_academic_year,omitempty"`
	ClassroomCapacity          *int       `gorm:"column:classroom_capacity" json:"classroom_capacity,omitempty"`

	ClassroomCreatedAt time.Time      `gorm:"column:classroom_created_at;autoCreateTime" json:"classroom_created_at"`
	ClassroomUpdatedAt time.Time      `gorm:"column:classroom_updated_at;autoUpdateTime" json:"classroom_updated_at"`
	ClassroomDeletedAt gorm.DeletedAt `gorm:"column:classroom_deleted_at;index" json:"-"`
}

func (ClassroomModel) TableName() string { return "classrooms" }

func (m *ClassroomModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassroomID == uuid.Nil {
		m.ClassroomID = uuid.New()
	}
	return nil
}
