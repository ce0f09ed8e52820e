// file: internals/features/school/lesson_materials/model/lesson_material_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type LessonMaterialModel struct {
	LessonMaterialID uuid.UUID `gorm:"column:lesson_material_id;type:uuid;default:gen_random_uuid();primaryKey" json:"lesson_material_id"`

	LessonMaterialClassroomID uuid.UUID `gorm:"column:lesson_material_classroom_id;type:uuid;not null;index" json:"lesson_material_classroom_id"`
	LessonMaterialSubjectID   uuid.UUID `gorm:"column:lesson_material_subject_id;type:uuid;not null;index" json:"lesson_material_subject_id"`
	LessonMaterialTeacherID   uuid.UUID `gorm:"column:lesson_material_teacher_id;type:uuid;not null;index" json:"lesson_material_teacher_id"`

	LessonMaterialTitle       string  `gorm:"column:lesson_material_title;type:varchar(200);not null" json:"lesson_material_title"`
	LessonMaterialDescription *string `gorm:"column:lesson_material_description;type:text" json:"lesson_material_description,omitempty"`
	LessonMaterialFileURL     *string `gorm:"column:lesson_material_file_url;type:text" json:"lesson_material_file_url,omitempty"`

	LessonMaterialCreatedAt time.Time      `gorm:"column:lesson_material_created_at;autoCreateTime" json:"lesson_material_created_at"`
	LessonMaterialUpdatedAt time.Time      `gorm:"column:lesson_material_updated_at;autoUpdateTime" json:"lesson_material_updated_at"`
	LessonMaterialDeletedAt gorm.DeletedAt `gorm:"column:lesson_material_deleted_at;index" json:"-"`
}

func (LessonMaterialModel) TableName() string { return "lesson_materials" }

func (m *LessonMaterialModel) BeforeCreate(tx *gorm.DB) error {
	if m.LessonMaterialID == uuid.Nil {
		m.LessonMaterialID = uuid.New()
	}
	return nil
}
