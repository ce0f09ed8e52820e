// file: internals/features/school/lesson_materials/dto/lesson_material_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/lesson_materials/model"
)

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* ============ REQUESTS ============ */

// Dikirim sebagai multipart form; file diproses terpisah oleh controller.
type CreateLessonMaterialRequest struct {
	LessonMaterialClassroomID uuid.UUID `json:"classroom_id" form:"classroom_id" validate:"required"`
	LessonMaterialSubjectID   uuid.UUID `json:"subject_id" form:"subject_id" validate:"required"`
	LessonMaterialTeacherID   uuid.UUID `json:"teacher_id" form:"teacher_id" validate:"required"`
	LessonMaterialTitle       string    `json:"title" form:"title" validate:"required,min=3,max=200"`
	LessonMaterialDescription *string   `json:"description" form:"description" validate:"omitempty,max=2000"`
}

func (r CreateLessonMaterialRequest) ToModel() model.LessonMaterialModel {
	return model.LessonMaterialModel{
		LessonMaterialClassroomID: r.LessonMaterialClassroomID,
		LessonMaterialSubjectID:   r.LessonMaterialSubjectID,
		LessonMaterialTeacherID:   r.LessonMaterialTeacherID,
		LessonMaterialTitle:       strings.TrimSpace(r.LessonMaterialTitle),
		LessonMaterialDescription: trimPtr(r.LessonMaterialDescription),
	}
}

type UpdateLessonMaterialRequest struct {
	LessonMaterialTitle       *string `json:"title" form:"title" validate:"omitempty,min=3,max=200"`
	LessonMaterialDescription *string `json:"description" form:"description" validate:"omitempty,max=2000"`
}

func (r UpdateLessonMaterialRequest) Apply(m *model.LessonMaterialModel) {
	if r.LessonMaterialTitle != nil {
		m.LessonMaterialTitle = strings.TrimSpace(*r.LessonMaterialTitle)
	}
	if r.LessonMaterialDescription != nil {
		m.LessonMaterialDescription = trimPtr(r.LessonMaterialDescription)
	}
}

/* ============ RESPONSES ============ */

type LessonMaterialResponse struct {
	LessonMaterialID          uuid.UUID `json:"lesson_material_id"`
	LessonMaterialClassroomID uuid.UUID `json:"classroom_id"`
	LessonMaterialSubjectID   uuid.UUID `json:"subject_id"`
	LessonMaterialTeacherID   uuid.UUID `json:"teacher_id"`
	LessonMaterialTitle       string    `json:"title"`
	LessonMaterialDescription *string   `json:"description,omitempty"`
	LessonMaterialFileURL     *string   `json:"file_url,omitempty"`
	LessonMaterialCreatedAt   time.Time `json:"created_at"`
}

func FromModel(m model.LessonMaterialModel) LessonMaterialResponse {
	return LessonMaterialResponse{
		LessonMaterialID:          m.LessonMaterialID,
		LessonMaterialClassroomID: m.LessonMaterialClassroomID,
		LessonMaterialSubjectID:   m.LessonMaterialSubjectID,
		LessonMaterialTeacherID:   m.LessonMaterialTeacherID,
		LessonMaterialTitle:       m.LessonMaterialTitle,
		LessonMaterialDescription: m.LessonMaterialDescription,
		LessonMaterialFileURL:     m.LessonMaterialFileURL,
		LessonMaterialCreatedAt:   m.LessonMaterialCreatedAt,
	}
}

func FromModels(list []model.LessonMaterialModel) []LessonMaterialResponse {
	out := make([]LessonMaterialResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
