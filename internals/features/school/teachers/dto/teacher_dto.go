// file: internals/features/school/teachers/dto/teacher_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/teachers/model"
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

type CreateTeacherRequest struct {
	TeacherUserID   *uuid.UUID `json:"teacher_user_id" validate:"omitempty"`
	TeacherName     string     `json:"teacher_name" validate:"required,min=2,max=120"`
	TeacherNIP      *string    `json:"teacher_nip" validate:"omitempty,max=30"`
	TeacherPhone    *string    `json:"teacher_phone" validate:"omitempty,max=30"`
	TeacherSubjects *string    `json:"teacher_subjects" validate:"omitempty,max=500"`
}

func (r CreateTeacherRequest) ToModel() model.TeacherModel {
	return model.TeacherModel{
		TeacherUserID:   r.TeacherUserID,
		TeacherName:     strings.TrimSpace(r.TeacherName),
		TeacherNIP:      trimPtr(r.TeacherNIP),
		TeacherPhone:    trimPtr(r.TeacherPhone),
		TeacherSubjects: trimPtr(r.TeacherSubjects),
	}
}

type UpdateTeacherRequest struct {
	TeacherUserID   *uuid.UUID `json:"teacher_user_id" validate:"omitempty"`
	TeacherName     *string    `json:"teacher_name" validate:"omitempty,min=2,max=120"`
	TeacherNIP      *string    `json:"teacher_nip" validate:"omitempty,max=30"`
	TeacherPhone    *string    `json:"teacher_phone" validate:"omitempty,max=30"`
	TeacherSubjects *string    `json:"teacher_subjects" validate:"omitempty,max=500"`
}

func (r UpdateTeacherRequest) Apply(m *model.TeacherModel) {
	if r.TeacherUserID != nil {
		m.TeacherUserID = r.TeacherUserID
	}
	if r.TeacherName != nil {
		m.TeacherName = strings.TrimSpace(*r.TeacherName)
	}
	if r.TeacherNIP != nil {
		m.TeacherNIP = trimPtr(r.TeacherNIP)
	}
	if r.TeacherPhone != nil {
		m.TeacherPhone = trimPtr(r.TeacherPhone)
	}
	if r.TeacherSubjects != nil {
		m.TeacherSubjects = trimPtr(r.TeacherSubjects)
	}
}

/* ============ RESPONSES ============ */

type TeacherResponse struct {
	TeacherID        uuid.UUID  `json:"teacher_id"`
	TeacherUserID    *uuid.UUID `json:"teacher_user_id,omitempty"`
	TeacherName      string     `json:"teacher_name"`
	TeacherNIP       *string    `json:"teacher_nip,omitempty"`
	TeacherPhone     *string    `json:"teacher_phone,omitempty"`
	TeacherSubjects  *string    `json:"teacher_subjects,omitempty"`
	TeacherCreatedAt time.Time  `json:"teacher_created_at"`
}

func FromModel(m model.TeacherModel) TeacherResponse {
	return TeacherResponse{
		TeacherID:        m.TeacherID,
		TeacherUserID:    m.TeacherUserID,
		TeacherName:      m.TeacherName,
		TeacherNIP:       m.TeacherNIP,
		TeacherPhone:     m.TeacherPhone,
		TeacherSubjects:  m.TeacherSubjects,
		TeacherCreatedAt: m.TeacherCreatedAt,
	}
}

func FromModels(list []model.TeacherModel) []TeacherResponse {
	out := make([]TeacherResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
