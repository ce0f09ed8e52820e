// file: internals/features/school/classrooms/dto/classroom_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/classrooms/model"
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

// ClassroomCode boleh kosong: controller mengisi kode urut berikutnya.
type CreateClassroomRequest struct {
	ClassroomCode              *string    `json:"classroom_code" validate:"omitempty,max=20"`
	ClassroomName              string     `json:"classroom_name" validate:"required,min=2,max=120"`
	ClassroomCampusID          *uuid.UUID `json:"classroom_campus_id" validate:"omitempty"`
	ClassroomHomeroomTeacherID *uuid.UUID `json:"classroom_homeroom_teacher_id" validate:"omitempty"`
	ClassroomAcademicYear      *string    `json:"classroom_academic_year" validate:"omitempty,max=20"`
	ClassroomCapacity          *int       `json:"classroom_capacity" validate:"omitempty,min=1,max=1000"`
}

func (r CreateClassroomRequest) ToModel() model.ClassroomModel {
	m := model.ClassroomModel{
		ClassroomName:              strings.TrimSpace(r.ClassroomName),
		ClassroomCampusID:          r.ClassroomCampusID,
		ClassroomHomeroomTeacherID: r.ClassroomHomeroomTeacherID,
		ClassroomAcademicYear:      trimPtr(r.ClassroomAcademicYear),
		ClassroomCapacity:          r.ClassroomCapacity,
	}
	if code := trimPtr(r.ClassroomCode); code != nil {
		m.ClassroomCode = *code
	}
	return m
}

type UpdateClassroomRequest struct {
	ClassroomName              *string    `json:"classroom_name" validate:"omitempty,min=2,max=120"`
	ClassroomCampusID          *uuid.UUID `json:"classroom_campus_id" validate:"omitempty"`
	ClassroomHomeroomTeacherID *uuid.UUID `json:"classroom_homeroom_teacher_id" validate:"omitempty"`
	ClassroomAcademicYear      *string    `json:"classroom_academic_year" validate:"omitempty,max=20"`
	ClassroomCapacity          *int       `json:"classroom_capacity" validate:"omitempty,min=1,max=1000"`
}

func (r UpdateClassroomRequest) Apply(m *model.ClassroomModel) {
	if r.ClassroomName != nil {
		m.ClassroomName = strings.TrimSpace(*r.ClassroomName)
	}
	if r.ClassroomCampusID != nil {
		m.ClassroomCampusID = r.ClassroomCampusID
	}
	if r.ClassroomHomeroomTeacherID != nil {
		m.ClassroomHomeroomTeacherID = r.ClassroomHomeroomTeacherID
	}
	if r.ClassroomAcademicYear != nil {
		m.ClassroomAcademicYear = trimPtr(r.ClassroomAcademicYear)
	}
	if r.ClassroomCapacity != nil {
		m.ClassroomCapacity = r.ClassroomCapacity
	}
}

/* ============ RESPONSES ============ */

type ClassroomResponse struct {
	ClassroomID                uuid.UUID  `json:"classroom_id"`
	ClassroomCode              string     `json:"classroom_code"`
	ClassroomName              string     `json:"classroom_name"`
	ClassroomCampusID          *uuid.UUID `json:"classroom_campus_id,omitempty"`
	ClassroomHomeroomTeacherID *uuid.UUID `json:"classroom_homeroom_teacher_id,omitempty"`
	ClassroomAcademicYear      *string    `json:"classroom_academic_year,omitempty"`
	ClassroomCapacity          *int       `json:"classroom_capacity,omitempty"`
	ClassroomCreatedAt         time.Time  `json:"classroom_created_at"`
}

func FromModel(m model.ClassroomModel) ClassroomResponse {
	return ClassroomResponse{
		ClassroomID:                m.ClassroomID,
		ClassroomCode:              m.ClassroomCode,
		ClassroomName:              m.ClassroomName,
		ClassroomCampusID:          m.ClassroomCampusID,
		ClassroomHomeroomTeacherID: m.ClassroomHomeroomTeacherID,
		ClassroomAcademicYear:      m.ClassroomAcademicYear,
		ClassroomCapacity:          m.ClassroomCapacity,
		ClassroomCreatedAt:         m.ClassroomCreatedAt,
	}
}

func FromModels(list []model.ClassroomModel) []ClassroomResponse {
	out := make([]ClassroomResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
