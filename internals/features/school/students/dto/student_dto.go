// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/students/model"
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

type CreateStudentRequest struct {
	StudentUserID        *uuid.UUID `json:"student_user_id" validate:"omitempty"`
	StudentName          string     `json:"student_name" validate:"required,min=2,max=120"`
	StudentNIS           *string    `json:"student_nis" validate:"omitempty,max=30"`
	StudentClassroomID   *uuid.UUID `json:"student_classroom_id" validate:"omitempty"`
	StudentGuardianName  *string    `json:"student_guardian_name" validate:"omitempty,max=120"`
	StudentGuardianPhone *string    `json:"student_guardian_phone" validate:"omitempty,max=30"`
}

func (r CreateStudentRequest) ToModel() model.StudentModel {
	return model.StudentModel{
		StudentUserID:        r.StudentUserID,
		StudentName:          strings.TrimSpace(r.StudentName),
		StudentNIS:           trimPtr(r.StudentNIS),
		StudentClassroomID:   r.StudentClassroomID,
		StudentGuardianName:  trimPtr(r.StudentGuardianName),
		StudentGuardianPhone: trimPtr(r.StudentGuardianPhone),
	}
}

type UpdateStudentRequest struct {
	StudentUserID        *uuid.UUID `json:"student_user_id" validate:"omitempty"`
	StudentName          *string    `json:"student_name" validate:"omitempty,min=2,max=120"`
	StudentNIS           *string    `json:"student_nis" validate:"omitempty,max=30"`
	StudentClassroomID   *uuid.UUID `json:"student_classroom_id" validate:"omitempty"`
	StudentGuardianName  *string    `json:"student_guardian_name" validate:"omitempty,max=120"`
	StudentGuardianPhone *string    `json:"student_guardian_phone" validate:"omitempty,max=30"`
}

func (r UpdateStudentRequest) Apply(m *model.StudentModel) {
	if r.StudentUserID != nil {
		m.StudentUserID = r.StudentUserID
	}
	if r.StudentName != nil {
		m.StudentName = strings.TrimSpace(*r.StudentName)
	}
	if r.StudentNIS != nil {
		m.StudentNIS = trimPtr(r.StudentNIS)
	}
	if r.StudentClassroomID != nil {
		m.StudentClassroomID = r.StudentClassroomID
	}
	if r.StudentGuardianName != nil {
		m.StudentGuardianName = trimPtr(r.StudentGuardianName)
	}
	if r.StudentGuardianPhone != nil {
		m.StudentGuardianPhone = trimPtr(r.StudentGuardianPhone)
	}
}

/* ============ RESPONSES ============ */

type StudentResponse struct {
	StudentID            uuid.UUID  `json:"student_id"`
	StudentUserID        *uuid.UUID `json:"student_user_id,omitempty"`
	StudentName          string     `json:"student_name"`
	StudentNIS           *string    `json:"student_nis,omitempty"`
	StudentClassroomID   *uuid.UUID `json:"student_classroom_id,omitempty"`
	StudentGuardianName  *string    `json:"student_guardian_name,omitempty"`
	StudentGuardianPhone *string    `json:"student_guardian_phone,omitempty"`
	StudentCreatedAt     time.Time  `json:"student_created_at"`
}

func FromModel(m model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:            m.StudentID,
		StudentUserID:        m.StudentUserID,
		StudentName:          m.StudentName,
		StudentNIS:           m.StudentNIS,
		StudentClassroomID:   m.StudentClassroomID,
		StudentGuardianName:  m.StudentGuardianName,
		StudentGuardianPhone: m.StudentGuardianPhone,
		StudentCreatedAt:     m.StudentCreatedAt,
	}
}

func FromModels(list []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
