// file: internals/features/school/subjects/dto/subject_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/subjects/model"
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

type CreateSubjectRequest struct {
	SubjectName string  `json:"subject_name" validate:"required,min=2,max=120"`
	SubjectCode *string `json:"subject_code" validate:"omitempty,max=30"`
}

func (r CreateSubjectRequest) ToModel() model.SubjectModel {
	return model.SubjectModel{
		SubjectName: strings.TrimSpace(r.SubjectName),
		SubjectCode: trimPtr(r.SubjectCode),
	}
}

type UpdateSubjectRequest struct {
	SubjectName *string `json:"subject_name" validate:"omitempty,min=2,max=120"`
	SubjectCode *string `json:"subject_code" validate:"omitempty,max=30"`
}

func (r UpdateSubjectRequest) Apply(m *model.SubjectModel) {
	if r.SubjectName != nil {
		m.SubjectName = strings.TrimSpace(*r.SubjectName)
	}
	if r.SubjectCode != nil {
		m.SubjectCode = trimPtr(r.SubjectCode)
	}
}

/* ============ RESPONSES ============ */

type SubjectResponse struct {
	SubjectID        uuid.UUID `json:"subject_id"`
	SubjectName      string    `json:"subject_name"`
	SubjectCode      *string   `json:"subject_code,omitempty"`
	SubjectCreatedAt time.Time `json:"subject_created_at"`
}

func FromModel(m model.SubjectModel) SubjectResponse {
	return SubjectResponse{
		SubjectID:        m.SubjectID,
		SubjectName:      m.SubjectName,
		SubjectCode:      m.SubjectCode,
		SubjectCreatedAt: m.SubjectCreatedAt,
	}
}

func FromModels(list []model.SubjectModel) []SubjectResponse {
	out := make([]SubjectResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
