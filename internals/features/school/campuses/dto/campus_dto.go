// file: internals/features/school/campuses/dto/campus_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/campuses/model"
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

type CreateCampusRequest struct {
	CampusName    string  `json:"campus_name"    validate:"required,min=3,max=120"`
	CampusAddress *string `json:"campus_address" validate:"omitempty,max=255"`
	CampusPhone   *string `json:"campus_phone"   validate:"omitempty,max=30"`
}

func (r CreateCampusRequest) ToModel() model.CampusModel {
	return model.CampusModel{
		CampusName:    strings.TrimSpace(r.CampusName),
		CampusAddress: trimPtr(r.CampusAddress),
		CampusPhone:   trimPtr(r.CampusPhone),
	}
}

type UpdateCampusRequest struct {
	CampusName    *string `json:"campus_name"    validate:"omitempty,min=3,max=120"`
	CampusAddress *string `json:"campus_address" validate:"omitempty,max=255"`
	CampusPhone   *string `json:"campus_phone"   validate:"omitempty,max=30"`
}

func (r UpdateCampusRequest) Apply(m *model.CampusModel) {
	if r.CampusName != nil {
		m.CampusName = strings.TrimSpace(*r.CampusName)
	}
	if r.CampusAddress != nil {
		m.CampusAddress = trimPtr(r.CampusAddress)
	}
	if r.CampusPhone != nil {
		m.CampusPhone = trimPtr(r.CampusPhone)
	}
}

/* ============ RESPONSES ============ */

type CampusResponse struct {
	CampusID      uuid.UUID `json:"campus_id"`
	CampusName    string    `json:"campus_name"`
	CampusAddress *string   `json:"campus_address,omitempty"`
	CampusPhone   *string   `json:"campus_phone,omitempty"`
	CampusCreatedAt time.Time `json:"campus_created_at"`
}

func FromModel(m model.CampusModel) CampusResponse {
	return CampusResponse{
		CampusID:        m.CampusID,
		CampusName:      m.CampusName,
		CampusAddress:   m.CampusAddress,
		CampusPhone:     m.CampusPhone,
		CampusCreatedAt: m.CampusCreatedAt,
	}
}

func FromModels(list []model.CampusModel) []CampusResponse {
	out := make([]CampusResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
