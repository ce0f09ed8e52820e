// file: internals/features/school/rooms/dto/room_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/rooms/model"
)

/* ============ REQUESTS ============ */

type CreateRoomRequest struct {
	RoomCode     string `json:"room_code"      validate:"required,min=1,max=50"`
	RoomCampusID string `json:"room_campus_id" validate:"required,uuid"`
	RoomCapacity *int   `json:"room_capacity"  validate:"omitempty,min=1"`
	RoomFloor    *int   `json:"room_floor"     validate:"omitempty"`
}

func (r CreateRoomRequest) ToModel() model.RoomModel {
	campusID, _ := uuid.Parse(r.RoomCampusID)
	return model.RoomModel{
		RoomCode:     strings.TrimSpace(r.RoomCode),
		RoomCampusID: campusID,
		RoomCapacity: r.RoomCapacity,
		RoomFloor:    r.RoomFloor,
	}
}

type UpdateRoomRequest struct {
	RoomCode     *string `json:"room_code"      validate:"omitempty,min=1,max=50"`
	RoomCampusID *string `json:"room_campus_id" validate:"omitempty,uuid"`
	RoomCapacity *int    `json:"room_capacity"  validate:"omitempty,min=1"`
	RoomFloor    *int    `json:"room_floor"     validate:"omitempty"`
}

func (r UpdateRoomRequest) Apply(m *model.RoomModel) {
	if r.RoomCode != nil {
		m.RoomCode = strings.TrimSpace(*r.RoomCode)
	}
	if r.RoomCampusID != nil {
		if id, err := uuid.Parse(*r.RoomCampusID); err == nil {
			m.RoomCampusID = id
		}
	}
	if r.RoomCapacity != nil {
		m.RoomCapacity = r.RoomCapacity
	}
	if r.RoomFloor != nil {
		m.RoomFloor = r.RoomFloor
	}
}

/* ============ RESPONSES ============ */

type RoomResponse struct {
	RoomID        uuid.UUID `json:"room_id"`
	RoomCode      string    `json:"room_code"`
	RoomCampusID  uuid.UUID `json:"room_campus_id"`
	RoomCapacity  *int      `json:"room_capacity,omitempty"`
	RoomFloor     *int      `json:"room_floor,omitempty"`
	RoomCreatedAt time.Time `json:"room_created_at"`
}

func FromModel(m model.RoomModel) RoomResponse {
	return RoomResponse{
		RoomID:        m.RoomID,
		RoomCode:      m.RoomCode,
		RoomCampusID:  m.RoomCampusID,
		RoomCapacity:  m.RoomCapacity,
		RoomFloor:     m.RoomFloor,
		RoomCreatedAt: m.RoomCreatedAt,
	}
}

func FromModels(list []model.RoomModel) []RoomResponse {
	out := make([]RoomResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
