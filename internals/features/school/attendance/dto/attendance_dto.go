// file: internals/features/school/attendance/dto/attendance_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/attendance/model"
)

/* ============ REQUESTS ============ */

type CreateAttendanceRequest struct {
	AttendanceStudentID  uuid.UUID `json:"student_id" validate:"required"`
	AttendanceScheduleID uuid.UUID `json:"schedule_id" validate:"required"`
	AttendanceDate       string    `json:"date" validate:"required,datetime=2006-01-02"`
	AttendanceStatus     string    `json:"status" validate:"required,oneof=present sick leave absent"`
	AttendanceNote       *string   `json:"note" validate:"omitempty,max=500"`
}

func (r CreateAttendanceRequest) ToModel() (model.AttendanceModel, error) {
	d, err := time.Parse("2006-01-02", strings.TrimSpace(r.AttendanceDate))
	if err != nil {
		return model.AttendanceModel{}, fmt.Errorf("date tidak valid: %s", r.AttendanceDate)
	}
	var note *string
	if r.AttendanceNote != nil {
		if v := strings.TrimSpace(*r.AttendanceNote); v != "" {
			note = &v
		}
	}
	return model.AttendanceModel{
		AttendanceStudentID:  r.AttendanceStudentID,
		AttendanceScheduleID: r.AttendanceScheduleID,
		AttendanceDate:       d,
		AttendanceStatus:     r.AttendanceStatus,
		AttendanceNote:       note,
	}, nil
}

type UpdateAttendanceRequest struct {
	AttendanceStatus *string `json:"status" validate:"omitempty,oneof=present sick leave absent"`
	AttendanceNote   *string `json:"note" validate:"omitempty,max=500"`
}

func (r UpdateAttendanceRequest) Apply(m *model.AttendanceModel) {
	if r.AttendanceStatus != nil {
		m.AttendanceStatus = *r.AttendanceStatus
	}
	if r.AttendanceNote != nil {
		if v := strings.TrimSpace(*r.AttendanceNote); v != "" {
			m.AttendanceNote = &v
		} else {
			m.AttendanceNote = nil
		}
	}
}

/* ============ RESPONSES ============ */

type AttendanceResponse struct {
	AttendanceID         uuid.UUID `json:"attendance_id"`
	AttendanceStudentID  uuid.UUID `json:"student_id"`
	AttendanceScheduleID uuid.UUID `json:"schedule_id"`
	AttendanceDate       string    `json:"date"`
	AttendanceStatus     string    `json:"status"`
	AttendanceNote       *string   `json:"note,omitempty"`
	AttendanceCreatedAt  time.Time `json:"created_at"`
}

func FromModel(m model.AttendanceModel) AttendanceResponse {
	return AttendanceResponse{
		AttendanceID:         m.AttendanceID,
		AttendanceStudentID:  m.AttendanceStudentID,
		AttendanceScheduleID: m.AttendanceScheduleID,
		AttendanceDate:       m.AttendanceDate.Format("2006-01-02"),
		AttendanceStatus:     m.AttendanceStatus,
		AttendanceNote:       m.AttendanceNote,
		AttendanceCreatedAt:  m.AttendanceCreatedAt,
	}
}

func FromModels(list []model.AttendanceModel) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
