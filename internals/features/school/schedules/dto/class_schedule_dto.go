// file: internals/features/school/schedules/dto/class_schedule_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	model "schoolku_backend/internals/features/school/schedules/model"
	"schoolku_backend/internals/helpers/dbtime"
)

/* ============ REQUESTS ============ */

// Create dan update memakai bentuk yang sama (update = full replacement).
type UpsertClassScheduleRequest struct {
	ClassScheduleClassroomID uuid.UUID `json:"classroom_id" validate:"required"`
	ClassScheduleSubjectID   uuid.UUID `json:"subject_id" validate:"required"`
	ClassScheduleTeacherID   uuid.UUID `json:"teacher_id" validate:"required"`

	ClassScheduleDayOfWeek *int    `json:"day_of_week" validate:"omitempty,min=0,max=6"`
	ClassScheduleDate      *string `json:"date" validate:"omitempty,datetime=2006-01-02"`

	ClassScheduleStartTime string `json:"start_time" validate:"required"`
	ClassScheduleEndTime   string `json:"end_time" validate:"required"`

	ClassScheduleRoom     string     `json:"room" validate:"omitempty,max=50"`
	ClassScheduleRoomID   *uuid.UUID `json:"room_id" validate:"omitempty"`
	ClassScheduleCampusID *uuid.UUID `json:"campus_id" validate:"omitempty"`
}

// ToModel parse jam & tanggal; error parse dikembalikan sebagai pesan klien.
func (r UpsertClassScheduleRequest) ToModel() (model.ClassScheduleModel, error) {
	start, err := dbtime.Parse(r.ClassScheduleStartTime)
	if err != nil {
		return model.ClassScheduleModel{}, fmt.Errorf("start_time tidak valid: %s", r.ClassScheduleStartTime)
	}
	end, err := dbtime.Parse(r.ClassScheduleEndTime)
	if err != nil {
		return model.ClassScheduleModel{}, fmt.Errorf("end_time tidak valid: %s", r.ClassScheduleEndTime)
	}

	var date *time.Time
	if r.ClassScheduleDate != nil && strings.TrimSpace(*r.ClassScheduleDate) != "" {
		d, err := time.Parse("2006-01-02", strings.TrimSpace(*r.ClassScheduleDate))
		if err != nil {
			return model.ClassScheduleModel{}, fmt.Errorf("date tidak valid: %s", *r.ClassScheduleDate)
		}
		date = &d
	}

	return model.ClassScheduleModel{
		ClassScheduleClassroomID: r.ClassScheduleClassroomID,
		ClassScheduleSubjectID:   r.ClassScheduleSubjectID,
		ClassScheduleTeacherID:   r.ClassScheduleTeacherID,
		ClassScheduleDayOfWeek:   r.ClassScheduleDayOfWeek,
		ClassScheduleDate:        date,
		ClassScheduleStartTime:   start,
		ClassScheduleEndTime:     end,
		ClassScheduleRoom:        strings.TrimSpace(r.ClassScheduleRoom),
		ClassScheduleRoomID:      r.ClassScheduleRoomID,
		ClassScheduleCampusID:    r.ClassScheduleCampusID,
	}, nil
}

/* ============ RESPONSES ============ */

type ScheduleRelResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ClassScheduleResponse struct {
	ClassScheduleID uuid.UUID `json:"class_schedule_id"`

	ClassroomID uuid.UUID `json:"classroom_id"`
	SubjectID   uuid.UUID `json:"subject_id"`
	TeacherID   uuid.UUID `json:"teacher_id"`

	DayOfWeek *int    `json:"day_of_week,omitempty"`
	Date      *string `json:"date,omitempty"`
	StartTime string  `json:"start_time"`
	EndTime   string  `json:"end_time"`

	Room     string     `json:"room"`
	RoomID   *uuid.UUID `json:"room_id,omitempty"`
	CampusID *uuid.UUID `json:"campus_id,omitempty"`

	Classroom *ScheduleRelResponse `json:"classroom,omitempty"`
	Subject   *ScheduleRelResponse `json:"subject,omitempty"`
	Teacher   *ScheduleRelResponse `json:"teacher,omitempty"`
	Campus    *ScheduleRelResponse `json:"campus,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func FromModel(m model.ClassScheduleModel) ClassScheduleResponse {
	resp := ClassScheduleResponse{
		ClassScheduleID: m.ClassScheduleID,
		ClassroomID:     m.ClassScheduleClassroomID,
		SubjectID:       m.ClassScheduleSubjectID,
		TeacherID:       m.ClassScheduleTeacherID,
		DayOfWeek:       m.ClassScheduleDayOfWeek,
		StartTime:       m.ClassScheduleStartTime.Short(),
		EndTime:         m.ClassScheduleEndTime.Short(),
		Room:            m.ClassScheduleRoom,
		RoomID:          m.ClassScheduleRoomID,
		CampusID:        m.ClassScheduleCampusID,
		CreatedAt:       m.ClassScheduleCreatedAt,
	}
	if m.ClassScheduleDate != nil {
		d := m.ClassScheduleDate.Format("2006-01-02")
		resp.Date = &d
	}
	if m.Classroom != nil {
		resp.Classroom = &ScheduleRelResponse{ID: m.Classroom.ClassroomID, Name: m.Classroom.ClassroomName}
	}
	if m.Subject != nil {
		resp.Subject = &ScheduleRelResponse{ID: m.Subject.SubjectID, Name: m.Subject.SubjectName}
	}
	if m.Teacher != nil {
		resp.Teacher = &ScheduleRelResponse{ID: m.Teacher.TeacherID, Name: m.Teacher.TeacherName}
	}
	if m.Campus != nil {
		resp.Campus = &ScheduleRelResponse{ID: m.Campus.CampusID, Name: m.Campus.CampusName}
	}
	return resp
}

func FromModels(list []model.ClassScheduleModel) []ClassScheduleResponse {
	out := make([]ClassScheduleResponse, 0, len(list))
	for _, m := range list {
		out = append(out, FromModel(m))
	}
	return out
}
