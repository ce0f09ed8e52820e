// file: internals/features/school/attendance/model/attendance_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	AttendancePresent = "present"
	AttendanceSick    = "sick"
	AttendanceLeave   = "leave"
	AttendanceAbsent  = "absent"
)

type AttendanceModel struct {
	AttendanceID uuid.UUID `gorm:"column:attendance_id;type:uuid;default:gen_random_uuid();primaryKey" json:"attendance_id"`

	AttendanceStudentID  uuid.UUID `gorm:"column:attendance_student_id;type:uuid;not null;index;uniqueIndex:uq_attendances_entry" json:"attendance_student_id"`
	AttendanceScheduleID uuid.UUID `gorm:"column:attendance_schedule_id;type:uuid;not null;index;uniqueIndex:uq_attendances_entry" json:"attendance_schedule_id"`
	AttendanceDate       time.Time `gorm:"column:attendance_date;type:date;not null;uniqueIndex:uq_attendances_entry" json:"attendance_date"`

	AttendanceStatus string  `gorm:"column:attendance_status;type:varchar(10);not null" json:"attendance_status"`
	AttendanceNote   *string `gorm:"column:attendance_note;type:text" json:"attendance_note,omitempty"`

	AttendanceCreatedAt time.Time `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at"`
}

func (AttendanceModel) TableName() string { return "attendances" }

func (m *AttendanceModel) BeforeCreate(tx *gorm.DB) error {
	if m.AttendanceID == uuid.Nil {
		m.AttendanceID = uuid.New()
	}
	return nil
}
