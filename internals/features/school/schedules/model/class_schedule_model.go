// file: internals/features/school/schedules/model/class_schedule_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	campusModel "schoolku_backend/internals/features/school/campuses/model"
	classroomModel "schoolku_backend/internals/features/school/classrooms/model"
	roomModel "schoolku_backend/internals/features/school/rooms/model"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	teacherModel "schoolku_backend/internals/features/school/teachers/model"
	"schoolku_backend/internals/helpers/dbtime"
)

// ClassScheduleModel: satu sesi jadwal kelas.
// Hapus = hard delete, update = full replacement (tanpa soft delete).
type ClassScheduleModel struct {
	ClassScheduleID uuid.UUID `gorm:"column:class_schedule_id;type:uuid;default:gen_random_uuid();primaryKey" json:"class_schedule_id"`

	ClassScheduleClassroomID uuid.UUID `gorm:"column:class_schedule_classroom_id;type:uuid;not null;index;uniqueIndex:uq_class_schedules_slot" json:"class_schedule_classroom_id"`
	ClassScheduleSubjectID   uuid.UUID `gorm:"column:class_schedule_subject_id;type:uuid;not null;index" json:"class_schedule_subject_id"`
	ClassScheduleTeacherID   uuid.UUID `gorm:"column:class_schedule_teacher_id;type:uuid;not null;index" json:"class_schedule_teacher_id"`

	// Pilih salah satu: tanggal spesifik, atau hari berulang (0=Minggu ... 6=Sabtu).
	// Jika keduanya diisi, tanggal yang menang.
	// uq_class_schedules_slot harus dibuat NULLS NOT DISTINCT di DB (PG 15+)
	// supaya sesi berulang (date NULL) ikut dijaga index.
	ClassScheduleDayOfWeek *int       `gorm:"column:class_schedule_day_of_week;uniqueIndex:uq_class_schedules_slot" json:"class_schedule_day_of_week,omitempty"`
	ClassScheduleDate      *time.Time `gorm:"column:class_schedule_date;type:date;uniqueIndex:uq_class_schedules_slot" json:"class_schedule_date,omitempty"`

	ClassScheduleStartTime dbtime.Tod `gorm:"column:class_schedule_start_time;type:time;not null;uniqueIndex:uq_class_schedules_slot" json:"class_schedule_start_time"`
	ClassScheduleEndTime   dbtime.Tod `gorm:"column:class_schedule_end_time;type:time;not null" json:"class_schedule_end_time"`

	// Label ruangan selalu terisi; room_id hanya jika label resolve ke master rooms.
	ClassScheduleRoom     string     `gorm:"column:class_schedule_room;type:varchar(50);not null" json:"class_schedule_room"`
	ClassScheduleRoomID   *uuid.UUID `gorm:"column:class_schedule_room_id;type:uuid;index" json:"class_schedule_room_id,omitempty"`
	ClassScheduleCampusID *uuid.UUID `gorm:"column:class_schedule_campus_id;type:uuid;index" json:"class_schedule_campus_id,omitempty"`

	ClassScheduleCreatedAt time.Time `gorm:"column:class_schedule_created_at;autoCreateTime" json:"class_schedule_created_at"`
	ClassScheduleUpdatedAt time.Time `gorm:"column:class_schedule_updated_at;autoUpdateTime" json:"class_schedule_updated_at"`

	// Relasi untuk hidrasi response (read-only).
	Classroom *classroomModel.ClassroomModel `gorm:"foreignKey:ClassScheduleClassroomID;references:ClassroomID" json:"classroom,omitempty"`
	Subject   *subjectModel.SubjectModel     `gorm:"foreignKey:ClassScheduleSubjectID;references:SubjectID" json:"subject,omitempty"`
	Teacher   *teacherModel.TeacherModel     `gorm:"foreignKey:ClassScheduleTeacherID;references:TeacherID" json:"teacher,omitempty"`
	Room      *roomModel.RoomModel           `gorm:"foreignKey:ClassScheduleRoomID;references:RoomID" json:"room,omitempty"`
	Campus    *campusModel.CampusModel       `gorm:"foreignKey:ClassScheduleCampusID;references:CampusID" json:"campus,omitempty"`
}

func (ClassScheduleModel) TableName() string { return "class_schedules" }

func (m *ClassScheduleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ClassScheduleID == uuid.Nil {
		m.ClassScheduleID = uuid.New()
	}
	return nil
}
