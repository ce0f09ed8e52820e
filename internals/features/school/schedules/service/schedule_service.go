// file: internals/features/school/schedules/service/schedule_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	classroomModel "schoolku_backend/internals/features/school/classrooms/model"
	roomModel "schoolku_backend/internals/features/school/rooms/model"
	model "schoolku_backend/internals/features/school/schedules/model"
	subjectModel "schoolku_backend/internals/features/school/subjects/model"
	teacherModel "schoolku_backend/internals/features/school/teachers/model"
	helper "schoolku_backend/internals/helpers"
)

// ScheduleService menjalankan pipeline upsert jadwal:
// ValidateForeignKeys → ResolveRoom → CheckConflict → CheckDuplicate →
// Persist → HydrateRelations. Linear, tanpa retry; gagal validasi langsung
// berhenti dengan error yang bisa ditampilkan ke klien.
type ScheduleService struct {
	DB *gorm.DB
}

func NewScheduleService(db *gorm.DB) *ScheduleService {
	return &ScheduleService{DB: db}
}

// Create menjalankan pipeline penuh untuk sesi baru.
func (s *ScheduleService) Create(row *model.ClassScheduleModel) error {
	return s.upsert(row, nil)
}

// Update menjalankan pipeline yang sama, tanpa menghitung sesi itu sendiri
// sebagai kandidat bentrok.
func (s *ScheduleService) Update(row *model.ClassScheduleModel) error {
	id := row.ClassScheduleID
	return s.upsert(row, &id)
}

func (s *ScheduleService) upsert(row *model.ClassScheduleModel, excludeID *uuid.UUID) error {
	classroom, err := s.validateForeignKeys(row)
	if err != nil {
		return err
	}

	// Campus: request menang, fallback ke campus classroom. resolveRoom masih
	// bisa mengisi dari master room bila keduanya kosong.
	if row.ClassScheduleCampusID == nil {
		row.ClassScheduleCampusID = classroom.ClassroomCampusID
	}

	if err := s.resolveRoom(row); err != nil {
		return err
	}

	if row.ClassScheduleCampusID == nil {
		return ErrMissingCampus
	}

	// Tanggal spesifik menang atas weekday berulang.
	if row.ClassScheduleDate != nil {
		row.ClassScheduleDayOfWeek = nil
	}
	if row.ClassScheduleDate == nil && row.ClassScheduleDayOfWeek == nil {
		return ErrMissingDaySelector
	}
	if row.ClassScheduleEndTime.Minutes() <= row.ClassScheduleStartTime.Minutes() {
		return ErrInvalidTimeRange
	}

	slot := SessionSlot{
		ClassroomID: row.ClassScheduleClassroomID,
		DayOfWeek:   row.ClassScheduleDayOfWeek,
		Date:        row.ClassScheduleDate,
		Start:       row.ClassScheduleStartTime,
		End:         row.ClassScheduleEndTime,
		Room:        row.ClassScheduleRoom,
		RoomID:      row.ClassScheduleRoomID,
		CampusID:    *row.ClassScheduleCampusID,
		ExcludeID:   excludeID,
	}

	if err := CheckRoomConflict(s.DB, slot); err != nil {
		return err
	}
	if err := CheckDuplicate(s.DB, slot); err != nil {
		return err
	}

	// Persist. Cek di atas hanya advisory (look-then-act); unique violation
	// di sini berarti kalah balapan dan diperlakukan sebagai duplicate.
	var persistErr error
	if excludeID == nil {
		persistErr = s.DB.Create(row).Error
	} else {
		persistErr = s.DB.Save(row).Error
	}
	if persistErr != nil {
		if helper.IsUniqueViolation(persistErr) {
			return &DuplicateError{}
		}
		return persistErr
	}

	return s.hydrate(row)
}

// validateForeignKeys memastikan classroom, subject, teacher ada.
// Classroom dikembalikan karena campus-nya dipakai sebagai fallback.
func (s *ScheduleService) validateForeignKeys(row *model.ClassScheduleModel) (*classroomModel.ClassroomModel, error) {
	var classroom classroomModel.ClassroomModel
	if err := s.DB.First(&classroom, "classroom_id = ?", row.ClassScheduleClassroomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "Classroom"}
		}
		return nil, err
	}

	var n int64
	if err := s.DB.Model(&subjectModel.SubjectModel{}).
		Where("subject_id = ?", row.ClassScheduleSubjectID).Count(&n).Error; err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, &NotFoundError{Entity: "Subject"}
	}

	if err := s.DB.Model(&teacherModel.TeacherModel{}).
		Where("teacher_id = ?", row.ClassScheduleTeacherID).Count(&n).Error; err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, &NotFoundError{Entity: "Teacher"}
	}

	return &classroom, nil
}

// resolveRoom menormalkan referensi ruangan ke pasangan id/label kanonik:
// - room_id diisi → ambil master room, label ikut master, campus ikut room
//   bila belum diisi.
// - hanya label → coba cocokkan ke master rooms (label + campus); tidak
//   ketemu bukan error, label bebas tetap sah.
func (s *ScheduleService) resolveRoom(row *model.ClassScheduleModel) error {
	if row.ClassScheduleRoomID != nil {
		var room roomModel.RoomModel
		if err := s.DB.First(&room, "room_id = ?", *row.ClassScheduleRoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Entity: "Room"}
			}
			return err
		}
		row.ClassScheduleRoom = room.RoomCode
		if row.ClassScheduleCampusID == nil {
			campusID := room.RoomCampusID
			row.ClassScheduleCampusID = &campusID
		}
		return nil
	}

	if row.ClassScheduleRoom == "" {
		return &NotFoundError{Entity: "Room"}
	}
	if row.ClassScheduleCampusID == nil {
		return nil // lookup master butuh campus; label bebas tetap sah
	}

	var room roomModel.RoomModel
	err := s.DB.First(&room,
		"room_code = ? AND room_campus_id = ?",
		row.ClassScheduleRoom, *row.ClassScheduleCampusID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	roomID := room.RoomID
	row.ClassScheduleRoomID = &roomID
	return nil
}

// hydrate mengisi relasi untuk response (read-aggregation saja).
func (s *ScheduleService) hydrate(row *model.ClassScheduleModel) error {
	return s.DB.
		Preload("Classroom").
		Preload("Subject").
		Preload("Teacher").
		Preload("Room").
		Preload("Campus").
		First(row, "class_schedule_id = ?", row.ClassScheduleID).Error
}
