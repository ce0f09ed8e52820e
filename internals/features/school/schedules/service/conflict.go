// file: internals/features/school/schedules/service/conflict.go
package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	model "schoolku_backend/internals/features/school/schedules/model"
	"schoolku_backend/internals/helpers/dbtime"
)

/* ===============================
   Error jenis validasi jadwal
=================================*/

// ErrMissingCampus: classroom tidak punya campus dan request tidak mengisi campus_id.
var ErrMissingCampus = errors.New("kelas belum terhubung ke campus dan campus_id tidak diisi")

// ErrMissingDaySelector: sesi harus punya day_of_week ATAU date.
var ErrMissingDaySelector = errors.New("day_of_week atau date wajib diisi")

// ErrInvalidTimeRange: interval half-open butuh end_time > start_time.
var ErrInvalidTimeRange = errors.New("end_time harus lebih besar dari start_time")

// ConflictError: bentrok ruangan/waktu dengan sesi lain.
type ConflictError struct {
	Room  string
	Start dbtime.Tod
	End   dbtime.Tod
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Jadwal bentrok: ruangan %s sudah dipakai pada %s - %s",
		e.Room, e.Start.Short(), e.End.Short())
}

// DuplicateError: kelas yang sama sudah punya sesi di hari & jam mulai yang sama.
type DuplicateError struct{}

func (e *DuplicateError) Error() string {
	return "Jadwal untuk kelas ini pada hari dan jam mulai yang sama sudah ada"
}

// NotFoundError: entitas rujukan (classroom/subject/teacher/room) tidak ada.
type NotFoundError struct{ Entity string }

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s tidak ditemukan", e.Entity)
}

/* ===============================
   Predicate overlap
=================================*/

// Overlap menguji dua interval half-open [s1,e1) dan [s2,e2).
// Batas yang saling menyentuh (e1 == s2) TIDAK dianggap bentrok.
func Overlap(s1, e1, s2, e2 dbtime.Tod) bool {
	return s1.Minutes() < e2.Minutes() && s2.Minutes() < e1.Minutes()
}

/* ===============================
   Slot usulan + pencarian kandidat
=================================*/

// SessionSlot adalah sesi usulan yang mau dicek sebelum disimpan.
type SessionSlot struct {
	ClassroomID uuid.UUID
	DayOfWeek   *int       // dipakai kalau Date nil
	Date        *time.Time // tanggal spesifik menang atas DayOfWeek
	Start       dbtime.Tod
	End         dbtime.Tod
	Room        string
	RoomID      *uuid.UUID
	CampusID    uuid.UUID
	ExcludeID   *uuid.UUID // sesi yang sedang di-update, dilewati dari kandidat
}

// applyDaySelector: tanggal spesifik hanya dicek terhadap tanggal yang sama;
// weekday berulang hanya terhadap weekday sama TANPA tanggal. Keduanya tidak
// pernah saling cek.
func applyDaySelector(q *gorm.DB, slot SessionSlot) *gorm.DB {
	if slot.Date != nil {
		return q.Where("class_schedule_date = ?", slot.Date.Format("2006-01-02"))
	}
	return q.Where("class_schedule_day_of_week = ? AND class_schedule_date IS NULL", *slot.DayOfWeek)
}

func applyExclude(q *gorm.DB, slot SessionSlot) *gorm.DB {
	if slot.ExcludeID != nil {
		return q.Where("class_schedule_id <> ?", *slot.ExcludeID)
	}
	return q
}

// CheckRoomConflict mencari sesi lain di ruangan + campus + hari yang sama
// yang waktunya overlap. Error DB tidak ditelan — langsung diteruskan.
func CheckRoomConflict(db *gorm.DB, slot SessionSlot) error {
	if slot.Date == nil && slot.DayOfWeek == nil {
		return ErrMissingDaySelector
	}

	q := db.Model(&model.ClassScheduleModel{}).
		Where("class_schedule_campus_id = ?", slot.CampusID)

	if slot.RoomID != nil {
		q = q.Where("(class_schedule_room_id = ? OR class_schedule_room = ?)", *slot.RoomID, slot.Room)
	} else {
		q = q.Where("class_schedule_room = ?", slot.Room)
	}
	q = applyDaySelector(q, slot)
	q = applyExclude(q, slot)

	var rows []model.ClassScheduleModel
	if err := q.Find(&rows).Error; err != nil {
		return err
	}

	for _, r := range rows {
		if Overlap(slot.Start, slot.End, r.ClassScheduleStartTime, r.ClassScheduleEndTime) {
			return &ConflictError{
				Room:  r.ClassScheduleRoom,
				Start: r.ClassScheduleStartTime,
				End:   r.ClassScheduleEndTime,
			}
		}
	}
	return nil
}

// CheckDuplicate menolak sesi dengan classroom + hari + jam mulai yang sama,
// APAPUN ruangannya.
func CheckDuplicate(db *gorm.DB, slot SessionSlot) error {
	if slot.Date == nil && slot.DayOfWeek == nil {
		return ErrMissingDaySelector
	}

	q := db.Model(&model.ClassScheduleModel{}).
		Where("class_schedule_classroom_id = ?", slot.ClassroomID)
	q = applyDaySelector(q, slot)
	q = applyExclude(q, slot)

	var rows []model.ClassScheduleModel
	if err := q.Find(&rows).Error; err != nil {
		return err
	}

	for _, r := range rows {
		if r.ClassScheduleStartTime.Minutes() == slot.Start.Minutes() {
			return &DuplicateError{}
		}
	}
	return nil
}
