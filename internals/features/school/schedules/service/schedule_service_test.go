// file: internals/features/school/schedules/service/schedule_service_test.go
package service

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	model "schoolku_backend/internals/features/school/schedules/model"
)

func newScheduleRow(t *testing.T, classroomID, subjectID, teacherID uuid.UUID) model.ClassScheduleModel {
	t.Helper()
	dow := 1
	return model.ClassScheduleModel{
		ClassScheduleClassroomID: classroomID,
		ClassScheduleSubjectID:   subjectID,
		ClassScheduleTeacherID:   teacherID,
		ClassScheduleDayOfWeek:   &dow,
		ClassScheduleStartTime:   tod(t, "08:30"),
		ClassScheduleEndTime:     tod(t, "09:30"),
		ClassScheduleRoom:        "A101",
	}
}

func expectForeignKeysOK(mock sqlmock.Sqlmock, classroomID, campusID uuid.UUID) {
	mock.ExpectQuery(`SELECT .* FROM "classrooms"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"classroom_id", "classroom_code", "classroom_name", "classroom_campus_id",
		}).AddRow(classroomID.String(), "Class0001", "Kelas 1A", campusID.String()))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "subjects"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "teachers"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
}

func expectRoomLookupMiss(mock sqlmock.Sqlmock) {
	mock.ExpectQuery(`SELECT .* FROM "rooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"room_id"}))
}

func TestScheduleService_Create_ConflictShortCircuits(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewScheduleService(db)

	classroomID, campusID := uuid.New(), uuid.New()
	row := newScheduleRow(t, classroomID, uuid.New(), uuid.New())

	expectForeignKeysOK(mock, classroomID, campusID)
	expectRoomLookupMiss(mock)

	// Sesi lain sudah memakai A101 08:00-09:00 → 08:30-09:30 harus bentrok.
	mock.ExpectQuery(`SELECT .* FROM "class_schedules"`).
		WillReturnRows(sessionRows([3]string{"A101", "08:00:00", "09:00:00"}))

	err := svc.Create(&row)
	require.Error(t, err)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Contains(t, conflict.Error(), "A101")
	assert.Contains(t, conflict.Error(), "08:00 - 09:00")

	// campus fallback dari classroom
	require.NotNil(t, row.ClassScheduleCampusID)
	assert.Equal(t, campusID, *row.ClassScheduleCampusID)

	// tidak ada INSERT yang sempat jalan
	assert.NoError(t, mock.ExpectationsWereMet())
}

// uniqueViolationErr meniru error driver dengan SQLSTATE 23505.
type uniqueViolationErr struct{}

func (uniqueViolationErr) Error() string {
	return `duplicate key value violates unique constraint "uq_class_schedules_slot"`
}
func (uniqueViolationErr) SQLState() string { return "23505" }

func TestScheduleService_Create_InsertRaceBecomesDuplicate(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewScheduleService(db)

	classroomID, campusID := uuid.New(), uuid.New()
	row := newScheduleRow(t, classroomID, uuid.New(), uuid.New())

	expectForeignKeysOK(mock, classroomID, campusID)
	expectRoomLookupMiss(mock)

	// Cek advisory lolos (conflict lalu duplicate, keduanya tanpa kandidat),
	// tapi INSERT kalah balapan dan kena unique violation.
	mock.ExpectQuery(`SELECT .* FROM "class_schedules"`).WillReturnRows(sessionRows())
	mock.ExpectQuery(`SELECT .* FROM "class_schedules"`).WillReturnRows(sessionRows())

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "class_schedules"`).
		WillReturnError(uniqueViolationErr{})
	mock.ExpectRollback()

	err := svc.Create(&row)
	require.Error(t, err)

	var dup *DuplicateError
	assert.ErrorAs(t, err, &dup)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestScheduleService_Create_MissingClassroom(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewScheduleService(db)

	row := newScheduleRow(t, uuid.New(), uuid.New(), uuid.New())

	mock.ExpectQuery(`SELECT .* FROM "classrooms"`).
		WillReturnRows(sqlmock.NewRows([]string{"classroom_id"}))

	err := svc.Create(&row)
	require.Error(t, err)

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "Classroom", nf.Entity)
}

func TestScheduleService_Create_MissingCampus(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewScheduleService(db)

	classroomID := uuid.New()
	row := newScheduleRow(t, classroomID, uuid.New(), uuid.New())

	// classroom tanpa campus, request juga tidak mengisi campus_id
	mock.ExpectQuery(`SELECT .* FROM "classrooms"`).
		WillReturnRows(sqlmock.NewRows([]string{
			"classroom_id", "classroom_code", "classroom_name", "classroom_campus_id",
		}).AddRow(classroomID.String(), "Class0001", "Kelas 1A", nil))

	mock.ExpectQuery(`SELECT count\(\*\) FROM "subjects"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "teachers"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	err := svc.Create(&row)
	assert.ErrorIs(t, err, ErrMissingCampus)
}

func TestScheduleService_Create_InvalidTimeRange(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewScheduleService(db)

	classroomID, campusID := uuid.New(), uuid.New()
	row := newScheduleRow(t, classroomID, uuid.New(), uuid.New())
	row.ClassScheduleStartTime = tod(t, "10:00")
	row.ClassScheduleEndTime = tod(t, "09:00")

	expectForeignKeysOK(mock, classroomID, campusID)
	expectRoomLookupMiss(mock)

	err := svc.Create(&row)
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestScheduleService_Create_MissingDaySelector(t *testing.T) {
	db, mock := newMockDB(t)
	svc := NewScheduleService(db)

	classroomID, campusID := uuid.New(), uuid.New()
	row := newScheduleRow(t, classroomID, uuid.New(), uuid.New())
	row.ClassScheduleDayOfWeek = nil
	row.ClassScheduleDate = nil

	expectForeignKeysOK(mock, classroomID, campusID)
	expectRoomLookupMiss(mock)

	err := svc.Create(&row)
	assert.ErrorIs(t, err, ErrMissingDaySelector)
}
