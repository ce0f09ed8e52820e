// file: internals/features/school/schedules/service/conflict_test.go
package service

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"schoolku_backend/internals/helpers/dbtime"
)

func tod(t *testing.T, s string) dbtime.Tod {
	t.Helper()
	v, err := dbtime.Parse(s)
	require.NoError(t, err)
	return v
}

func TestOverlap(t *testing.T) {
	cases := []struct {
		name           string
		s1, e1, s2, e2 string
		want           bool
	}{
		{"identik", "08:00", "09:00", "08:00", "09:00", true},
		{"sebagian", "08:00", "09:00", "08:30", "09:30", true},
		{"menelan", "08:00", "10:00", "08:30", "09:00", true},
		{"back-to-back tidak bentrok", "08:00", "09:00", "09:00", "10:00", false},
		{"back-to-back kebalikan", "09:00", "10:00", "08:00", "09:00", false},
		{"terpisah jauh", "08:00", "09:00", "13:00", "14:00", false},
		{"beda satu menit", "08:00", "08:31", "08:30", "09:00", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlap(tod(t, tc.s1), tod(t, tc.e1), tod(t, tc.s2), tod(t, tc.e2))
			assert.Equal(t, tc.want, got)

			// predikatnya simetris
			assert.Equal(t, tc.want, Overlap(tod(t, tc.s2), tod(t, tc.e2), tod(t, tc.s1), tod(t, tc.e1)))
		})
	}
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func sessionRows(entries ...[3]string) *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{
		"class_schedule_id", "class_schedule_room",
		"class_schedule_start_time", "class_schedule_end_time",
	})
	for _, e := range entries {
		rows.AddRow(uuid.NewString(), e[0], e[1], e[2])
	}
	return rows
}

func weekdaySlot(t *testing.T, room, start, end string) SessionSlot {
	dow := 1
	return SessionSlot{
		ClassroomID: uuid.New(),
		DayOfWeek:   &dow,
		Start:       tod(t, start),
		End:         tod(t, end),
		Room:        room,
		CampusID:    uuid.New(),
	}
}

func TestCheckRoomConflict_Overlapping(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .* FROM "class_schedules"`).
		WillReturnRows(sessionRows([3]string{"A101", "08:00:00", "09:00:00"}))

	err := CheckRoomConflict(db, weekdaySlot(t, "A101", "08:30", "09:30"))
	require.Error(t, err)

	var conflict *ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "A101", conflict.Room)
	assert.Contains(t, conflict.Error(), "A101")
	assert.Contains(t, conflict.Error(), "08:00 - 09:00")
}

func TestCheckRoomConflict_BackToBackAllowed(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .* FROM "class_schedules"`).
		WillReturnRows(sessionRows([3]string{"A101", "08:00:00", "09:00:00"}))

	err := CheckRoomConflict(db, weekdaySlot(t, "A101", "09:00", "10:00"))
	assert.NoError(t, err)
}

func TestCheckRoomConflict_NoCandidates(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .* FROM "class_schedules"`).
		WillReturnRows(sessionRows())

	err := CheckRoomConflict(db, weekdaySlot(t, "A101", "08:00", "09:00"))
	assert.NoError(t, err)
}

func TestCheckRoomConflict_ScopesByRoomAndCampus(t *testing.T) {
	db, mock := newMockDB(t)

	// Kandidat difilter di query: hanya sesi di ruangan + campus yang sama.
	// Sesi di ruangan lain tidak pernah jadi kandidat bentrok.
	mock.ExpectQuery(`SELECT .* FROM "class_schedules" WHERE class_schedule_campus_id = \$1 AND class_schedule_room = \$2`).
		WillReturnRows(sessionRows())

	err := CheckRoomConflict(db, weekdaySlot(t, "A101", "08:00", "09:00"))
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckRoomConflict_MissingDaySelector(t *testing.T) {
	db, _ := newMockDB(t)

	// Tanpa date maupun day_of_week tidak boleh panic; langsung tolak.
	slot := weekdaySlot(t, "A101", "08:00", "09:00")
	slot.DayOfWeek = nil

	err := CheckRoomConflict(db, slot)
	assert.ErrorIs(t, err, ErrMissingDaySelector)
}

func TestCheckDuplicate_MissingDaySelector(t *testing.T) {
	db, _ := newMockDB(t)

	slot := weekdaySlot(t, "A101", "08:00", "09:00")
	slot.DayOfWeek = nil

	err := CheckDuplicate(db, slot)
	assert.ErrorIs(t, err, ErrMissingDaySelector)
}

func TestCheckRoomConflict_ScopesByDaySelector(t *testing.T) {
	db, mock := newMockDB(t)

	// Sesi bertanggal hanya dicek terhadap tanggal yang sama persis.
	date := time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)
	slot := SessionSlot{
		ClassroomID: uuid.New(),
		Date:        &date,
		Start:       tod(t, "08:00"),
		End:         tod(t, "09:00"),
		Room:        "A101",
		CampusID:    uuid.New(),
	}

	mock.ExpectQuery(`SELECT .* FROM "class_schedules" WHERE .*class_schedule_date = \$`).
		WillReturnRows(sessionRows())

	err := CheckRoomConflict(db, slot)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckDuplicate_SameStart(t *testing.T) {
	db, mock := newMockDB(t)

	// Ruangan beda tetap duplicate kalau classroom + hari + jam mulai sama.
	mock.ExpectQuery(`SELECT .* FROM "class_schedules"`).
		WillReturnRows(sessionRows([3]string{"B202", "08:00:00", "09:00:00"}))

	err := CheckDuplicate(db, weekdaySlot(t, "A101", "08:00", "10:00"))
	require.Error(t, err)

	var dup *DuplicateError
	assert.ErrorAs(t, err, &dup)
}

func TestCheckDuplicate_DifferentStart(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .* FROM "class_schedules"`).
		WillReturnRows(sessionRows([3]string{"A101", "08:00:00", "09:00:00"}))

	err := CheckDuplicate(db, weekdaySlot(t, "A101", "10:00", "11:00"))
	assert.NoError(t, err)
}
