// file: internals/helpers/sequential_code_test.go
package helper

import (
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return db, mock
}

func expectCodes(mock sqlmock.Sqlmock, codes ...string) {
	rows := sqlmock.NewRows([]string{"code"})
	for _, c := range codes {
		rows.AddRow(c)
	}
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT classroom_code AS code FROM "classrooms" WHERE classroom_code LIKE $1`)).
		WithArgs("Class%").
		WillReturnRows(rows)
}

func expectCount(mock sqlmock.Sqlmock, candidate string, count int64) {
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "classrooms" WHERE classroom_code = $1`)).
		WithArgs(candidate).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(count))
}

func TestNextSequentialCode_EmptyTable(t *testing.T) {
	db, mock := newMockDB(t)

	expectCodes(mock)
	expectCount(mock, "Class0001", 0)

	code, err := NextSequentialCode(db, "classrooms", "classroom_code", "Class", 4, 9999)
	require.NoError(t, err)
	assert.Equal(t, "Class0001", code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNextSequentialCode_Gapless(t *testing.T) {
	db, mock := newMockDB(t)

	expectCodes(mock, "Class0001", "Class0002", "Class0003")
	expectCount(mock, "Class0004", 0)

	code, err := NextSequentialCode(db, "classrooms", "classroom_code", "Class", 4, 9999)
	require.NoError(t, err)
	assert.Equal(t, "Class0004", code)
}

func TestNextSequentialCode_GapIsNotBackfilled(t *testing.T) {
	db, mock := newMockDB(t)

	// Class0002 sudah dihapus; celahnya tidak boleh dipakai lagi.
	expectCodes(mock, "Class0001", "Class0003")
	expectCount(mock, "Class0004", 0)

	code, err := NextSequentialCode(db, "classrooms", "classroom_code", "Class", 4, 9999)
	require.NoError(t, err)
	assert.Equal(t, "Class0004", code)
}

func TestNextSequentialCode_ProbesPastOccupiedCandidate(t *testing.T) {
	db, mock := newMockDB(t)

	expectCodes(mock, "Class0001", "Class0002")
	expectCount(mock, "Class0003", 1) // diambil request lain di sela-sela
	expectCount(mock, "Class0004", 0)

	code, err := NextSequentialCode(db, "classrooms", "classroom_code", "Class", 4, 9999)
	require.NoError(t, err)
	assert.Equal(t, "Class0004", code)
}

func TestNextSequentialCode_IgnoresNonNumericSuffix(t *testing.T) {
	db, mock := newMockDB(t)

	expectCodes(mock, "ClassX", "Class0002", "Class-lama")
	expectCount(mock, "Class0003", 0)

	code, err := NextSequentialCode(db, "classrooms", "classroom_code", "Class", 4, 9999)
	require.NoError(t, err)
	assert.Equal(t, "Class0003", code)
}

func TestNextSequentialCode_Exhausted(t *testing.T) {
	db, mock := newMockDB(t)

	rows := sqlmock.NewRows([]string{"code"}).AddRow("DM001").AddRow("DM002").AddRow("DM003")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT expense_category_code AS code FROM "expense_categories" WHERE expense_category_code LIKE $1`)).
		WithArgs("DM%").
		WillReturnRows(rows)

	_, err := NextSequentialCode(db, "expense_categories", "expense_category_code", "DM", 3, 3)
	assert.ErrorIs(t, err, ErrSequenceExhausted)
}

func TestNextSequentialCode_InvalidBounds(t *testing.T) {
	db, _ := newMockDB(t)

	_, err := NextSequentialCode(db, "classrooms", "classroom_code", "Class", 0, 9999)
	assert.Error(t, err)

	_, err = NextSequentialCode(db, "classrooms", "classroom_code", "Class", 4, 0)
	assert.Error(t, err)
}
