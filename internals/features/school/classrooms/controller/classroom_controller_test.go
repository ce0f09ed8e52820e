// file: internals/features/school/classrooms/controller/classroom_controller_test.go
package controller

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockApp(t *testing.T) (*fiber.App, *ClassroomController, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)

	return fiber.New(), New(db, validator.New()), mock
}

func TestNextCode_Endpoint(t *testing.T) {
	app, ctl, mock := newMockApp(t)
	app.Get("/classrooms/next-code", ctl.NextCode)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT classroom_code AS code FROM "classrooms" WHERE classroom_code LIKE $1`)).
		WithArgs("Class%").
		WillReturnRows(sqlmock.NewRows([]string{"code"}).AddRow("Class0001").AddRow("Class0002"))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "classrooms" WHERE classroom_code = $1`)).
		WithArgs("Class0003").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	resp, err := app.Test(httptest.NewRequest("GET", "/classrooms/next-code", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out struct {
		Success bool `json:"success"`
		Data    struct {
			NextCode string `json:"next_code"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(body, &out))
	assert.True(t, out.Success)
	assert.Equal(t, "Class0003", out.Data.NextCode)
	assert.NoError(t, mock.ExpectationsWereMet())
}
