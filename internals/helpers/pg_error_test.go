// file: internals/helpers/pg_error_test.go
package helper

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePGErr struct {
	state string
	msg   string
}

func (e *fakePGErr) SQLState() string { return e.state }
func (e *fakePGErr) Error() string    { return e.msg }

func TestMapPGError(t *testing.T) {
	code, msg := MapPGError(&fakePGErr{state: "23505", msg: "duplicate key"})
	assert.Equal(t, http.StatusConflict, code)
	assert.Contains(t, msg, "duplikat")

	code, _ = MapPGError(&fakePGErr{state: "23503", msg: "fk"})
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = MapPGError(&fakePGErr{state: "23P01", msg: "exclusion"})
	assert.Equal(t, http.StatusConflict, code)

	code, msg = MapPGError(errors.New("kabel dicabut"))
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "kabel dicabut", msg)
}

func TestMapPGError_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("create: %w", &fakePGErr{state: "23505", msg: "duplicate key"})
	code, _ := MapPGError(wrapped)
	assert.Equal(t, http.StatusConflict, code)
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, IsUniqueViolation(&fakePGErr{state: "23505"}))
	assert.False(t, IsUniqueViolation(&fakePGErr{state: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("lain")))
}
