// file: internals/helpers/pg_error.go
package helper

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// pgSQLErr dicocokkan lewat interface supaya tidak terikat ke driver
// (pgconn.PgError dari pgx memenuhi ini).
type pgSQLErr interface {
	SQLState() string
	Error() string
}

// MapPGError menerjemahkan error Postgres ke status + pesan client-friendly.
// 23P01 = exclusion_violation, 23503 = foreign_key_violation, 23505 = unique_violation.
func MapPGError(err error) (int, string) {
	var pgErr pgSQLErr
	if errors.As(err, &pgErr) {
		switch pgErr.SQLState() {
		case "23P01":
			return http.StatusConflict, "Bentrok jadwal: rentang waktu overlap."
		case "23503":
			return http.StatusBadRequest, "Referensi tidak ditemukan (FK violation)."
		case "23505":
			return http.StatusConflict, "Data duplikat (unique violation)."
		}
	}
	return http.StatusInternalServerError, err.Error()
}

func WritePGError(c *fiber.Ctx, err error) error {
	code, msg := MapPGError(err)
	return JsonError(c, code, msg)
}

// IsUniqueViolation: true bila err adalah pelanggaran unique constraint.
func IsUniqueViolation(err error) bool {
	var pgErr pgSQLErr
	return errors.As(err, &pgErr) && pgErr.SQLState() == "23505"
}
