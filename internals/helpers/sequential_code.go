// helper/sequential_code.go
package helper

import (
	"errors"
	"fmt"
	"regexp"

	"gorm.io/gorm"
)

// ErrSequenceExhausted: semua kandidat kode sampai batas maksimum sudah terpakai.
var ErrSequenceExhausted = errors.New("sequential code: semua kandidat sudah terpakai")

// NextSequentialCode mencari kode urut berikutnya pada tabel tertentu.
// prefix → awalan kode, misal "Class" atau "DM".
// width  → lebar digit (4 → Class0001, 3 → DM001).
// max    → batas atas counter (9999 untuk width 4, 999 untuk width 3).
//
// Kandidat naik monoton dari suffix terbesar yang pernah ada; celah bekas
// penghapusan TIDAK diisi ulang (Class0002 dihapus saat 0001 & 0003 ada →
// berikutnya tetap Class0004). Dari titik itu kandidat diprobe satu per satu
// sampai ketemu yang kosong. Helper ini read-only: tidak ada reservasi, jadi
// pemanggil tetap harus siap menghadapi unique violation saat insert.
func NextSequentialCode(db *gorm.DB, table, column, prefix string, width, max int) (string, error) {
	if width <= 0 || max <= 0 {
		return "", fmt.Errorf("sequential code: width/max tidak valid (width=%d max=%d)", width, max)
	}

	// cari suffix numerik terbesar di antara kode ber-prefix
	type row struct{ Code string }
	var rows []row
	if err := db.Table(table).
		Select(column+" AS code").
		Where(fmt.Sprintf("%s LIKE ?", column), prefix+"%").
		Find(&rows).Error; err != nil {
		return "", err
	}

	maxN := 0
	re := regexp.MustCompile(`^` + regexp.QuoteMeta(prefix) + `(\d+)$`)
	for _, r := range rows {
		m := re.FindStringSubmatch(r.Code)
		if len(m) == 2 {
			var n int
			fmt.Sscanf(m[1], "%d", &n)
			if n > maxN {
				maxN = n
			}
		}
	}

	// probe naik dari maxN+1 (guard kalau ada kode non-standar menempati kandidat)
	for n := maxN + 1; n <= max; n++ {
		candidate := fmt.Sprintf("%s%0*d", prefix, width, n)

		var count int64
		if err := db.Table(table).
			Where(fmt.Sprintf("%s = ?", column), candidate).
			Count(&count).Error; err != nil {
			return "", err
		}
		if count == 0 {
			return candidate, nil
		}
	}

	return "", ErrSequenceExhausted
}
