package helper

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// TranslateDBError menerjemahkan error mentah dari storage layer menjadi
// *fiber.Error dengan status + pesan yang aman ditampilkan ke client.
// Detail implementasi DB tidak boleh bocor verbatim kecuali sebagai fallback.
func TranslateDBError(err error) *fiber.Error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Data tidak ditemukan")
	}

	lc := strings.ToLower(err.Error())
	switch {
	case strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique constraint"):
		return fiber.NewError(fiber.StatusBadRequest, "Data duplikat: record dengan nilai unik yang sama sudah ada")
	case strings.Contains(lc, "foreign key"):
		return fiber.NewError(fiber.StatusBadRequest, "Referensi tidak valid: data terkait tidak ditemukan atau masih dipakai")
	case strings.Contains(lc, "invalid input syntax") || strings.Contains(lc, "malformed"):
		return fiber.NewError(fiber.StatusBadRequest, "Format nilai tidak valid")
	case strings.Contains(lc, "unknown column") || strings.Contains(lc, "no such column"):
		return fiber.NewError(fiber.StatusBadRequest, "Kolom tidak dikenal")
	}
	return fiber.NewError(fiber.StatusInternalServerError, err.Error())
}

// IsDuplicateErr true bila error berasal dari pelanggaran unique index.
func IsDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique constraint")
}
