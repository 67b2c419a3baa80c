package service

import (
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"sekolahku_backend/internals/features/akses_materi/model"
	produkModel "sekolahku_backend/internals/features/katalog/model"
	siswaModel "sekolahku_backend/internals/features/siswa/siswa/model"
)

// GrantAkses membuka akses materi untuk siswa secara idempoten lewat upsert
// atomik pada unique (siswa, produk). Re-grant membuka ulang baris yang ada
// dan me-refresh tanggal akses; link order hanya ditimpa kalau ada order baru.
func GrantAkses(db *gorm.DB, siswaID, produkID uint, orderID *uint) (*model.AksesMateri, error) {
	var siswa siswaModel.Siswa
	if err := db.First(&siswa, "siswa_id = ?", siswaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return nil, err
	}
	var produk produkModel.Produk
	if err := db.First(&produk, "produk_id = ?", produkID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Produk tidak ditemukan")
		}
		return nil, err
	}
	if !produk.IsMateri() {
		return nil, fiber.NewError(fiber.StatusNotFound, "Produk bukan bertipe materi")
	}

	now := time.Now()
	akses := model.AksesMateri{
		AksesMateriSiswaID:  siswaID,
		AksesMateriProdukID: produkID,
		AksesMateriOrderID:  orderID,
		AksesMateriStatus:   model.AksesStatusTerbuka,
		TanggalAkses:        &now,
	}

	assignments := map[string]interface{}{
		"akses_materi_status":        model.AksesStatusTerbuka,
		"akses_materi_tanggal_akses": now,
		"akses_materi_updated_at":    now,
	}
	if orderID != nil {
		assignments["akses_materi_order_id"] = *orderID
	}

	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "akses_materi_siswa_id"}, {Name: "akses_materi_produk_id"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&akses).Error; err != nil {
		return nil, err
	}

	// baca ulang supaya balikan selalu baris final di DB
	var out model.AksesMateri
	if err := db.First(&out,
		"akses_materi_siswa_id = ? AND akses_materi_produk_id = ?", siswaID, produkID).Error; err != nil {
		return nil, err
	}
	log.Printf("[INFO] Akses materi terbuka: siswa=%d produk=%d", siswaID, produkID)
	return &out, nil
}

// RevokeAkses mengunci kembali akses tanpa menghapus baris dan tanpa
// melepas link order, supaya re-grant berikutnya tetap tertaut order lama.
func RevokeAkses(db *gorm.DB, aksesID uint) (*model.AksesMateri, error) {
	var akses model.AksesMateri
	if err := db.First(&akses, "akses_materi_id = ?", aksesID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Akses materi tidak ditemukan")
		}
		return nil, err
	}
	akses.AksesMateriStatus = model.AksesStatusTerkunci
	if err := db.Save(&akses).Error; err != nil {
		return nil, err
	}
	return &akses, nil
}

// DeleteAkses menghapus baris akses sepenuhnya (berbeda dengan revoke).
func DeleteAkses(db *gorm.DB, aksesID uint) error {
	res := db.Delete(&model.AksesMateri{}, "akses_materi_id = ?", aksesID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Akses materi tidak ditemukan")
	}
	return nil
}
