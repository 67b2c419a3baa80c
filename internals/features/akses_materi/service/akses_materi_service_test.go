package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/akses_materi/model"
	produkModel "sekolahku_backend/internals/features/katalog/model"
	siswaModel "sekolahku_backend/internals/features/siswa/siswa/model"
)

func initTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&siswaModel.Siswa{},
		&produkModel.Produk{},
		&model.AksesMateri{},
	))
	return db
}

func seedSiswaProduk(t *testing.T, db *gorm.DB, tipe string) (uint, uint) {
	siswa := siswaModel.Siswa{SiswaNama: "Andi"}
	require.NoError(t, db.Create(&siswa).Error)
	produk := produkModel.Produk{ProdukNama: "Modul Kimia", ProdukHarga: 60000, ProdukTipe: tipe}
	require.NoError(t, db.Create(&produk).Error)
	return siswa.SiswaID, produk.ProdukID
}

func TestGrantAkses_Idempoten(t *testing.T) {
	db := initTestDB(t)
	siswaID, produkID := seedSiswaProduk(t, db, produkModel.ProdukTipeMateri)

	first, err := GrantAkses(db, siswaID, produkID, nil)
	require.NoError(t, err)
	require.Equal(t, model.AksesStatusTerbuka, first.AksesMateriStatus)
	require.NotNil(t, first.TanggalAkses)

	second, err := GrantAkses(db, siswaID, produkID, nil)
	require.NoError(t, err)
	require.Equal(t, first.AksesMateriID, second.AksesMateriID)

	var count int64
	db.Model(&model.AksesMateri{}).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestGrantAkses_MembukaBarisTerkunci(t *testing.T) {
	db := initTestDB(t)
	siswaID, produkID := seedSiswaProduk(t, db, produkModel.ProdukTipeMateri)

	lama := time.Now().Add(-24 * time.Hour)
	existing := model.AksesMateri{
		AksesMateriSiswaID:  siswaID,
		AksesMateriProdukID: produkID,
		AksesMateriStatus:   model.AksesStatusTerkunci,
		TanggalAkses:        &lama,
	}
	require.NoError(t, db.Create(&existing).Error)

	akses, err := GrantAkses(db, siswaID, produkID, nil)
	require.NoError(t, err)
	require.Equal(t, existing.AksesMateriID, akses.AksesMateriID)
	require.Equal(t, model.AksesStatusTerbuka, akses.AksesMateriStatus)
	require.True(t, akses.TanggalAkses.After(lama))

	var count int64
	db.Model(&model.AksesMateri{}).Count(&count)
	require.EqualValues(t, 1, count)
}

func TestGrantAkses_ProdukBukanMateri(t *testing.T) {
	db := initTestDB(t)
	siswaID, produkID := seedSiswaProduk(t, db, produkModel.ProdukTipeDaftarUlang)

	_, err := GrantAkses(db, siswaID, produkID, nil)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	require.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestGrantAkses_SiswaTidakDitemukan(t *testing.T) {
	db := initTestDB(t)
	_, produkID := seedSiswaProduk(t, db, produkModel.ProdukTipeMateri)

	_, err := GrantAkses(db, 999, produkID, nil)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	require.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestRevokeAkses_LinkOrderDipertahankan(t *testing.T) {
	db := initTestDB(t)
	siswaID, produkID := seedSiswaProduk(t, db, produkModel.ProdukTipeMateri)

	orderID := uint(7)
	granted, err := GrantAkses(db, siswaID, produkID, &orderID)
	require.NoError(t, err)
	require.NotNil(t, granted.AksesMateriOrderID)

	revoked, err := RevokeAkses(db, granted.AksesMateriID)
	require.NoError(t, err)
	require.Equal(t, model.AksesStatusTerkunci, revoked.AksesMateriStatus)
	require.NotNil(t, revoked.AksesMateriOrderID)
	require.Equal(t, orderID, *revoked.AksesMateriOrderID)

	// re-grant tanpa order baru: link order lama tetap
	regranted, err := GrantAkses(db, siswaID, produkID, nil)
	require.NoError(t, err)
	require.Equal(t, model.AksesStatusTerbuka, regranted.AksesMateriStatus)
	require.NotNil(t, regranted.AksesMateriOrderID)
	require.Equal(t, orderID, *regranted.AksesMateriOrderID)
}

func TestDeleteAkses(t *testing.T) {
	db := initTestDB(t)
	siswaID, produkID := seedSiswaProduk(t, db, produkModel.ProdukTipeMateri)

	granted, err := GrantAkses(db, siswaID, produkID, nil)
	require.NoError(t, err)
	require.NoError(t, DeleteAkses(db, granted.AksesMateriID))

	err = DeleteAkses(db, granted.AksesMateriID)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	require.Equal(t, fiber.StatusNotFound, fe.Code)
}
