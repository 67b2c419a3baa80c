package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	katalogModel "sekolahku_backend/internals/features/katalog/model"
	siswaModel "sekolahku_backend/internals/features/siswa/siswa/model"
	"sekolahku_backend/internals/features/siswa/siswa_kelas/model"
)

func initTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&siswaModel.Siswa{},
		&katalogModel.Kelas{},
		&model.SiswaKelas{},
	))
	return db
}

func seedSiswa(t *testing.T, db *gorm.DB) uint {
	s := siswaModel.Siswa{SiswaNama: "Rina"}
	require.NoError(t, db.Create(&s).Error)
	return s.SiswaID
}

func seedKelas(t *testing.T, db *gorm.DB, biayaDaftarUlang *int) uint {
	k := katalogModel.Kelas{KelasNama: "Kelas 10A", KelasBiayaDaftarUlang: biayaDaftarUlang}
	require.NoError(t, db.Create(&k).Error)
	return k.KelasID
}

func TestEnrollSiswa_TanpaBiayaLangsungAktif(t *testing.T) {
	db := initTestDB(t)
	siswaID := seedSiswa(t, db)
	kelasID := seedKelas(t, db, nil)

	enrollment, err := EnrollSiswa(db, siswaID, kelasID, nil)
	require.NoError(t, err)
	require.Equal(t, model.EnrollmentStatusAktif, enrollment.SiswaKelasStatus)
	require.True(t, enrollment.SiswaKelasSudahDaftarUlang)
	require.NotNil(t, enrollment.SiswaKelasTanggalDaftarUlang)
	require.NotNil(t, enrollment.SiswaKelasTanggalMasuk)
}

func TestEnrollSiswa_DenganBiayaMulaiPending(t *testing.T) {
	db := initTestDB(t)
	siswaID := seedSiswa(t, db)
	biaya := 250000
	kelasID := seedKelas(t, db, &biaya)

	enrollment, err := EnrollSiswa(db, siswaID, kelasID, nil)
	require.NoError(t, err)
	require.Equal(t, model.EnrollmentStatusPending, enrollment.SiswaKelasStatus)
	require.False(t, enrollment.SiswaKelasSudahDaftarUlang)
	require.Nil(t, enrollment.SiswaKelasTanggalMasuk)
}

func TestEnrollSiswa_DuplikatDitolak(t *testing.T) {
	db := initTestDB(t)
	siswaID := seedSiswa(t, db)
	kelasID := seedKelas(t, db, nil)

	_, err := EnrollSiswa(db, siswaID, kelasID, nil)
	require.NoError(t, err)

	_, err = EnrollSiswa(db, siswaID, kelasID, nil)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	require.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestEnrollSiswa_KelasTidakDitemukan(t *testing.T) {
	db := initTestDB(t)
	siswaID := seedSiswa(t, db)

	_, err := EnrollSiswa(db, siswaID, 999, nil)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	require.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestUpdateEnrollmentStatus(t *testing.T) {
	db := initTestDB(t)
	siswaID := seedSiswa(t, db)
	biaya := 100000
	kelasID := seedKelas(t, db, &biaya)

	enrollment, err := EnrollSiswa(db, siswaID, kelasID, nil)
	require.NoError(t, err)

	bad := "pindah"
	err = UpdateEnrollmentStatus(db, enrollment, &bad, nil, nil)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	require.Equal(t, fiber.StatusBadRequest, fe.Code)

	aktif := model.EnrollmentStatusAktif
	sudah := true
	require.NoError(t, UpdateEnrollmentStatus(db, enrollment, &aktif, &sudah, nil))
	require.Equal(t, model.EnrollmentStatusAktif, enrollment.SiswaKelasStatus)
	require.True(t, enrollment.SiswaKelasSudahDaftarUlang)
	require.NotNil(t, enrollment.SiswaKelasTanggalMasuk)

	lulus := model.EnrollmentStatusLulus
	require.NoError(t, UpdateEnrollmentStatus(db, enrollment, &lulus, nil, nil))
	require.NotNil(t, enrollment.SiswaKelasTanggalKeluar)
}

func TestEnrollBulk(t *testing.T) {
	db := initTestDB(t)
	kelasID := seedKelas(t, db, nil)
	siswa1 := seedSiswa(t, db)
	siswa2 := seedSiswa(t, db)

	list, err := EnrollBulk(db, kelasID, []uint{siswa1, siswa2})
	require.NoError(t, err)
	require.Len(t, list, 2)

	var count int64
	db.Model(&model.SiswaKelas{}).Where("siswa_kelas_kelas_id = ?", kelasID).Count(&count)
	require.EqualValues(t, 2, count)
}
