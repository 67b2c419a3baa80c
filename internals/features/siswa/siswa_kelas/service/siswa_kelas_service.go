package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	kelasModel "sekolahku_backend/internals/features/katalog/model"
	siswaModel "sekolahku_backend/internals/features/siswa/siswa/model"
	model "sekolahku_backend/internals/features/siswa/siswa_kelas/model"
)

// EnrollSiswa mendaftarkan satu siswa ke satu kelas.
// Aturan status awal: kelas tanpa biaya daftar ulang → langsung aktif dan
// daftar ulang dianggap selesai; kelas berbayar → pending sampai pembayaran
// daftar ulang dikonfirmasi.
func EnrollSiswa(db *gorm.DB, siswaID, kelasID uint, orderID *uint) (*model.SiswaKelas, error) {
	var siswa siswaModel.Siswa
	if err := db.First(&siswa, "siswa_id = ?", siswaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return nil, err
	}

	var kelas kelasModel.Kelas
	if err := db.First(&kelas, "kelas_id = ?", kelasID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return nil, err
	}

	var existing model.SiswaKelas
	if err := db.Where("siswa_kelas_siswa_id = ? AND siswa_kelas_kelas_id = ?", siswaID, kelasID).
		First(&existing).Error; err == nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Siswa sudah terdaftar di kelas ini")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	now := time.Now()
	enrollment := model.SiswaKelas{
		SiswaKelasSiswaID: siswaID,
		SiswaKelasKelasID: kelasID,
		SiswaKelasOrderID: orderID,
	}

	if kelas.KelasBiayaDaftarUlang == nil {
		// Tanpa biaya daftar ulang: tidak ada pembayaran yang ditunggu
		enrollment.SiswaKelasStatus = model.EnrollmentStatusAktif
		enrollment.SiswaKelasSudahDaftarUlang = true
		enrollment.SiswaKelasTanggalDaftarUlang = &now
		enrollment.SiswaKelasTanggalMasuk = &now
	} else {
		enrollment.SiswaKelasStatus = model.EnrollmentStatusPending
	}

	if err := db.Create(&enrollment).Error; err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// EnrollBulk mendaftarkan banyak siswa ke satu kelas dalam satu transaksi.
// Satu siswa gagal (duplikat/tidak ada) → seluruh batch dibatalkan.
func EnrollBulk(db *gorm.DB, kelasID uint, siswaIDs []uint) ([]model.SiswaKelas, error) {
	result := make([]model.SiswaKelas, 0, len(siswaIDs))
	err := db.Transaction(func(tx *gorm.DB) error {
		for _, sid := range siswaIDs {
			enrollment, err := EnrollSiswa(tx, sid, kelasID, nil)
			if err != nil {
				if fe, ok := err.(*fiber.Error); ok {
					return fiber.NewError(fe.Code, fmt.Sprintf("siswa_id=%d: %s", sid, fe.Message))
				}
				return err
			}
			result = append(result, *enrollment)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UpdateEnrollmentStatus memvalidasi status terhadap daftar enum lalu menerapkan patch.
func UpdateEnrollmentStatus(db *gorm.DB, enrollment *model.SiswaKelas, status *string, sudahDaftarUlang *bool, orderID *uint) error {
	if status != nil {
		if !validEnrollmentStatus(*status) {
			return fiber.NewError(fiber.StatusBadRequest,
				"siswa_kelas_status tidak valid, pilihan: "+strings.Join(model.EnrollmentStatusList, ", "))
		}
		now := time.Now()
		switch *status {
		case model.EnrollmentStatusAktif:
			if enrollment.SiswaKelasTanggalMasuk == nil {
				enrollment.SiswaKelasTanggalMasuk = &now
			}
		case model.EnrollmentStatusLulus, model.EnrollmentStatusDropout:
			if enrollment.SiswaKelasTanggalKeluar == nil {
				enrollment.SiswaKelasTanggalKeluar = &now
			}
		}
		enrollment.SiswaKelasStatus = *status
	}
	if sudahDaftarUlang != nil {
		enrollment.SiswaKelasSudahDaftarUlang = *sudahDaftarUlang
		if *sudahDaftarUlang && enrollment.SiswaKelasTanggalDaftarUlang == nil {
			now := time.Now()
			enrollment.SiswaKelasTanggalDaftarUlang = &now
		}
	}
	if orderID != nil {
		enrollment.SiswaKelasOrderID = orderID
	}
	return db.Save(enrollment).Error
}

func validEnrollmentStatus(s string) bool {
	for _, v := range model.EnrollmentStatusList {
		if s == v {
			return true
		}
	}
	return false
}
