package model

import (
	"time"

	kelasModel "sekolahku_backend/internals/features/katalog/model"
	siswaModel "sekolahku_backend/internals/features/siswa/siswa/model"
)

/* ===================== Enums (string) ===================== */

const (
	EnrollmentStatusPending = "pending"
	EnrollmentStatusAktif   = "aktif"
	EnrollmentStatusLulus   = "lulus"
	EnrollmentStatusDropout = "dropout"
)

var EnrollmentStatusList = []string{
	EnrollmentStatusPending,
	EnrollmentStatusAktif,
	EnrollmentStatusLulus,
	EnrollmentStatusDropout,
}

/* ===================== Model ===================== */

// SiswaKelas adalah keanggotaan satu siswa di satu kelas/angkatan.
// Maksimal satu baris per pasangan (siswa, kelas).
type SiswaKelas struct {
	SiswaKelasID      uint  `gorm:"column:siswa_kelas_id;primaryKey;autoIncrement" json:"siswa_kelas_id"`
	SiswaKelasSiswaID uint  `gorm:"column:siswa_kelas_siswa_id;not null;uniqueIndex:uq_siswa_kelas" json:"siswa_kelas_siswa_id"`
	SiswaKelasKelasID uint  `gorm:"column:siswa_kelas_kelas_id;not null;uniqueIndex:uq_siswa_kelas" json:"siswa_kelas_kelas_id"`
	SiswaKelasOrderID *uint `gorm:"column:siswa_kelas_order_id" json:"siswa_kelas_order_id,omitempty"`

	SiswaKelasSudahDaftarUlang   bool       `gorm:"column:siswa_kelas_sudah_daftar_ulang;not null;default:false" json:"siswa_kelas_sudah_daftar_ulang"`
	SiswaKelasTanggalDaftarUlang *time.Time `gorm:"column:siswa_kelas_tanggal_daftar_ulang" json:"siswa_kelas_tanggal_daftar_ulang,omitempty"`

	SiswaKelasStatus        string     `gorm:"column:siswa_kelas_status;size:20;not null;default:'pending'" json:"siswa_kelas_status"`
	SiswaKelasTanggalMasuk  *time.Time `gorm:"column:siswa_kelas_tanggal_masuk" json:"siswa_kelas_tanggal_masuk,omitempty"`
	SiswaKelasTanggalKeluar *time.Time `gorm:"column:siswa_kelas_tanggal_keluar" json:"siswa_kelas_tanggal_keluar,omitempty"`

	CreatedAt time.Time `gorm:"column:siswa_kelas_created_at;autoCreateTime" json:"siswa_kelas_created_at"`
	UpdatedAt time.Time `gorm:"column:siswa_kelas_updated_at;autoUpdateTime" json:"siswa_kelas_updated_at"`

	Siswa *siswaModel.Siswa `gorm:"foreignKey:SiswaKelasSiswaID;references:SiswaID" json:"siswa,omitempty"`
	Kelas *kelasModel.Kelas `gorm:"foreignKey:SiswaKelasKelasID;references:KelasID" json:"kelas,omitempty"`
}

func (SiswaKelas) TableName() string { return "siswa_kelas" }
