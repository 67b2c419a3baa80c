package dto

/* =========================================================
   REQUEST DTOs
========================================================= */

type EnrollRequest struct {
	SiswaKelasSiswaID uint  `json:"siswa_kelas_siswa_id" validate:"required"`
	SiswaKelasKelasID uint  `json:"siswa_kelas_kelas_id" validate:"required"`
	SiswaKelasOrderID *uint `json:"siswa_kelas_order_id,omitempty"`
}

// EnrollBulkRequest mendaftarkan banyak siswa sekaligus ke satu kelas.
type EnrollBulkRequest struct {
	SiswaKelasKelasID uint   `json:"siswa_kelas_kelas_id" validate:"required"`
	SiswaIDs          []uint `json:"siswa_ids" validate:"required,min=1,dive,required"`
}

type UpdateEnrollmentRequest struct {
	SiswaKelasStatus           *string `json:"siswa_kelas_status,omitempty"`
	SiswaKelasSudahDaftarUlang *bool   `json:"siswa_kelas_sudah_daftar_ulang,omitempty"`
	SiswaKelasOrderID          *uint   `json:"siswa_kelas_order_id,omitempty"`
}
