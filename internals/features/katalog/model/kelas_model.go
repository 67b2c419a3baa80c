package model

import "time"

// Kelas adalah sub-kategori sekaligus kelas/angkatan yang bisa diikuti siswa.
// KelasBiayaDaftarUlang nil artinya kelas tidak memungut biaya daftar ulang:
// enrollment baru langsung aktif tanpa menunggu pembayaran.
type Kelas struct {
	KelasID               uint      `gorm:"column:kelas_id;primaryKey;autoIncrement" json:"kelas_id"`
	KelasKategoriID       *uint     `gorm:"column:kelas_kategori_id" json:"kelas_kategori_id,omitempty"`
	KelasNama             string    `gorm:"column:kelas_nama;size:150;not null" json:"kelas_nama"`
	KelasDeskripsi        *string   `gorm:"column:kelas_deskripsi" json:"kelas_deskripsi,omitempty"`
	KelasBiayaDaftarUlang *int      `gorm:"column:kelas_biaya_daftar_ulang" json:"kelas_biaya_daftar_ulang,omitempty"`
	CreatedAt             time.Time `gorm:"column:kelas_created_at;autoCreateTime" json:"kelas_created_at"`
	UpdatedAt             time.Time `gorm:"column:kelas_updated_at;autoUpdateTime" json:"kelas_updated_at"`

	Kategori *Kategori `gorm:"foreignKey:KelasKategoriID;references:KategoriID" json:"kategori,omitempty"`
}

func (Kelas) TableName() string { return "kelas" }
