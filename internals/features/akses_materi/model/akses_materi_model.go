package model

import (
	"time"

	produkModel "sekolahku_backend/internals/features/katalog/model"
	siswaModel "sekolahku_backend/internals/features/siswa/siswa/model"
)

const (
	AksesStatusTerkunci = "terkunci"
	AksesStatusTerbuka  = "terbuka"
)

// AksesMateri mencatat status unlock satu siswa atas satu produk materi.
// Maksimal satu baris per pasangan (siswa, produk), grant selalu upsert.
type AksesMateri struct {
	AksesMateriID       uint       `gorm:"column:akses_materi_id;primaryKey;autoIncrement" json:"akses_materi_id"`
	AksesMateriSiswaID  uint       `gorm:"column:akses_materi_siswa_id;not null;uniqueIndex:uq_akses_siswa_produk" json:"akses_materi_siswa_id"`
	AksesMateriProdukID uint       `gorm:"column:akses_materi_produk_id;not null;uniqueIndex:uq_akses_siswa_produk" json:"akses_materi_produk_id"`
	AksesMateriOrderID  *uint      `gorm:"column:akses_materi_order_id" json:"akses_materi_order_id,omitempty"`
	AksesMateriStatus   string     `gorm:"column:akses_materi_status;size:20;not null;default:'terkunci'" json:"akses_materi_status"`
	TanggalAkses        *time.Time `gorm:"column:akses_materi_tanggal_akses" json:"akses_materi_tanggal_akses,omitempty"`

	CreatedAt time.Time `gorm:"column:akses_materi_created_at;autoCreateTime" json:"akses_materi_created_at"`
	UpdatedAt time.Time `gorm:"column:akses_materi_updated_at;autoUpdateTime" json:"akses_materi_updated_at"`

	Siswa  *siswaModel.Siswa   `gorm:"foreignKey:AksesMateriSiswaID;references:SiswaID" json:"siswa,omitempty"`
	Produk *produkModel.Produk `gorm:"foreignKey:AksesMateriProdukID;references:ProdukID" json:"produk,omitempty"`
}

func (AksesMateri) TableName() string { return "akses_materi" }
