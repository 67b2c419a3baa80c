package model

import "time"

// Kategori adalah kategori induk katalog (parent category).
type Kategori struct {
	KategoriID        uint      `gorm:"column:kategori_id;primaryKey;autoIncrement" json:"kategori_id"`
	KategoriNama      string    `gorm:"column:kategori_nama;size:150;not null" json:"kategori_nama"`
	KategoriDeskripsi *string   `gorm:"column:kategori_deskripsi" json:"kategori_deskripsi,omitempty"`
	CreatedAt         time.Time `gorm:"column:kategori_created_at;autoCreateTime" json:"kategori_created_at"`
	UpdatedAt         time.Time `gorm:"column:kategori_updated_at;autoUpdateTime" json:"kategori_updated_at"`
}

func (Kategori) TableName() string { return "kategori" }
