package model

import (
	"time"

	"gorm.io/datatypes"
)

// KlikTombol mencatat satu klik tombol di frontend untuk analitik sederhana.
type KlikTombol struct {
	KlikID       uint              `gorm:"column:klik_id;primaryKey;autoIncrement" json:"klik_id"`
	KlikNama     string            `gorm:"column:klik_nama_tombol;size:100;not null;index" json:"klik_nama_tombol"`
	KlikHalaman  string            `gorm:"column:klik_halaman;size:200;not null" json:"klik_halaman"`
	KlikUserID   *uint             `gorm:"column:klik_user_id;index" json:"klik_user_id,omitempty"`
	KlikMetadata datatypes.JSONMap `gorm:"column:klik_metadata" json:"klik_metadata,omitempty"`

	CreatedAt time.Time `gorm:"column:klik_created_at;autoCreateTime" json:"klik_created_at"`
}

func (KlikTombol) TableName() string { return "klik_tombol" }
