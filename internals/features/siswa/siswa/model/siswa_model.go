package model

import "time"

// Siswa adalah data induk siswa. SiswaUserID menghubungkan ke akun login
// (nullable — siswa bisa didaftarkan admin sebelum punya akun).
type Siswa struct {
	SiswaID      uint      `gorm:"column:siswa_id;primaryKey;autoIncrement" json:"siswa_id"`
	SiswaUserID  *uint     `gorm:"column:siswa_user_id;index" json:"siswa_user_id,omitempty"`
	SiswaNama    string    `gorm:"column:siswa_nama;size:150;not null" json:"siswa_nama"`
	SiswaEmail   *string   `gorm:"column:siswa_email;size:255" json:"siswa_email,omitempty"`
	SiswaTelepon *string   `gorm:"column:siswa_telepon;size:30" json:"siswa_telepon,omitempty"`
	SiswaAlamat  *string   `gorm:"column:siswa_alamat" json:"siswa_alamat,omitempty"`
	CreatedAt    time.Time `gorm:"column:siswa_created_at;autoCreateTime" json:"siswa_created_at"`
	UpdatedAt    time.Time `gorm:"column:siswa_updated_at;autoUpdateTime" json:"siswa_updated_at"`
}

func (Siswa) TableName() string { return "siswa" }
