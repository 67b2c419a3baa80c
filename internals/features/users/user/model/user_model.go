package model

import (
	"time"

	"sekolahku_backend/internals/constants"
)

// User merepresentasikan tabel users di database.
// Role disimpan sebagai angka dan dipetakan lewat constants.Role.
type User struct {
	UserID       uint      `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	UserNama     string    `gorm:"column:user_nama;size:100;not null" json:"user_nama"`
	UserEmail    string    `gorm:"column:user_email;size:255;unique;not null" json:"user_email"`
	UserPassword string    `gorm:"column:user_password;not null" json:"-"`
	UserRole     int       `gorm:"column:user_role;not null;default:5" json:"user_role"`
	CreatedAt    time.Time `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UpdatedAt    time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
}

func (User) TableName() string { return "users" }

func (u *User) Role() constants.Role { return constants.Role(u.UserRole) }

func (u *User) RoleName() string { return u.Role().Name() }
