package model

import "time"

/* ===================== Konvensi nama field pembeli ===================== */
// Jawaban formulir order harus memuat tiga field ini (dicocokkan via field_nama)
// karena snapshot data pembeli di order bersumber dari jawaban, bukan profil user.

const (
	FieldNamaLengkap = "nama_lengkap"
	FieldEmail       = "email"
	FieldNoHP        = "no_hp"
)

/* ===================== Models ===================== */

// Formulir adalah definisi form dinamis (biasanya form pembelian satu produk).
type Formulir struct {
	FormID       uint      `gorm:"column:form_id;primaryKey;autoIncrement" json:"form_id"`
	FormNama     string    `gorm:"column:form_nama;size:150;not null" json:"form_nama"`
	FormProdukID *uint     `gorm:"column:form_produk_id" json:"form_produk_id,omitempty"`
	CreatedAt    time.Time `gorm:"column:form_created_at;autoCreateTime" json:"form_created_at"`
	UpdatedAt    time.Time `gorm:"column:form_updated_at;autoUpdateTime" json:"form_updated_at"`

	Fields []FormField `gorm:"foreignKey:FieldFormID;references:FormID" json:"fields,omitempty"`
}

func (Formulir) TableName() string { return "formulir" }

// FormField adalah satu definisi field di dalam formulir.
type FormField struct {
	FieldID     uint      `gorm:"column:field_id;primaryKey;autoIncrement" json:"field_id"`
	FieldFormID uint      `gorm:"column:field_form_id;not null;index" json:"field_form_id"`
	FieldNama   string    `gorm:"column:field_nama;size:100;not null" json:"field_nama"`
	FieldLabel  string    `gorm:"column:field_label;size:200;not null" json:"field_label"`
	FieldTipe   string    `gorm:"column:field_tipe;size:30;not null;default:'text'" json:"field_tipe"`
	FieldWajib  bool      `gorm:"column:field_wajib;not null;default:false" json:"field_wajib"`
	CreatedAt   time.Time `gorm:"column:field_created_at;autoCreateTime" json:"field_created_at"`
	UpdatedAt   time.Time `gorm:"column:field_updated_at;autoUpdateTime" json:"field_updated_at"`
}

func (FormField) TableName() string { return "form_fields" }
