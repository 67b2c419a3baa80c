package model

import "time"

/* ===================== Enums (string) ===================== */

const (
	ProdukTipeMateri      = "materi"       // materi belajar — unlock per siswa setelah dibayar
	ProdukTipeDaftarUlang = "daftar_ulang" // biaya daftar ulang kelas
	ProdukTipeLainnya     = "lainnya"
)

var ProdukTipeList = []string{ProdukTipeMateri, ProdukTipeDaftarUlang, ProdukTipeLainnya}

/* ===================== Model ===================== */

type Produk struct {
	ProdukID         uint      `gorm:"column:produk_id;primaryKey;autoIncrement" json:"produk_id"`
	ProdukKategoriID *uint     `gorm:"column:produk_kategori_id" json:"produk_kategori_id,omitempty"`
	ProdukKelasID    *uint     `gorm:"column:produk_kelas_id" json:"produk_kelas_id,omitempty"`
	ProdukNama       string    `gorm:"column:produk_nama;size:200;not null" json:"produk_nama"`
	ProdukDeskripsi  *string   `gorm:"column:produk_deskripsi" json:"produk_deskripsi,omitempty"`
	ProdukHarga      int       `gorm:"column:produk_harga;not null;check:produk_harga >= 0" json:"produk_harga"`
	ProdukTipe       string    `gorm:"column:produk_tipe;size:30;not null;default:'lainnya'" json:"produk_tipe"`
	CreatedAt        time.Time `gorm:"column:produk_created_at;autoCreateTime" json:"produk_created_at"`
	UpdatedAt        time.Time `gorm:"column:produk_updated_at;autoUpdateTime" json:"produk_updated_at"`

	Kategori *Kategori `gorm:"foreignKey:ProdukKategoriID;references:KategoriID" json:"kategori,omitempty"`
	Kelas    *Kelas    `gorm:"foreignKey:ProdukKelasID;references:KelasID" json:"kelas,omitempty"`
}

func (Produk) TableName() string { return "produk" }

func (p *Produk) IsMateri() bool { return p.ProdukTipe == ProdukTipeMateri }

func (p *Produk) IsDaftarUlang() bool { return p.ProdukTipe == ProdukTipeDaftarUlang }
