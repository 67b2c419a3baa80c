package dto

/* =========================================================
   REQUEST DTOs — JSON tags = nama kolom DB (snake_case)
========================================================= */

type CreateKategoriRequest struct {
	KategoriNama      string  `json:"kategori_nama" validate:"required,min=2,max=150"`
	KategoriDeskripsi *string `json:"kategori_deskripsi,omitempty"`
}

type UpdateKategoriRequest struct {
	KategoriNama      *string `json:"kategori_nama,omitempty" validate:"omitempty,min=2,max=150"`
	KategoriDeskripsi *string `json:"kategori_deskripsi,omitempty"`
}

type CreateKelasRequest struct {
	KelasKategoriID       *uint   `json:"kelas_kategori_id,omitempty"`
	KelasNama             string  `json:"kelas_nama" validate:"required,min=2,max=150"`
	KelasDeskripsi        *string `json:"kelas_deskripsi,omitempty"`
	KelasBiayaDaftarUlang *int    `json:"kelas_biaya_daftar_ulang,omitempty" validate:"omitempty,min=0"`
}

type UpdateKelasRequest struct {
	KelasKategoriID       *uint   `json:"kelas_kategori_id,omitempty"`
	KelasNama             *string `json:"kelas_nama,omitempty" validate:"omitempty,min=2,max=150"`
	KelasDeskripsi        *string `json:"kelas_deskripsi,omitempty"`
	KelasBiayaDaftarUlang *int    `json:"kelas_biaya_daftar_ulang,omitempty" validate:"omitempty,min=0"`
}

type CreateProdukRequest struct {
	ProdukKategoriID *uint   `json:"produk_kategori_id,omitempty"`
	ProdukKelasID    *uint   `json:"produk_kelas_id,omitempty"`
	ProdukNama       string  `json:"produk_nama" validate:"required,min=2,max=200"`
	ProdukDeskripsi  *string `json:"produk_deskripsi,omitempty"`
	ProdukHarga      int     `json:"produk_harga" validate:"min=0"`
	ProdukTipe       string  `json:"produk_tipe" validate:"required,oneof=materi daftar_ulang lainnya"`
}

type UpdateProdukRequest struct {
	ProdukKategoriID *uint   `json:"produk_kategori_id,omitempty"`
	ProdukKelasID    *uint   `json:"produk_kelas_id,omitempty"`
	ProdukNama       *string `json:"produk_nama,omitempty" validate:"omitempty,min=2,max=200"`
	ProdukDeskripsi  *string `json:"produk_deskripsi,omitempty"`
	ProdukHarga      *int    `json:"produk_harga,omitempty" validate:"omitempty,min=0"`
	ProdukTipe       *string `json:"produk_tipe,omitempty" validate:"omitempty,oneof=materi daftar_ulang lainnya"`
}
