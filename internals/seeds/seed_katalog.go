package seeds

import (
	"log"

	"gorm.io/gorm"

	katalogModel "sekolahku_backend/internals/features/katalog/model"
)

func SeedKatalog(db *gorm.DB) {
	kategori := katalogModel.Kategori{KategoriNama: "Umum"}
	if err := db.Where("kategori_nama = ?", kategori.KategoriNama).
		FirstOrCreate(&kategori).Error; err != nil {
		log.Printf("[ERROR] Seed katalog gagal: %v", err)
		return
	}

	kelas := katalogModel.Kelas{
		KelasNama:       "Kelas Percobaan",
		KelasKategoriID: &kategori.KategoriID,
	}
	if err := db.Where("kelas_nama = ?", kelas.KelasNama).
		FirstOrCreate(&kelas).Error; err != nil {
		log.Printf("[ERROR] Seed katalog gagal: %v", err)
		return
	}

	produk := katalogModel.Produk{
		ProdukNama:    "Modul Contoh",
		ProdukHarga:   50000,
		ProdukTipe:    katalogModel.ProdukTipeMateri,
		ProdukKelasID: &kelas.KelasID,
	}
	if err := db.Where("produk_nama = ?", produk.ProdukNama).
		FirstOrCreate(&produk).Error; err != nil {
		log.Printf("[ERROR] Seed katalog gagal: %v", err)
		return
	}
	log.Println("[INFO] Seed katalog selesai")
}
