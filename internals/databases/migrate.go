package database

import (
	"gorm.io/gorm"

	aksesModel "sekolahku_backend/internals/features/akses_materi/model"
	analyticsModel "sekolahku_backend/internals/features/analytics/model"
	formulirModel "sekolahku_backend/internals/features/formulir/model"
	katalogModel "sekolahku_backend/internals/features/katalog/model"
	orderModel "sekolahku_backend/internals/features/orders/model"
	paymentModel "sekolahku_backend/internals/features/payment/model"
	siswaModel "sekolahku_backend/internals/features/siswa/siswa/model"
	siswaKelasModel "sekolahku_backend/internals/features/siswa/siswa_kelas/model"
	authModel "sekolahku_backend/internals/features/users/auth/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

// AutoMigrate menjalankan migrasi skema semua tabel. Dipanggil dari main
// hanya kalau DB_AUTO_MIGRATE=true, di production pakai migrasi terpisah.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel.User{},
		&authModel.TokenBlacklist{},
		&katalogModel.Kategori{},
		&katalogModel.Kelas{},
		&katalogModel.Produk{},
		&siswaModel.Siswa{},
		&siswaKelasModel.SiswaKelas{},
		&formulirModel.Formulir{},
		&formulirModel.FormField{},
		&orderModel.Order{},
		&orderModel.OrderFormResponse{},
		&aksesModel.AksesMateri{},
		&paymentModel.GatewayEvent{},
		&analyticsModel.KlikTombol{},
	)
}
