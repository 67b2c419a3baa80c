package seeds

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/constants"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

func SeedUsers(db *gorm.DB) {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("[ERROR] Seed users: gagal hash password: %v", err)
		return
	}

	admin := userModel.User{
		UserNama:     "Admin Sekolah",
		UserEmail:    "admin@sekolahku.id",
		UserPassword: string(hash),
		UserRole:     int(constants.RoleAdmin),
	}
	if err := db.Where("user_email = ?", admin.UserEmail).
		FirstOrCreate(&admin).Error; err != nil {
		log.Printf("[ERROR] Seed users gagal: %v", err)
		return
	}
	log.Println("[INFO] Seed users selesai")
}
