package scheduler

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"

	authModel "sekolahku_backend/internals/features/users/auth/model"
)

// StartBlacklistCleanupScheduler menghapus token blacklist yang sudah lewat expire.
// Jalan tiap jam 03:00 WIB; tabel kecil jadi cukup sekali sehari.
func StartBlacklistCleanupScheduler(db *gorm.DB) *cron.Cron {
	c := cron.New()
	_, err := c.AddFunc("0 3 * * *", func() {
		res := db.Where("expired_at < ?", time.Now()).Delete(&authModel.TokenBlacklist{})
		if res.Error != nil {
			log.Println("[ERROR] Cleanup token blacklist gagal:", res.Error)
			return
		}
		log.Printf("[INFO] Cleanup token blacklist: %d baris dihapus", res.RowsAffected)
	})
	if err != nil {
		log.Println("[ERROR] Gagal daftar job cleanup blacklist:", err)
		return c
	}
	c.Start()
	return c
}
