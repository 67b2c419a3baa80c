package seeds

import (
	"gorm.io/gorm"
)

// RunAllSeeds mengisi data awal untuk lingkungan dev.
// Aman dipanggil berulang, semua seed memakai FirstOrCreate.
func RunAllSeeds(db *gorm.DB) {
	SeedUsers(db)
	SeedKatalog(db)
}
