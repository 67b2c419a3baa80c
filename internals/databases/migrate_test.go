package database

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestAutoMigrate(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, AutoMigrate(db))

	for _, table := range []string{
		"users", "token_blacklist", "kategori", "kelas", "produk",
		"siswa", "siswa_kelas", "formulir", "form_fields",
		"orders", "order_form_responses", "akses_materi",
		"gateway_events", "klik_tombol",
	} {
		require.True(t, db.Migrator().HasTable(table), "tabel %s harus ada", table)
	}
}
