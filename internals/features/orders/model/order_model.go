package model

import (
	"time"

	produkModel "sekolahku_backend/internals/features/katalog/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

/* ===================== Enums ===================== */

// Status pemrosesan order (bukan status pembayaran).
const (
	OrderStatusPending    = "pending"
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

var OrderStatusList = []string{
	OrderStatusPending,
	OrderStatusConfirmed,
	OrderStatusProcessing,
	OrderStatusCompleted,
	OrderStatusCancelled,
}

// Status pembayaran, diupdate dari notifikasi gateway atau cancel.
const (
	PaymentStatusUnpaid   = "unpaid"
	PaymentStatusPaid     = "paid"
	PaymentStatusRefunded = "refunded"
	PaymentStatusFailed   = "failed"
)

var PaymentStatusList = []string{
	PaymentStatusUnpaid,
	PaymentStatusPaid,
	PaymentStatusRefunded,
	PaymentStatusFailed,
}

func ValidOrderStatus(s string) bool {
	for _, v := range OrderStatusList {
		if v == s {
			return true
		}
	}
	return false
}

func ValidPaymentStatus(s string) bool {
	for _, v := range PaymentStatusList {
		if v == s {
			return true
		}
	}
	return false
}

/* ===================== Models ===================== */

// Order menyimpan snapshot produk & pembeli saat checkout, jadi perubahan
// katalog atau profil user setelahnya tidak mengubah isi order.
type Order struct {
	OrderID       uint  `gorm:"column:order_id;primaryKey;autoIncrement" json:"order_id"`
	OrderUserID   *uint `gorm:"column:order_user_id;index" json:"order_user_id,omitempty"`
	OrderProdukID *uint `gorm:"column:order_produk_id;index" json:"order_produk_id,omitempty"`

	// snapshot produk
	OrderNamaProduk  string `gorm:"column:order_nama_produk;size:200;not null" json:"order_nama_produk"`
	OrderHargaProduk int    `gorm:"column:order_harga_produk;not null" json:"order_harga_produk"`

	// snapshot pembeli (dari jawaban formulir)
	OrderNamaPembeli    string `gorm:"column:order_nama_pembeli;size:150;not null" json:"order_nama_pembeli"`
	OrderEmailPembeli   string `gorm:"column:order_email_pembeli;size:150;not null" json:"order_email_pembeli"`
	OrderTeleponPembeli string `gorm:"column:order_telepon_pembeli;size:30;not null" json:"order_telepon_pembeli"`

	OrderJumlah      int `gorm:"column:order_jumlah;not null;default:1" json:"order_jumlah"`
	OrderGrossAmount int `gorm:"column:order_gross_amount;not null" json:"order_gross_amount"`
	OrderDiskon      int `gorm:"column:order_diskon;not null;default:0" json:"order_diskon"`
	OrderTotalAmount int `gorm:"column:order_total_amount;not null" json:"order_total_amount"`

	OrderStatus           string `gorm:"column:order_status;size:20;not null;default:'pending'" json:"order_status"`
	OrderStatusPembayaran string `gorm:"column:order_status_pembayaran;size:20;not null;default:'unpaid'" json:"order_status_pembayaran"`

	OrderTransaksiID      *string    `gorm:"column:order_transaksi_id;size:100;index" json:"order_transaksi_id,omitempty"`
	OrderMetodePembayaran *string    `gorm:"column:order_metode_pembayaran;size:50" json:"order_metode_pembayaran,omitempty"`
	OrderPaidAt           *time.Time `gorm:"column:order_paid_at" json:"order_paid_at,omitempty"`

	CreatedAt time.Time `gorm:"column:order_created_at;autoCreateTime" json:"order_created_at"`
	UpdatedAt time.Time `gorm:"column:order_updated_at;autoUpdateTime" json:"order_updated_at"`

	User      *userModel.User     `gorm:"foreignKey:OrderUserID;references:UserID" json:"user,omitempty"`
	Produk    *produkModel.Produk `gorm:"foreignKey:OrderProdukID;references:ProdukID" json:"produk,omitempty"`
	Responses []OrderFormResponse `gorm:"foreignKey:ResponseOrderID;references:OrderID" json:"responses,omitempty"`
}

func (Order) TableName() string { return "orders" }

// OrderFormResponse adalah satu jawaban field formulir milik satu order.
// Nama field disnapshot supaya jawaban tetap terbaca walau definisi field dihapus.
type OrderFormResponse struct {
	ResponseID          uint   `gorm:"column:response_id;primaryKey;autoIncrement" json:"response_id"`
	ResponseOrderID     uint   `gorm:"column:response_order_id;not null;uniqueIndex:uq_order_field" json:"response_order_id"`
	ResponseFormFieldID *uint  `gorm:"column:response_form_field_id;uniqueIndex:uq_order_field" json:"response_form_field_id,omitempty"`
	ResponseNamaField   string `gorm:"column:response_nama_field;size:100;not null" json:"response_nama_field"`
	ResponseJawaban     string `gorm:"column:response_jawaban;type:text;not null" json:"response_jawaban"`

	CreatedAt time.Time `gorm:"column:response_created_at;autoCreateTime" json:"response_created_at"`
}

func (OrderFormResponse) TableName() string { return "order_form_responses" }
