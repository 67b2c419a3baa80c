package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	aksesModel "sekolahku_backend/internals/features/akses_materi/model"
	produkModel "sekolahku_backend/internals/features/katalog/model"
	orderModel "sekolahku_backend/internals/features/orders/model"
	"sekolahku_backend/internals/features/payment/dto"
	"sekolahku_backend/internals/features/payment/model"
	siswaModel "sekolahku_backend/internals/features/siswa/siswa/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

func initTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.User{},
		&siswaModel.Siswa{},
		&produkModel.Produk{},
		&orderModel.Order{},
		&aksesModel.AksesMateri{},
		&model.GatewayEvent{},
	))
	return db
}

type fixture struct {
	user   userModel.User
	siswa  siswaModel.Siswa
	produk produkModel.Produk
	order  orderModel.Order
}

func seedPaidFlow(t *testing.T, db *gorm.DB, tipe string) *fixture {
	f := &fixture{}
	f.user = userModel.User{UserNama: "Siti", UserEmail: "siti@example.com", UserPassword: "x", UserRole: 5}
	require.NoError(t, db.Create(&f.user).Error)

	f.siswa = siswaModel.Siswa{SiswaUserID: &f.user.UserID, SiswaNama: "Siti"}
	require.NoError(t, db.Create(&f.siswa).Error)

	f.produk = produkModel.Produk{ProdukNama: "Modul Fisika", ProdukHarga: 75000, ProdukTipe: tipe}
	require.NoError(t, db.Create(&f.produk).Error)

	produkID := f.produk.ProdukID
	f.order = orderModel.Order{
		OrderUserID:           &f.user.UserID,
		OrderProdukID:         &produkID,
		OrderNamaProduk:       f.produk.ProdukNama,
		OrderHargaProduk:      f.produk.ProdukHarga,
		OrderNamaPembeli:      "Siti",
		OrderEmailPembeli:     "siti@example.com",
		OrderTeleponPembeli:   "0812000000",
		OrderJumlah:           1,
		OrderGrossAmount:      75000,
		OrderTotalAmount:      75000,
		OrderStatus:           orderModel.OrderStatusPending,
		OrderStatusPembayaran: orderModel.PaymentStatusUnpaid,
	}
	require.NoError(t, db.Create(&f.order).Error)
	return f
}

func settlementNotif(orderID uint, txID string) *dto.PaymentNotification {
	return &dto.PaymentNotification{
		OrderID:           fmt.Sprintf("ORDER-%d-x", orderID),
		TransactionStatus: "settlement",
		TransactionID:     txID,
		PaymentType:       "bank_transfer",
	}
}

func TestHandleNotification_SettlementMembukaAksesMateri(t *testing.T) {
	db := initTestDB(t)
	f := seedPaidFlow(t, db, produkModel.ProdukTipeMateri)

	require.NoError(t, HandleGatewayNotification(db, settlementNotif(f.order.OrderID, "T1")))

	var order orderModel.Order
	require.NoError(t, db.First(&order, "order_id = ?", f.order.OrderID).Error)
	require.Equal(t, orderModel.PaymentStatusPaid, order.OrderStatusPembayaran)
	require.NotNil(t, order.OrderPaidAt)
	require.Equal(t, "T1", *order.OrderTransaksiID)
	require.Equal(t, "bank_transfer", *order.OrderMetodePembayaran)

	var akses aksesModel.AksesMateri
	require.NoError(t, db.First(&akses,
		"akses_materi_siswa_id = ? AND akses_materi_produk_id = ?", f.siswa.SiswaID, f.produk.ProdukID).Error)
	require.Equal(t, aksesModel.AksesStatusTerbuka, akses.AksesMateriStatus)
	require.NotNil(t, akses.AksesMateriOrderID)
	require.Equal(t, f.order.OrderID, *akses.AksesMateriOrderID)
}

func TestHandleNotification_DuplikatDiabaikan(t *testing.T) {
	db := initTestDB(t)
	f := seedPaidFlow(t, db, produkModel.ProdukTipeMateri)

	require.NoError(t, HandleGatewayNotification(db, settlementNotif(f.order.OrderID, "T1")))

	var order orderModel.Order
	require.NoError(t, db.First(&order, "order_id = ?", f.order.OrderID).Error)
	first := *order.OrderPaidAt

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, HandleGatewayNotification(db, settlementNotif(f.order.OrderID, "T1")))

	require.NoError(t, db.First(&order, "order_id = ?", f.order.OrderID).Error)
	require.True(t, order.OrderPaidAt.Equal(first))

	var events int64
	db.Model(&model.GatewayEvent{}).Count(&events)
	require.EqualValues(t, 1, events)

	var aksesCount int64
	db.Model(&aksesModel.AksesMateri{}).Count(&aksesCount)
	require.EqualValues(t, 1, aksesCount)
}

func TestHandleNotification_GagalProsesTetapBisaRetry(t *testing.T) {
	db := initTestDB(t)
	f := seedPaidFlow(t, db, produkModel.ProdukTipeMateri)

	// kiriman pertama menunjuk order yang belum ada: gagal (webhook balas 500)
	// dan baris dedup harus ikut rollback
	notif := settlementNotif(f.order.OrderID+100, "T-RETRY")
	require.Error(t, HandleGatewayNotification(db, notif))

	var events int64
	db.Model(&model.GatewayEvent{}).Count(&events)
	require.EqualValues(t, 0, events)

	// retry gateway dengan transaction_id sama, kali ini order-nya ada:
	// harus diproses penuh, bukan di-skip sebagai duplikat
	retry := settlementNotif(f.order.OrderID, "T-RETRY")
	require.NoError(t, HandleGatewayNotification(db, retry))

	var order orderModel.Order
	require.NoError(t, db.First(&order, "order_id = ?", f.order.OrderID).Error)
	require.Equal(t, orderModel.PaymentStatusPaid, order.OrderStatusPembayaran)
	require.NotNil(t, order.OrderPaidAt)

	db.Model(&model.GatewayEvent{}).Count(&events)
	require.EqualValues(t, 1, events)
}

func TestHandleNotification_PendingTidakMengubahOrder(t *testing.T) {
	db := initTestDB(t)
	f := seedPaidFlow(t, db, produkModel.ProdukTipeMateri)

	notif := settlementNotif(f.order.OrderID, "T2")
	notif.TransactionStatus = "pending"
	require.NoError(t, HandleGatewayNotification(db, notif))

	var order orderModel.Order
	require.NoError(t, db.First(&order, "order_id = ?", f.order.OrderID).Error)
	require.Equal(t, orderModel.PaymentStatusUnpaid, order.OrderStatusPembayaran)
	require.Nil(t, order.OrderPaidAt)
}

func TestHandleNotification_DenyTidakMengubahOrder(t *testing.T) {
	db := initTestDB(t)
	f := seedPaidFlow(t, db, produkModel.ProdukTipeMateri)

	notif := settlementNotif(f.order.OrderID, "T3")
	notif.TransactionStatus = "deny"
	require.NoError(t, HandleGatewayNotification(db, notif))

	var order orderModel.Order
	require.NoError(t, db.First(&order, "order_id = ?", f.order.OrderID).Error)
	require.Equal(t, orderModel.PaymentStatusUnpaid, order.OrderStatusPembayaran)

	var aksesCount int64
	db.Model(&aksesModel.AksesMateri{}).Count(&aksesCount)
	require.EqualValues(t, 0, aksesCount)
}

func TestHandleNotification_DaftarUlangTidakMembukaAkses(t *testing.T) {
	db := initTestDB(t)
	f := seedPaidFlow(t, db, produkModel.ProdukTipeDaftarUlang)

	require.NoError(t, HandleGatewayNotification(db, settlementNotif(f.order.OrderID, "T4")))

	var order orderModel.Order
	require.NoError(t, db.First(&order, "order_id = ?", f.order.OrderID).Error)
	require.Equal(t, orderModel.PaymentStatusPaid, order.OrderStatusPembayaran)

	var aksesCount int64
	db.Model(&aksesModel.AksesMateri{}).Count(&aksesCount)
	require.EqualValues(t, 0, aksesCount)
}

func TestSimulator_TokenRoundTrip(t *testing.T) {
	order := orderModel.Order{OrderID: 42, OrderTotalAmount: 150000}
	token, orderRef, amount := CreateSnapToken(&order)
	require.Contains(t, token, "SNAP-42-")
	require.Contains(t, orderRef, "ORDER-42-")
	require.Equal(t, 150000, amount)

	notif, err := SimulatePayment(token, "success")
	require.NoError(t, err)
	require.Equal(t, "settlement", notif.TransactionStatus)
	require.Equal(t, SimulatorPaymentType, notif.PaymentType)
	require.Contains(t, notif.OrderID, "ORDER-42-")
	require.NotEmpty(t, notif.TransactionID)
}

func TestSimulator_OutcomeMapping(t *testing.T) {
	order := orderModel.Order{OrderID: 1, OrderTotalAmount: 1000}
	token, _, _ := CreateSnapToken(&order)

	notif, err := SimulatePayment(token, "pending")
	require.NoError(t, err)
	require.Equal(t, "pending", notif.TransactionStatus)

	notif, err = SimulatePayment(token, "failed")
	require.NoError(t, err)
	require.Equal(t, "deny", notif.TransactionStatus)

	_, err = SimulatePayment("BUKAN-TOKEN", "success")
	require.Error(t, err)
}
