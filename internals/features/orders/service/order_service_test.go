package service

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	produkModel "sekolahku_backend/internals/features/katalog/model"
	"sekolahku_backend/internals/features/orders/dto"
	"sekolahku_backend/internals/features/orders/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

func initTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.User{},
		&produkModel.Produk{},
		&model.Order{},
		&model.OrderFormResponse{},
	))
	return db
}

func seedUser(t *testing.T, db *gorm.DB) *userModel.User {
	u := userModel.User{UserNama: "Budi Santoso", UserEmail: "budi@example.com", UserPassword: "x", UserRole: 5}
	require.NoError(t, db.Create(&u).Error)
	return &u
}

func seedProduk(t *testing.T, db *gorm.DB, harga int, tipe string) *produkModel.Produk {
	p := produkModel.Produk{ProdukNama: "Modul Matematika", ProdukHarga: harga, ProdukTipe: tipe}
	require.NoError(t, db.Create(&p).Error)
	return &p
}

func fullResponses() []dto.OrderResponseItem {
	return []dto.OrderResponseItem{
		{NamaField: "nama_lengkap", Jawaban: "Budi Santoso"},
		{NamaField: "email", Jawaban: "budi@example.com"},
		{NamaField: "no_hp", Jawaban: "08123456789"},
	}
}

func TestCreateOrder_HargaDihitungServerSide(t *testing.T) {
	db := initTestDB(t)
	user := seedUser(t, db)
	produk := seedProduk(t, db, 100000, produkModel.ProdukTipeMateri)

	order, err := CreateOrder(db, &user.UserID, &dto.CreateOrderRequest{
		ProdukID:  produk.ProdukID,
		Jumlah:    2,
		Diskon:    20000,
		Responses: fullResponses(),
	})
	require.NoError(t, err)
	require.Equal(t, 200000, order.OrderGrossAmount)
	require.Equal(t, 180000, order.OrderTotalAmount)
	require.Equal(t, model.OrderStatusPending, order.OrderStatus)
	require.Equal(t, model.PaymentStatusUnpaid, order.OrderStatusPembayaran)
	require.Equal(t, "Modul Matematika", order.OrderNamaProduk)
	require.Equal(t, "Budi Santoso", order.OrderNamaPembeli)

	var count int64
	db.Model(&model.OrderFormResponse{}).Where("response_order_id = ?", order.OrderID).Count(&count)
	require.EqualValues(t, 3, count)
}

func TestCreateOrder_JawabanTidakLengkap(t *testing.T) {
	db := initTestDB(t)
	user := seedUser(t, db)
	produk := seedProduk(t, db, 50000, produkModel.ProdukTipeMateri)

	_, err := CreateOrder(db, &user.UserID, &dto.CreateOrderRequest{
		ProdukID: produk.ProdukID,
		Responses: []dto.OrderResponseItem{
			{NamaField: "nama_lengkap", Jawaban: "Budi"},
		},
	})
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	require.Equal(t, fiber.StatusBadRequest, fe.Code)
	require.Contains(t, fe.Message, "email")
	require.Contains(t, fe.Message, "no_hp")
}

func TestCreateOrder_ProdukTidakDitemukan(t *testing.T) {
	db := initTestDB(t)
	user := seedUser(t, db)

	_, err := CreateOrder(db, &user.UserID, &dto.CreateOrderRequest{
		ProdukID:  999,
		Responses: fullResponses(),
	})
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	require.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestUpdateOrderStatus_EnumTidakValid(t *testing.T) {
	db := initTestDB(t)
	user := seedUser(t, db)
	produk := seedProduk(t, db, 10000, produkModel.ProdukTipeLainnya)
	order, err := CreateOrder(db, &user.UserID, &dto.CreateOrderRequest{
		ProdukID: produk.ProdukID, Responses: fullResponses(),
	})
	require.NoError(t, err)

	bad := "dikirim"
	err = UpdateOrderStatus(db, order, &dto.UpdateOrderStatusRequest{OrderStatus: &bad})
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	require.Equal(t, fiber.StatusBadRequest, fe.Code)
	require.Contains(t, fe.Message, "pending")
	require.Contains(t, fe.Message, "cancelled")
}

func TestUpdateOrderStatus_MetadataGateway(t *testing.T) {
	db := initTestDB(t)
	user := seedUser(t, db)
	produk := seedProduk(t, db, 10000, produkModel.ProdukTipeLainnya)
	order, err := CreateOrder(db, &user.UserID, &dto.CreateOrderRequest{
		ProdukID: produk.ProdukID, Responses: fullResponses(),
	})
	require.NoError(t, err)

	paid := model.PaymentStatusPaid
	txID := "MT-12345"
	metode := "bank_transfer"
	require.NoError(t, UpdateOrderStatus(db, order, &dto.UpdateOrderStatusRequest{
		OrderStatusPembayaran: &paid,
		OrderTransaksiID:      &txID,
		OrderMetodePembayaran: &metode,
	}))

	var reloaded model.Order
	require.NoError(t, db.First(&reloaded, "order_id = ?", order.OrderID).Error)
	require.Equal(t, txID, *reloaded.OrderTransaksiID)
	require.Equal(t, metode, *reloaded.OrderMetodePembayaran)
	require.NotNil(t, reloaded.OrderPaidAt)
}

func TestUpdateOrderStatus_PaidAtHanyaSekali(t *testing.T) {
	db := initTestDB(t)
	user := seedUser(t, db)
	produk := seedProduk(t, db, 10000, produkModel.ProdukTipeLainnya)
	order, err := CreateOrder(db, &user.UserID, &dto.CreateOrderRequest{
		ProdukID: produk.ProdukID, Responses: fullResponses(),
	})
	require.NoError(t, err)

	paid := model.PaymentStatusPaid
	require.NoError(t, UpdateOrderStatus(db, order, &dto.UpdateOrderStatusRequest{OrderStatusPembayaran: &paid}))
	require.NotNil(t, order.OrderPaidAt)
	first := *order.OrderPaidAt

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, UpdateOrderStatus(db, order, &dto.UpdateOrderStatusRequest{OrderStatusPembayaran: &paid}))
	require.True(t, order.OrderPaidAt.Equal(first))
}

func TestCancelOrder_GuardCompleted(t *testing.T) {
	db := initTestDB(t)
	user := seedUser(t, db)
	produk := seedProduk(t, db, 10000, produkModel.ProdukTipeLainnya)
	order, err := CreateOrder(db, &user.UserID, &dto.CreateOrderRequest{
		ProdukID: produk.ProdukID, Responses: fullResponses(),
	})
	require.NoError(t, err)

	order.OrderStatus = model.OrderStatusCompleted
	require.NoError(t, db.Save(order).Error)

	_, err = CancelOrder(db, order.OrderID, user.UserID, false)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	require.Equal(t, fiber.StatusBadRequest, fe.Code)

	var reloaded model.Order
	require.NoError(t, db.First(&reloaded, "order_id = ?", order.OrderID).Error)
	require.Equal(t, model.OrderStatusCompleted, reloaded.OrderStatus)
}

func TestCancelOrder_GuardKepemilikan(t *testing.T) {
	db := initTestDB(t)
	user := seedUser(t, db)
	produk := seedProduk(t, db, 10000, produkModel.ProdukTipeLainnya)
	order, err := CreateOrder(db, &user.UserID, &dto.CreateOrderRequest{
		ProdukID: produk.ProdukID, Responses: fullResponses(),
	})
	require.NoError(t, err)

	_, err = CancelOrder(db, order.OrderID, user.UserID+1, false)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	require.Equal(t, fiber.StatusForbidden, fe.Code)

	var reloaded model.Order
	require.NoError(t, db.First(&reloaded, "order_id = ?", order.OrderID).Error)
	require.Equal(t, model.OrderStatusPending, reloaded.OrderStatus)
}

func TestCancelOrder_StatusPembayaranMengikutiPrior(t *testing.T) {
	db := initTestDB(t)
	user := seedUser(t, db)
	produk := seedProduk(t, db, 10000, produkModel.ProdukTipeLainnya)

	// belum dibayar → failed
	unpaidOrder, err := CreateOrder(db, &user.UserID, &dto.CreateOrderRequest{
		ProdukID: produk.ProdukID, Responses: fullResponses(),
	})
	require.NoError(t, err)
	cancelled, err := CancelOrder(db, unpaidOrder.OrderID, user.UserID, false)
	require.NoError(t, err)
	require.Equal(t, model.OrderStatusCancelled, cancelled.OrderStatus)
	require.Equal(t, model.PaymentStatusFailed, cancelled.OrderStatusPembayaran)

	// sudah paid → refunded
	paidOrder, err := CreateOrder(db, &user.UserID, &dto.CreateOrderRequest{
		ProdukID: produk.ProdukID, Responses: fullResponses(),
	})
	require.NoError(t, err)
	require.NoError(t, MarkOrderPaid(db, paidOrder, "TX-1", "bank_transfer"))
	cancelled, err = CancelOrder(db, paidOrder.OrderID, user.UserID, false)
	require.NoError(t, err)
	require.Equal(t, model.PaymentStatusRefunded, cancelled.OrderStatusPembayaran)
}

func TestMarkOrderPaid_Idempoten(t *testing.T) {
	db := initTestDB(t)
	user := seedUser(t, db)
	produk := seedProduk(t, db, 10000, produkModel.ProdukTipeMateri)
	order, err := CreateOrder(db, &user.UserID, &dto.CreateOrderRequest{
		ProdukID: produk.ProdukID, Responses: fullResponses(),
	})
	require.NoError(t, err)

	require.NoError(t, MarkOrderPaid(db, order, "TX-1", "bank_transfer"))
	require.NotNil(t, order.OrderPaidAt)
	first := *order.OrderPaidAt

	time.Sleep(10 * time.Millisecond)
	require.NoError(t, MarkOrderPaid(db, order, "TX-2", "gopay"))
	require.True(t, order.OrderPaidAt.Equal(first))
	require.Equal(t, "TX-1", *order.OrderTransaksiID)
}

func TestDeleteOrder_CascadeResponses(t *testing.T) {
	db := initTestDB(t)
	user := seedUser(t, db)
	produk := seedProduk(t, db, 10000, produkModel.ProdukTipeLainnya)
	order, err := CreateOrder(db, &user.UserID, &dto.CreateOrderRequest{
		ProdukID: produk.ProdukID, Responses: fullResponses(),
	})
	require.NoError(t, err)

	require.NoError(t, DeleteOrder(db, order.OrderID))

	var count int64
	db.Model(&model.OrderFormResponse{}).Where("response_order_id = ?", order.OrderID).Count(&count)
	require.EqualValues(t, 0, count)
}

func TestParseOrderReference(t *testing.T) {
	id, err := ParseOrderReference("ORDER-7-1700000000")
	require.NoError(t, err)
	require.EqualValues(t, 7, id)

	id, err = ParseOrderReference("ORDER-7-x")
	require.NoError(t, err)
	require.EqualValues(t, 7, id)

	_, err = ParseOrderReference("INVOICE-7-1")
	require.Error(t, err)

	_, err = ParseOrderReference("ORDER-abc-1")
	require.Error(t, err)
}
