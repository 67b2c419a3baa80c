package service

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	formModel "sekolahku_backend/internals/features/formulir/model"
	produkModel "sekolahku_backend/internals/features/katalog/model"
	"sekolahku_backend/internals/features/orders/dto"
	"sekolahku_backend/internals/features/orders/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
)

// CreateOrder membuat order baru beserta jawaban formulirnya dalam satu transaksi.
// Harga selalu dihitung ulang dari katalog, angka dari client tidak dipercaya.
// Snapshot pembeli (nama/email/telepon) dicocokkan dari jawaban via nama_field.
func CreateOrder(db *gorm.DB, userID *uint, req *dto.CreateOrderRequest) (*model.Order, error) {
	if userID != nil {
		var user userModel.User
		if err := db.First(&user, "user_id = ?", *userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fiber.NewError(fiber.StatusNotFound, "User tidak ditemukan")
			}
			return nil, err
		}
	}

	var produk produkModel.Produk
	if err := db.First(&produk, "produk_id = ?", req.ProdukID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Produk tidak ditemukan")
		}
		return nil, err
	}

	jumlah := req.Jumlah
	if jumlah < 1 {
		jumlah = 1
	}

	nama, email, telepon, err := extractBuyer(req.Responses)
	if err != nil {
		return nil, err
	}

	gross := produk.ProdukHarga * jumlah
	total := gross - req.Diskon

	produkID := produk.ProdukID
	order := model.Order{
		OrderUserID:           userID,
		OrderProdukID:         &produkID,
		OrderNamaProduk:       produk.ProdukNama,
		OrderHargaProduk:      produk.ProdukHarga,
		OrderNamaPembeli:      nama,
		OrderEmailPembeli:     email,
		OrderTeleponPembeli:   telepon,
		OrderJumlah:           jumlah,
		OrderGrossAmount:      gross,
		OrderDiskon:           req.Diskon,
		OrderTotalAmount:      total,
		OrderStatus:           model.OrderStatusPending,
		OrderStatusPembayaran: model.PaymentStatusUnpaid,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		for _, r := range req.Responses {
			resp := model.OrderFormResponse{
				ResponseOrderID:     order.OrderID,
				ResponseFormFieldID: r.IDFormField,
				ResponseNamaField:   r.NamaField,
				ResponseJawaban:     r.Jawaban,
			}
			if err := tx.Create(&resp).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[INFO] Order #%d dibuat: produk=%s total=%d", order.OrderID, order.OrderNamaProduk, order.OrderTotalAmount)
	return &order, nil
}

// extractBuyer mengambil snapshot pembeli dari jawaban formulir.
// Ketiga field wajib ada, kalau tidak order ditolak 400.
func extractBuyer(responses []dto.OrderResponseItem) (nama, email, telepon string, err error) {
	for _, r := range responses {
		switch strings.ToLower(strings.TrimSpace(r.NamaField)) {
		case formModel.FieldNamaLengkap:
			nama = strings.TrimSpace(r.Jawaban)
		case formModel.FieldEmail:
			email = strings.TrimSpace(r.Jawaban)
		case formModel.FieldNoHP:
			telepon = strings.TrimSpace(r.Jawaban)
		}
	}

	var missing []string
	if nama == "" {
		missing = append(missing, formModel.FieldNamaLengkap)
	}
	if email == "" {
		missing = append(missing, formModel.FieldEmail)
	}
	if telepon == "" {
		missing = append(missing, formModel.FieldNoHP)
	}
	if len(missing) > 0 {
		return "", "", "", fiber.NewError(fiber.StatusBadRequest,
			"Jawaban formulir tidak lengkap, field wajib: "+strings.Join(missing, ", "))
	}
	return nama, email, telepon, nil
}

// UpdateOrderStatus mengubah status order dan/atau status pembayaran oleh admin.
// paid_at hanya diisi sekali, pada transisi pertama ke paid.
func UpdateOrderStatus(db *gorm.DB, order *model.Order, req *dto.UpdateOrderStatusRequest) error {
	if req.OrderStatus != nil {
		if !model.ValidOrderStatus(*req.OrderStatus) {
			return fiber.NewError(fiber.StatusBadRequest,
				"order_status tidak valid, pilihan: "+strings.Join(model.OrderStatusList, ", "))
		}
		order.OrderStatus = *req.OrderStatus
	}
	if req.OrderStatusPembayaran != nil {
		if !model.ValidPaymentStatus(*req.OrderStatusPembayaran) {
			return fiber.NewError(fiber.StatusBadRequest,
				"order_status_pembayaran tidak valid, pilihan: "+strings.Join(model.PaymentStatusList, ", "))
		}
		order.OrderStatusPembayaran = *req.OrderStatusPembayaran
		if *req.OrderStatusPembayaran == model.PaymentStatusPaid && order.OrderPaidAt == nil {
			now := time.Now()
			order.OrderPaidAt = &now
		}
	}
	if req.OrderTransaksiID != nil {
		order.OrderTransaksiID = req.OrderTransaksiID
	}
	if req.OrderMetodePembayaran != nil {
		order.OrderMetodePembayaran = req.OrderMetodePembayaran
	}
	return db.Save(order).Error
}

// MarkOrderPaid dipakai handler notifikasi gateway saat pembayaran settle.
// Idempoten: order yang sudah paid tidak berubah (paid_at pertama dipertahankan).
func MarkOrderPaid(db *gorm.DB, order *model.Order, transaksiID, metode string) error {
	if order.OrderStatusPembayaran == model.PaymentStatusPaid {
		log.Printf("[WARNING] Order #%d sudah paid, notifikasi diabaikan", order.OrderID)
		return nil
	}
	order.OrderStatusPembayaran = model.PaymentStatusPaid
	order.OrderStatus = model.OrderStatusConfirmed
	if transaksiID != "" {
		order.OrderTransaksiID = &transaksiID
	}
	if metode != "" {
		order.OrderMetodePembayaran = &metode
	}
	if order.OrderPaidAt == nil {
		now := time.Now()
		order.OrderPaidAt = &now
	}
	return db.Save(order).Error
}

// CancelOrder membatalkan order milik user (atau oleh admin).
// Order completed tidak bisa dibatalkan; order paid jadi refunded, selain itu failed.
func CancelOrder(db *gorm.DB, orderID uint, requesterID uint, isAdmin bool) (*model.Order, error) {
	var order model.Order
	if err := db.First(&order, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Order tidak ditemukan")
		}
		return nil, err
	}

	if !isAdmin {
		if order.OrderUserID == nil || *order.OrderUserID != requesterID {
			return nil, fiber.NewError(fiber.StatusForbidden, "Anda tidak berhak membatalkan order ini")
		}
	}
	if order.OrderStatus == model.OrderStatusCompleted {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Order yang sudah completed tidak bisa dibatalkan")
	}
	if order.OrderStatus == model.OrderStatusCancelled {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Order sudah dibatalkan")
	}

	if order.OrderStatusPembayaran == model.PaymentStatusPaid {
		order.OrderStatusPembayaran = model.PaymentStatusRefunded
	} else {
		order.OrderStatusPembayaran = model.PaymentStatusFailed
	}
	order.OrderStatus = model.OrderStatusCancelled

	if err := db.Save(&order).Error; err != nil {
		return nil, err
	}
	log.Printf("[INFO] Order #%d dibatalkan (pembayaran: %s)", order.OrderID, order.OrderStatusPembayaran)
	return &order, nil
}

// DeleteOrder menghapus order beserta jawaban formulirnya.
func DeleteOrder(db *gorm.DB, orderID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.OrderFormResponse{}, "response_order_id = ?", orderID).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.Order{}, "order_id = ?", orderID)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Order tidak ditemukan")
		}
		return nil
	})
}

// BuildOrderReference membuat referensi order untuk gateway pembayaran.
func BuildOrderReference(orderID uint) string {
	return fmt.Sprintf("ORDER-%d-%d", orderID, time.Now().Unix())
}

// ParseOrderReference mengambil order_id dari referensi "ORDER-<id>-<ts>".
func ParseOrderReference(ref string) (uint, error) {
	parts := strings.Split(ref, "-")
	if len(parts) < 2 || parts[0] != "ORDER" {
		return 0, fmt.Errorf("format order_id tidak dikenali: %s", ref)
	}
	var id uint
	if _, err := fmt.Sscanf(parts[1], "%d", &id); err != nil || id == 0 {
		return 0, fmt.Errorf("format order_id tidak dikenali: %s", ref)
	}
	return id, nil
}
