package service

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	aksesService "sekolahku_backend/internals/features/akses_materi/service"
	produkModel "sekolahku_backend/internals/features/katalog/model"
	orderModel "sekolahku_backend/internals/features/orders/model"
	orderService "sekolahku_backend/internals/features/orders/service"
	"sekolahku_backend/internals/features/payment/dto"
	"sekolahku_backend/internals/features/payment/model"
	siswaModel "sekolahku_backend/internals/features/siswa/siswa/model"
)

// HandleGatewayNotification memproses notifikasi gateway (asli maupun
// simulator): dedup lewat log event, update status pembayaran order, lalu
// buka akses materi kalau produknya bertipe materi.
// Pencatatan event dan pemrosesan berjalan dalam satu transaksi: kalau
// pemrosesan gagal, baris dedup ikut rollback sehingga retry gateway dengan
// transaction_id yang sama tetap diproses ulang, bukan di-skip.
func HandleGatewayNotification(db *gorm.DB, notif *dto.PaymentNotification) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if dup, err := recordGatewayEvent(tx, notif); err != nil {
			return err
		} else if dup {
			log.Printf("[WARNING] Notifikasi duplikat diabaikan: tx=%s", notif.TransactionID)
			return nil
		}
		return processNotification(tx, notif)
	})
}

func processNotification(tx *gorm.DB, notif *dto.PaymentNotification) error {
	orderID, err := orderService.ParseOrderReference(notif.OrderID)
	if err != nil {
		return err
	}

	var order orderModel.Order
	if err := tx.First(&order, "order_id = ?", orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("order #%d dari notifikasi tidak ditemukan", orderID)
		}
		return err
	}

	switch notif.TransactionStatus {
	case "settlement", "capture":
		if err := orderService.MarkOrderPaid(tx, &order, notif.TransactionID, notif.PaymentType); err != nil {
			return err
		}
		log.Printf("[INFO] Pembayaran order #%d terkonfirmasi (%s)", order.OrderID, notif.TransactionStatus)
		return handlePaidOrder(tx, &order)
	case "pending":
		log.Printf("[INFO] Pembayaran order #%d masih pending", order.OrderID)
		return nil
	default:
		log.Printf("[WARNING] Pembayaran order #%d gagal: status=%s", order.OrderID, notif.TransactionStatus)
		return nil
	}
}

// recordGatewayEvent mencatat notifikasi sebagai kunci idempotensi.
// Balikan true artinya notifikasi dengan transaction_id sama sudah pernah
// diproses. Notifikasi tanpa transaction_id tidak bisa didedup, lolos saja.
func recordGatewayEvent(db *gorm.DB, notif *dto.PaymentNotification) (bool, error) {
	if notif.TransactionID == "" {
		return false, nil
	}

	provider := "midtrans"
	if notif.PaymentType == SimulatorPaymentType {
		provider = SimulatorProvider
	}

	txID := notif.TransactionID
	event := model.GatewayEvent{
		GatewayEventProvider:      provider,
		GatewayEventTransactionID: &txID,
		GatewayEventOrderRef:      notif.OrderID,
		GatewayEventStatus:        notif.TransactionStatus,
		GatewayEventRawPayload: datatypes.JSONMap{
			"order_id":           notif.OrderID,
			"transaction_status": notif.TransactionStatus,
			"transaction_id":     notif.TransactionID,
			"payment_type":       notif.PaymentType,
			"gross_amount":       notif.GrossAmount,
		},
	}
	res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&event)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 0, nil
}

// handlePaidOrder menjalankan efek lanjutan setelah order paid.
func handlePaidOrder(db *gorm.DB, order *orderModel.Order) error {
	if order.OrderProdukID == nil {
		log.Printf("[WARNING] Order #%d tidak punya produk, tidak ada akses yang dibuka", order.OrderID)
		return nil
	}
	var produk produkModel.Produk
	if err := db.First(&produk, "produk_id = ?", *order.OrderProdukID).Error; err != nil {
		return err
	}

	switch {
	case produk.IsMateri():
		siswa, err := resolveSiswa(db, order)
		if err != nil {
			return err
		}
		if siswa == nil {
			log.Printf("[WARNING] Order #%d paid tapi siswa untuk user tidak ditemukan, akses tidak dibuka", order.OrderID)
			return nil
		}
		orderID := order.OrderID
		_, err = aksesService.GrantAkses(db, siswa.SiswaID, produk.ProdukID, &orderID)
		return err
	case produk.IsDaftarUlang():
		// TODO: aktifkan enrollment siswa_kelas terkait saat pembayaran daftar
		// ulang settle (butuh kejelasan order -> siswa_kelas mana yang dituju).
		log.Printf("[INFO] Order #%d adalah daftar ulang, aktivasi enrollment belum otomatis", order.OrderID)
		return nil
	default:
		return nil
	}
}

func resolveSiswa(db *gorm.DB, order *orderModel.Order) (*siswaModel.Siswa, error) {
	if order.OrderUserID == nil {
		return nil, nil
	}
	var siswa siswaModel.Siswa
	err := db.First(&siswa, "siswa_user_id = ?", *order.OrderUserID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &siswa, nil
}
