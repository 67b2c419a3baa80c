package service

import (
	"errors"
	"strings"

	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"

	orderModel "sekolahku_backend/internals/features/orders/model"
)

var SnapClient snap.Client

// InitMidtrans harus dipanggil saat bootstrap app.
// useProduction=true untuk Production, false untuk Sandbox.
func InitMidtrans(serverKey string, useProduction bool) {
	if useProduction {
		SnapClient.New(serverKey, midtrans.Production)
	} else {
		SnapClient.New(serverKey, midtrans.Sandbox)
	}
}

// GenerateSnapToken membuat transaksi Snap di Midtrans untuk satu order.
// orderRef dipakai sebagai OrderID Midtrans dan dikembalikan bersama token.
func GenerateSnapToken(order *orderModel.Order, orderRef string) (string, string, error) {
	if order.OrderTotalAmount <= 0 {
		return "", "", errors.New("order_total_amount tidak valid")
	}

	first, last := splitName(order.OrderNamaPembeli)
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  orderRef,
			GrossAmt: int64(order.OrderTotalAmount),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: first,
			LName: last,
			Email: order.OrderEmailPembeli,
			Phone: order.OrderTeleponPembeli,
		},
	}
	req.Items = &[]midtrans.ItemDetails{
		{
			ID:    orderRef,
			Price: int64(order.OrderHargaProduk),
			Qty:   int32(order.OrderJumlah),
			Name:  truncate(order.OrderNamaProduk, 50),
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", "", err
	}
	return resp.Token, resp.RedirectURL, nil
}

func splitName(full string) (string, string) {
	parts := strings.Fields(full)
	if len(parts) == 0 {
		return "", ""
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	return s[:n]
}
