package dto

type InitiatePaymentRequest struct {
	IDOrder uint `json:"idOrder" validate:"required"`
}

type InitiatePaymentResponse struct {
	SnapToken   string `json:"snapToken"`
	OrderID     uint   `json:"orderId"`
	Amount      int    `json:"amount"`
	IsSimulator bool   `json:"isSimulator"`
	RedirectURL string `json:"redirectUrl,omitempty"`
}

type SimulatePaymentRequest struct {
	Token         string `json:"token" validate:"required"`
	PaymentStatus string `json:"paymentStatus" validate:"required,oneof=success pending failed"`
}

// PaymentNotification mengikuti bentuk payload webhook Midtrans, sehingga
// handler notifikasi tidak perlu membedakan gateway asli vs simulator.
type PaymentNotification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	TransactionID     string `json:"transaction_id"`
	PaymentType       string `json:"payment_type"`
	GrossAmount       string `json:"gross_amount,omitempty"`
	FraudStatus       string `json:"fraud_status,omitempty"`
	SignatureKey      string `json:"signature_key,omitempty"`
}
