package dto

type OrderResponseItem struct {
	IDFormField *uint  `json:"id_form_field,omitempty"`
	NamaField   string `json:"nama_field" validate:"required,min=1,max=100"`
	Jawaban     string `json:"jawaban" validate:"required"`
}

type CreateOrderRequest struct {
	ProdukID  uint                `json:"produk_id" validate:"required"`
	Jumlah    int                 `json:"jumlah" validate:"omitempty,min=1"`
	Diskon    int                 `json:"diskon" validate:"omitempty,min=0"`
	Responses []OrderResponseItem `json:"responses" validate:"required,min=1,dive"`
}

type UpdateOrderStatusRequest struct {
	OrderStatus           *string `json:"order_status,omitempty"`
	OrderStatusPembayaran *string `json:"order_status_pembayaran,omitempty"`
	OrderTransaksiID      *string `json:"order_transaksi_id,omitempty" validate:"omitempty,max=100"`
	OrderMetodePembayaran *string `json:"order_metode_pembayaran,omitempty" validate:"omitempty,max=50"`
}
