package dto

type GrantAksesRequest struct {
	IDSiswa  uint  `json:"idSiswa" validate:"required"`
	IDProduk uint  `json:"idProduk" validate:"required"`
	IDOrder  *uint `json:"idOrder,omitempty"`
}
