package dto

type CreateFormulirRequest struct {
	FormNama     string                   `json:"form_nama" validate:"required,min=2,max=150"`
	FormProdukID *uint                    `json:"form_produk_id,omitempty"`
	Fields       []CreateFormFieldRequest `json:"fields,omitempty" validate:"omitempty,dive"`
}

type CreateFormFieldRequest struct {
	FieldNama  string `json:"field_nama" validate:"required,min=1,max=100"`
	FieldLabel string `json:"field_label" validate:"required,min=1,max=200"`
	FieldTipe  string `json:"field_tipe" validate:"omitempty,oneof=text number email phone textarea select"`
	FieldWajib bool   `json:"field_wajib"`
}

type UpdateFormulirRequest struct {
	FormNama     *string `json:"form_nama,omitempty" validate:"omitempty,min=2,max=150"`
	FormProdukID *uint   `json:"form_produk_id,omitempty"`
}
