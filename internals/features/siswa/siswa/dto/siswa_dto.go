package dto

type CreateSiswaRequest struct {
	SiswaUserID  *uint   `json:"siswa_user_id,omitempty"`
	SiswaNama    string  `json:"siswa_nama" validate:"required,min=2,max=150"`
	SiswaEmail   *string `json:"siswa_email,omitempty" validate:"omitempty,email"`
	SiswaTelepon *string `json:"siswa_telepon,omitempty" validate:"omitempty,max=30"`
	SiswaAlamat  *string `json:"siswa_alamat,omitempty"`
}

type UpdateSiswaRequest struct {
	SiswaUserID  *uint   `json:"siswa_user_id,omitempty"`
	SiswaNama    *string `json:"siswa_nama,omitempty" validate:"omitempty,min=2,max=150"`
	SiswaEmail   *string `json:"siswa_email,omitempty" validate:"omitempty,email"`
	SiswaTelepon *string `json:"siswa_telepon,omitempty" validate:"omitempty,max=30"`
	SiswaAlamat  *string `json:"siswa_alamat,omitempty"`
}
