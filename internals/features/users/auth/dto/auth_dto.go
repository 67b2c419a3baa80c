package dto

/* =========================================================
   REQUEST DTOs
========================================================= */

type RegisterRequest struct {
	UserNama     string `json:"user_nama" validate:"required,min=3,max=100"`
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required,min=8"`
	UserRole     *int   `json:"user_role,omitempty" validate:"omitempty,min=1,max=5"`
}

type LoginRequest struct {
	UserEmail    string `json:"user_email" validate:"required,email"`
	UserPassword string `json:"user_password" validate:"required"`
}

/* =========================================================
   RESPONSE DTOs
========================================================= */

type LoginResponse struct {
	Token    string `json:"token"`
	UserID   uint   `json:"user_id"`
	UserNama string `json:"user_nama"`
	RoleName string `json:"role_name"`
}
