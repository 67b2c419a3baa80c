package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	"sekolahku_backend/internals/constants"
	authDTO "sekolahku_backend/internals/features/users/auth/dto"
	authModel "sekolahku_backend/internals/features/users/auth/model"
	userModel "sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

const tokenLifetime = 24 * time.Hour

type AuthController struct {
	DB        *gorm.DB
	Validator *validator.Validate
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db, Validator: validator.New()}
}

// POST /auth/register
func (h *AuthController) Register(c *fiber.Ctx) error {
	var req authDTO.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	// Registrasi publik selalu jadi siswa. Role lain hanya lewat seeding/admin.
	role := int(constants.RoleSiswa)
	if req.UserRole != nil && *req.UserRole != role {
		return helper.Error(c, fiber.StatusForbidden, "Registrasi publik hanya untuk role siswa")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.UserPassword), bcrypt.DefaultCost)
	if err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.User{
		UserNama:     req.UserNama,
		UserEmail:    strings.ToLower(strings.TrimSpace(req.UserEmail)),
		UserPassword: string(hashed),
		UserRole:     role,
	}
	if err := h.DB.WithContext(c.Context()).Create(&user).Error; err != nil {
		fe := helper.TranslateDBError(err)
		if fe.Code == fiber.StatusBadRequest {
			return helper.Error(c, fiber.StatusBadRequest, "Email sudah terdaftar")
		}
		return helper.FromFiberError(c, fe)
	}

	log.Printf("[SUCCESS] Register user baru id=%d role=%s", user.UserID, user.RoleName())
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Registrasi berhasil", fiber.Map{
		"user_id":   user.UserID,
		"user_nama": user.UserNama,
		"role_name": user.RoleName(),
	})
}

// POST /auth/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := h.Validator.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user userModel.User
	if err := h.DB.WithContext(c.Context()).
		Where("user_email = ?", strings.ToLower(strings.TrimSpace(req.UserEmail))).
		First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.UserPassword), []byte(req.UserPassword)); err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := h.generateToken(&user)
	if err != nil {
		log.Println("[ERROR] Gagal generate token:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.Success(c, "Login berhasil", authDTO.LoginResponse{
		Token:    token,
		UserID:   user.UserID,
		UserNama: user.UserNama,
		RoleName: user.RoleName(),
	})
}

// POST /auth/logout — masukkan token ke blacklist sampai expired
func (h *AuthController) Logout(c *fiber.Ctx) error {
	auth := strings.TrimSpace(c.Get("Authorization"))
	fields := strings.Fields(auth)
	if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
		return helper.Error(c, fiber.StatusUnauthorized, "Token tidak ditemukan")
	}
	tokenString := fields[1]

	entry := authModel.TokenBlacklist{
		Token:     tokenString,
		ExpiredAt: time.Now().Add(tokenLifetime),
	}
	if err := h.DB.WithContext(c.Context()).Create(&entry).Error; err != nil {
		if helper.IsDuplicateErr(err) {
			return helper.Success(c, "Logout berhasil", nil)
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Logout berhasil", nil)
}

func (h *AuthController) generateToken(user *userModel.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":   user.UserID,
		"user_name": user.UserNama,
		"role":      user.UserRole,
		"exp":       time.Now().Add(tokenLifetime).Unix(),
		"iat":       time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
