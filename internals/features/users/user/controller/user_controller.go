package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/users/user/model"
	helper "sekolahku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /users/me
func (h *UserController) Me(c *fiber.Ctx) error {
	userID, ok := c.Locals("user_id").(uint)
	if !ok {
		return helper.Error(c, fiber.StatusUnauthorized, "User tidak terautentikasi")
	}
	var user model.User
	if err := h.DB.WithContext(c.Context()).First(&user, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Profil user", fiber.Map{
		"user":      user,
		"role_name": user.RoleName(),
	})
}

// GET /users — daftar user untuk admin
func (h *UserController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 25, 200)

	q := h.DB.WithContext(c.Context()).Model(&model.User{})
	if v := c.Query("role"); v != "" {
		q = q.Where("user_role = ?", v)
	}

	var total int64
	q.Count(&total)

	var list []model.User
	if err := q.Order("user_id asc").Offset(paging.Offset).Limit(paging.Limit).
		Find(&list).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err))
	}
	return helper.Success(c, "Daftar user", fiber.Map{
		"users":      list,
		"pagination": helper.BuildPagination(paging, total, len(list)),
	})
}
