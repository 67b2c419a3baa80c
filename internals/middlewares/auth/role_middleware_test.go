package auth

import (
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"sekolahku_backend/internals/constants"
)

func newRoleTestApp(role *constants.Role, gate fiber.Handler) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		if role != nil {
			c.Locals("user_role", *role)
		}
		return c.Next()
	})
	app.Get("/siswa", gate, func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})
	return app
}

func TestOnlyRoles_StaffBolehMasuk(t *testing.T) {
	role := constants.RoleGuru
	app := newRoleTestApp(&role,
		OnlyRoles(constants.RoleErrorStaff("mengelola data siswa"), constants.StaffRoles...))

	resp, err := app.Test(httptest.NewRequest("GET", "/siswa", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOnlyRoles_SiswaDitolakDenganPesanCustom(t *testing.T) {
	role := constants.RoleSiswa
	app := newRoleTestApp(&role,
		OnlyRoles(constants.RoleErrorStaff("mengelola data siswa"), constants.StaffRoles...))

	resp, err := app.Test(httptest.NewRequest("GET", "/siswa", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Contains(t, string(body), "Hanya staff")
}

func TestOnlyRoles_GuruBukanAdmin(t *testing.T) {
	role := constants.RoleGuru
	app := newRoleTestApp(&role,
		OnlyRoles(constants.RoleErrorAdmin("mengelola data sekolah"), constants.AdminAndAbove...))

	resp, err := app.Test(httptest.NewRequest("GET", "/siswa", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestOnlyRoles_TanpaRoleUnauthorized(t *testing.T) {
	app := newRoleTestApp(nil,
		OnlyRoles(constants.RoleErrorStaff("mengelola data siswa"), constants.StaffRoles...))

	resp, err := app.Test(httptest.NewRequest("GET", "/siswa", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}
