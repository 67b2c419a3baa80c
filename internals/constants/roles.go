package constants

import "fmt"

// Role adalah enumerasi role numerik yang dibawa payload JWT.
// Satu-satunya sumber pemetaan id → nama role; jangan duplikasi tabel ini.
type Role int

const (
	RoleSuperAdmin Role = 1
	RoleAdmin      Role = 2
	RoleGuru       Role = 3
	RolePJ         Role = 4
	RoleSiswa      Role = 5
)

func (r Role) Name() string {
	switch r {
	case RoleSuperAdmin:
		return "Super Admin"
	case RoleAdmin:
		return "Admin"
	case RoleGuru:
		return "Guru"
	case RolePJ:
		return "PJ"
	case RoleSiswa:
		return "Siswa"
	}
	return fmt.Sprintf("Role(%d)", int(r))
}

func (r Role) Valid() bool {
	return r >= RoleSuperAdmin && r <= RoleSiswa
}

// ParseRole menormalkan angka role dari klaim JWT.
func ParseRole(v int) (Role, bool) {
	r := Role(v)
	return r, r.Valid()
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []Role{
		RoleSuperAdmin,
		RoleAdmin,
		RoleGuru,
		RolePJ,
		RoleSiswa,
	}

	AdminAndAbove = []Role{
		RoleSuperAdmin,
		RoleAdmin,
	}

	StaffRoles = []Role{
		RoleSuperAdmin,
		RoleAdmin,
		RoleGuru,
		RolePJ,
	}
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyStaffCanAccess  = "❌ Hanya staff (admin, guru, PJ) yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}
