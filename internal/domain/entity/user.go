package entity

import "time"

// Roles válidos para User. "staff" se mantiene por compatibilidad con cuentas
// antiguas; las cuentas nuevas se crean como cashier o super_admin.
const (
	RoleSuperAdmin = "super_admin"
	RoleCashier    = "cashier"
	RoleStaff      = "staff" // legacy
)

// User representa una cuenta del sistema. El rol se asigna en el registro
// (nunca se crea de forma perezosa en una lectura) y viaja en el JWT.
// Superuser es una marca de identidad, no un rol: salta la matriz de permisos.
type User struct {
	ID           string
	Email        string
	PasswordHash string // bcrypt, nunca plano después de persistir
	Name         string
	Role         string // super_admin, cashier, staff
	Superuser    bool
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
