// Package rbac define la matriz estática rol → permisos del POS.
// Es el único lugar donde se declara qué puede hacer cada rol; el middleware
// HTTP consulta esta matriz después de descartar el caso superuser.
package rbac

import "github.com/tu-usuario/pos-pro/internal/domain/entity"

// Permisos reconocidos por el sistema.
const (
	PermViewDashboard  = "view_dashboard"
	PermManageProducts = "manage_products"
	PermManageSales    = "manage_sales"
	PermViewAnalytics  = "view_analytics"
	PermManageUsers    = "manage_users"
	PermManageSettings = "manage_settings"
	PermPOSAccess      = "pos_access"
	PermViewReports    = "view_reports"
	PermViewProducts   = "view_products"
	PermViewSales      = "view_sales"
)

// matrix asigna a cada rol su conjunto ordenado de permisos.
// staff es el rol legacy: como cashier pero sin historial de ventas.
var matrix = map[string][]string{
	entity.RoleSuperAdmin: {
		PermViewDashboard, PermManageProducts, PermManageSales, PermViewAnalytics,
		PermManageUsers, PermManageSettings, PermPOSAccess, PermViewReports,
		PermViewProducts, PermViewSales,
	},
	entity.RoleCashier: {
		PermViewDashboard, PermPOSAccess, PermViewProducts, PermViewSales,
	},
	entity.RoleStaff: {
		PermViewDashboard, PermPOSAccess, PermViewProducts,
	},
}

// PermissionsFor devuelve los permisos del rol. Función pura y total:
// un rol desconocido devuelve el conjunto vacío, nunca error.
func PermissionsFor(role string) []string {
	perms, ok := matrix[role]
	if !ok {
		return []string{}
	}
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

// HasPermission reporta si el rol incluye el permiso. No contempla el caso
// superuser: eso se decide antes de consultar la matriz.
func HasPermission(role, permission string) bool {
	for _, p := range matrix[role] {
		if p == permission {
			return true
		}
	}
	return false
}

// AllPermissions devuelve el universo de permisos (lo que recibe un superuser).
func AllPermissions() []string {
	return PermissionsFor(entity.RoleSuperAdmin)
}
