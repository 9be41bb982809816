package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-pro/internal/application/dto"
	"github.com/tu-usuario/pos-pro/internal/domain/rbac"
)

// RequirePermission devuelve un middleware Fiber que autoriza la petición
// contra la matriz de permisos. Debe usarse DESPUÉS de AuthMiddleware.
//
// Orden de decisión:
//  1. Sin identidad en el contexto -> 401 (no autenticado).
//  2. Marca superuser -> pasa sin consultar la matriz.
//  3. Rol vacío (token legacy) -> 401 MISSING_ROLE.
//  4. Permiso en la matriz del rol -> pasa; si no -> 403 con el rol actual y
//     su conjunto completo de permisos, para que el cliente pueda mostrarlos.
func RequirePermission(permission string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUserID(c) == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "UNAUTHORIZED",
				Message: "identidad no encontrada en el contexto",
			})
		}
		if IsSuperuser(c) {
			return c.Next()
		}
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Code:    "MISSING_ROLE",
				Message: "el token no incluye rol",
			})
		}
		if !rbac.HasPermission(role, permission) {
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Code:        "FORBIDDEN",
				Message:     "permiso requerido: " + permission,
				Role:        role,
				Permissions: rbac.PermissionsFor(role),
			})
		}
		return c.Next()
	}
}
