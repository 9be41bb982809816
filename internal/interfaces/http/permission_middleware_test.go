package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/pos-pro/internal/domain/rbac"
	apphttp "github.com/tu-usuario/pos-pro/internal/interfaces/http"
	pkgjwt "github.com/tu-usuario/pos-pro/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

const (
	testJWTSecret = "test-secret-key-for-unit-tests"
	testUserID    = "00000000-0000-0000-0000-000000000001"
	testIssuer    = "pos-pro-test"
	testExpMin    = 60
)

// buildTestApp construye una aplicación Fiber mínima con:
//   - AuthMiddleware para parsear el JWT y cargar locals
//   - RequirePermission para autorizar contra la matriz
//   - Un handler dummy que devuelve 200 si pasa los middlewares
func buildTestApp(permission string) *fiber.App {
	app := fiber.New()
	app.Get("/protected",
		apphttp.AuthMiddleware(testJWTSecret),
		apphttp.RequirePermission(permission),
		func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusOK).JSON(fiber.Map{
				"ok":   true,
				"role": apphttp.GetRole(c),
			})
		},
	)
	return app
}

// tokenFor genera un JWT con el rol y la marca superuser indicados.
func tokenFor(t *testing.T, role string, superuser bool) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, testUserID, role, superuser, testIssuer, testExpMin)
	require.NoError(t, err, "debe generarse un token JWT válido")
	return "Bearer " + tok
}

// doRequest lanza una petición GET /protected y devuelve la respuesta.
func doRequest(t *testing.T, app *fiber.App, authHeader string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests RequirePermission
// ──────────────────────────────────────────────────────────────────────────────

// Caso 1: El rol incluye el permiso requerido → HTTP 200.
func TestRequirePermission_CajeroAccedeAlPOS(t *testing.T) {
	app := buildTestApp(rbac.PermPOSAccess)
	resp := doRequest(t, app, tokenFor(t, "cashier", false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"cashier debe poder acceder a una ruta pos_access")

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, true, body["ok"])
	assert.Equal(t, "cashier", body["role"])
}

// Caso 2: El rol no incluye el permiso → HTTP 403 con rol y permisos.
func TestRequirePermission_CajeroBloqueadoEnManageUsers(t *testing.T) {
	app := buildTestApp(rbac.PermManageUsers)
	resp := doRequest(t, app, tokenFor(t, "cashier", false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"cashier no debe poder acceder a una ruta manage_users")

	var body struct {
		Code        string   `json:"code"`
		Role        string   `json:"role"`
		Permissions []string `json:"permissions"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "FORBIDDEN", body.Code)
	assert.Equal(t, "cashier", body.Role,
		"el 403 debe incluir el rol actual del usuario")
	assert.ElementsMatch(t, rbac.PermissionsFor("cashier"), body.Permissions,
		"el 403 debe incluir el conjunto completo de permisos del rol")
}

// Caso 3: Superuser pasa sin consultar la matriz, aun con rol sin el permiso.
func TestRequirePermission_SuperuserOmiteLaMatriz(t *testing.T) {
	app := buildTestApp(rbac.PermManageUsers)
	resp := doRequest(t, app, tokenFor(t, "cashier", true))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode,
		"superuser debe pasar cualquier permiso sin importar el rol")
}

// Caso 4: Rol desconocido → matriz vacía → HTTP 403.
func TestRequirePermission_RolDesconocidoBloqueado(t *testing.T) {
	app := buildTestApp(rbac.PermViewDashboard)
	resp := doRequest(t, app, tokenFor(t, "rol_inexistente", false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusForbidden, resp.StatusCode,
		"un rol fuera de la matriz no tiene ningún permiso")
}

// Caso 5: Token con rol vacío (legacy) → HTTP 401 MISSING_ROLE.
func TestRequirePermission_TokenSinRol_Retorna401(t *testing.T) {
	app := buildTestApp(rbac.PermViewDashboard)
	resp := doRequest(t, app, tokenFor(t, "", false))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_ROLE",
		"la respuesta debe indicar el código MISSING_ROLE")
}

// Caso 6: Sin header Authorization → HTTP 401 MISSING_TOKEN.
func TestRequirePermission_SinAuthHeader_Retorna401(t *testing.T) {
	app := buildTestApp(rbac.PermViewDashboard)
	resp := doRequest(t, app, "")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "MISSING_TOKEN")
}

// Caso 7: Token malformado → HTTP 401 INVALID_TOKEN.
func TestRequirePermission_TokenInvalido_Retorna401(t *testing.T) {
	app := buildTestApp(rbac.PermViewDashboard)
	resp := doRequest(t, app, "Bearer token.invalido.aqui")
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests AuthMiddleware — extracción de claims del token
// ──────────────────────────────────────────────────────────────────────────────

func TestAuthMiddleware_ExtraeClaims(t *testing.T) {
	app := fiber.New()
	app.Get("/me", apphttp.AuthMiddleware(testJWTSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"user_id":   apphttp.GetUserID(c),
			"role":      apphttp.GetRole(c),
			"superuser": apphttp.IsSuperuser(c),
		})
	})

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", tokenFor(t, "super_admin", true))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testUserID, body["user_id"])
	assert.Equal(t, "super_admin", body["role"])
	assert.Equal(t, true, body["superuser"])
}
