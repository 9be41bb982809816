package http

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/pos-pro/internal/application/auth"
	"github.com/tu-usuario/pos-pro/internal/application/sales"
	"github.com/tu-usuario/pos-pro/internal/application/usecase"
	"github.com/tu-usuario/pos-pro/internal/domain/rbac"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductUC      *usecase.ProductUseCase
	CategoryUC     *usecase.CategoryUseCase
	UserUC         *usecase.UserUseCase
	NotificationUC *usecase.NotificationUseCase
	AnalyticsUC    *usecase.AnalyticsUseCase
	RecordSale     *sales.RecordSaleUseCase
	SaleQuery      *sales.SaleQueryUseCase
	ReceiptPDF     *sales.ReceiptPDFUseCase
	Settings       *SettingsHandler
	Uploads        *UploadHandler
	JWTSecret      string
}

// route una entrada de la tabla declarativa. Cada ruta declara exactamente
// una de: Public (sin token), AuthOnly (token sin permiso concreto) o
// Permission (token + permiso de la matriz).
type route struct {
	Method     string
	Path       string
	Public     bool
	AuthOnly   bool
	Permission string
	Handler    fiber.Handler
}

// Router registra las rutas de la API a partir de la tabla declarativa.
// Una ruta sin marcador de acceso, o con un permiso que no existe en la
// matriz, es un error de programación y el arranque entra en pánico.
func Router(app *fiber.App, deps RouterDeps) {
	authHandler := NewAuthHandler(deps.AuthUC)
	productHandler := NewProductHandler(deps.ProductUC)
	categoryHandler := NewCategoryHandler(deps.CategoryUC)
	saleHandler := NewSaleHandler(deps.RecordSale, deps.SaleQuery, deps.ReceiptPDF)
	userHandler := NewUserHandler(deps.UserUC)
	analyticsHandler := NewAnalyticsHandler(deps.AnalyticsUC)
	notificationHandler := NewNotificationHandler(deps.NotificationUC)

	table := []route{
		{Method: fiber.MethodGet, Path: "/health", Public: true, Handler: healthCheck},

		{Method: fiber.MethodPost, Path: "/api/auth/login", Public: true, Handler: authHandler.Login},
		{Method: fiber.MethodPost, Path: "/api/auth/register", Permission: rbac.PermManageUsers, Handler: authHandler.Register},
		{Method: fiber.MethodGet, Path: "/api/auth/profile", AuthOnly: true, Handler: authHandler.Profile},

		{Method: fiber.MethodGet, Path: "/api/products", Permission: rbac.PermViewProducts, Handler: productHandler.List},
		{Method: fiber.MethodPost, Path: "/api/products", Permission: rbac.PermManageProducts, Handler: productHandler.Create},
		{Method: fiber.MethodGet, Path: "/api/products/:id", Permission: rbac.PermViewProducts, Handler: productHandler.GetByID},
		{Method: fiber.MethodPut, Path: "/api/products/:id", Permission: rbac.PermManageProducts, Handler: productHandler.Update},
		{Method: fiber.MethodDelete, Path: "/api/products/:id", Permission: rbac.PermManageProducts, Handler: productHandler.Delete},
		{Method: fiber.MethodPost, Path: "/api/products/:id/image", Permission: rbac.PermManageProducts, Handler: deps.Uploads.UploadProductImage},

		{Method: fiber.MethodGet, Path: "/api/categories", Permission: rbac.PermViewProducts, Handler: categoryHandler.List},
		{Method: fiber.MethodPost, Path: "/api/categories", Permission: rbac.PermManageProducts, Handler: categoryHandler.Create},
		{Method: fiber.MethodDelete, Path: "/api/categories/:id", Permission: rbac.PermManageProducts, Handler: categoryHandler.Delete},

		{Method: fiber.MethodGet, Path: "/api/sales", Permission: rbac.PermViewSales, Handler: saleHandler.List},
		{Method: fiber.MethodPost, Path: "/api/sales", Permission: rbac.PermPOSAccess, Handler: saleHandler.Create},
		{Method: fiber.MethodGet, Path: "/api/sales/:id", Permission: rbac.PermViewSales, Handler: saleHandler.GetByID},
		{Method: fiber.MethodGet, Path: "/api/sales/:id/receipt", Permission: rbac.PermViewSales, Handler: saleHandler.Receipt},
		{Method: fiber.MethodDelete, Path: "/api/sales/:id", Permission: rbac.PermManageSales, Handler: saleHandler.Delete},

		{Method: fiber.MethodGet, Path: "/api/users", Permission: rbac.PermManageUsers, Handler: userHandler.List},
		{Method: fiber.MethodPut, Path: "/api/users/:id/role", Permission: rbac.PermManageUsers, Handler: userHandler.ChangeRole},

		{Method: fiber.MethodGet, Path: "/api/analytics", Permission: rbac.PermViewAnalytics, Handler: analyticsHandler.Dashboard},

		{Method: fiber.MethodGet, Path: "/api/notifications", Permission: rbac.PermViewDashboard, Handler: notificationHandler.List},
		{Method: fiber.MethodPost, Path: "/api/notifications/scan", Permission: rbac.PermViewDashboard, Handler: notificationHandler.Scan},
		{Method: fiber.MethodPut, Path: "/api/notifications/:id/read", Permission: rbac.PermViewDashboard, Handler: notificationHandler.MarkRead},

		{Method: fiber.MethodGet, Path: "/api/settings", Permission: rbac.PermViewDashboard, Handler: deps.Settings.Get},
		{Method: fiber.MethodPut, Path: "/api/settings", Permission: rbac.PermManageSettings, Handler: deps.Settings.Update},
	}

	register(app, table, deps.JWTSecret)
}

// register valida la tabla y monta cada ruta con sus middlewares.
func register(app *fiber.App, table []route, jwtSecret string) {
	known := make(map[string]bool)
	for _, p := range rbac.AllPermissions() {
		known[p] = true
	}

	for _, r := range table {
		if err := validateRoute(r, known); err != nil {
			panic(err)
		}
		switch {
		case r.Public:
			app.Add(r.Method, r.Path, r.Handler)
		case r.AuthOnly:
			app.Add(r.Method, r.Path, AuthMiddleware(jwtSecret), r.Handler)
		default:
			app.Add(r.Method, r.Path, AuthMiddleware(jwtSecret), RequirePermission(r.Permission), r.Handler)
		}
	}
}

func validateRoute(r route, known map[string]bool) error {
	markers := 0
	if r.Public {
		markers++
	}
	if r.AuthOnly {
		markers++
	}
	if r.Permission != "" {
		markers++
	}
	if markers == 0 {
		return fmt.Errorf("ruta %s %s sin marcador de acceso (public, authOnly o permiso)", r.Method, r.Path)
	}
	if markers > 1 {
		return fmt.Errorf("ruta %s %s declara más de un marcador de acceso", r.Method, r.Path)
	}
	if r.Permission != "" && !known[r.Permission] {
		return fmt.Errorf("ruta %s %s declara un permiso desconocido: %q", r.Method, r.Path, r.Permission)
	}
	return nil
}

// healthCheck endpoint de salud.
func healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
