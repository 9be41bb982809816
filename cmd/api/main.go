package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/tu-usuario/pos-pro/internal/application/auth"
	"github.com/tu-usuario/pos-pro/internal/application/sales"
	"github.com/tu-usuario/pos-pro/internal/application/usecase"
	infrapdf "github.com/tu-usuario/pos-pro/internal/infrastructure/pdf"
	"github.com/tu-usuario/pos-pro/internal/infrastructure/postgres"
	"github.com/tu-usuario/pos-pro/internal/infrastructure/storage"
	httpRouter "github.com/tu-usuario/pos-pro/internal/interfaces/http"
	"github.com/tu-usuario/pos-pro/pkg/config"
	"github.com/tu-usuario/pos-pro/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	notificationRepo := postgres.NewNotificationRepository(pool)
	analyticsRepo := postgres.NewAnalyticsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo)
	userUC := usecase.NewUserUseCase(userRepo, analyticsRepo)
	notificationUC := usecase.NewNotificationUseCase(notificationRepo, productRepo)
	analyticsUC := usecase.NewAnalyticsUseCase(analyticsRepo, productRepo)

	recordSaleUC := sales.NewRecordSaleUseCase(txRunner)
	saleQueryUC := sales.NewSaleQueryUseCase(saleRepo)

	// PDF: recibo imprimible de la venta con datos de la tienda
	receiptGenerator := infrapdf.NewMarotoReceiptGenerator()
	receiptUC := sales.NewReceiptPDFUseCase(saleRepo, productRepo, receiptGenerator, sales.StoreInfo{
		Name:     cfg.Store.Name,
		Address:  cfg.Store.Address,
		Phone:    cfg.Store.Phone,
		Currency: cfg.Store.Currency,
	})

	imageStore, err := storage.NewLocalImageStore(cfg.Media.Dir, cfg.Media.BaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("almacén de imágenes")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "POS Pro API",
	}))

	// Imágenes de producto servidas como estáticos
	app.Static(cfg.Media.BaseURL, imageStore.Dir())

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		ProductUC:      productUC,
		CategoryUC:     categoryUC,
		UserUC:         userUC,
		NotificationUC: notificationUC,
		AnalyticsUC:    analyticsUC,
		RecordSale:     recordSaleUC,
		SaleQuery:      saleQueryUC,
		ReceiptPDF:     receiptUC,
		Settings:       httpRouter.NewSettingsHandler(cfg.Store),
		Uploads:        httpRouter.NewUploadHandler(imageStore, productUC),
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
