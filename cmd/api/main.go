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
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	_ "github.com/jhoicas/stockflow-api/docs"
	"github.com/jhoicas/stockflow-api/internal/application/alerts"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/jhoicas/stockflow-api/internal/domain/stockalert"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/cache"
	infrapdf "github.com/jhoicas/stockflow-api/internal/infrastructure/pdf"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/stockflow-api/internal/interfaces/http"
	"github.com/jhoicas/stockflow-api/pkg/config"
	"github.com/jhoicas/stockflow-api/pkg/logger"
)

// @title        StockFlow API
// @version      1.0
// @description  Alertas de bajo stock por bodega y alta transaccional de productos.
// @BasePath     /
func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
		App:   cfg.App.Name,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Int("daily_sales_rate", cfg.Alerts.DailySalesRate).
		Int("activity_window_days", cfg.Alerts.ActivityWindowDays).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	if cfg.DB.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, log.Named("migrate")); err != nil {
			log.Fatal().Err(err).Msg("migraciones")
		}
	}

	var companyRepo repository.CompanyRepository = postgres.NewCompanyRepository(pool)
	var warehouseRepo repository.WarehouseRepository = postgres.NewWarehouseRepository(pool)

	// Caché de directorio (empresas y bodegas): opcional, si Redis no responde se sigue sin ella
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Warn().Err(err).Msg("redis no disponible, caché desactivada")
		} else {
			defer redisClient.Close()
			companyRepo = cache.NewCompanyCache(companyRepo, redisClient, cfg.Redis.WarehouseTTL, log)
			warehouseRepo = cache.NewWarehouseCache(warehouseRepo, redisClient, cfg.Redis.WarehouseTTL, log)
			log.Info().Dur("ttl", cfg.Redis.WarehouseTTL).Msg("caché redis activa")
		}
	}

	productRepo := postgres.NewProductRepository(pool)
	inventoryRepo := postgres.NewInventoryRepository(pool)
	logRepo := postgres.NewInventoryLogRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	policy := stockalert.Policy{
		DailySalesRate: cfg.Alerts.DailySalesRate,
		ActivityWindow: cfg.Alerts.ActivityWindow(),
	}
	alertsUC := alerts.NewLowStockAlertUseCase(companyRepo, warehouseRepo, inventoryRepo, logRepo, supplierRepo, policy)
	reportUC := alerts.NewReportUseCase(alertsUC, infrapdf.NewMarotoReportGenerator())
	productUC := usecase.NewProductUseCase(txRunner, productRepo, warehouseRepo, cfg.Alerts.DefaultStockThreshold)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(httpRouter.RequestLogger(log.Named("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "StockFlow API",
	}))

	httpRouter.Router(app, httpRouter.RouterDeps{
		AppName:      cfg.App.Name,
		AlertsUC:     alertsUC,
		ReportUC:     reportUC,
		ProductUC:    productUC,
		AlertTimeout: cfg.Alerts.RequestTimeout,
		Logger:       log,
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
