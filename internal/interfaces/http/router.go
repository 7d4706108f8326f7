package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/alerts"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AppName      string
	AlertsUC     *alerts.LowStockAlertUseCase
	ReportUC     *alerts.ReportUseCase
	ProductUC    *usecase.ProductUseCase
	AlertTimeout time.Duration
	Logger       *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	log := deps.Logger
	if log == nil {
		log = logger.Nop()
	}

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(dto.MessageResponse{Message: "StockFlow API is running!"})
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": deps.AppName})
	})

	// Alertas de bajo stock (solo lectura, acotadas por empresa)
	alertHandler := NewAlertHandler(deps.AlertsUC, deps.ReportUC, deps.AlertTimeout, log.Named("alerts"))
	companies := app.Group("/api/companies/:company_id")
	companies.Get("/alerts/low-stock", alertHandler.LowStock)
	companies.Get("/alerts/low-stock/report.pdf", alertHandler.Report)

	// Productos
	productHandler := NewProductHandler(deps.ProductUC, log.Named("products"))
	app.Post("/products", productHandler.Create)
}
