package http

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stockflow-api/internal/application/alerts"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/pkg/logger"
)

const (
	companyNotFoundMessage = "Company not found"
	internalErrorMessage   = "An internal server error occurred."
)

// AlertHandler expone las alertas de bajo stock y su reporte PDF.
type AlertHandler struct {
	alerts  *alerts.LowStockAlertUseCase
	reports *alerts.ReportUseCase
	timeout time.Duration
	log     *logger.Logger
}

// NewAlertHandler construye el handler. timeout <= 0 desactiva el tope por petición.
func NewAlertHandler(alertsUC *alerts.LowStockAlertUseCase, reportsUC *alerts.ReportUseCase, timeout time.Duration, log *logger.Logger) *AlertHandler {
	return &AlertHandler{alerts: alertsUC, reports: reportsUC, timeout: timeout, log: log}
}

// LowStock godoc
// @Summary      Alertas de bajo stock
// @Description  Pares producto+bodega bajo umbral con ventas en la ventana de actividad, con días estimados hasta el quiebre y proveedor sugerido.
// @Tags         alerts
// @Produce      json
// @Param        company_id  path  int  true  "ID de la empresa"
// @Success      200  {object}  dto.LowStockAlertsResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock [get]
func (h *AlertHandler) LowStock(c *fiber.Ctx) error {
	companyID, ok := parseCompanyID(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: companyNotFoundMessage})
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	out, err := h.alerts.ComputeLowStockAlerts(ctx, companyID)
	if err != nil {
		return h.fail(c, companyID, err)
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

// Report godoc
// @Summary      Reporte PDF de reposición
// @Description  Las mismas alertas de bajo stock renderizadas como PDF descargable.
// @Tags         alerts
// @Produce      application/pdf
// @Param        company_id  path  int  true  "ID de la empresa"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/companies/{company_id}/alerts/low-stock/report.pdf [get]
func (h *AlertHandler) Report(c *fiber.Ctx) error {
	companyID, ok := parseCompanyID(c)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: companyNotFoundMessage})
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	pdf, filename, err := h.reports.DownloadLowStockReport(ctx, companyID)
	if err != nil {
		return h.fail(c, companyID, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Status(fiber.StatusOK).Send(pdf)
}

// fail traduce el error del caso de uso: NotFound → 404, el resto → 500 genérico (detalle solo en logs).
func (h *AlertHandler) fail(c *fiber.Ctx, companyID int64, err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Error: companyNotFoundMessage})
	}
	h.log.Error().Err(err).
		Int64("company_id", companyID).
		Str("path", c.Path()).
		Str("request_id", requestID(c)).
		Msg("calcular alertas de bajo stock")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Error: internalErrorMessage})
}

func (h *AlertHandler) requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.UserContext())
	}
	return context.WithTimeout(c.UserContext(), h.timeout)
}

// parseCompanyID acepta solo enteros positivos; cualquier otro valor no puede nombrar una empresa.
func parseCompanyID(c *fiber.Ctx) (int64, bool) {
	id, err := strconv.ParseInt(c.Params("company_id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
