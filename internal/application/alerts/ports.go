package alerts

import (
	"context"
	"time"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
)

// ReportMeta datos de cabecera del reporte de reposición.
type ReportMeta struct {
	CompanyID      int64
	GeneratedAt    time.Time
	DailySalesRate int
	WindowDays     int
}

// ReportGenerator genera la representación en PDF de las alertas de bajo stock.
// La implementación vive en infrastructure (maroto).
type ReportGenerator interface {
	GenerateLowStockReport(ctx context.Context, meta ReportMeta, alerts []dto.LowStockAlert) ([]byte, error)
}
