package alerts

import (
	"context"
	"fmt"
	"time"
)

// ReportUseCase genera el reporte PDF de reposición de una empresa a partir de las alertas vigentes.
type ReportUseCase struct {
	alerts    *LowStockAlertUseCase
	generator ReportGenerator
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(alerts *LowStockAlertUseCase, generator ReportGenerator) *ReportUseCase {
	return &ReportUseCase{alerts: alerts, generator: generator}
}

// DownloadLowStockReport calcula las alertas y las renderiza en PDF.
// Comparte la semántica de errores de ComputeLowStockAlerts (domain.ErrNotFound si la empresa no existe).
func (uc *ReportUseCase) DownloadLowStockReport(ctx context.Context, companyID int64) (pdf []byte, filename string, err error) {
	res, err := uc.alerts.ComputeLowStockAlerts(ctx, companyID)
	if err != nil {
		return nil, "", err
	}

	generatedAt := uc.alerts.now()
	policy := uc.alerts.Policy()
	meta := ReportMeta{
		CompanyID:      companyID,
		GeneratedAt:    generatedAt,
		DailySalesRate: policy.DailySalesRate,
		WindowDays:     int(policy.ActivityWindow / (24 * time.Hour)),
	}

	pdf, err = uc.generator.GenerateLowStockReport(ctx, meta, res.Alerts)
	if err != nil {
		return nil, "", fmt.Errorf("reporte: generar pdf: %w", err)
	}
	return pdf, ReportFilename(companyID, generatedAt), nil
}

// ReportFilename nombre del archivo descargable.
func ReportFilename(companyID int64, at time.Time) string {
	return fmt.Sprintf("low-stock-company-%d-%s.pdf", companyID, at.Format("20060102"))
}
