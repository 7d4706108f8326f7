package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/alerts"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/pdf"
)

func meta() alerts.ReportMeta {
	return alerts.ReportMeta{
		CompanyID:      1,
		GeneratedAt:    time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC),
		DailySalesRate: 2,
		WindowDays:     30,
	}
}

func TestGenerateLowStockReport_ConAlertas(t *testing.T) {
	email := "orders@acme.test"
	items := []dto.LowStockAlert{
		{
			ProductID: 1, ProductName: "Widget", SKU: "W-1",
			WarehouseID: 2, WarehouseName: "Central",
			CurrentStock: 5, Threshold: 20, DaysUntilStockout: 2,
			Supplier: &dto.SupplierSummary{ID: 7, Name: "Acme", ContactEmail: &email},
		},
		{
			ProductID: 3, ProductName: "Gadget", SKU: "G-3",
			WarehouseID: 2, WarehouseName: "Central",
			CurrentStock: 0, Threshold: 10, DaysUntilStockout: 0,
		},
	}

	out, err := pdf.NewMarotoReportGenerator().GenerateLowStockReport(context.Background(), meta(), items)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "el documento debe ser un PDF")
}

func TestGenerateLowStockReport_SinAlertas(t *testing.T) {
	out, err := pdf.NewMarotoReportGenerator().GenerateLowStockReport(context.Background(), meta(), nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}

func TestGenerateLowStockReport_ContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := pdf.NewMarotoReportGenerator().GenerateLowStockReport(ctx, meta(), nil)
	assert.ErrorIs(t, err, context.Canceled)
}
