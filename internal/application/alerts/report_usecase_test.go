package alerts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/alerts"
	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/memory"
)

type mockGenerator struct{ mock.Mock }

func (m *mockGenerator) GenerateLowStockReport(ctx context.Context, meta alerts.ReportMeta, items []dto.LowStockAlert) ([]byte, error) {
	args := m.Called(ctx, meta, items)
	if v := args.Get(0); v != nil {
		return v.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestReportFilename(t *testing.T) {
	at := time.Date(2024, 1, 2, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "low-stock-company-42-20240102.pdf", alerts.ReportFilename(42, at))
}

func TestDownloadLowStockReport_OK(t *testing.T) {
	store, companyID, _, _ := scenarioA(t)
	gen := new(mockGenerator)
	wantMeta := alerts.ReportMeta{CompanyID: companyID, GeneratedAt: now, DailySalesRate: 2, WindowDays: 30}
	gen.On("GenerateLowStockReport", mock.Anything, wantMeta, mock.MatchedBy(func(items []dto.LowStockAlert) bool {
		return len(items) == 1 && items[0].SKU == "SKU-P1"
	})).Return([]byte("%PDF-1.3"), nil)

	uc := alerts.NewReportUseCase(newUseCase(store), gen)
	pdf, name, err := uc.DownloadLowStockReport(context.Background(), companyID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.3"), pdf)
	assert.Equal(t, alerts.ReportFilename(companyID, now), name)
	gen.AssertExpectations(t)
}

func TestDownloadLowStockReport_EmpresaInexistente(t *testing.T) {
	gen := new(mockGenerator)
	uc := alerts.NewReportUseCase(newUseCase(memory.NewStore()), gen)

	_, _, err := uc.DownloadLowStockReport(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	gen.AssertNotCalled(t, "GenerateLowStockReport", mock.Anything, mock.Anything, mock.Anything)
}

func TestDownloadLowStockReport_FalloDelGenerador(t *testing.T) {
	store, companyID, _, _ := scenarioA(t)
	boom := errors.New("fuente no disponible")
	gen := new(mockGenerator)
	gen.On("GenerateLowStockReport", mock.Anything, mock.Anything, mock.Anything).Return(nil, boom)

	uc := alerts.NewReportUseCase(newUseCase(store), gen)
	_, _, err := uc.DownloadLowStockReport(context.Background(), companyID)
	assert.ErrorIs(t, err, boom)
}
