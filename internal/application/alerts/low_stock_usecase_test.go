package alerts_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stockflow-api/internal/application/alerts"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/jhoicas/stockflow-api/internal/domain/stockalert"
	"github.com/jhoicas/stockflow-api/internal/infrastructure/memory"
)

var now = time.Date(2024, 5, 10, 12, 0, 0, 0, time.UTC)

func newUseCase(store *memory.Store) *alerts.LowStockAlertUseCase {
	return alerts.NewLowStockAlertUseCase(
		store.Companies(),
		store.Warehouses(),
		store.Inventory(),
		store.InventoryLogs(),
		store.Suppliers(),
		stockalert.DefaultPolicy(),
	).WithClock(func() time.Time { return now })
}

// scenarioA: empresa con una bodega, P1 (umbral 10) con 5 unidades, una venta hace 3 días y proveedor Acme.
func scenarioA(t *testing.T) (store *memory.Store, companyID, warehouseID, productID int64) {
	t.Helper()
	store = memory.NewStore()
	companyID = store.AddCompany("Acme Corp")
	warehouseID = store.AddWarehouse(companyID, "W1")
	productID = store.AddProduct("P1", "SKU-P1", decimal.NewFromInt(10), 10)
	store.SetStock(productID, warehouseID, 5)
	store.AddLog(productID, warehouseID, entity.LogReasonSale, -1, now.Add(-3*24*time.Hour))
	store.AddSupplierWithID(1, "Acme", "a@x.com")
	store.LinkSupplier(1, productID)
	return store, companyID, warehouseID, productID
}

func TestComputeLowStockAlerts_EscenarioA(t *testing.T) {
	store, companyID, warehouseID, productID := scenarioA(t)

	res, err := newUseCase(store).ComputeLowStockAlerts(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, res.Alerts, 1)
	assert.Equal(t, 1, res.TotalAlerts)

	a := res.Alerts[0]
	assert.Equal(t, productID, a.ProductID)
	assert.Equal(t, "P1", a.ProductName)
	assert.Equal(t, "SKU-P1", a.SKU)
	assert.Equal(t, warehouseID, a.WarehouseID)
	assert.Equal(t, "W1", a.WarehouseName)
	assert.Equal(t, 5, a.CurrentStock)
	assert.Equal(t, 10, a.Threshold)
	assert.Equal(t, 2, a.DaysUntilStockout)
	require.NotNil(t, a.Supplier)
	assert.Equal(t, int64(1), a.Supplier.ID)
	assert.Equal(t, "Acme", a.Supplier.Name)
	require.NotNil(t, a.Supplier.ContactEmail)
	assert.Equal(t, "a@x.com", *a.Supplier.ContactEmail)
}

func TestComputeLowStockAlerts_EscenarioB_SinVentas(t *testing.T) {
	store := memory.NewStore()
	companyID := store.AddCompany("Acme Corp")
	warehouseID := store.AddWarehouse(companyID, "W1")
	productID := store.AddProduct("P1", "SKU-P1", decimal.NewFromInt(10), 10)
	store.SetStock(productID, warehouseID, 5)

	res, err := newUseCase(store).ComputeLowStockAlerts(context.Background(), companyID)
	require.NoError(t, err)
	assert.NotNil(t, res.Alerts)
	assert.Empty(t, res.Alerts)
	assert.Equal(t, 0, res.TotalAlerts)
}

func TestComputeLowStockAlerts_EscenarioC_SinBodegas(t *testing.T) {
	store := memory.NewStore()
	store.AddCompany("Uno")
	companyID := store.AddCompany("Dos")

	res, err := newUseCase(store).ComputeLowStockAlerts(context.Background(), companyID)
	require.NoError(t, err)
	assert.NotNil(t, res.Alerts)
	assert.Empty(t, res.Alerts)
	assert.Equal(t, 0, res.TotalAlerts)
}

func TestComputeLowStockAlerts_EscenarioD_EmpresaInexistente(t *testing.T) {
	store := memory.NewStore()

	res, err := newUseCase(store).ComputeLowStockAlerts(context.Background(), 99)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestComputeLowStockAlerts_EscenarioE_SinProveedor(t *testing.T) {
	store := memory.NewStore()
	companyID := store.AddCompany("Acme Corp")
	warehouseID := store.AddWarehouse(companyID, "W1")
	productID := store.AddProduct("P2", "SKU-P2", decimal.NewFromInt(3), 8)
	store.SetStock(productID, warehouseID, 0)
	store.AddLog(productID, warehouseID, entity.LogReasonSale, -2, now.Add(-time.Hour))

	res, err := newUseCase(store).ComputeLowStockAlerts(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, res.Alerts, 1)
	assert.Nil(t, res.Alerts[0].Supplier)
	assert.Equal(t, 0, res.Alerts[0].DaysUntilStockout, "stock cero ya está en quiebre")
}

func TestComputeLowStockAlerts_StockEnUmbralNoAlerta(t *testing.T) {
	store := memory.NewStore()
	companyID := store.AddCompany("Acme Corp")
	warehouseID := store.AddWarehouse(companyID, "W1")
	productID := store.AddProduct("P1", "SKU-P1", decimal.NewFromInt(10), 10)
	store.SetStock(productID, warehouseID, 10)
	store.AddLog(productID, warehouseID, entity.LogReasonSale, -1, now.Add(-time.Hour))

	res, err := newUseCase(store).ComputeLowStockAlerts(context.Background(), companyID)
	require.NoError(t, err)
	assert.Empty(t, res.Alerts)
}

func TestComputeLowStockAlerts_VentaFueraDeVentanaOTipoDistinto(t *testing.T) {
	store := memory.NewStore()
	companyID := store.AddCompany("Acme Corp")
	warehouseID := store.AddWarehouse(companyID, "W1")
	productID := store.AddProduct("P1", "SKU-P1", decimal.NewFromInt(10), 10)
	store.SetStock(productID, warehouseID, 4)
	store.AddLog(productID, warehouseID, entity.LogReasonSale, -1, now.Add(-31*24*time.Hour))
	store.AddLog(productID, warehouseID, entity.LogReasonRestock, 20, now.Add(-time.Hour))

	res, err := newUseCase(store).ComputeLowStockAlerts(context.Background(), companyID)
	require.NoError(t, err)
	assert.Empty(t, res.Alerts)
}

func TestComputeLowStockAlerts_CompuertaPorBodega(t *testing.T) {
	store := memory.NewStore()
	companyID := store.AddCompany("Acme Corp")
	w1 := store.AddWarehouse(companyID, "W1")
	w2 := store.AddWarehouse(companyID, "W2")
	productID := store.AddProduct("P1", "SKU-P1", decimal.NewFromInt(10), 10)
	store.SetStock(productID, w1, 3)
	store.SetStock(productID, w2, 3)
	// Solo hay ventas en W2: W1 no debe alertar aunque el producto venda en otra bodega
	store.AddLog(productID, w2, entity.LogReasonSale, -1, now.Add(-24*time.Hour))

	res, err := newUseCase(store).ComputeLowStockAlerts(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, res.Alerts, 1)
	assert.Equal(t, w2, res.Alerts[0].WarehouseID)
}

func TestComputeLowStockAlerts_SoloBodegasDeLaEmpresa(t *testing.T) {
	store, companyID, _, productID := scenarioA(t)
	other := store.AddCompany("Otra")
	otherWarehouse := store.AddWarehouse(other, "Ajena")
	store.SetStock(productID, otherWarehouse, 1)
	store.AddLog(productID, otherWarehouse, entity.LogReasonSale, -1, now.Add(-time.Hour))

	res, err := newUseCase(store).ComputeLowStockAlerts(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, res.Alerts, 1)
	assert.NotEqual(t, otherWarehouse, res.Alerts[0].WarehouseID)
}

func TestComputeLowStockAlerts_OrdenDeterministaYTotal(t *testing.T) {
	store := memory.NewStore()
	companyID := store.AddCompany("Acme Corp")
	w1 := store.AddWarehouse(companyID, "W1")
	w2 := store.AddWarehouse(companyID, "W2")
	pa := store.AddProduct("A", "SKU-A", decimal.NewFromInt(1), 10)
	pb := store.AddProduct("B", "SKU-B", decimal.NewFromInt(1), 10)
	for _, w := range []int64{w2, w1} {
		for _, p := range []int64{pb, pa} {
			store.SetStock(p, w, 7)
			store.AddLog(p, w, entity.LogReasonSale, -1, now.Add(-2*time.Hour))
		}
	}

	res, err := newUseCase(store).ComputeLowStockAlerts(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, res.Alerts, 4)
	assert.Equal(t, len(res.Alerts), res.TotalAlerts)

	got := make([][2]int64, 0, 4)
	for _, a := range res.Alerts {
		got = append(got, [2]int64{a.WarehouseID, a.ProductID})
		assert.Equal(t, 3, a.DaysUntilStockout, "floor(7/2)")
	}
	assert.Equal(t, [][2]int64{{w1, pa}, {w1, pb}, {w2, pa}, {w2, pb}}, got)
}

func TestComputeLowStockAlerts_ProveedorDeMenorID(t *testing.T) {
	store, companyID, _, productID := scenarioA(t)
	store.AddSupplierWithID(50, "Zeta", "")
	store.LinkSupplier(50, productID)

	res, err := newUseCase(store).ComputeLowStockAlerts(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, res.Alerts, 1)
	assert.Equal(t, int64(1), res.Alerts[0].Supplier.ID)
}

func TestComputeLowStockAlerts_TasaConfigurable(t *testing.T) {
	store, companyID, _, _ := scenarioA(t)
	uc := alerts.NewLowStockAlertUseCase(
		store.Companies(), store.Warehouses(), store.Inventory(), store.InventoryLogs(), store.Suppliers(),
		stockalert.Policy{DailySalesRate: 5, ActivityWindow: 7 * 24 * time.Hour},
	).WithClock(func() time.Time { return now })

	res, err := uc.ComputeLowStockAlerts(context.Background(), companyID)
	require.NoError(t, err)
	require.Len(t, res.Alerts, 1)
	assert.Equal(t, 1, res.Alerts[0].DaysUntilStockout)
}

func TestNewLowStockAlertUseCase_PoliticaInvalidaUsaDefecto(t *testing.T) {
	store := memory.NewStore()
	uc := alerts.NewLowStockAlertUseCase(
		store.Companies(), store.Warehouses(), store.Inventory(), store.InventoryLogs(), store.Suppliers(),
		stockalert.Policy{},
	)
	assert.Equal(t, stockalert.DefaultPolicy(), uc.Policy())
}

// ── Fallos de acceso a datos ─────────────────────────────────────────────────

type mockLogRepo struct{ mock.Mock }

func (m *mockLogRepo) RecentSales(ctx context.Context, keys []entity.StockKey, since time.Time) (map[entity.StockKey]bool, error) {
	args := m.Called(ctx, keys, since)
	if v := args.Get(0); v != nil {
		return v.(map[entity.StockKey]bool), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCompanyRepo struct{ mock.Mock }

func (m *mockCompanyRepo) Exists(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

type mockSupplierRepo struct{ mock.Mock }

func (m *mockSupplierRepo) ListByProducts(ctx context.Context, productIDs []int64) (map[int64][]entity.Supplier, error) {
	args := m.Called(ctx, productIDs)
	if v := args.Get(0); v != nil {
		return v.(map[int64][]entity.Supplier), args.Error(1)
	}
	return nil, args.Error(1)
}

var (
	_ repository.InventoryLogRepository = (*mockLogRepo)(nil)
	_ repository.CompanyRepository      = (*mockCompanyRepo)(nil)
	_ repository.SupplierRepository     = (*mockSupplierRepo)(nil)
)

func TestComputeLowStockAlerts_FalloEnVentasAbortaTodo(t *testing.T) {
	store, companyID, _, _ := scenarioA(t)
	boom := errors.New("conexión perdida")

	logs := new(mockLogRepo)
	logs.On("RecentSales", mock.Anything, mock.Anything, now.Add(-30*24*time.Hour)).Return(nil, boom)

	uc := alerts.NewLowStockAlertUseCase(
		store.Companies(), store.Warehouses(), store.Inventory(), logs, store.Suppliers(),
		stockalert.DefaultPolicy(),
	).WithClock(func() time.Time { return now })

	res, err := uc.ComputeLowStockAlerts(context.Background(), companyID)
	assert.Nil(t, res, "sin resultados parciales")
	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, domain.ErrNotFound))
	logs.AssertExpectations(t)
}

func TestComputeLowStockAlerts_FalloEnProveedoresAbortaTodo(t *testing.T) {
	store, companyID, _, productID := scenarioA(t)
	boom := errors.New("timeout")

	suppliers := new(mockSupplierRepo)
	suppliers.On("ListByProducts", mock.Anything, []int64{productID}).Return(nil, boom)

	uc := alerts.NewLowStockAlertUseCase(
		store.Companies(), store.Warehouses(), store.Inventory(), store.InventoryLogs(), suppliers,
		stockalert.DefaultPolicy(),
	).WithClock(func() time.Time { return now })

	res, err := uc.ComputeLowStockAlerts(context.Background(), companyID)
	assert.Nil(t, res)
	assert.ErrorIs(t, err, boom)
	suppliers.AssertExpectations(t)
}

func TestComputeLowStockAlerts_FalloAlVerificarEmpresa(t *testing.T) {
	store := memory.NewStore()
	boom := errors.New("db caída")

	companies := new(mockCompanyRepo)
	companies.On("Exists", mock.Anything, int64(7)).Return(false, boom)

	uc := alerts.NewLowStockAlertUseCase(
		companies, store.Warehouses(), store.Inventory(), store.InventoryLogs(), store.Suppliers(),
		stockalert.DefaultPolicy(),
	)

	_, err := uc.ComputeLowStockAlerts(context.Background(), 7)
	assert.ErrorIs(t, err, boom)
	assert.False(t, errors.Is(err, domain.ErrNotFound), "un fallo de datos no es NotFound")
	companies.AssertExpectations(t)
}
