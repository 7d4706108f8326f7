package alerts

import (
	"context"
	"fmt"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/stockflow-api/internal/application/dto"
	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/jhoicas/stockflow-api/internal/domain/stockalert"
)

// LowStockAlertUseCase calcula las alertas de bajo stock de una empresa.
// Cruza stock por bodega, ventas recientes y proveedores. Es solo lectura.
type LowStockAlertUseCase struct {
	companyRepo   repository.CompanyRepository
	warehouseRepo repository.WarehouseRepository
	inventoryRepo repository.InventoryRepository
	logRepo       repository.InventoryLogRepository
	supplierRepo  repository.SupplierRepository
	policy        stockalert.Policy
	now           func() time.Time
}

// NewLowStockAlertUseCase construye el caso de uso. Una política inválida cae a DefaultPolicy.
func NewLowStockAlertUseCase(
	companyRepo repository.CompanyRepository,
	warehouseRepo repository.WarehouseRepository,
	inventoryRepo repository.InventoryRepository,
	logRepo repository.InventoryLogRepository,
	supplierRepo repository.SupplierRepository,
	policy stockalert.Policy,
) *LowStockAlertUseCase {
	if policy.Validate() != nil {
		policy = stockalert.DefaultPolicy()
	}
	return &LowStockAlertUseCase{
		companyRepo:   companyRepo,
		warehouseRepo: warehouseRepo,
		inventoryRepo: inventoryRepo,
		logRepo:       logRepo,
		supplierRepo:  supplierRepo,
		policy:        policy,
		now:           time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (uc *LowStockAlertUseCase) WithClock(now func() time.Time) *LowStockAlertUseCase {
	uc.now = now
	return uc
}

// Policy devuelve la política efectiva.
func (uc *LowStockAlertUseCase) Policy() stockalert.Policy {
	return uc.policy
}

// ComputeLowStockAlerts devuelve las alertas accionables de la empresa.
//
// Retorna:
//   - domain.ErrNotFound si la empresa no existe.
//   - {alerts: [], total_alerts: 0} si la empresa no tiene bodegas.
//   - un error envuelto ante cualquier fallo de acceso a datos (sin resultados parciales).
func (uc *LowStockAlertUseCase) ComputeLowStockAlerts(ctx context.Context, companyID int64) (*dto.LowStockAlertsResponse, error) {
	asOf := uc.now()

	// 1. La empresa debe existir
	exists, err := uc.companyRepo.Exists(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("alertas: verificar empresa %d: %w", companyID, err)
	}
	if !exists {
		return nil, domain.ErrNotFound
	}

	// 2. Bodegas de la empresa
	warehouses, err := uc.warehouseRepo.ListByCompany(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("alertas: listar bodegas: %w", err)
	}
	if len(warehouses) == 0 {
		return dto.NewLowStockAlertsResponse(nil), nil
	}
	warehouseIDs := make([]int64, 0, len(warehouses))
	for _, w := range warehouses {
		warehouseIDs = append(warehouseIDs, w.ID)
	}

	// 3. Candidatos: pares bajo umbral en esas bodegas
	candidates, err := uc.inventoryRepo.FindBreaching(ctx, warehouseIDs)
	if err != nil {
		return nil, fmt.Errorf("alertas: buscar stock bajo umbral: %w", err)
	}
	if len(candidates) == 0 {
		return dto.NewLowStockAlertsResponse(nil), nil
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].WarehouseID != candidates[j].WarehouseID {
			return candidates[i].WarehouseID < candidates[j].WarehouseID
		}
		return candidates[i].ProductID < candidates[j].ProductID
	})

	// 4. Ventas recientes y proveedores en dos consultas por lote, en paralelo
	keys := make([]entity.StockKey, 0, len(candidates))
	productIDs := make([]int64, 0, len(candidates))
	seenProduct := make(map[int64]struct{}, len(candidates))
	for _, c := range candidates {
		keys = append(keys, c.Key())
		if _, ok := seenProduct[c.ProductID]; !ok {
			seenProduct[c.ProductID] = struct{}{}
			productIDs = append(productIDs, c.ProductID)
		}
	}

	var (
		active             map[entity.StockKey]bool
		suppliersByProduct map[int64][]entity.Supplier
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		active, err = uc.logRepo.RecentSales(gctx, keys, uc.policy.ActivitySince(asOf))
		if err != nil {
			return fmt.Errorf("alertas: consultar ventas recientes: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		suppliersByProduct, err = uc.supplierRepo.ListByProducts(gctx, productIDs)
		if err != nil {
			return fmt.Errorf("alertas: consultar proveedores: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// 5. Compuerta de actividad, estimación y armado
	alerts := make([]dto.LowStockAlert, 0, len(candidates))
	for _, c := range candidates {
		if !stockalert.IsBreach(c.Quantity, c.Threshold) {
			continue
		}
		if !active[c.Key()] {
			continue // producto sin movimiento: no tiene sentido alertar
		}
		alerts = append(alerts, dto.LowStockAlert{
			ProductID:         c.ProductID,
			ProductName:       c.ProductName,
			SKU:               c.SKU,
			WarehouseID:       c.WarehouseID,
			WarehouseName:     c.WarehouseName,
			CurrentStock:      c.Quantity,
			Threshold:         c.Threshold,
			DaysUntilStockout: uc.policy.DaysUntilStockout(c.Quantity),
			Supplier:          toSupplierSummary(stockalert.PickSupplier(suppliersByProduct[c.ProductID])),
		})
	}

	return dto.NewLowStockAlertsResponse(alerts), nil
}

func toSupplierSummary(s *entity.Supplier) *dto.SupplierSummary {
	if s == nil {
		return nil
	}
	return &dto.SupplierSummary{ID: s.ID, Name: s.Name, ContactEmail: s.ContactEmail}
}
