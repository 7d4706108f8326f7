package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
	"github.com/jhoicas/stockflow-api/internal/domain/stockalert"
)

var (
	_ repository.CompanyRepository      = (*CompanyRepo)(nil)
	_ repository.WarehouseRepository    = (*WarehouseRepo)(nil)
	_ repository.ProductRepository      = (*ProductRepo)(nil)
	_ repository.InventoryRepository    = (*InventoryRepo)(nil)
	_ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)
	_ repository.SupplierRepository     = (*SupplierRepo)(nil)
)

// CompanyRepo vista de empresas del store.
type CompanyRepo struct{ s *Store }

// WarehouseRepo vista de bodegas del store.
type WarehouseRepo struct{ s *Store }

// ProductRepo vista de productos del store.
type ProductRepo struct{ s *Store }

// InventoryRepo vista de inventario del store.
type InventoryRepo struct{ s *Store }

// InventoryLogRepo vista del libro de movimientos del store.
type InventoryLogRepo struct{ s *Store }

// SupplierRepo vista de proveedores del store.
type SupplierRepo struct{ s *Store }

func (s *Store) Companies() *CompanyRepo          { return &CompanyRepo{s} }
func (s *Store) Warehouses() *WarehouseRepo       { return &WarehouseRepo{s} }
func (s *Store) Products() *ProductRepo           { return &ProductRepo{s} }
func (s *Store) Inventory() *InventoryRepo        { return &InventoryRepo{s} }
func (s *Store) InventoryLogs() *InventoryLogRepo { return &InventoryLogRepo{s} }
func (s *Store) Suppliers() *SupplierRepo         { return &SupplierRepo{s} }

func (r *CompanyRepo) Exists(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	_, ok := r.s.companies[id]
	return ok, nil
}

func (r *WarehouseRepo) ListByCompany(ctx context.Context, companyID int64) ([]entity.Warehouse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := []entity.Warehouse{}
	for _, w := range r.s.warehouses {
		if w.CompanyID == companyID {
			list = append(list, w)
		}
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list, nil
}

func (r *WarehouseRepo) GetByID(ctx context.Context, id int64) (*entity.Warehouse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	w, ok := r.s.warehouses[id]
	if !ok {
		return nil, nil
	}
	return &w, nil
}

func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, p := range r.s.products {
		if p.SKU == product.SKU {
			return domain.ErrDuplicate
		}
	}
	product.ID = r.s.newID()
	r.s.products[product.ID] = *product
	return nil
}

func (r *ProductRepo) ExistsBySKU(ctx context.Context, sku string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, p := range r.s.products {
		if p.SKU == sku {
			return true, nil
		}
	}
	return false, nil
}

func (r *InventoryRepo) FindBreaching(ctx context.Context, warehouseIDs []int64) ([]repository.BreachRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	wanted := make(map[int64]bool, len(warehouseIDs))
	for _, id := range warehouseIDs {
		wanted[id] = true
	}
	list := []repository.BreachRow{}
	for key, inv := range r.s.inventory {
		if !wanted[key.WarehouseID] {
			continue
		}
		p, okP := r.s.products[key.ProductID]
		w, okW := r.s.warehouses[key.WarehouseID]
		if !okP || !okW || !stockalert.IsBreach(inv.Quantity, p.StockThreshold) {
			continue
		}
		list = append(list, repository.BreachRow{
			ProductID:     p.ID,
			ProductName:   p.Name,
			SKU:           p.SKU,
			Threshold:     p.StockThreshold,
			WarehouseID:   w.ID,
			WarehouseName: w.Name,
			Quantity:      inv.Quantity,
		})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].WarehouseID != list[j].WarehouseID {
			return list[i].WarehouseID < list[j].WarehouseID
		}
		return list[i].ProductID < list[j].ProductID
	})
	return list, nil
}

func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.inventoryErr != nil {
		return r.s.inventoryErr
	}
	if _, ok := r.s.products[inv.ProductID]; !ok {
		return fmt.Errorf("%w: producto %d inexistente", domain.ErrInvalidInput, inv.ProductID)
	}
	if _, ok := r.s.warehouses[inv.WarehouseID]; !ok {
		return fmt.Errorf("%w: bodega %d inexistente", domain.ErrInvalidInput, inv.WarehouseID)
	}
	key := inv.Key()
	if _, ok := r.s.inventory[key]; ok {
		return domain.ErrDuplicate
	}
	if inv.UpdatedAt.IsZero() {
		inv.UpdatedAt = time.Now()
	}
	r.s.inventory[key] = *inv
	return nil
}

func (r *InventoryLogRepo) RecentSales(ctx context.Context, keys []entity.StockKey, since time.Time) (map[entity.StockKey]bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	wanted := make(map[entity.StockKey]bool, len(keys))
	for _, k := range keys {
		wanted[k] = true
	}
	out := make(map[entity.StockKey]bool, len(keys))
	for _, l := range r.s.logs {
		if wanted[l.Key()] && stockalert.IsSaleSince(l, since) {
			out[l.Key()] = true
		}
	}
	return out, nil
}

func (r *SupplierRepo) ListByProducts(ctx context.Context, productIDs []int64) (map[int64][]entity.Supplier, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	out := make(map[int64][]entity.Supplier)
	for _, pid := range productIDs {
		for _, sid := range sortedIDs(r.s.links[pid]) {
			if sup, ok := r.s.suppliers[sid]; ok {
				out[pid] = append(out[pid], sup)
			}
		}
	}
	return out, nil
}
