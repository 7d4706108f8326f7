package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain"
	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación del puerto InventoryRepository sobre PostgreSQL (usable con pool o tx).
type InventoryRepo struct {
	q Querier
}

// NewInventoryRepository construye el adaptador de persistencia para inventario.
func NewInventoryRepository(q Querier) *InventoryRepo {
	return &InventoryRepo{q: q}
}

// FindBreaching trae en una sola consulta los pares bajo umbral de las bodegas indicadas,
// con nombre de producto y bodega ya resueltos.
func (r *InventoryRepo) FindBreaching(ctx context.Context, warehouseIDs []int64) ([]repository.BreachRow, error) {
	if len(warehouseIDs) == 0 {
		return []repository.BreachRow{}, nil
	}
	query := `
		SELECT p.id, p.name, p.sku, p.stock_threshold, i.warehouse_id, w.name, i.quantity
		FROM inventory i
		JOIN products p ON p.id = i.product_id
		JOIN warehouses w ON w.id = i.warehouse_id
		WHERE i.warehouse_id = ANY($1) AND i.quantity < p.stock_threshold
		ORDER BY i.warehouse_id, p.id`
	rows, err := r.q.Query(ctx, query, warehouseIDs)
	if err != nil {
		return nil, fmt.Errorf("find breaching inventory: %w", err)
	}
	defer rows.Close()

	list := []repository.BreachRow{}
	for rows.Next() {
		var b repository.BreachRow
		if err := rows.Scan(&b.ProductID, &b.ProductName, &b.SKU, &b.Threshold, &b.WarehouseID, &b.WarehouseName, &b.Quantity); err != nil {
			return nil, fmt.Errorf("scan breaching row: %w", err)
		}
		list = append(list, b)
	}
	return list, rows.Err()
}

// Create inserta la fila de inventario de un par producto+bodega.
func (r *InventoryRepo) Create(ctx context.Context, inv *entity.Inventory) error {
	if inv.UpdatedAt.IsZero() {
		inv.UpdatedAt = time.Now()
	}
	_, err := r.q.Exec(ctx,
		`INSERT INTO inventory (product_id, warehouse_id, quantity, updated_at) VALUES ($1, $2, $3, $4)`,
		inv.ProductID, inv.WarehouseID, inv.Quantity, inv.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicate
		case isForeignKeyViolation(err):
			return fmt.Errorf("%w: bodega o producto inexistente", domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert inventory: %w", err)
	}
	return nil
}
