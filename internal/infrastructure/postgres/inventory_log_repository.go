package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.InventoryLogRepository = (*InventoryLogRepo)(nil)

// InventoryLogRepo lectura del libro de movimientos sobre PostgreSQL.
type InventoryLogRepo struct {
	q Querier
}

// NewInventoryLogRepository construye el adaptador del libro de movimientos.
func NewInventoryLogRepository(q Querier) *InventoryLogRepo {
	return &InventoryLogRepo{q: q}
}

// RecentSales resuelve la compuerta de actividad para todos los pares en una sola consulta.
func (r *InventoryLogRepo) RecentSales(ctx context.Context, keys []entity.StockKey, since time.Time) (map[entity.StockKey]bool, error) {
	out := make(map[entity.StockKey]bool, len(keys))
	if len(keys) == 0 {
		return out, nil
	}
	productIDs := make([]int64, len(keys))
	warehouseIDs := make([]int64, len(keys))
	for i, k := range keys {
		productIDs[i] = k.ProductID
		warehouseIDs[i] = k.WarehouseID
	}

	query := `
		SELECT DISTINCT l.product_id, l.warehouse_id
		FROM inventory_logs l
		JOIN unnest($1::bigint[], $2::bigint[]) AS k(product_id, warehouse_id)
		  ON l.product_id = k.product_id AND l.warehouse_id = k.warehouse_id
		WHERE l.reason = $3 AND l.created_at >= $4`
	rows, err := r.q.Query(ctx, query, productIDs, warehouseIDs, entity.LogReasonSale, since)
	if err != nil {
		return nil, fmt.Errorf("recent sales: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var k entity.StockKey
		if err := rows.Scan(&k.ProductID, &k.WarehouseID); err != nil {
			return nil, fmt.Errorf("scan recent sale: %w", err)
		}
		out[k] = true
	}
	return out, rows.Err()
}
