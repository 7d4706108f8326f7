package repository

import (
	"context"
	"time"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// InventoryLogRepository puerto de lectura del libro de movimientos (append-only).
type InventoryLogRepository interface {
	// RecentSales informa, para cada par de keys, si existe al menos una venta con created_at >= since.
	// Los pares sin venta pueden faltar en el mapa (equivale a false).
	RecentSales(ctx context.Context, keys []entity.StockKey, since time.Time) (map[entity.StockKey]bool, error)
}
