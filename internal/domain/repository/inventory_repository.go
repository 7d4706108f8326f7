package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// BreachRow resultado crudo del repositorio para un par producto+bodega bajo umbral.
type BreachRow struct {
	ProductID     int64
	ProductName   string
	SKU           string
	Threshold     int
	WarehouseID   int64
	WarehouseName string
	Quantity      int
}

// Key devuelve el par producto+bodega del candidato.
func (b BreachRow) Key() entity.StockKey {
	return entity.StockKey{ProductID: b.ProductID, WarehouseID: b.WarehouseID}
}

// InventoryRepository define el puerto para el stock por bodega+producto.
type InventoryRepository interface {
	// FindBreaching devuelve los pares de las bodegas indicadas con quantity < stock_threshold,
	// ordenados por (warehouse_id, product_id).
	FindBreaching(ctx context.Context, warehouseIDs []int64) ([]BreachRow, error)
	// Create inserta la fila inicial de inventario de un producto.
	Create(ctx context.Context, inv *entity.Inventory) error
}
