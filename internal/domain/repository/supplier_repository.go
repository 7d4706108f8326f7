package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// SupplierRepository puerto del directorio de proveedores.
type SupplierRepository interface {
	// ListByProducts devuelve los proveedores vinculados a cada producto, ordenados por id ascendente.
	// Productos sin proveedores no aparecen en el mapa.
	ListByProducts(ctx context.Context, productIDs []int64) (map[int64][]entity.Supplier, error)
}
