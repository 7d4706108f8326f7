package repository

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
type ProductRepository interface {
	// Create persiste el producto y asigna product.ID. Devuelve domain.ErrDuplicate si el SKU ya existe.
	Create(ctx context.Context, product *entity.Product) error
	ExistsBySKU(ctx context.Context, sku string) (bool, error)
}
