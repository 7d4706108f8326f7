package usecase

import (
	"context"

	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza que producto e inventario inicial se guarden juntos o no se guarden.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		productRepo repository.ProductRepository,
		inventoryRepo repository.InventoryRepository,
	) error) error
}
