package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/stockflow-api/internal/application/usecase"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ usecase.TxRunner = (*TxRunner)(nil)

// TxRunner serializa las transacciones y deshace los cambios si fn falla.
type TxRunner struct {
	s  *Store
	mu sync.Mutex
}

// NewTxRunner construye el runner sobre el store.
func NewTxRunner(s *Store) *TxRunner {
	return &TxRunner{s: s}
}

// Run toma una copia de productos e inventario, ejecuta fn y la restaura si hubo error.
func (r *TxRunner) Run(ctx context.Context, fn func(
	productRepo repository.ProductRepository,
	inventoryRepo repository.InventoryRepository,
) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := r.s.takeSnapshot()
	if err := fn(r.s.Products(), r.s.Inventory()); err != nil {
		r.s.restore(snap)
		return err
	}
	return nil
}
