package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockflow-api/internal/domain/entity"
	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo directorio de proveedores sobre PostgreSQL.
type SupplierRepo struct {
	q Querier
}

// NewSupplierRepository construye el adaptador de proveedores.
func NewSupplierRepository(q Querier) *SupplierRepo {
	return &SupplierRepo{q: q}
}

// ListByProducts agrupa por producto los proveedores vinculados, ordenados por id.
func (r *SupplierRepo) ListByProducts(ctx context.Context, productIDs []int64) (map[int64][]entity.Supplier, error) {
	out := make(map[int64][]entity.Supplier)
	if len(productIDs) == 0 {
		return out, nil
	}
	query := `
		SELECT sp.product_id, s.id, s.name, s.contact_email
		FROM supplier_products sp
		JOIN suppliers s ON s.id = sp.supplier_id
		WHERE sp.product_id = ANY($1)
		ORDER BY sp.product_id, s.id`
	rows, err := r.q.Query(ctx, query, productIDs)
	if err != nil {
		return nil, fmt.Errorf("list suppliers by products: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var productID int64
		var s entity.Supplier
		if err := rows.Scan(&productID, &s.ID, &s.Name, &s.ContactEmail); err != nil {
			return nil, fmt.Errorf("scan supplier: %w", err)
		}
		out[productID] = append(out[productID], s)
	}
	return out, rows.Err()
}
