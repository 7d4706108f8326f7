package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/stockflow-api/internal/domain/repository"
)

// Asegura que CompanyRepo implementa repository.CompanyRepository.
var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	q Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(q Querier) *CompanyRepo {
	return &CompanyRepo{q: q}
}

// Exists informa si la empresa existe.
func (r *CompanyRepo) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM companies WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check company %d: %w", id, err)
	}
	return exists, nil
}
