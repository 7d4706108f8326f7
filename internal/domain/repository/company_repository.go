package repository

import "context"

// CompanyRepository define el puerto de persistencia para Company (DIP).
// La implementación vive en infrastructure.
type CompanyRepository interface {
	Exists(ctx context.Context, id int64) (bool, error)
}
