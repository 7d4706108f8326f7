package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/stockflow-api/pkg/logger"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// Migrate aplica en orden los scripts de migrations/. Los scripts son idempotentes (IF NOT EXISTS).
func Migrate(ctx context.Context, pool *pgxpool.Pool, log *logger.Logger) error {
	names, err := fs.Glob(migrationFiles, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("listar migraciones: %w", err)
	}
	sort.Strings(names)

	for _, name := range names {
		script, err := migrationFiles.ReadFile(name)
		if err != nil {
			return fmt.Errorf("leer %s: %w", name, err)
		}
		// Sin argumentos pgx usa el protocolo simple y acepta varias sentencias.
		if _, err := pool.Exec(ctx, string(script)); err != nil {
			return fmt.Errorf("aplicar %s: %w", name, err)
		}
		log.Info().Str("file", name).Msg("migración aplicada")
	}
	return nil
}
