package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Migrate aplica, en orden de nombre y dentro de una transacción, los scripts de migrations/
// que aún no figuran en schema_migrations. Devuelve los nombres aplicados.
func Migrate(ctx context.Context, tx *TxRunner) ([]string, error) {
	names, err := fs.Glob(migrationFS, "migrations/*.sql")
	if err != nil {
		return nil, fmt.Errorf("listar migraciones: %w", err)
	}
	sort.Strings(names)

	var applied []string
	err = tx.Run(ctx, func(q Querier) error {
		if _, err := q.Exec(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
			name       TEXT PRIMARY KEY,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`); err != nil {
			return fmt.Errorf("crear schema_migrations: %w", err)
		}
		for _, name := range names {
			var done bool
			if err := q.QueryRow(ctx,
				`SELECT EXISTS (SELECT 1 FROM schema_migrations WHERE name = $1)`, name,
			).Scan(&done); err != nil {
				return fmt.Errorf("consultar migración %s: %w", name, err)
			}
			if done {
				continue
			}
			script, err := migrationFS.ReadFile(name)
			if err != nil {
				return err
			}
			// Sin argumentos pgx usa el protocolo simple, que admite varias sentencias.
			if _, err := q.Exec(ctx, string(script)); err != nil {
				return fmt.Errorf("aplicar migración %s: %w", name, err)
			}
			if _, err := q.Exec(ctx, `INSERT INTO schema_migrations (name) VALUES ($1)`, name); err != nil {
				return fmt.Errorf("registrar migración %s: %w", name, err)
			}
			applied = append(applied, name)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return applied, nil
}
