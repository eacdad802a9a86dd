package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/panel-admin/internal/application/bootstrap"
)

var _ bootstrap.TxRunner = (*TxRunner)(nil)

// TxRunner ejecuta callbacks dentro de una transacción PostgreSQL.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner construye el runner con el pool.
func NewTxRunner(pool *pgxpool.Pool) *TxRunner {
	return &TxRunner{pool: pool}
}

// Run inicia una transacción, ejecuta fn con la tx como Querier y hace Commit o Rollback.
func (r *TxRunner) Run(ctx context.Context, fn func(q Querier) error) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// RunBootstrap ejecuta la siembra inicial con repos atados a una misma transacción.
func (r *TxRunner) RunBootstrap(ctx context.Context, fn func(repos bootstrap.Repositories) error) error {
	return r.Run(ctx, func(q Querier) error {
		return fn(bootstrap.Repositories{
			Users:    NewUserRepository(q),
			Roles:    NewRoleRepository(q),
			Settings: NewSettingsRepository(q),
		})
	})
}
