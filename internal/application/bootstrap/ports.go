package bootstrap

import (
	"context"

	"github.com/jhoicas/panel-admin/internal/domain/repository"
)

// Repositories repos atados a una misma transacción.
type Repositories struct {
	Users    repository.UserRepository
	Roles    repository.RoleRepository
	Settings repository.SettingsRepository
}

// TxRunner ejecuta fn dentro de una transacción; si fn devuelve error se hace rollback.
type TxRunner interface {
	RunBootstrap(ctx context.Context, fn func(repos Repositories) error) error
}
