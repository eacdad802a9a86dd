package repository

import (
	"context"

	"github.com/jhoicas/panel-admin/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
// Los métodos Get devuelven (nil, nil) cuando no existe la fila.
type UserRepository interface {
	// Create asigna ID y CreatedAt. Devuelve domain.ErrUsernameTaken si el username ya existe.
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	// Update sobrescribe username, phone, password_hash y role.
	// Devuelve domain.ErrNotFound o domain.ErrUsernameTaken.
	Update(ctx context.Context, user *entity.User) error
	// Delete devuelve domain.ErrNotFound si no había fila.
	Delete(ctx context.Context, id int64) error
	// List ordena por ID descendente (más recientes primero).
	List(ctx context.Context) ([]*entity.User, error)
	CountByRole(ctx context.Context, role string) (int, error)
}
