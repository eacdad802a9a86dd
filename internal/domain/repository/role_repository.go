package repository

import (
	"context"

	"github.com/jhoicas/panel-admin/internal/domain/entity"
)

// RoleRepository puerto de persistencia para Role.
type RoleRepository interface {
	// Create devuelve domain.ErrRoleNameTaken si el nombre ya existe.
	Create(ctx context.Context, role *entity.Role) error
	GetByID(ctx context.Context, id int64) (*entity.Role, error)
	// List ordena por ID ascendente.
	List(ctx context.Context) ([]*entity.Role, error)
	// Delete no toca a los usuarios que referencian el nombre. domain.ErrNotFound si no existía.
	Delete(ctx context.Context, id int64) error
}
