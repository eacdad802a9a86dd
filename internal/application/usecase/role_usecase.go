package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/domain/repository"
)

// RoleUseCase alta, baja y listado de roles.
type RoleUseCase struct {
	repo repository.RoleRepository
}

// NewRoleUseCase construye el caso de uso.
func NewRoleUseCase(repo repository.RoleRepository) *RoleUseCase {
	return &RoleUseCase{repo: repo}
}

// List devuelve los roles ordenados por ID.
func (uc *RoleUseCase) List(ctx context.Context) (*dto.RoleListResponse, error) {
	roles, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.RoleResponse, 0, len(roles))
	for _, r := range roles {
		items = append(items, toRoleResponse(r))
	}
	return &dto.RoleListResponse{Roles: items}, nil
}

// Create crea un rol. Devuelve domain.ErrRoleNameTaken si el nombre ya existe.
func (uc *RoleUseCase) Create(ctx context.Context, in dto.CreateRoleRequest) (*dto.RoleResponse, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name es requerido", domain.ErrInvalidInput)
	}
	role := &entity.Role{Name: name, Description: strings.TrimSpace(in.Description)}
	if err := uc.repo.Create(ctx, role); err != nil {
		return nil, err
	}
	out := toRoleResponse(role)
	return &out, nil
}

// Delete elimina el rol sin tocar a los usuarios que lo tienen asignado por nombre;
// esos usuarios conservan el texto del rol y solo admin los sigue reconociendo como tal.
// Borrar un ID inexistente no es error.
func (uc *RoleUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}

func toRoleResponse(r *entity.Role) dto.RoleResponse {
	return dto.RoleResponse{ID: r.ID, Name: r.Name, Description: r.Description}
}
