package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jhoicas/panel-admin/internal/application/auth"
	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/domain/repository"
)

// DefaultUserPassword contraseña que se asigna cuando el alta desde el panel no trae password.
// Es débil a propósito y conocida: el usuario debe cambiarla.
const DefaultUserPassword = "123456"

// UserUseCase aplica reglas de negocio para usuarios.
type UserUseCase struct {
	repo     repository.UserRepository
	roleRepo repository.RoleRepository
	hasher   auth.PasswordHasher
}

// NewUserUseCase construye el caso de uso con los puertos de persistencia y el hasher.
func NewUserUseCase(repo repository.UserRepository, roleRepo repository.RoleRepository, hasher auth.PasswordHasher) *UserUseCase {
	return &UserUseCase{repo: repo, roleRepo: roleRepo, hasher: hasher}
}

// List devuelve los usuarios (más recientes primero) y los nombres de rol disponibles.
func (uc *UserUseCase) List(ctx context.Context) (*dto.UserListResponse, error) {
	users, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	roleNames, err := uc.RoleNames(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		items = append(items, *dto.NewUserResponse(u))
	}
	return &dto.UserListResponse{Users: items, Roles: roleNames}, nil
}

// RoleNames nombres de rol para los selectores de los formularios.
func (uc *UserUseCase) RoleNames(ctx context.Context) ([]string, error) {
	roles, err := uc.roleRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.Name)
	}
	return names, nil
}

// GetByID obtiene un usuario por ID. Devuelve domain.ErrNotFound si no existe.
func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	return dto.NewUserResponse(user), nil
}

// Create da de alta un usuario. Sin password se usa DefaultUserPassword; sin rol, "user".
func (uc *UserUseCase) Create(ctx context.Context, in dto.CreateUserRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username es requerido", domain.ErrInvalidInput)
	}
	password := in.Password
	if password == "" {
		password = DefaultUserPassword
	}
	role := strings.TrimSpace(in.Role)
	if role == "" {
		role = entity.RoleUser
	}
	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     username,
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: hash,
		Role:         role,
	}
	if err := uc.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// Update edita username, phone y rol; re-hashea solo si llega un password no vacío.
// Lectura y escritura no están aisladas: dos ediciones simultáneas resuelven por último escritor.
func (uc *UserUseCase) Update(ctx context.Context, id int64, in dto.UpdateUserRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" {
		return nil, fmt.Errorf("%w: username es requerido", domain.ErrInvalidInput)
	}
	user, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrNotFound
	}
	user.Username = username
	user.Phone = strings.TrimSpace(in.Phone)
	if role := strings.TrimSpace(in.Role); role != "" {
		user.Role = role
	}
	if strings.TrimSpace(in.Password) != "" {
		hash, err := uc.hasher.Hash(in.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if err := uc.repo.Update(ctx, user); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// Delete elimina el usuario. Borrar un ID inexistente no es error.
// Las sesiones del usuario quedan en el almacén; el control de acceso las rechaza al no encontrarlo.
func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	if err := uc.repo.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return nil
}
