package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/application/usecase"
	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/infrastructure/memory"
)

func TestRole_CrearListarBorrar(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewRoleUseCase(store.Roles())
	ctx := context.Background()

	created, err := uc.Create(ctx, dto.CreateRoleRequest{Name: " auditor ", Description: "Auditor"})
	require.NoError(t, err)
	assert.Equal(t, "auditor", created.Name)

	_, err = uc.Create(ctx, dto.CreateRoleRequest{Name: "auditor"})
	assert.True(t, errors.Is(err, domain.ErrRoleNameTaken))

	_, err = uc.Create(ctx, dto.CreateRoleRequest{Name: ""})
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list.Roles, 1)

	require.NoError(t, uc.Delete(ctx, created.ID))
	require.NoError(t, uc.Delete(ctx, created.ID), "borrar un rol inexistente no es error")

	list, err = uc.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, list.Roles)
}

func TestRole_BorrarNoModificaUsuarios(t *testing.T) {
	store := memory.NewStore()
	uc := usecase.NewRoleUseCase(store.Roles())
	ctx := context.Background()
	role, err := uc.Create(ctx, dto.CreateRoleRequest{Name: "auditor"})
	require.NoError(t, err)
	u := &entity.User{Username: "ana", Role: "auditor", PasswordHash: "x"}
	require.NoError(t, store.Users().Create(ctx, u))

	require.NoError(t, uc.Delete(ctx, role.ID))

	got, err := store.Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "auditor", got.Role)
}
