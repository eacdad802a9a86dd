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

func TestSettings_SinInicializar(t *testing.T) {
	uc := usecase.NewSettingsUseCase(memory.NewStore().Settings())
	_, err := uc.Get(context.Background())
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestSettings_SobrescrituraCompleta(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	defaults := entity.DefaultSettings()
	require.NoError(t, store.Settings().Init(ctx, &defaults))
	uc := usecase.NewSettingsUseCase(store.Settings())

	out, err := uc.Update(ctx, dto.UpdateSettingsRequest{CompanyName: "Otra", Currency: " kgs ", Language: "RU"})
	require.NoError(t, err)
	assert.Equal(t, "KGS", out.Currency)
	assert.Equal(t, "ru", out.Language)

	got, err := uc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Otra", got.CompanyName)
	assert.Empty(t, got.Phone)
	assert.Empty(t, got.Theme)
	assert.Empty(t, got.Description)
}

func TestSettings_IdiomaNoReconocidoSeConserva(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	defaults := entity.DefaultSettings()
	require.NoError(t, store.Settings().Init(ctx, &defaults))
	uc := usecase.NewSettingsUseCase(store.Settings())

	out, err := uc.Update(ctx, dto.UpdateSettingsRequest{Language: "no es un idioma"})
	require.NoError(t, err)
	assert.Equal(t, "no es un idioma", out.Language)
}
