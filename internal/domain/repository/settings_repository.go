package repository

import (
	"context"

	"github.com/jhoicas/panel-admin/internal/domain/entity"
)

// SettingsRepository opera siempre sobre la fila única entity.SettingsID.
type SettingsRepository interface {
	// Get devuelve (nil, nil) si la fila aún no fue creada.
	Get(ctx context.Context) (*entity.Settings, error)
	// Init crea la fila con los valores dados solo si no existe.
	Init(ctx context.Context, s *entity.Settings) error
	// Update sobrescribe todos los campos editables.
	Update(ctx context.Context, s *entity.Settings) error
}
