package memory

import (
	"context"

	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación en memoria de repository.SettingsRepository.
type SettingsRepo struct {
	s *Store
}

// Get devuelve una copia de los ajustes.
func (r *SettingsRepo) Get(_ context.Context) (*entity.Settings, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	if r.s.settings == nil {
		return nil, nil
	}
	cp := *r.s.settings
	return &cp, nil
}

// Init crea la fila si no existe.
func (r *SettingsRepo) Init(_ context.Context, s *entity.Settings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.settings != nil {
		return nil
	}
	cp := *s
	cp.ID = entity.SettingsID
	r.s.settings = &cp
	return nil
}

// Update sobrescribe la fila completa.
func (r *SettingsRepo) Update(_ context.Context, s *entity.Settings) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.settings == nil {
		return domain.ErrNotFound
	}
	cp := *s
	cp.ID = entity.SettingsID
	r.s.settings = &cp
	return nil
}
