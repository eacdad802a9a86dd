package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/domain/repository"
)

var _ repository.SettingsRepository = (*SettingsRepo)(nil)

// SettingsRepo implementación de SettingsRepository sobre PostgreSQL. Siempre opera sobre id = 1.
type SettingsRepo struct {
	q Querier
}

// NewSettingsRepository construye el adaptador de ajustes.
func NewSettingsRepository(q Querier) *SettingsRepo {
	return &SettingsRepo{q: q}
}

// Get obtiene la fila de ajustes.
func (r *SettingsRepo) Get(ctx context.Context) (*entity.Settings, error) {
	query := `
		SELECT id, company_name, phone, email, currency, language, theme, address, description, logo_url
		FROM settings WHERE id = $1`
	var s entity.Settings
	err := r.q.QueryRow(ctx, query, entity.SettingsID).Scan(
		&s.ID, &s.CompanyName, &s.Phone, &s.Email, &s.Currency,
		&s.Language, &s.Theme, &s.Address, &s.Description, &s.LogoURL,
	)
	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get settings: %w", err)
	}
	return &s, nil
}

// Init inserta la fila si todavía no existe.
func (r *SettingsRepo) Init(ctx context.Context, s *entity.Settings) error {
	query := `
		INSERT INTO settings (id, company_name, phone, email, currency, language, theme, address, description, logo_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (id) DO NOTHING`
	_, err := r.q.Exec(ctx, query,
		entity.SettingsID, s.CompanyName, s.Phone, s.Email, s.Currency,
		s.Language, s.Theme, s.Address, s.Description, s.LogoURL,
	)
	if err != nil {
		return fmt.Errorf("init settings: %w", err)
	}
	return nil
}

// Update sobrescribe todos los campos editables.
func (r *SettingsRepo) Update(ctx context.Context, s *entity.Settings) error {
	query := `
		UPDATE settings SET company_name = $2, phone = $3, email = $4, currency = $5, language = $6,
			theme = $7, address = $8, description = $9, logo_url = $10
		WHERE id = $1`
	cmd, err := r.q.Exec(ctx, query,
		entity.SettingsID, s.CompanyName, s.Phone, s.Email, s.Currency,
		s.Language, s.Theme, s.Address, s.Description, s.LogoURL,
	)
	if err != nil {
		return fmt.Errorf("update settings: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}
