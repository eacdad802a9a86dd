package usecase

import (
	"context"
	"strings"

	"golang.org/x/text/language"

	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/domain/repository"
)

// SettingsUseCase lectura y reemplazo de la fila única de ajustes.
type SettingsUseCase struct {
	repo repository.SettingsRepository
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository) *SettingsUseCase {
	return &SettingsUseCase{repo: repo}
}

// Get devuelve los ajustes. domain.ErrNotFound si la inicialización no creó la fila.
func (uc *SettingsUseCase) Get(ctx context.Context) (*dto.SettingsResponse, error) {
	s, err := uc.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrNotFound
	}
	return toSettingsResponse(s), nil
}

// Update sobrescribe todos los campos: lo que no llega queda vacío (no es un patch).
func (uc *SettingsUseCase) Update(ctx context.Context, in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	s := &entity.Settings{
		ID:          entity.SettingsID,
		CompanyName: strings.TrimSpace(in.CompanyName),
		Phone:       strings.TrimSpace(in.Phone),
		Email:       strings.TrimSpace(in.Email),
		Currency:    strings.ToUpper(strings.TrimSpace(in.Currency)),
		Language:    canonicalLanguage(in.Language),
		Theme:       strings.TrimSpace(in.Theme),
		Address:     strings.TrimSpace(in.Address),
		Description: strings.TrimSpace(in.Description),
		LogoURL:     strings.TrimSpace(in.LogoURL),
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		return nil, err
	}
	return toSettingsResponse(s), nil
}

// canonicalLanguage normaliza etiquetas BCP 47 ("EN-us" -> "en-US").
// Un valor que no se puede interpretar se guarda tal cual.
func canonicalLanguage(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	tag, err := language.Parse(raw)
	if err != nil {
		return raw
	}
	return tag.String()
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		CompanyName: s.CompanyName,
		Phone:       s.Phone,
		Email:       s.Email,
		Currency:    s.Currency,
		Language:    s.Language,
		Theme:       s.Theme,
		Address:     s.Address,
		Description: s.Description,
		LogoURL:     s.LogoURL,
	}
}
