// Package bootstrap siembra el estado inicial: roles, fila de ajustes y cuenta admin.
package bootstrap

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/panel-admin/internal/application/auth"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
)

// Credenciales de la cuenta admin sembrada. Son públicas: deben rotarse tras el primer despliegue
// (cmd/admin rotate-password).
const (
	DefaultAdminUsername = "admin"
	DefaultAdminPassword = "admin123"
	DefaultAdminPhone    = "+996000000000"
)

// AdminConfig datos de la cuenta admin inicial. Campos vacíos usan los valores por defecto.
type AdminConfig struct {
	Username string
	Password string
	Phone    string
}

// Result resumen de lo que se creó.
type Result struct {
	RolesCreated    []string
	SettingsCreated bool
	AdminCreated    bool
	AdminUsername   string
}

// Seeder aplica la siembra de forma idempotente.
type Seeder struct {
	tx     TxRunner
	hasher auth.PasswordHasher
	admin  AdminConfig
}

// NewSeeder construye el seeder.
func NewSeeder(tx TxRunner, hasher auth.PasswordHasher, admin AdminConfig) *Seeder {
	if strings.TrimSpace(admin.Username) == "" {
		admin.Username = DefaultAdminUsername
	}
	if admin.Password == "" {
		admin.Password = DefaultAdminPassword
	}
	if admin.Phone == "" {
		admin.Phone = DefaultAdminPhone
	}
	return &Seeder{tx: tx, hasher: hasher, admin: admin}
}

// Run siembra el estado inicial. Roles y ajustes solo se crean en la primera inicialización
// (fila de ajustes ausente): un rol sembrado que el admin borró no reaparece al reiniciar.
// La cuenta admin se revisa en cada arranque. Se comprueba existencia antes de insertar para no
// abortar la transacción con violaciones de unicidad.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	res := &Result{AdminUsername: s.admin.Username}
	err := s.tx.RunBootstrap(ctx, func(repos Repositories) error {
		current, err := repos.Settings.Get(ctx)
		if err != nil {
			return err
		}
		if current == nil {
			if err := s.seedRoles(ctx, repos, res); err != nil {
				return err
			}
			if err := s.seedSettings(ctx, repos, res); err != nil {
				return err
			}
		}
		return s.seedAdmin(ctx, repos, res)
	})
	if err != nil {
		return nil, fmt.Errorf("bootstrap: %w", err)
	}
	return res, nil
}

func (s *Seeder) seedRoles(ctx context.Context, repos Repositories, res *Result) error {
	existing, err := repos.Roles.List(ctx)
	if err != nil {
		return err
	}
	have := make(map[string]bool, len(existing))
	for _, r := range existing {
		have[r.Name] = true
	}
	for _, r := range entity.DefaultRoles() {
		if have[r.Name] {
			continue
		}
		role := r
		if err := repos.Roles.Create(ctx, &role); err != nil {
			return fmt.Errorf("sembrar rol %s: %w", r.Name, err)
		}
		res.RolesCreated = append(res.RolesCreated, r.Name)
	}
	return nil
}

func (s *Seeder) seedSettings(ctx context.Context, repos Repositories, res *Result) error {
	defaults := entity.DefaultSettings()
	if err := repos.Settings.Init(ctx, &defaults); err != nil {
		return fmt.Errorf("sembrar ajustes: %w", err)
	}
	res.SettingsCreated = true
	return nil
}

// seedAdmin crea la cuenta admin solo si nadie tiene el rol admin y el username está libre.
func (s *Seeder) seedAdmin(ctx context.Context, repos Repositories, res *Result) error {
	admins, err := repos.Users.CountByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return err
	}
	if admins > 0 {
		return nil
	}
	taken, err := repos.Users.GetByUsername(ctx, s.admin.Username)
	if err != nil {
		return err
	}
	if taken != nil {
		return nil
	}
	hash, err := s.hasher.Hash(s.admin.Password)
	if err != nil {
		return err
	}
	admin := &entity.User{
		Username:     s.admin.Username,
		Phone:        s.admin.Phone,
		PasswordHash: hash,
		Role:         entity.RoleAdmin,
	}
	if err := repos.Users.Create(ctx, admin); err != nil {
		return fmt.Errorf("sembrar admin: %w", err)
	}
	res.AdminCreated = true
	return nil
}
