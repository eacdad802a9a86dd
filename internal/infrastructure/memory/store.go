// Package memory implementa los puertos de persistencia en memoria del proceso.
// Sirve para tests y para STORE_DRIVER=memory en desarrollo; los datos no sobreviven a un reinicio.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/jhoicas/panel-admin/internal/application/bootstrap"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
)

var _ bootstrap.TxRunner = (*Store)(nil)

// Store estado compartido por todos los repositorios en memoria.
type Store struct {
	mu         sync.RWMutex
	users      map[int64]entity.User
	nextUserID int64
	roles      map[int64]entity.Role
	nextRoleID int64
	settings   *entity.Settings
	sessions   map[string]entity.Session
	now        func() time.Time
}

// NewStore crea un almacén vacío.
func NewStore() *Store {
	return &Store{
		users:    make(map[int64]entity.User),
		roles:    make(map[int64]entity.Role),
		sessions: make(map[string]entity.Session),
		now:      time.Now,
	}
}

// Users devuelve el repositorio de usuarios.
func (s *Store) Users() *UserRepo { return &UserRepo{s: s} }

// Roles devuelve el repositorio de roles.
func (s *Store) Roles() *RoleRepo { return &RoleRepo{s: s} }

// Settings devuelve el repositorio de ajustes.
func (s *Store) Settings() *SettingsRepo { return &SettingsRepo{s: s} }

// Sessions devuelve el repositorio de sesiones.
func (s *Store) Sessions() *SessionRepo { return &SessionRepo{s: s} }

// RunBootstrap ejecuta fn y, si falla, restaura el estado previo.
// No aísla de escrituras concurrentes: solo se usa en el arranque.
func (s *Store) RunBootstrap(ctx context.Context, fn func(repos bootstrap.Repositories) error) error {
	snap := s.snapshot()
	err := fn(bootstrap.Repositories{Users: s.Users(), Roles: s.Roles(), Settings: s.Settings()})
	if err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

type snapshot struct {
	users      map[int64]entity.User
	nextUserID int64
	roles      map[int64]entity.Role
	nextRoleID int64
	settings   *entity.Settings
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snap := snapshot{
		users:      make(map[int64]entity.User, len(s.users)),
		nextUserID: s.nextUserID,
		roles:      make(map[int64]entity.Role, len(s.roles)),
		nextRoleID: s.nextRoleID,
	}
	for k, v := range s.users {
		snap.users[k] = v
	}
	for k, v := range s.roles {
		snap.roles[k] = v
	}
	if s.settings != nil {
		cp := *s.settings
		snap.settings = &cp
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = snap.users
	s.nextUserID = snap.nextUserID
	s.roles = snap.roles
	s.nextRoleID = snap.nextRoleID
	s.settings = snap.settings
}
