package memory

import (
	"context"
	"time"

	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/domain/repository"
)

var _ repository.SessionRepository = (*SessionRepo)(nil)

// SessionRepo implementación en memoria de repository.SessionRepository.
type SessionRepo struct {
	s *Store
}

// Save guarda o reemplaza la sesión.
func (r *SessionRepo) Save(_ context.Context, sess *entity.Session) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	r.s.sessions[sess.Token] = *sess
	return nil
}

// Get devuelve la sesión del token, vencida o no.
func (r *SessionRepo) Get(_ context.Context, token string) (*entity.Session, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	sess, ok := r.s.sessions[token]
	if !ok {
		return nil, nil
	}
	return &sess, nil
}

// Delete elimina la sesión si existe.
func (r *SessionRepo) Delete(_ context.Context, token string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	delete(r.s.sessions, token)
	return nil
}

// DeleteExpired elimina las sesiones vencidas en now.
func (r *SessionRepo) DeleteExpired(_ context.Context, now time.Time) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var n int64
	for token, sess := range r.s.sessions {
		if sess.Expired(now) {
			delete(r.s.sessions, token)
			n++
		}
	}
	return n, nil
}
