package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/domain/repository"
)

// DefaultSessionTTL vigencia absoluta de una sesión.
const DefaultSessionTTL = 24 * time.Hour

const tokenBytes = 32

// SessionManager emite, resuelve y destruye sesiones del lado del servidor.
// No depende de la tecnología de almacenamiento: recibe el puerto SessionRepository.
type SessionManager struct {
	repo repository.SessionRepository
	ttl  time.Duration
	now  func() time.Time
}

// SessionOption configura SessionManager.
type SessionOption func(*SessionManager)

// WithClock reemplaza el reloj (tests).
func WithClock(now func() time.Time) SessionOption {
	return func(m *SessionManager) {
		if now != nil {
			m.now = now
		}
	}
}

// NewSessionManager construye el gestor. ttl <= 0 usa DefaultSessionTTL.
func NewSessionManager(repo repository.SessionRepository, ttl time.Duration, opts ...SessionOption) *SessionManager {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	m := &SessionManager{repo: repo, ttl: ttl, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// TTL devuelve la vigencia configurada.
func (m *SessionManager) TTL() time.Duration { return m.ttl }

// Create emite un token nuevo para userID y persiste la asociación.
func (m *SessionManager) Create(ctx context.Context, userID int64) (*entity.Session, error) {
	token, err := newToken()
	if err != nil {
		return nil, err
	}
	now := m.now()
	s := &entity.Session{
		Token:     token,
		UserID:    userID,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if err := m.repo.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("guardar sesión: %w", err)
	}
	return s, nil
}

// Resolve devuelve el usuario de la sesión si el token existe y no expiró.
// Las sesiones expiradas se eliminan al encontrarlas.
func (m *SessionManager) Resolve(ctx context.Context, token string) (int64, bool, error) {
	if token == "" {
		return 0, false, nil
	}
	s, err := m.repo.Get(ctx, token)
	if err != nil {
		return 0, false, fmt.Errorf("resolver sesión: %w", err)
	}
	if s == nil {
		return 0, false, nil
	}
	if s.Expired(m.now()) {
		// Si el borrado falla la sesión sigue siendo inválida; purge-sessions la limpia después.
		_ = m.repo.Delete(ctx, token)
		return 0, false, nil
	}
	return s.UserID, true, nil
}

// Destroy elimina la sesión. Destruir un token inexistente no es error.
func (m *SessionManager) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	if err := m.repo.Delete(ctx, token); err != nil {
		return fmt.Errorf("destruir sesión: %w", err)
	}
	return nil
}

// PurgeExpired borra todas las sesiones vencidas.
func (m *SessionManager) PurgeExpired(ctx context.Context) (int64, error) {
	n, err := m.repo.DeleteExpired(ctx, m.now())
	if err != nil {
		return 0, fmt.Errorf("purgar sesiones: %w", err)
	}
	return n, nil
}

func newToken() (string, error) {
	b := make([]byte, tokenBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generar token: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
