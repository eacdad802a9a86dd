package repository

import (
	"context"
	"time"

	"github.com/jhoicas/panel-admin/internal/domain/entity"
)

// SessionRepository almacén de sesiones del lado del servidor.
type SessionRepository interface {
	Save(ctx context.Context, s *entity.Session) error
	// Get devuelve (nil, nil) si el token no existe. No filtra por expiración.
	Get(ctx context.Context, token string) (*entity.Session, error)
	// Delete es idempotente.
	Delete(ctx context.Context, token string) error
	// DeleteExpired elimina las sesiones con expires_at <= now y devuelve cuántas borró.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
