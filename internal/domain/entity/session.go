package entity

import "time"

// Session asocia un token opaco (en la cookie del cliente) con un usuario.
// La expiración es absoluta: no se renueva con la actividad.
type Session struct {
	Token     string
	UserID    int64
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired indica si la sesión ya no es válida en el instante now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
