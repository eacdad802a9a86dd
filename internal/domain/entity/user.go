package entity

import "time"

// User representa una cuenta del panel.
// Role es una referencia blanda a Role.Name: el almacén no valida que el rol exista.
type User struct {
	ID           int64
	Username     string
	Phone        string
	PasswordHash string // hash bcrypt, nunca texto plano
	Role         string
	CreatedAt    time.Time
}
