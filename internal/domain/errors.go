package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
// Los handlers los distinguen con errors.Is; cualquier otro error se trata como fallo del almacén.
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrConflict           = errors.New("conflicto con el estado actual")
	ErrUnauthenticated    = errors.New("no autenticado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInvalidCredentials = errors.New("credenciales inválidas")
)

// Variantes de conflicto por unicidad.
var (
	ErrUsernameTaken = fmt.Errorf("el nombre de usuario ya está registrado: %w", ErrConflict)
	ErrRoleNameTaken = fmt.Errorf("el rol ya existe: %w", ErrConflict)
)
