package dto

import (
	"time"

	"github.com/jhoicas/panel-admin/internal/domain/entity"
)

// CreateUserRequest entrada para el alta desde el panel (password en texto, se hashea en el use case).
// Password y Role son opcionales: se aplican valores por defecto.
type CreateUserRequest struct {
	Username string `json:"username" form:"username"`
	Phone    string `json:"phone" form:"phone"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

// UpdateUserRequest edición de un usuario. Password vacío conserva el hash actual;
// Role vacío conserva el rol actual.
type UpdateUserRequest struct {
	Username string `json:"username" form:"username"`
	Phone    string `json:"phone" form:"phone"`
	Password string `json:"password" form:"password"`
	Role     string `json:"role" form:"role"`
}

// RegisterRequest entrada del registro público. El rol siempre es "user".
type RegisterRequest struct {
	Username string `json:"username" form:"username"`
	Phone    string `json:"phone" form:"phone"`
	Password string `json:"password" form:"password"`
}

// LoginRequest credenciales del formulario de login.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// NewUserResponse arma la salida de u; nil si u es nil.
func NewUserResponse(u *entity.User) *UserResponse {
	if u == nil {
		return nil
	}
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Phone:     u.Phone,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

// UserListResponse listado de usuarios junto con los nombres de rol disponibles.
type UserListResponse struct {
	Users []UserResponse `json:"users"`
	Roles []string       `json:"roles"`
}

// LoginResponse resultado de un login correcto: token de sesión opaco y usuario.
type LoginResponse struct {
	Token     string       `json:"-"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}
