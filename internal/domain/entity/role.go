package entity

// Roles sembrados en la inicialización.
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleUser    = "user"
)

// Role es un nivel de capacidad con nombre único. Los roles forman un conjunto plano;
// la precedencia de admin solo existe en el control de acceso.
type Role struct {
	ID          int64
	Name        string
	Description string
}

// DefaultRoles devuelve los roles que se siembran en un almacén vacío, en orden.
func DefaultRoles() []Role {
	return []Role{
		{Name: RoleAdmin, Description: "Administrator"},
		{Name: RoleManager, Description: "Manager"},
		{Name: RoleUser, Description: "User"},
	}
}
