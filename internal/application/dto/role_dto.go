package dto

// CreateRoleRequest entrada para crear un rol.
type CreateRoleRequest struct {
	Name        string `json:"name" form:"name"`
	Description string `json:"description" form:"description"`
}

// RoleResponse salida de un rol.
type RoleResponse struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// RoleListResponse listado de roles.
type RoleListResponse struct {
	Roles []RoleResponse `json:"roles"`
}
