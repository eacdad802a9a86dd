// Package access contiene la regla de autorización por rol, sin dependencias de transporte ni almacén.
package access

import "github.com/jhoicas/panel-admin/internal/domain/entity"

// Permits decide si un usuario con userRole puede ejecutar una operación que exige requiredRole.
// admin satisface cualquier exigencia; fuera de eso la comparación es exacta
// (manager no incluye a user).
func Permits(userRole, requiredRole string) bool {
	if userRole == "" {
		return false
	}
	return userRole == entity.RoleAdmin || userRole == requiredRole
}
