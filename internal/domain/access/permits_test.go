package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/panel-admin/internal/domain/access"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
)

func TestPermits_AdminSatisfaceCualquierRol(t *testing.T) {
	for _, required := range []string{entity.RoleAdmin, entity.RoleManager, entity.RoleUser, "auditor"} {
		assert.True(t, access.Permits(entity.RoleAdmin, required), "admin debe poder acceder a %q", required)
	}
}

func TestPermits_ComparacionExacta(t *testing.T) {
	cases := []struct {
		userRole, required string
		want               bool
	}{
		{entity.RoleManager, entity.RoleManager, true},
		{entity.RoleUser, entity.RoleUser, true},
		{entity.RoleManager, entity.RoleAdmin, false},
		{entity.RoleManager, entity.RoleUser, false}, // manager no es superconjunto de user
		{entity.RoleUser, entity.RoleManager, false},
		{"auditor", "auditor", true},
		{"Admin", entity.RoleManager, false},
		{"", entity.RoleUser, false},
		{"", "", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, access.Permits(tc.userRole, tc.required), "Permits(%q, %q)", tc.userRole, tc.required)
	}
}
