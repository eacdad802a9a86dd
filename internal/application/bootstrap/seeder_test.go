package bootstrap_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/panel-admin/internal/application/auth"
	"github.com/jhoicas/panel-admin/internal/application/bootstrap"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/infrastructure/memory"
)

func TestSeeder_AlmacenVacio(t *testing.T) {
	store := memory.NewStore()
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	ctx := context.Background()

	res, err := bootstrap.NewSeeder(store, hasher, bootstrap.AdminConfig{}).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"admin", "manager", "user"}, res.RolesCreated)
	assert.True(t, res.SettingsCreated)
	assert.True(t, res.AdminCreated)

	admin, err := store.Users().GetByUsername(ctx, bootstrap.DefaultAdminUsername)
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.True(t, hasher.Verify(bootstrap.DefaultAdminPassword, admin.PasswordHash))

	s, err := store.Settings().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, entity.DefaultSettings().CompanyName, s.CompanyName)
}

func TestSeeder_Idempotente(t *testing.T) {
	store := memory.NewStore()
	seeder := bootstrap.NewSeeder(store, auth.NewBcryptHasher(bcrypt.MinCost), bootstrap.AdminConfig{})
	ctx := context.Background()

	_, err := seeder.Run(ctx)
	require.NoError(t, err)
	res, err := seeder.Run(ctx)
	require.NoError(t, err)

	assert.Empty(t, res.RolesCreated)
	assert.False(t, res.SettingsCreated)
	assert.False(t, res.AdminCreated)

	roles, _ := store.Roles().List(ctx)
	users, _ := store.Users().List(ctx)
	assert.Len(t, roles, 3)
	assert.Len(t, users, 1)
}

// Un rol sembrado que el admin borró no vuelve en el siguiente arranque.
func TestSeeder_RolBorradoNoReaparece(t *testing.T) {
	store := memory.NewStore()
	seeder := bootstrap.NewSeeder(store, auth.NewBcryptHasher(bcrypt.MinCost), bootstrap.AdminConfig{})
	ctx := context.Background()

	_, err := seeder.Run(ctx)
	require.NoError(t, err)

	seeded, err := store.Roles().List(ctx)
	require.NoError(t, err)
	var managerID int64
	for _, r := range seeded {
		if r.Name == entity.RoleManager {
			managerID = r.ID
		}
	}
	require.NotZero(t, managerID)
	require.NoError(t, store.Roles().Delete(ctx, managerID))

	res, err := seeder.Run(ctx)
	require.NoError(t, err)
	assert.Empty(t, res.RolesCreated)

	roles, err := store.Roles().List(ctx)
	require.NoError(t, err)
	assert.Len(t, roles, 2)
	for _, r := range roles {
		assert.NotEqual(t, entity.RoleManager, r.Name)
	}
}

// Si ya existe un admin con otro nombre no se crea la cuenta por defecto.
func TestSeeder_NoCreaAdminSiYaHayUno(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.Users().Create(ctx, &entity.User{Username: "root", Role: entity.RoleAdmin, PasswordHash: "x"}))

	res, err := bootstrap.NewSeeder(store, auth.NewBcryptHasher(bcrypt.MinCost), bootstrap.AdminConfig{}).Run(ctx)
	require.NoError(t, err)
	assert.False(t, res.AdminCreated)

	u, err := store.Users().GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.Nil(t, u)
}

// Un usuario común llamado "admin" no se promueve ni se pisa.
func TestSeeder_UsernameOcupadoNoSePisa(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	require.NoError(t, store.Users().Create(ctx, &entity.User{Username: "admin", Role: entity.RoleUser, PasswordHash: "x"}))

	res, err := bootstrap.NewSeeder(store, auth.NewBcryptHasher(bcrypt.MinCost), bootstrap.AdminConfig{}).Run(ctx)
	require.NoError(t, err)
	assert.False(t, res.AdminCreated)

	u, _ := store.Users().GetByUsername(ctx, "admin")
	assert.Equal(t, entity.RoleUser, u.Role)
	assert.Equal(t, "x", u.PasswordHash)
}

func TestSeeder_CredencialesConfiguradas(t *testing.T) {
	store := memory.NewStore()
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	ctx := context.Background()

	res, err := bootstrap.NewSeeder(store, hasher, bootstrap.AdminConfig{Username: "jefa", Password: "fuerte"}).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, "jefa", res.AdminUsername)

	u, _ := store.Users().GetByUsername(ctx, "jefa")
	require.NotNil(t, u)
	assert.True(t, hasher.Verify("fuerte", u.PasswordHash))
}

type failingHasher struct{}

func (failingHasher) Hash(string) (string, error) { return "", errors.New("sin entropía") }
func (failingHasher) Verify(string, string) bool  { return false }

// Un fallo a mitad de la siembra no deja estado parcial.
func TestSeeder_FalloRevierteTodo(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()

	_, err := bootstrap.NewSeeder(store, failingHasher{}, bootstrap.AdminConfig{}).Run(ctx)
	require.Error(t, err)

	roles, _ := store.Roles().List(ctx)
	s, _ := store.Settings().Get(ctx)
	assert.Empty(t, roles)
	assert.Nil(t, s)
}
