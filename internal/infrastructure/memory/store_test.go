package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
)

func TestUserRepo_CopiasIndependientes(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	u := &entity.User{Username: "ana", Role: "user"}
	require.NoError(t, s.Users().Create(ctx, u))

	got, err := s.Users().GetByID(ctx, u.ID)
	require.NoError(t, err)
	got.Role = "admin"

	again, _ := s.Users().GetByID(ctx, u.ID)
	assert.Equal(t, "user", again.Role, "modificar la copia no toca el almacén")
}

func TestUserRepo_UpdateConservaCreatedAt(t *testing.T) {
	s := NewStore()
	fixed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { return fixed }
	ctx := context.Background()
	u := &entity.User{Username: "ana"}
	require.NoError(t, s.Users().Create(ctx, u))

	upd := &entity.User{ID: u.ID, Username: "ana", Role: "manager"}
	require.NoError(t, s.Users().Update(ctx, upd))
	assert.Equal(t, fixed, upd.CreatedAt)

	assert.True(t, errors.Is(s.Users().Update(ctx, &entity.User{ID: 99, Username: "x"}), domain.ErrNotFound))
}

func TestUserRepo_CreateConcurrenteMismoUsername(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	var wg sync.WaitGroup
	var mu sync.Mutex
	ok := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Users().Create(ctx, &entity.User{Username: "carrera"}); err == nil {
				mu.Lock()
				ok++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 1, ok, "solo una creación concurrente gana")
}

func TestRoleRepo_NombreUnico(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	require.NoError(t, s.Roles().Create(ctx, &entity.Role{Name: "auditor"}))
	err := s.Roles().Create(ctx, &entity.Role{Name: "auditor"})
	assert.True(t, errors.Is(err, domain.ErrRoleNameTaken))
}

func TestSettingsRepo_InitUnaSolaVez(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	assert.True(t, errors.Is(s.Settings().Update(ctx, &entity.Settings{CompanyName: "x"}), domain.ErrNotFound))

	first := entity.DefaultSettings()
	require.NoError(t, s.Settings().Init(ctx, &first))
	second := entity.Settings{CompanyName: "otra"}
	require.NoError(t, s.Settings().Init(ctx, &second))

	got, err := s.Settings().Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, first.CompanyName, got.CompanyName)
	assert.Equal(t, entity.SettingsID, got.ID)
}

func TestSessionRepo_DeleteExpired(t *testing.T) {
	s := NewStore()
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, s.Sessions().Save(ctx, &entity.Session{Token: "a", ExpiresAt: now.Add(-time.Minute)}))
	require.NoError(t, s.Sessions().Save(ctx, &entity.Session{Token: "b", ExpiresAt: now}))
	require.NoError(t, s.Sessions().Save(ctx, &entity.Session{Token: "c", ExpiresAt: now.Add(time.Minute)}))

	n, err := s.Sessions().DeleteExpired(ctx, now)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	got, _ := s.Sessions().Get(ctx, "c")
	assert.NotNil(t, got)
}
