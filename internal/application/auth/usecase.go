package auth

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/internal/domain/access"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/internal/domain/repository"
)

// AuthUseCase casos de uso de autenticación: registro, login, logout y el control de acceso
// (identidad desde la sesión + verificación de rol).
type AuthUseCase struct {
	userRepo repository.UserRepository
	sessions *SessionManager
	hasher   PasswordHasher

	dummyOnce sync.Once
	dummyHash string
}

// NewAuthUseCase construye el caso de uso de auth.
func NewAuthUseCase(userRepo repository.UserRepository, sessions *SessionManager, hasher PasswordHasher) *AuthUseCase {
	return &AuthUseCase{userRepo: userRepo, sessions: sessions, hasher: hasher}
}

// Sessions expone el gestor de sesiones (TTL de la cookie, purga manual).
func (uc *AuthUseCase) Sessions() *SessionManager { return uc.sessions }

// RegisterUser crea un usuario con rol "user". Devuelve domain.ErrUsernameTaken si el username ya existe.
func (uc *AuthUseCase) RegisterUser(ctx context.Context, in dto.RegisterRequest) (*dto.UserResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username y password son requeridos", domain.ErrInvalidInput)
	}
	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Username:     username,
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: hash,
		Role:         entity.RoleUser,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return dto.NewUserResponse(user), nil
}

// Login verifica username/password y abre una sesión.
// Usuario inexistente y contraseña incorrecta devuelven el mismo domain.ErrInvalidCredentials.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" {
		return nil, fmt.Errorf("%w: username y password son requeridos", domain.ErrInvalidInput)
	}
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		uc.verifyDummy(in.Password)
		return nil, domain.ErrInvalidCredentials
	}
	if !uc.hasher.Verify(in.Password, user.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}
	session, err := uc.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		User:      *dto.NewUserResponse(user),
	}, nil
}

// verifyDummy compara contra un hash fijo del mismo costo para que un username inexistente
// tarde lo mismo que una contraseña incorrecta.
func (uc *AuthUseCase) verifyDummy(password string) {
	uc.dummyOnce.Do(func() {
		uc.dummyHash, _ = uc.hasher.Hash("usuario-inexistente")
	})
	uc.hasher.Verify(password, uc.dummyHash)
}

// Logout destruye la sesión del token (idempotente).
func (uc *AuthUseCase) Logout(ctx context.Context, token string) error {
	return uc.sessions.Destroy(ctx, token)
}

// Authenticate resuelve el token y carga al usuario. Sin sesión válida, o si el usuario
// fue eliminado con la sesión aún vigente, devuelve domain.ErrUnauthenticated.
func (uc *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	userID, ok, err := uc.sessions.Resolve(ctx, token)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cargar usuario de la sesión: %w", err)
	}
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}

// Authorize verifica que user cumpla requiredRole (admin siempre cumple).
func (uc *AuthUseCase) Authorize(user *entity.User, requiredRole string) error {
	if user == nil {
		return domain.ErrUnauthenticated
	}
	if !access.Permits(user.Role, requiredRole) {
		return domain.ErrForbidden
	}
	return nil
}

// SetPassword reemplaza la contraseña de username (rotación de la cuenta admin sembrada).
func (uc *AuthUseCase) SetPassword(ctx context.Context, username, password string) error {
	if strings.TrimSpace(password) == "" {
		return fmt.Errorf("%w: password vacío", domain.ErrInvalidInput)
	}
	user, err := uc.userRepo.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrNotFound
	}
	hash, err := uc.hasher.Hash(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return uc.userRepo.Update(ctx, user)
}
