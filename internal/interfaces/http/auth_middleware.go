package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-admin/internal/application/auth"
	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/pkg/jwt"
	"github.com/jhoicas/panel-admin/pkg/logger"
	"github.com/jhoicas/panel-admin/pkg/metrics"
)

// Locals keys del usuario y el token de sesión en Fiber.
const (
	LocalUser         = "user"
	LocalSessionToken = "session_token"
)

// CookieConfig cookie de sesión: el valor es un sobre firmado (HS256) con el token opaco.
type CookieConfig struct {
	Name   string
	Secret string
	Issuer string
	Secure bool
}

// LoadSession resuelve la cookie de sesión y deja al usuario en c.Locals. Nunca corta la cadena
// por falta de sesión; eso lo deciden RequireSession y RequireRole.
func LoadSession(uc *auth.AuthUseCase, cookie CookieConfig, log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		raw := c.Cookies(cookie.Name)
		if raw == "" {
			return c.Next()
		}
		token, err := jwt.ParseSession(cookie.Secret, cookie.Issuer, raw)
		if err != nil {
			c.ClearCookie(cookie.Name)
			return c.Next()
		}
		user, err := uc.Authenticate(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthenticated) {
				c.ClearCookie(cookie.Name)
				return c.Next()
			}
			log.Error().Err(err).Msg("resolver sesión")
			return err
		}
		c.Locals(LocalUser, user)
		c.Locals(LocalSessionToken, token)
		return c.Next()
	}
}

// RequireSession exige un usuario autenticado (cualquier rol).
func RequireSession(m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if GetUser(c) == nil {
			return unauthenticated(c, m)
		}
		return c.Next()
	}
}

// RequireRole exige sesión y que el rol del usuario cumpla requiredRole (admin cumple cualquiera).
// Debe usarse DESPUÉS de LoadSession.
func RequireRole(uc *auth.AuthUseCase, requiredRole string, m *metrics.Metrics) fiber.Handler {
	return func(c *fiber.Ctx) error {
		err := uc.Authorize(GetUser(c), requiredRole)
		switch {
		case err == nil:
			return c.Next()
		case errors.Is(err, domain.ErrUnauthenticated):
			return unauthenticated(c, m)
		default:
			m.AccessDenied("forbidden")
			if wantsJSON(c) {
				return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "Forbidden"})
			}
			return c.Status(fiber.StatusForbidden).SendString("Forbidden")
		}
	}
}

// unauthenticated: una navegación GET va a /login; el resto (POST, clientes JSON) se rechaza.
func unauthenticated(c *fiber.Ctx, m *metrics.Metrics) error {
	m.AccessDenied("unauthenticated")
	if wantsJSON(c) {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHENTICATED", Message: "sesión requerida"})
	}
	if c.Method() == fiber.MethodGet || c.Method() == fiber.MethodHead {
		return c.Redirect("/login", fiber.StatusFound)
	}
	return c.Status(fiber.StatusForbidden).SendString("Forbidden")
}

// GetUser devuelve el usuario de la sesión (después de LoadSession) o nil.
func GetUser(c *fiber.Ctx) *entity.User {
	u, _ := c.Locals(LocalUser).(*entity.User)
	return u
}

// GetSessionToken devuelve el token opaco de la sesión actual o "".
func GetSessionToken(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalSessionToken).(string)
	return s
}

func setSessionCookie(c *fiber.Ctx, cookie CookieConfig, token string, expiresAt time.Time) error {
	value, err := jwt.SignSession(cookie.Secret, cookie.Issuer, token, expiresAt)
	if err != nil {
		return err
	}
	c.Cookie(&fiber.Cookie{
		Name:     cookie.Name,
		Value:    value,
		Path:     "/",
		Expires:  expiresAt,
		HTTPOnly: true,
		Secure:   cookie.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	})
	return nil
}
