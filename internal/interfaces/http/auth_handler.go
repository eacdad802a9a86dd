package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-admin/internal/application/auth"
	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/pkg/logger"
	"github.com/jhoicas/panel-admin/pkg/metrics"
)

// AuthHandler maneja login, logout y registro.
type AuthHandler struct {
	uc      *auth.AuthUseCase
	cookie  CookieConfig
	log     *logger.Logger
	metrics *metrics.Metrics
}

// NewAuthHandler construye el handler de auth.
func NewAuthHandler(uc *auth.AuthUseCase, cookie CookieConfig, log *logger.Logger, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{uc: uc, cookie: cookie, log: log, metrics: m}
}

// LoginPage godoc
// @Summary      Formulario de login
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       /login [get]
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	return c.Render("login", page(c, "Iniciar sesión"))
}

// Login godoc
// @Summary      Iniciar sesión
// @Tags         auth
// @Accept       x-www-form-urlencoded,json
// @Produce      html,json
// @Param        body  body  dto.LoginRequest  true  "username, password"
// @Success      302
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Router       /login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, h.log, domain.ErrInvalidInput)
	}
	data := page(c, "Iniciar sesión")
	data["Username"] = in.Username

	out, err := h.uc.Login(c.UserContext(), in)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidCredentials):
			h.metrics.LoginAttempt(metrics.LoginInvalid)
			h.log.Warn().Str("username", in.Username).Msg("login rechazado")
		case !isFormError(err):
			h.metrics.LoginAttempt(metrics.LoginError)
		}
		return formError(c, h.log, err, "login", data)
	}
	h.metrics.LoginAttempt(metrics.LoginOK)

	// Una sesión previa en el mismo navegador se descarta al iniciar otra.
	if prev := GetSessionToken(c); prev != "" {
		if err := h.uc.Logout(c.UserContext(), prev); err != nil {
			h.log.Warn().Err(err).Msg("descartar sesión previa")
		}
	}
	if err := setSessionCookie(c, h.cookie, out.Token, out.ExpiresAt); err != nil {
		return fail(c, h.log, err)
	}
	h.log.Info().Int64("user_id", out.User.ID).Str("role", out.User.Role).Msg("sesión iniciada")
	return done(c, fiber.StatusOK, out, "/dashboard")
}

// Logout godoc
// @Summary      Cerrar sesión
// @Tags         auth
// @Success      302
// @Router       /logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	if token := GetSessionToken(c); token != "" {
		if err := h.uc.Logout(c.UserContext(), token); err != nil {
			return fail(c, h.log, err)
		}
	}
	c.ClearCookie(h.cookie.Name)
	return done(c, fiber.StatusOK, dto.MessageResponse{Message: "sesión cerrada"}, "/login")
}

// RegisterPage godoc
// @Summary      Formulario de registro
// @Tags         auth
// @Produce      html
// @Success      200
// @Router       /register [get]
func (h *AuthHandler) RegisterPage(c *fiber.Ctx) error {
	data := page(c, "Registro")
	data["Form"] = dto.RegisterRequest{}
	return c.Render("register", data)
}

// Register godoc
// @Summary      Registrar usuario (rol user)
// @Tags         auth
// @Accept       x-www-form-urlencoded,json
// @Produce      html,json
// @Param        body  body  dto.RegisterRequest  true  "username, phone, password"
// @Success      302
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, h.log, domain.ErrInvalidInput)
	}
	user, err := h.uc.RegisterUser(c.UserContext(), in)
	if err != nil {
		data := page(c, "Registro")
		data["Form"] = dto.RegisterRequest{Username: in.Username, Phone: in.Phone}
		return formError(c, h.log, err, "register", data)
	}
	return done(c, fiber.StatusCreated, user, "/login")
}
