package http

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/pkg/logger"
)

// wantsJSON indica si el cliente pidió JSON en lugar de HTML.
func wantsJSON(c *fiber.Ctx) bool {
	return strings.Contains(c.Get(fiber.HeaderAccept), fiber.MIMEApplicationJSON)
}

// page arma los datos comunes de una vista: título y usuario en sesión.
func page(c *fiber.Ctx, title string) fiber.Map {
	m := fiber.Map{"Title": title}
	if cu := currentUser(c); cu != nil {
		m["CurrentUser"] = cu
	}
	return m
}

func currentUser(c *fiber.Ctx) *dto.UserResponse {
	return dto.NewUserResponse(GetUser(c))
}

// errorCode traduce un error de dominio a (status, code, mensaje para el cliente).
// El mensaje de un error no clasificado nunca se expone.
func errorCode(err error) (int, string, string) {
	switch {
	case errors.Is(err, domain.ErrUnauthenticated):
		return fiber.StatusUnauthorized, "UNAUTHENTICATED", "sesión requerida"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return fiber.StatusUnauthorized, "INVALID_CREDENTIALS", "usuario o contraseña incorrectos"
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden, "FORBIDDEN", "no tiene permisos para esta acción"
	case errors.Is(err, domain.ErrUsernameTaken):
		return fiber.StatusBadRequest, "USERNAME_TAKEN", "el nombre de usuario ya existe"
	case errors.Is(err, domain.ErrRoleNameTaken):
		return fiber.StatusBadRequest, "ROLE_EXISTS", "el rol ya existe"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusBadRequest, "CONFLICT", "el registro ya existe"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND", "Not found"
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION", validationMessage(err)
	default:
		return fiber.StatusInternalServerError, "INTERNAL", "error interno"
	}
}

// validationMessage quita el prefijo del sentinel: "entrada inválida: username es requerido" -> "username es requerido".
func validationMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, domain.ErrInvalidInput.Error()+": "); i >= 0 {
		return msg[i+len(domain.ErrInvalidInput.Error())+2:]
	}
	return msg
}

// isFormError errores que se muestran re-renderizando el formulario.
func isFormError(err error) bool {
	return errors.Is(err, domain.ErrConflict) || errors.Is(err, domain.ErrInvalidInput) || errors.Is(err, domain.ErrInvalidCredentials)
}

// fail responde un error como JSON o como página de error. Los errores no clasificados se registran.
func fail(c *fiber.Ctx, log *logger.Logger, err error) error {
	status, code, msg := errorCode(err)
	if status >= fiber.StatusInternalServerError {
		log.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error no controlado")
	}
	if wantsJSON(c) {
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
	}
	data := page(c, "Error")
	data["Status"] = status
	data["Detail"] = msg
	return c.Status(status).Render("error", data)
}

// formError re-renderiza la vista name con el mensaje del error (o JSON). data debe traer los campos del formulario.
func formError(c *fiber.Ctx, log *logger.Logger, err error, name string, data fiber.Map) error {
	if !isFormError(err) {
		return fail(c, log, err)
	}
	status, code, msg := errorCode(err)
	if wantsJSON(c) {
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
	}
	data["Error"] = msg
	return c.Status(status).Render(name, data)
}

// done tras una mutación: redirect para el navegador, JSON para clientes API.
func done(c *fiber.Ctx, status int, body interface{}, location string) error {
	if wantsJSON(c) {
		return c.Status(status).JSON(body)
	}
	return c.Redirect(location, fiber.StatusFound)
}

// paramID lee :id. Un ID no numérico se trata como inexistente.
func paramID(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrNotFound
	}
	return id, nil
}
