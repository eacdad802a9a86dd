package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/application/usecase"
	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/pkg/logger"
)

// RoleHandler catálogo de roles (solo admin).
type RoleHandler struct {
	uc  *usecase.RoleUseCase
	log *logger.Logger
}

// NewRoleHandler construye el handler.
func NewRoleHandler(uc *usecase.RoleUseCase, log *logger.Logger) *RoleHandler {
	return &RoleHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar roles
// @Tags         roles
// @Produce      html,json
// @Success      200  {object}  dto.RoleListResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /roles [get]
func (h *RoleHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return fail(c, h.log, err)
	}
	if wantsJSON(c) {
		return c.JSON(out)
	}
	data := page(c, "Roles")
	data["Roles"] = out.Roles
	data["Form"] = dto.CreateRoleRequest{}
	return c.Render("roles", data)
}

// Create godoc
// @Summary      Crear rol
// @Tags         roles
// @Accept       x-www-form-urlencoded,json
// @Produce      html,json
// @Param        body  body  dto.CreateRoleRequest  true  "name, description"
// @Success      302
// @Success      201  {object}  dto.RoleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /roles [post]
func (h *RoleHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRoleRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, h.log, domain.ErrInvalidInput)
	}
	role, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		if !isFormError(err) || wantsJSON(c) {
			return formError(c, h.log, err, "roles", nil)
		}
		out, lerr := h.uc.List(c.UserContext())
		if lerr != nil {
			return fail(c, h.log, lerr)
		}
		data := page(c, "Roles")
		data["Roles"] = out.Roles
		data["Form"] = in
		return formError(c, h.log, err, "roles", data)
	}
	h.log.Info().Str("role", role.Name).Msg("rol creado")
	return done(c, fiber.StatusCreated, role, "/roles")
}

// Delete godoc
// @Summary      Eliminar rol
// @Description  No modifica a los usuarios que tienen el rol asignado.
// @Tags         roles
// @Produce      html,json
// @Param        id   path  int  true  "ID del rol"
// @Success      302
// @Success      200  {object}  dto.MessageResponse
// @Router       /roles/{id}/delete [post]
func (h *RoleHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err == nil {
		if err := h.uc.Delete(c.UserContext(), id); err != nil {
			return fail(c, h.log, err)
		}
		h.log.Info().Int64("role_id", id).Msg("rol eliminado")
	}
	return done(c, fiber.StatusOK, dto.MessageResponse{Message: "rol eliminado"}, "/roles")
}
