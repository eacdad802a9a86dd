package http

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/application/usecase"
	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/pkg/logger"
)

// UserHandler gestión de usuarios del panel.
type UserHandler struct {
	uc  *usecase.UserUseCase
	log *logger.Logger
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar usuarios y roles
// @Tags         users
// @Produce      html,json
// @Success      200  {object}  dto.UserListResponse
// @Router       /dashboard/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return fail(c, h.log, err)
	}
	if wantsJSON(c) {
		return c.JSON(out)
	}
	data := page(c, "Usuarios")
	data["Users"] = out.Users
	data["Roles"] = out.Roles
	addRoleFlags(data, GetUser(c))
	return c.Render("users", data)
}

// New godoc
// @Summary      Formulario de alta de usuario
// @Tags         users
// @Produce      html
// @Success      200
// @Failure      403
// @Router       /dashboard/users/new [get]
func (h *UserHandler) New(c *fiber.Ctx) error {
	data, err := h.formData(c, "Nuevo usuario", dto.UserResponse{Role: entity.RoleUser}, "/dashboard/users", false)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.Render("user_form", data)
}

// Create godoc
// @Summary      Crear usuario
// @Description  Sin password se asigna 123456; sin rol, user.
// @Tags         users
// @Accept       x-www-form-urlencoded,json
// @Produce      html,json
// @Param        body  body  dto.CreateUserRequest  true  "username, phone, password, role"
// @Success      302
// @Success      201  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /dashboard/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, h.log, domain.ErrInvalidInput)
	}
	user, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return h.formFailure(c, err, "Nuevo usuario", dto.UserResponse{Username: in.Username, Phone: in.Phone, Role: in.Role}, "/dashboard/users", false)
	}
	h.log.Info().Int64("user_id", user.ID).Str("role", user.Role).Msg("usuario creado")
	return done(c, fiber.StatusCreated, user, "/dashboard/users")
}

// Edit godoc
// @Summary      Formulario de edición de usuario
// @Tags         users
// @Produce      html,json
// @Param        id   path  int  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /dashboard/users/{id}/edit [get]
func (h *UserHandler) Edit(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	user, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return fail(c, h.log, err)
	}
	if wantsJSON(c) {
		return c.JSON(user)
	}
	data, err := h.formData(c, "Editar usuario", *user, editAction(id), true)
	if err != nil {
		return fail(c, h.log, err)
	}
	return c.Render("user_form", data)
}

// Update godoc
// @Summary      Editar usuario
// @Description  Password vacío conserva el actual; rol vacío conserva el actual.
// @Tags         users
// @Accept       x-www-form-urlencoded,json
// @Produce      html,json
// @Param        id    path  int                    true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "username, phone, password, role"
// @Success      302
// @Success      200  {object}  dto.UserResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /dashboard/users/{id}/edit [post]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		return fail(c, h.log, err)
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, h.log, domain.ErrInvalidInput)
	}
	user, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return h.formFailure(c, err, "Editar usuario", dto.UserResponse{ID: id, Username: in.Username, Phone: in.Phone, Role: in.Role}, editAction(id), true)
	}
	h.log.Info().Int64("user_id", user.ID).Str("role", user.Role).Msg("usuario actualizado")
	return done(c, fiber.StatusOK, user, "/dashboard/users")
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Produce      html,json
// @Param        id   path  int  true  "ID del usuario"
// @Success      302
// @Success      200  {object}  dto.MessageResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /dashboard/users/{id}/delete [post]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := paramID(c)
	if err != nil {
		// ID no numérico: no hay nada que borrar.
		return done(c, fiber.StatusOK, dto.MessageResponse{Message: "usuario eliminado"}, "/dashboard/users")
	}
	if err := h.uc.Delete(c.UserContext(), id); err != nil {
		return fail(c, h.log, err)
	}
	h.log.Info().Int64("user_id", id).Msg("usuario eliminado")
	return done(c, fiber.StatusOK, dto.MessageResponse{Message: "usuario eliminado"}, "/dashboard/users")
}

func (h *UserHandler) formData(c *fiber.Ctx, title string, form dto.UserResponse, action string, editing bool) (fiber.Map, error) {
	roles, err := h.uc.RoleNames(c.UserContext())
	if err != nil {
		return nil, err
	}
	data := page(c, title)
	data["Form"] = form
	data["Roles"] = roles
	data["Action"] = action
	data["Editing"] = editing
	return data, nil
}

func (h *UserHandler) formFailure(c *fiber.Ctx, err error, title string, form dto.UserResponse, action string, editing bool) error {
	if !isFormError(err) || wantsJSON(c) {
		return formError(c, h.log, err, "user_form", nil)
	}
	data, lerr := h.formData(c, title, form, action, editing)
	if lerr != nil {
		return fail(c, h.log, lerr)
	}
	return formError(c, h.log, err, "user_form", data)
}

func editAction(id int64) string {
	return "/dashboard/users/" + strconv.FormatInt(id, 10) + "/edit"
}
