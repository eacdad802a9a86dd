package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-admin/internal/application/usecase"
	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/internal/domain/access"
	"github.com/jhoicas/panel-admin/internal/domain/entity"
	"github.com/jhoicas/panel-admin/pkg/logger"
)

// DashboardHandler portada del panel.
type DashboardHandler struct {
	settings *usecase.SettingsUseCase
	log      *logger.Logger
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(settings *usecase.SettingsUseCase, log *logger.Logger) *DashboardHandler {
	return &DashboardHandler{settings: settings, log: log}
}

// Show godoc
// @Summary      Portada del panel
// @Tags         dashboard
// @Produce      html,json
// @Success      200
// @Failure      302
// @Router       /dashboard [get]
func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	user := GetUser(c)
	s, err := h.settings.Get(c.UserContext())
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fail(c, h.log, err)
	}
	if wantsJSON(c) {
		return c.JSON(fiber.Map{"user": currentUser(c), "settings": s})
	}
	data := page(c, "Panel")
	data["Settings"] = s
	addRoleFlags(data, user)
	return c.Render("dashboard", data)
}

// addRoleFlags marca qué acciones muestra la vista según el rol.
func addRoleFlags(data fiber.Map, user *entity.User) {
	role := ""
	if user != nil {
		role = user.Role
	}
	data["CanManage"] = access.Permits(role, entity.RoleManager)
	data["IsAdmin"] = access.Permits(role, entity.RoleAdmin)
}
