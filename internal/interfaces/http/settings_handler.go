package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/panel-admin/internal/application/dto"
	"github.com/jhoicas/panel-admin/internal/application/usecase"
	"github.com/jhoicas/panel-admin/internal/domain"
	"github.com/jhoicas/panel-admin/pkg/logger"
)

// SavedMessage confirmación tras guardar los ajustes.
const SavedMessage = "Guardado"

// SettingsHandler ajustes de la empresa (solo admin).
type SettingsHandler struct {
	uc  *usecase.SettingsUseCase
	log *logger.Logger
}

// NewSettingsHandler construye el handler.
func NewSettingsHandler(uc *usecase.SettingsUseCase, log *logger.Logger) *SettingsHandler {
	return &SettingsHandler{uc: uc, log: log}
}

// Show godoc
// @Summary      Ver ajustes
// @Tags         settings
// @Produce      html,json
// @Success      200  {object}  dto.SettingsResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /dashboard/settings [get]
func (h *SettingsHandler) Show(c *fiber.Ctx) error {
	s, err := h.uc.Get(c.UserContext())
	if err != nil {
		return fail(c, h.log, err)
	}
	if wantsJSON(c) {
		return c.JSON(s)
	}
	data := page(c, "Ajustes")
	data["Settings"] = s
	return c.Render("settings", data)
}

// Update godoc
// @Summary      Reemplazar ajustes
// @Description  Sobrescribe todos los campos; los ausentes quedan vacíos.
// @Tags         settings
// @Accept       x-www-form-urlencoded,json
// @Produce      html,json
// @Param        body  body  dto.UpdateSettingsRequest  true  "ajustes completos"
// @Success      200  {object}  dto.SettingsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /dashboard/settings [post]
func (h *SettingsHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateSettingsRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, h.log, domain.ErrInvalidInput)
	}
	s, err := h.uc.Update(c.UserContext(), in)
	if err != nil {
		// Cualquier fallo al guardar vuelve al formulario con 400, incluido un fallo del almacén.
		h.log.Error().Err(err).Msg("guardar ajustes")
		if wantsJSON(c) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "SETTINGS_NOT_SAVED", Message: "no se pudieron guardar los ajustes"})
		}
		data := page(c, "Ajustes")
		data["Settings"] = settingsFromRequest(in)
		data["Error"] = "no se pudieron guardar los ajustes"
		return c.Status(fiber.StatusBadRequest).Render("settings", data)
	}
	if wantsJSON(c) {
		return c.JSON(s)
	}
	data := page(c, "Ajustes")
	data["Settings"] = s
	data["Message"] = SavedMessage
	return c.Render("settings", data)
}

func settingsFromRequest(in dto.UpdateSettingsRequest) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		CompanyName: in.CompanyName,
		Phone:       in.Phone,
		Email:       in.Email,
		Currency:    in.Currency,
		Language:    in.Language,
		Theme:       in.Theme,
		Address:     in.Address,
		Description: in.Description,
		LogoURL:     in.LogoURL,
	}
}
