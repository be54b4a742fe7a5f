package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hr-backoffice/api/http/presenter"
	"github.com/artem13815/hr-backoffice/pkg/preferences"
)

type PreferencesHandler struct {
	langs     *preferences.Languages
	supported []string
	loc       *Localizer
}

func NewPreferencesHandler(langs *preferences.Languages, supported []string, loc *Localizer) *PreferencesHandler {
	return &PreferencesHandler{langs: langs, supported: supported, loc: loc}
}

type languageRequest struct {
	Language string `json:"language"`
}

// GetLanguage returns the operator's dashboard language.
// @Summary Язык интерфейса
// @Tags    Настройки
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Router  /preferences/language [get]
func (h *PreferencesHandler) GetLanguage(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"language":  h.langs.Get(operator(c)),
		"supported": h.supported,
	})
}

// SetLanguage persists the operator's dashboard language.
// @Summary Сменить язык интерфейса
// @Tags    Настройки
// @Accept  json
// @Produce json
// @Param   input body languageRequest true "ru или kz"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /preferences/language [put]
func (h *PreferencesHandler) SetLanguage(c *fiber.Ctx) error {
	var req languageRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	if err := h.langs.Set(c.Context(), operator(c), req.Language); err != nil {
		return h.loc.Fail(c, err, "mutationFailed")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"language": h.langs.Get(operator(c))})
}
