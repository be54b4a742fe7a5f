package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hr-backoffice/api/http/presenter"
	"github.com/artem13815/hr-backoffice/pkg/forms"
)

type FormsHandler struct {
	uc  forms.UseCase
	loc *Localizer
}

func NewFormsHandler(uc forms.UseCase, loc *Localizer) *FormsHandler {
	return &FormsHandler{uc: uc, loc: loc}
}

// List returns every candidate that may have a form.
// @Summary Анкеты кандидатов
// @Tags    Анкеты
// @Produce json
// @Security BearerAuth
// @Success 200 {array} candidate.Candidate
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /forms [get]
func (h *FormsHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.Candidates(c.Context())
	if err != nil {
		return h.loc.Fail(c, err, "loadError")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Answers returns a candidate's answers; no answers yet is an empty list.
// @Summary Ответы кандидата
// @Tags    Анкеты
// @Produce json
// @Param   telegramId path int true "Telegram ID кандидата"
// @Security BearerAuth
// @Success 200 {array} forms.Answer
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /forms/{telegramId}/answers [get]
func (h *FormsHandler) Answers(c *fiber.Ctx) error {
	tg, err := parseID(c, "telegramId")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный telegramId")
	}
	items, err := h.uc.Answers(c.Context(), tg)
	if err != nil {
		return h.loc.Fail(c, err, "answersLoadError")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Analyze asks the HR API to score a candidate's form.
// @Summary Проанализировать анкету
// @Tags    Анкеты
// @Produce json
// @Param   id path int true "ID кандидата"
// @Security BearerAuth
// @Success 200 {object} analysis.Analysis
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /forms/{id}/analyze [post]
func (h *FormsHandler) Analyze(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный id")
	}
	out, err := h.uc.Analyze(c.Context(), id)
	if err != nil {
		return h.loc.Fail(c, err, "analysisFailed")
	}
	return presenter.JSON(c, http.StatusOK, out)
}
