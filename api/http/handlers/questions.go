package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hr-backoffice/api/http/presenter"
	"github.com/artem13815/hr-backoffice/pkg/question"
)

type QuestionHandler struct {
	uc  question.UseCase
	loc *Localizer
}

func NewQuestionHandler(uc question.UseCase, loc *Localizer) *QuestionHandler {
	return &QuestionHandler{uc: uc, loc: loc}
}

type questionDTO struct {
	question.View
	ProvenanceLabel string `json:"provenanceLabel"`
}

type questionListResponse struct {
	Items    []questionDTO `json:"items"`
	Selected int           `json:"selected"`
	Total    int           `json:"total"`
}

type questionTextRequest struct {
	Text string `json:"text"`
}

type toggleRequest struct {
	// Current is the selection state the operator saw.
	Current bool `json:"current"`
}

func (h *QuestionHandler) dto(c *fiber.Ctx, v question.View) questionDTO {
	return questionDTO{View: v, ProvenanceLabel: h.loc.T(c, string(v.Provenance))}
}

// List returns the question bank with provenance markers.
// @Summary Банк вопросов
// @Tags    Вопросы
// @Produce json
// @Param   reload query bool false "сбросить отметки new/edited"
// @Security BearerAuth
// @Success 200 {object} questionListResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /questions [get]
func (h *QuestionHandler) List(c *fiber.Ctx) error {
	list := h.uc.List
	if c.QueryBool("reload") {
		list = h.uc.Reload
	}
	res, err := list(c.Context())
	if err != nil {
		return h.loc.Fail(c, err, "loadError")
	}
	out := questionListResponse{Items: make([]questionDTO, 0, len(res.Items)), Selected: res.Selected, Total: res.Total}
	for _, v := range res.Items {
		out.Items = append(out.Items, h.dto(c, v))
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// Create adds a question; it is selected for the questionnaire right away.
// @Summary Добавить вопрос
// @Tags    Вопросы
// @Accept  json
// @Produce json
// @Param   input body questionTextRequest true "текст вопроса"
// @Security BearerAuth
// @Success 201 {object} questionDTO
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /questions [post]
func (h *QuestionHandler) Create(c *fiber.Ctx) error {
	var req questionTextRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	v, err := h.uc.Create(c.Context(), req.Text)
	if err != nil {
		return h.loc.Fail(c, err, "mutationFailed")
	}
	return presenter.JSON(c, http.StatusCreated, h.dto(c, v))
}

// Update edits question text.
// @Summary Изменить вопрос
// @Tags    Вопросы
// @Accept  json
// @Produce json
// @Param   id    path int                 true "ID вопроса"
// @Param   input body questionTextRequest true "новый текст"
// @Security BearerAuth
// @Success 200 {object} questionDTO
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /questions/{id} [put]
func (h *QuestionHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный id")
	}
	var req questionTextRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	v, err := h.uc.Update(c.Context(), id, req.Text)
	if err != nil {
		return h.loc.Fail(c, err, "mutationFailed")
	}
	return presenter.JSON(c, http.StatusOK, h.dto(c, v))
}

// Delete archives a question and returns it marked archived.
// @Summary Удалить вопрос
// @Tags    Вопросы
// @Produce json
// @Param   id path int true "ID вопроса"
// @Security BearerAuth
// @Success 200 {object} questionDTO
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /questions/{id} [delete]
func (h *QuestionHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный id")
	}
	v, err := h.uc.Delete(c.Context(), id)
	if err != nil {
		return h.loc.Fail(c, err, "mutationFailed")
	}
	return presenter.JSON(c, http.StatusOK, h.dto(c, v))
}

// Toggle flips questionnaire membership.
// @Summary Включить или исключить вопрос из анкеты
// @Tags    Вопросы
// @Accept  json
// @Produce json
// @Param   id    path int           true "ID вопроса"
// @Param   input body toggleRequest true "текущее состояние"
// @Security BearerAuth
// @Success 200 {object} questionDTO
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /questions/{id}/toggle [post]
func (h *QuestionHandler) Toggle(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный id")
	}
	var req toggleRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	v, err := h.uc.ToggleSelection(c.Context(), id, req.Current)
	if err != nil {
		return h.loc.Fail(c, err, "mutationFailed")
	}
	return presenter.JSON(c, http.StatusOK, h.dto(c, v))
}
