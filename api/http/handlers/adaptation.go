package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hr-backoffice/api/http/presenter"
	"github.com/artem13815/hr-backoffice/pkg/adaptation"
)

type AdaptationHandler struct {
	uc  adaptation.UseCase
	loc *Localizer
}

func NewAdaptationHandler(uc adaptation.UseCase, loc *Localizer) *AdaptationHandler {
	return &AdaptationHandler{uc: uc, loc: loc}
}

type adaptationDTO struct {
	adaptation.Record
	Label   string              `json:"label"`
	Actions []adaptation.Action `json:"actions"`
}

type startAdaptationRequest struct {
	UserID int64 `json:"userId"`
}

type updateAdaptationRequest struct {
	UserID int64             `json:"userId"`
	Status adaptation.Status `json:"status"`
	Target adaptation.Status `json:"target"`
}

func (h *AdaptationHandler) dto(c *fiber.Ctx, r adaptation.Record) adaptationDTO {
	acts := adaptation.Actions(r.Status)
	for i := range acts {
		acts[i].Label = h.loc.T(c, acts[i].Label)
	}
	return adaptationDTO{Record: r, Label: h.loc.T(c, adaptation.Label(r.Status)), Actions: acts}
}

// List returns adaptation records.
// @Summary Адаптация сотрудников
// @Tags    Адаптация
// @Produce json
// @Security BearerAuth
// @Success 200 {array} adaptationDTO
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /adaptation [get]
func (h *AdaptationHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.Context())
	if err != nil {
		return h.loc.Fail(c, err, "loadError")
	}
	out := make([]adaptationDTO, 0, len(items))
	for _, r := range items {
		out = append(out, h.dto(c, r))
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// Start opens an adaptation record.
// @Summary Начать адаптацию
// @Tags    Адаптация
// @Accept  json
// @Produce json
// @Param   input body startAdaptationRequest true "ID кандидата"
// @Security BearerAuth
// @Success 201 {object} adaptationDTO
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /adaptation [post]
func (h *AdaptationHandler) Start(c *fiber.Ctx) error {
	var req startAdaptationRequest
	if err := c.BodyParser(&req); err != nil || req.UserID <= 0 {
		return presenter.Error(c, http.StatusBadRequest, "невалидный userId")
	}
	rec, err := h.uc.Start(c.Context(), req.UserID)
	if err != nil {
		return h.loc.Fail(c, err, "mutationFailed")
	}
	return presenter.JSON(c, http.StatusCreated, h.dto(c, rec))
}

// Update resolves an in-progress adaptation.
// @Summary Завершить адаптацию
// @Tags    Адаптация
// @Accept  json
// @Produce json
// @Param   id    path int                     true "ID записи"
// @Param   input body updateAdaptationRequest true "текущий и новый статус"
// @Security BearerAuth
// @Success 200 {object} adaptationDTO
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /adaptation/{id} [put]
func (h *AdaptationHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный id")
	}
	var req updateAdaptationRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	rec := adaptation.Record{ID: id, UserID: req.UserID, Status: req.Status}
	out, err := h.uc.UpdateStatus(c.Context(), rec, req.Target)
	if err != nil {
		return h.loc.Fail(c, err, "mutationFailed")
	}
	return presenter.JSON(c, http.StatusOK, h.dto(c, out))
}
