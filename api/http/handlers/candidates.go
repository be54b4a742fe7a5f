package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hr-backoffice/api/http/presenter"
	"github.com/artem13815/hr-backoffice/pkg/analysis"
	"github.com/artem13815/hr-backoffice/pkg/candidate"
	"github.com/artem13815/hr-backoffice/pkg/recommendation"
)

// RecommendedView is the live recommended-candidates table.
type RecommendedView interface {
	Refresh(ctx context.Context) error
	Snapshot() recommendation.State
}

type CandidateHandler struct {
	uc   candidate.UseCase
	view RecommendedView
	loc  *Localizer
}

func NewCandidateHandler(uc candidate.UseCase, view RecommendedView, loc *Localizer) *CandidateHandler {
	return &CandidateHandler{uc: uc, view: view, loc: loc}
}

type actionDTO struct {
	ID     candidate.ActionID `json:"id"`
	Label  string             `json:"label"`
	Kind   candidate.Kind     `json:"kind"`
	Target candidate.Status   `json:"target,omitempty"`
}

type recommendedRow struct {
	recommendation.Row
	Key          string        `json:"key"`
	Band         analysis.Band `json:"band"`
	BandLabel    string        `json:"bandLabel"`
	StrengthList []string      `json:"strengthList"`
	WeaknessList []string      `json:"weaknessList"`
	Badge        string        `json:"badge,omitempty"`
	Actions      []actionDTO   `json:"actions"`
	Busy         bool          `json:"busy"`
}

type recommendedResponse struct {
	Items   []recommendedRow `json:"items"`
	Loading bool             `json:"loading"`
	Pass    uint64           `json:"pass"`
}

func (h *CandidateHandler) row(c *fiber.Ctx, r recommendation.Row) recommendedRow {
	band := analysis.BandOf(r.Score)
	out := recommendedRow{
		Row:          r,
		Key:          r.Key(),
		Band:         band,
		BandLabel:    h.loc.T(c, string(band)),
		StrengthList: analysis.SplitList(r.Strengths),
		WeaknessList: analysis.SplitList(r.Weaknesses),
		Actions:      []actionDTO{},
		Busy:         h.uc.Busy(r.CandidateID),
	}
	if badge := candidate.Badge(r.Status); badge != "" {
		out.Badge = h.loc.T(c, badge)
	}
	for _, a := range candidate.Actions(r.Status) {
		out.Actions = append(out.Actions, actionDTO{ID: a.ID, Label: h.loc.T(c, a.Label), Kind: a.Kind, Target: a.Target})
	}
	return out
}

// Recommended returns analyses joined with their candidates.
// @Summary Рекомендованные кандидаты
// @Description Список анализов, объединённых с кандидатами. refresh=true запускает новый проход.
// @Tags    Кандидаты
// @Produce json
// @Param   refresh query bool false "перезагрузить список"
// @Security BearerAuth
// @Success 200 {object} recommendedResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /candidates/recommended [get]
func (h *CandidateHandler) Recommended(c *fiber.Ctx) error {
	st := h.view.Snapshot()
	if c.QueryBool("refresh") || (st.Pass == 0 && !st.Loading) {
		// the pass outcome lands in the snapshot
		_ = h.view.Refresh(c.Context())
		st = h.view.Snapshot()
	}
	if st.Err != nil {
		return h.loc.Fail(c, st.Err, "loadError")
	}
	resp := recommendedResponse{Items: make([]recommendedRow, 0, len(st.Rows)), Loading: st.Loading, Pass: st.Pass}
	for _, r := range st.Rows {
		resp.Items = append(resp.Items, h.row(c, r))
	}
	return presenter.JSON(c, http.StatusOK, resp)
}

type performRequest struct {
	Status candidate.Status   `json:"status"`
	Action candidate.ActionID `json:"action"`
}

// Perform presses an action button for a candidate row.
// @Summary Действие над кандидатом
// @Description status: статус, с которым строка была показана; сервер остаётся источником истины.
// @Tags    Кандидаты
// @Accept  json
// @Produce json
// @Param   id    path int            true "ID кандидата"
// @Param   input body performRequest true "статус строки и действие"
// @Security BearerAuth
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /candidates/{id}/actions [post]
func (h *CandidateHandler) Perform(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный id")
	}
	var req performRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	updated, err := h.uc.Perform(c.Context(), id, req.Status, req.Action)
	if err != nil {
		return h.loc.Fail(c, err, "mutationFailed")
	}
	if updated == nil {
		return presenter.JSON(c, http.StatusOK, fiber.Map{"id": id, "deleted": true})
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"candidate": updated, "deleted": false})
}

type statusRequest struct {
	Status candidate.Status `json:"status"`
}

// UpdateStatus sets a candidate status directly.
// @Summary Сменить статус кандидата
// @Tags    Кандидаты
// @Accept  json
// @Produce json
// @Param   id    path int           true "ID кандидата"
// @Param   input body statusRequest true "новый статус"
// @Security BearerAuth
// @Success 200 {object} candidate.Candidate
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /candidates/{id}/status [put]
func (h *CandidateHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный id")
	}
	var req statusRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный JSON")
	}
	updated, err := h.uc.Transition(c.Context(), id, req.Status)
	if err != nil {
		return h.loc.Fail(c, err, "mutationFailed")
	}
	return presenter.JSON(c, http.StatusOK, updated)
}

// Delete removes a candidate.
// @Summary Удалить кандидата
// @Tags    Кандидаты
// @Param   id path int true "ID кандидата"
// @Security BearerAuth
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный id")
	}
	if err := h.uc.Delete(c.Context(), id); err != nil {
		return h.loc.Fail(c, err, "mutationFailed")
	}
	return c.SendStatus(http.StatusNoContent)
}

func parseID(c *fiber.Ctx, name string) (int64, error) {
	return strconv.ParseInt(c.Params(name), 10, 64)
}
