package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hr-backoffice/api/http/presenter"
	"github.com/artem13815/hr-backoffice/pkg/analysis"
)

type analysisResponse struct {
	analysis.Analysis
	Band         analysis.Band `json:"band"`
	BandLabel    string        `json:"bandLabel"`
	StrengthList []string      `json:"strengthList"`
	WeaknessList []string      `json:"weaknessList"`
}

// Analysis возвращает последний анализ кандидата.
// @Summary Получить анализ кандидата
// @Tags    Анализ
// @Produce json
// @Param   userId path int true "ID кандидата"
// @Security BearerAuth
// @Success 200 {object} analysisResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Failure 502 {object} presenter.ErrorResponse
// @Router  /analysis/{userId} [get]
func (h *FormsHandler) Analysis(c *fiber.Ctx) error {
	userID, err := parseID(c, "userId")
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "невалидный userId")
	}
	a, err := h.uc.AnalysisFor(c.Context(), userID)
	if err != nil {
		return h.loc.Fail(c, err, "loadError")
	}
	band := analysis.BandOf(a.Score)
	return presenter.JSON(c, http.StatusOK, analysisResponse{
		Analysis:     a,
		Band:         band,
		BandLabel:    h.loc.T(c, string(band)),
		StrengthList: a.StrengthList(),
		WeaknessList: a.WeaknessList(),
	})
}
