package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/hr-backoffice/api/http/presenter"
	"github.com/artem13815/hr-backoffice/pkg/adaptation"
	"github.com/artem13815/hr-backoffice/pkg/candidate"
	"github.com/artem13815/hr-backoffice/pkg/forms"
	"github.com/artem13815/hr-backoffice/pkg/preferences"
	"github.com/artem13815/hr-backoffice/pkg/question"
	"github.com/artem13815/hr-backoffice/pkg/recommendation"
)

// classify maps a use case error to an HTTP status and message key.
// Anything unrecognised is an upstream failure.
func classify(err error, fallbackKey string) (int, string) {
	var invalid question.ErrValidation
	switch {
	case errors.Is(err, candidate.ErrInvalidTarget):
		return http.StatusBadRequest, "invalidStatus"
	case errors.As(err, &invalid):
		return http.StatusBadRequest, "validationFailed"
	case errors.Is(err, preferences.ErrUnsupportedLanguage):
		return http.StatusBadRequest, "unsupportedLanguage"
	case errors.Is(err, forms.ErrFormIncomplete):
		return http.StatusBadRequest, "formIncomplete"
	case errors.Is(err, candidate.ErrActionNotAllowed),
		errors.Is(err, adaptation.ErrActionNotAllowed):
		return http.StatusConflict, "actionNotAllowed"
	case errors.Is(err, forms.ErrNoAnalysis):
		return http.StatusNotFound, "noAnalysis"
	case errors.Is(err, candidate.ErrNotFound),
		errors.Is(err, question.ErrNotFound),
		errors.Is(err, adaptation.ErrNotFound):
		return http.StatusNotFound, "notFound"
	case errors.Is(err, forms.ErrAnalysisFailed):
		return http.StatusBadGateway, "analysisFailed"
	case errors.Is(err, forms.ErrLoad), errors.Is(err, recommendation.ErrLoad):
		return http.StatusBadGateway, "loadError"
	}
	return http.StatusBadGateway, fallbackKey
}

// Fail writes err as a localized error response.
func (l *Localizer) Fail(c *fiber.Ctx, err error, fallbackKey string) error {
	status, key := classify(err, fallbackKey)
	return presenter.Error(c, status, l.T(c, key))
}
