package remote

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/hr-backoffice/pkg/adaptation"
	"github.com/artem13815/hr-backoffice/pkg/apierr"
	"github.com/artem13815/hr-backoffice/pkg/candidate"
	"github.com/artem13815/hr-backoffice/pkg/question"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", 2*time.Second, nil)
}

func TestGetCandidateDecodesSnakeCase(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/candidates/7", r.URL.Path)
		_, _ = io.WriteString(w, `{"id":7,"name":null,"telegram_id":123456,"status":"interview"}`)
	})

	got, err := c.Candidates().GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Nil(t, got.Name)
	assert.Equal(t, int64(123456), got.TelegramID)
	assert.Equal(t, candidate.StatusInterview, got.Status)
}

func TestUnknownStatusIsNormalised(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `[{"id":1,"name":"Aida","telegram_id":1,"status":"hired"}]`)
	})

	items, err := c.Candidates().List(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, candidate.StatusUnknown, items[0].Status)
}

func TestUpdateStatusUsesQueryParam(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/candidates/3/status", r.URL.Path)
		assert.Equal(t, "interview_failed", r.URL.Query().Get("new_status"))
		_, _ = io.WriteString(w, `{"id":3,"name":"Erlan","telegram_id":9,"status":"interview_failed"}`)
	})

	got, err := c.Candidates().UpdateStatus(context.Background(), 3, candidate.StatusInterviewFailed)
	require.NoError(t, err)
	assert.Equal(t, candidate.StatusInterviewFailed, got.Status)
}

func TestErrorCarriesStatusAndBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"detail":"form incomplete"}`)
	})

	_, err := c.Analyses().Analyze(context.Background(), 5)
	require.Error(t, err)
	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.Status)
	assert.Equal(t, "/candidates/5/analyze", apiErr.Path)
	assert.Contains(t, apiErr.Error(), "form incomplete")
	assert.True(t, apierr.IsBadRequest(err))
}

func TestDeleteTwiceSurfaces404(t *testing.T) {
	deleted := map[string]bool{}
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if deleted[r.URL.Path] {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		deleted[r.URL.Path] = true
		_, _ = io.WriteString(w, `{"deleted":4}`)
	})

	require.NoError(t, c.Candidates().Delete(context.Background(), 4))
	err := c.Candidates().Delete(context.Background(), 4)
	assert.True(t, apierr.IsNotFound(err))
}

func TestRecommendedKeepsServerOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/candidates/recommended", r.URL.Path)
		_, _ = io.WriteString(w, `[
			{"user_id":2,"position":"Cook","score":71.5,"strengths":"speed","weaknesses":"english"},
			{"user_id":1,"position":"Nurse","score":82,"strengths":"care, calm","weaknesses":""}
		]`)
	})

	items, err := c.Analyses().ListRecommended(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, int64(2), items[0].UserID)
	assert.Equal(t, 71.5, items[0].Score)
	assert.Equal(t, []string{"care", "calm"}, items[1].StrengthList())
}

func TestQuestionPatchSendsOnlySetFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{"isSelected": false}, body)
		_, _ = io.WriteString(w, `{"id":1,"text":"Q","isSelected":false}`)
	})

	off := false
	got, err := c.Questions().Update(context.Background(), 1, question.Patch{IsSelected: &off})
	require.NoError(t, err)
	assert.False(t, got.IsSelected)
}

func TestQuestionDeleteWithEmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	assert.NoError(t, c.Questions().Delete(context.Background(), 1))
}

func TestAdaptationUpdateBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/adaptation/11", r.URL.Path)
		var body adaptationIn
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, adaptationIn{UserID: 5, Status: "adaptation_failed"}, body)
		_, _ = io.WriteString(w, `{"id":11,"user_id":5,"name":"Dana","telegram_id":1,"status":"adaptation_failed"}`)
	})

	rec, err := c.Adaptation().Update(context.Background(), 11, 5, adaptation.StatusFailed)
	require.NoError(t, err)
	assert.Equal(t, adaptation.StatusFailed, rec.Status)
}

func TestAnswersByTelegramID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/answers/555", r.URL.Path)
		_, _ = io.WriteString(w, `[{"id":1,"question_id":2,"question_text":"Опыт?","answer":"3 года"}]`)
	})

	items, err := c.Answers().ByTelegramID(context.Background(), 555)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Опыт?", items[0].QuestionText)
}

func TestPing(t *testing.T) {
	up := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusUnauthorized) })
	assert.NoError(t, up.Ping(context.Background()))

	down := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusBadGateway) })
	assert.Error(t, down.Ping(context.Background()))
}
