package recommendation

import (
	"fmt"

	"github.com/artem13815/hr-backoffice/pkg/analysis"
	"github.com/artem13815/hr-backoffice/pkg/candidate"
)

// Row is one line of the recommended-candidates table: an Analysis joined
// with its Candidate.
type Row struct {
	// CandidateID is the Candidate's own id; it wins for identity.
	CandidateID int64 `json:"candidateId"`
	// UserID is the Analysis join key, kept even when it equals CandidateID.
	UserID     int64            `json:"userId"`
	Name       string           `json:"name"`
	NameKnown  bool             `json:"nameKnown"`
	Status     candidate.Status `json:"status"`
	Position   string           `json:"position"`
	Score      float64          `json:"score"`
	Strengths  string           `json:"strengths"`
	Weaknesses string           `json:"weaknesses"`
}

// Key identifies a row across passes; one candidate may be recommended for
// several positions.
func (r Row) Key() string {
	return fmt.Sprintf("%d-%s", r.CandidateID, r.Position)
}

// FallbackName is the label shown when a candidate has no known name.
func FallbackName(userID int64) string {
	return fmt.Sprintf("ID %d", userID)
}

// Merge builds a Row. A nil candidate means the lookup failed; the row then
// uses a placeholder identity (id = userId, no name, unknown status).
func Merge(a analysis.Analysis, c *candidate.Candidate) Row {
	row := Row{
		CandidateID: a.UserID,
		UserID:      a.UserID,
		Name:        FallbackName(a.UserID),
		Status:      candidate.StatusUnknown,
		Position:    a.Position,
		Score:       a.Score,
		Strengths:   a.Strengths,
		Weaknesses:  a.Weaknesses,
	}
	if c == nil {
		return row
	}
	row.CandidateID = c.ID
	row.Status = candidate.ParseStatus(string(c.Status))
	if c.Name != nil {
		row.Name = *c.Name
		row.NameKnown = true
	}
	return row
}
