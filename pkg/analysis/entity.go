package analysis

import (
	"context"
	"strings"
)

// Analysis — результат AI-оценки кандидата, одна запись на кандидата.
type Analysis struct {
	UserID     int64   `json:"userId"`
	Position   string  `json:"position"`
	Score      float64 `json:"score"`
	Strengths  string  `json:"strengths"`
	Weaknesses string  `json:"weaknesses"`
}

// StrengthList splits the comma-delimited strengths text.
func (a Analysis) StrengthList() []string { return SplitList(a.Strengths) }

// WeaknessList splits the comma-delimited weaknesses text.
func (a Analysis) WeaknessList() []string { return SplitList(a.Weaknesses) }

// SplitList turns "a, b,,c " into [a b c].
func SplitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Band is the colour bucket the dashboard uses for a score badge.
type Band string

const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandAverage   Band = "average"
)

// BandOf buckets a 0..100 score: >=70 excellent, >=50 good, otherwise average.
func BandOf(score float64) Band {
	switch {
	case score >= 70:
		return BandExcellent
	case score >= 50:
		return BandGood
	default:
		return BandAverage
	}
}

// Repository — порт для чтения анализов; владелец данных — HR bot API.
type Repository interface {
	// ListRecommended returns the server-filtered recommended analyses in server order.
	ListRecommended(ctx context.Context) ([]Analysis, error)
	GetByUserID(ctx context.Context, userID int64) (Analysis, error)
	// Analyze asks the server to (re)score a candidate from their submitted form.
	Analyze(ctx context.Context, candidateID int64) (Analysis, error)
}
