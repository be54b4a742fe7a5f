package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"empathy", "night shifts", "triage"}, SplitList(" empathy, night shifts,, triage "))
	assert.Empty(t, SplitList(""))
	assert.Empty(t, SplitList(" , "))

	a := Analysis{Strengths: "a,b", Weaknesses: "c"}
	assert.Equal(t, []string{"a", "b"}, a.StrengthList())
	assert.Equal(t, []string{"c"}, a.WeaknessList())
}

func TestBandOf(t *testing.T) {
	cases := []struct {
		score float64
		want  Band
	}{
		{100, BandExcellent},
		{70, BandExcellent},
		{69.9, BandGood},
		{50, BandGood},
		{49.5, BandAverage},
		{0, BandAverage},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, BandOf(tc.score), "score %v", tc.score)
	}
}
