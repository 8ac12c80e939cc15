package release

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchTitle(t *testing.T) {
	tests := []struct {
		name       string
		parsed     string
		candidates []string
		wantTitle  string
		minConf    MatchConfidence
	}{
		{
			"exact match",
			"Psych",
			[]string{"Psych", "Monk", "The Mentalist"},
			"Psych", ConfidenceHigh,
		},
		{
			"case and article differences",
			"the office",
			[]string{"The Office", "Parks and Recreation"},
			"The Office", ConfidenceHigh,
		},
		{
			"sequel numbers distinguish",
			"Tron 2",
			[]string{"Tron", "Tron 2"},
			"Tron 2", ConfidenceHigh,
		},
		{
			"accented candidate",
			"Leon The Professional",
			[]string{"Léon: The Professional"},
			"Léon: The Professional", ConfidenceHigh,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MatchTitle(tt.parsed, tt.candidates)
			assert.Equal(t, tt.wantTitle, got.Title)
			assert.GreaterOrEqual(t, got.Confidence, tt.minConf)
		})
	}
}

func TestMatchTitleNoMatch(t *testing.T) {
	got := MatchTitle("Psych", []string{"Completely Unrelated Documentary"})
	assert.Equal(t, ConfidenceNone, got.Confidence)
	assert.Empty(t, got.Title)
}

func TestMatchTitleNoCandidates(t *testing.T) {
	got := MatchTitle("Psych", nil)
	assert.Equal(t, ConfidenceNone, got.Confidence)
	assert.Empty(t, got.Title)
}

func TestMatchConfidenceString(t *testing.T) {
	assert.Equal(t, "high", ConfidenceHigh.String())
	assert.Equal(t, "medium", ConfidenceMedium.String())
	assert.Equal(t, "low", ConfidenceLow.String())
	assert.Equal(t, "none", ConfidenceNone.String())
}

func TestAdjustScoreForNumbers(t *testing.T) {
	tests := []struct {
		name      string
		score     float64
		parsed    []string
		candidate []string
		want      float64
	}{
		{"no numbers anywhere", 0.9, nil, nil, 0.9},
		{"candidate missing number", 1.0, []string{"2"}, nil, 0.85},
		{"numbers agree", 0.9, []string{"2"}, []string{"2"}, 0.9 * 1.05},
		{"bonus capped at one", 1.0, []string{"2"}, []string{"2"}, 1.0},
		{"numbers disagree", 1.0, []string{"2"}, []string{"3"}, 0.90},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := adjustScoreForNumbers(tt.score, tt.parsed, tt.candidate)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}
