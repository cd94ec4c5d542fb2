package voiceprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreBreakdown_AcceptedUsesUnroundedScore(t *testing.T) {
	b := ScoreBreakdown{Total: 0.75, raw: 0.7499999996}

	assert.True(t, Decide(b.Total, 0.75), "rounded total reaches the threshold")
	assert.False(t, b.Accepted(0.75))
	assert.True(t, b.Accepted(0.7499999996))
}

func TestBreakdown_KeepsUnroundedScore(t *testing.T) {
	a := Features{Duration: 1.5, AvgAmplitude: 56, PitchProxy: 3, TempoProxy: 7, Energy: 7000, Fingerprint: "a"}
	b := Features{Duration: 1.5, AvgAmplitude: 57, PitchProxy: 3, TempoProxy: 7, Energy: 7000, Fingerprint: "b"}

	got := Breakdown(a, b)
	assert.InDelta(t, got.raw, got.Total, 5e-10)
	assert.Equal(t, got.raw >= got.Total, got.Accepted(got.Total))
}
