package voiceprint

import "math"

// Feature weights. The ratio weights sum to 0.90; the fingerprint bonus is
// added on top, so a perfect match scores 1.0.
const (
	WeightPitch        = 0.30
	WeightEnergy       = 0.20
	WeightDuration     = 0.10
	WeightAvgAmplitude = 0.20
	WeightTempo        = 0.10
	FingerprintBonus   = 0.10
)

// scorePrecision is the number of decimal places a score is rounded to.
const scorePrecision = 1e9

// ScoreBreakdown holds the per-feature similarities (each in [0, 1]) that
// make up a score, for diagnostics.
type ScoreBreakdown struct {
	Pitch            float64 `json:"pitch"`
	Energy           float64 `json:"energy"`
	Duration         float64 `json:"duration"`
	AvgAmplitude     float64 `json:"avgAmplitude"`
	Tempo            float64 `json:"tempo"`
	FingerprintMatch bool    `json:"fingerprintMatch"`
	// Total is the score rounded to 9 decimal places, for display.
	Total float64 `json:"total"`

	raw float64
}

// Accepted reports whether the unrounded score clears threshold, so rounding
// never lifts a score that is just below it.
func (b ScoreBreakdown) Accepted(threshold float64) bool {
	return Decide(b.raw, threshold)
}

// Score returns the weighted similarity of captured against stored, in
// [0, 1]. It is symmetric in its arguments.
func Score(stored, captured Features) float64 {
	return Breakdown(stored, captured).Total
}

// Breakdown computes Score and keeps the intermediate similarities.
//
// The fingerprint bonus is unconditional: two samples whose fingerprints
// collide get +0.10 regardless of how far apart their ratios are.
func Breakdown(stored, captured Features) ScoreBreakdown {
	b := ScoreBreakdown{
		Pitch:            ratioSimilarity(stored.PitchProxy, captured.PitchProxy),
		Energy:           ratioSimilarity(stored.Energy, captured.Energy),
		Duration:         ratioSimilarity(stored.Duration, captured.Duration),
		AvgAmplitude:     ratioSimilarity(stored.AvgAmplitude, captured.AvgAmplitude),
		Tempo:            ratioSimilarity(stored.TempoProxy, captured.TempoProxy),
		FingerprintMatch: stored.Fingerprint == captured.Fingerprint,
	}

	total := b.Pitch*WeightPitch +
		b.Energy*WeightEnergy +
		b.Duration*WeightDuration +
		b.AvgAmplitude*WeightAvgAmplitude +
		b.Tempo*WeightTempo
	if b.FingerprintMatch {
		total += FingerprintBonus
	}
	b.raw = total
	b.Total = math.Round(total*scorePrecision) / scorePrecision

	return b
}

// ratioSimilarity is 1 - |a-b| / max(a, b), floored at 0. When both values
// are zero the denominator is treated as 1, which yields 1.
func ratioSimilarity(a, b float64) float64 {
	denom := max(a, b)
	if a == 0 && b == 0 {
		denom = 1
	}
	return max(0, 1-math.Abs(a-b)/denom)
}
