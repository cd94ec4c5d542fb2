package voiceprint

// DefaultThreshold is a reasonable operational cutoff. Deployments should
// tune it against their own false-accept/false-reject numbers.
const DefaultThreshold = 0.75

// Decide reports whether score clears threshold. A score equal to the
// threshold is accepted. Pass an unrounded score; ScoreBreakdown.Accepted
// does this for a computed breakdown.
func Decide(score, threshold float64) bool {
	return score >= threshold
}
