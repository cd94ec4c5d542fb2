// Package voiceprint extracts comparable feature vectors from decoded voice
// samples and scores them against each other. All functions are pure.
package voiceprint

// Extraction constants. Changing any of them breaks comparability with
// templates that were enrolled before the change.
const (
	// BytesPerSecond is the linear scale used to turn a byte count into a
	// duration proxy. It is not a sample rate.
	BytesPerSecond = 1000.0

	// MinDuration keeps zero-length samples from producing a zero duration.
	MinDuration = 1.0

	// WindowHeadMax caps how many leading bytes are skipped as header.
	WindowHeadMax = 1000
	// WindowHeadDivisor skips at most a quarter of short samples.
	WindowHeadDivisor = 4
	// WindowMinSpan is the minimum analysis window length.
	WindowMinSpan = 100
	// WindowTailMargin is the number of trailing bytes ignored.
	WindowTailMargin = 1000

	// FallbackAmplitude is used when the analysis window is empty.
	FallbackAmplitude = 100.0

	pitchFactor    = 0.8
	spectralFactor = 1.2
)

// Features is the durable, comparable representation of a voice sample.
//
// AvgAmplitude is what older clients call "avgFrequency"; it is the mean
// byte magnitude over the analysis window, not a frequency.
type Features struct {
	Duration      float64 `json:"duration" bson:"duration" msgpack:"duration"`
	AvgAmplitude  float64 `json:"avgAmplitude" bson:"avg_amplitude" msgpack:"avgAmplitude"`
	PitchProxy    float64 `json:"pitchProxy" bson:"pitch_proxy" msgpack:"pitchProxy"`
	TempoProxy    float64 `json:"tempoProxy" bson:"tempo_proxy" msgpack:"tempoProxy"`
	Energy        float64 `json:"energy" bson:"energy" msgpack:"energy"`
	SpectralProxy float64 `json:"spectralProxy" bson:"spectral_proxy" msgpack:"spectralProxy"`
	Fingerprint   string  `json:"fingerprint" bson:"fingerprint" msgpack:"fingerprint"`
}

// Extract computes the feature vector of sample. It never fails: empty or
// very short input yields a low-information vector (duration 1.0, average
// amplitude 100.0) instead of an error.
func Extract(sample []byte) Features {
	n := len(sample)
	duration := max(MinDuration, float64(n)/BytesPerSecond)

	start, end := analysisWindow(n)

	var energy float64
	count := 0
	for _, b := range sample[start:end] {
		// Bytes are unsigned, so the magnitude is the value itself.
		energy += float64(b)
		count++
	}

	avg := FallbackAmplitude
	if count > 0 {
		avg = energy / float64(count)
	}

	return Features{
		Duration:      duration,
		AvgAmplitude:  avg,
		PitchProxy:    avg * pitchFactor,
		TempoProxy:    float64(count) / duration,
		Energy:        energy,
		SpectralProxy: avg * spectralFactor,
		Fingerprint:   Fingerprint(sample),
	}
}

// analysisWindow returns the [start, end) range of an n-byte sample that is
// used for amplitude statistics. It skips a header-like prefix and a
// trailing margin; the result is always a valid (possibly empty) slice range.
func analysisWindow(n int) (start, end int) {
	start = min(WindowHeadMax, n/WindowHeadDivisor)
	end = max(start+WindowMinSpan, n-WindowTailMargin)
	end = min(end, n)
	if start > end {
		start = end
	}
	return start, end
}
