package voiceprint

import (
	"crypto/sha256"
	"encoding/hex"
)

const (
	// FingerprintStride samples every 10th byte.
	FingerprintStride = 10
	// FingerprintSpan limits sampling to the first 1000 bytes (100 samples).
	FingerprintSpan = 1000
	// FingerprintLength is the number of hex characters kept from the digest.
	FingerprintLength = 32
)

// Fingerprint returns a short, stable hash of the sparse byte sampling of
// sample. It is an equality signal only and carries no security weight.
func Fingerprint(sample []byte) string {
	span := min(len(sample), FingerprintSpan)

	picked := make([]byte, 0, FingerprintSpan/FingerprintStride)
	for i := 0; i < span; i += FingerprintStride {
		picked = append(picked, sample[i])
	}

	sum := sha256.Sum256(picked)
	return hex.EncodeToString(sum[:])[:FingerprintLength]
}
