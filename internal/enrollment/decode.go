package enrollment

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodeSample decodes a base64 voice sample as sent by browser capture
// widgets. Padded and unpadded standard encodings are accepted, as is a
// "data:<mime>;base64," prefix.
func DecodeSample(encoded string) ([]byte, error) {
	s := strings.TrimSpace(encoded)
	if strings.HasPrefix(s, "data:") {
		if i := strings.Index(s, ","); i >= 0 {
			s = s[i+1:]
		}
	}

	sample, err := base64.StdEncoding.DecodeString(s)
	if err == nil {
		return sample, nil
	}
	sample, rawErr := base64.RawStdEncoding.DecodeString(s)
	if rawErr == nil {
		return sample, nil
	}

	return nil, fmt.Errorf("%w: audio is not valid base64: %v", ErrInvalidInput, err)
}
