package main

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raikerian/go-voice-auth/pkg/voiceprint"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func ramp(n int) []byte {
	sample := make([]byte, n)
	for i := range sample {
		sample[i] = byte((i%10 + 1) * 10)
	}
	return sample
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestExtract(t *testing.T) {
	path := writeFile(t, "ramp.raw", ramp(1500))

	out, err := run(t, "extract", path)
	require.NoError(t, err)

	var f voiceprint.Features
	require.NoError(t, json.Unmarshal([]byte(out), &f))
	assert.Equal(t, voiceprint.Extract(ramp(1500)), f)
	assert.Contains(t, out, "\n  \"duration\"")
}

func TestFingerprint_Base64(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(ramp(1500)) + "\n"
	path := writeFile(t, "ramp.b64", []byte(encoded))

	out, err := run(t, "--base64", "fingerprint", path)
	require.NoError(t, err)

	var got map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, voiceprint.Fingerprint(ramp(1500)), got["fingerprint"])
}

func TestCompare(t *testing.T) {
	stored := writeFile(t, "stored.raw", ramp(1500))
	silent := writeFile(t, "silent.raw", make([]byte, 1500))

	t.Run("identical", func(t *testing.T) {
		out, err := run(t, "compare", stored, stored)
		require.NoError(t, err)

		var res compareResult
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.Equal(t, 1.0, res.Score)
		assert.True(t, res.Accepted)
		assert.Equal(t, voiceprint.DefaultThreshold, res.Threshold)
	})

	t.Run("different", func(t *testing.T) {
		out, err := run(t, "compare", stored, silent)
		require.NoError(t, err)

		var res compareResult
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.InDelta(t, 0.2, res.Score, 1e-9)
		assert.False(t, res.Accepted)
	})

	t.Run("custom threshold", func(t *testing.T) {
		out, err := run(t, "compare", "--threshold", "0.1", stored, silent)
		require.NoError(t, err)

		var res compareResult
		require.NoError(t, json.Unmarshal([]byte(out), &res))
		assert.True(t, res.Accepted)
	})

	t.Run("threshold out of range", func(t *testing.T) {
		_, err := run(t, "compare", "--threshold", "1.5", stored, silent)
		require.Error(t, err)
	})
}

func TestErrors(t *testing.T) {
	garbage := writeFile(t, "garbage.b64", []byte("%%% not base64 %%%"))

	t.Run("undecodable base64", func(t *testing.T) {
		_, err := run(t, "--base64", "extract", garbage)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid input")
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := run(t, "extract", filepath.Join(t.TempDir(), "missing.raw"))
		require.Error(t, err)
	})

	t.Run("wrong arity", func(t *testing.T) {
		_, err := run(t, "compare", garbage)
		require.Error(t, err)
	})
}
