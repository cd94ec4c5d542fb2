package enrollment_test

import (
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Raikerian/go-voice-auth/internal/enrollment"
)

func TestParseMode(t *testing.T) {
	tests := map[string]struct {
		in      string
		want    enrollment.Mode
		wantErr bool
	}{
		"setup":      {in: "setup", want: enrollment.ModeSetup},
		"login":      {in: "login", want: enrollment.ModeLogin},
		"mixed case": {in: " LOGIN ", want: enrollment.ModeLogin},
		"empty":      {in: "", wantErr: true},
		"unknown":    {in: "signup", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := enrollment.ParseMode(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, enrollment.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeSample(t *testing.T) {
	raw := []byte{0, 1, 2, 250, 251, 252, 253}

	tests := map[string]struct {
		in      string
		want    []byte
		wantErr bool
	}{
		"padded":      {in: base64.StdEncoding.EncodeToString(raw), want: raw},
		"unpadded":    {in: base64.RawStdEncoding.EncodeToString(raw), want: raw},
		"data url":    {in: "data:audio/webm;base64," + base64.StdEncoding.EncodeToString(raw), want: raw},
		"whitespace":  {in: "  " + base64.StdEncoding.EncodeToString(raw) + "\n", want: raw},
		"empty":       {in: "", want: []byte{}},
		"not base64":  {in: "!!not-audio!!", wantErr: true},
		"url charset": {in: "-_-_", wantErr: true},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := enrollment.DecodeSample(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, enrollment.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCaptureState(t *testing.T) {
	assert.True(t, enrollment.StateIdle.CanTransition(enrollment.StateRecording))
	assert.True(t, enrollment.StateRecording.CanTransition(enrollment.StateProcessing))
	assert.True(t, enrollment.StateProcessing.CanTransition(enrollment.StateAccepted))
	assert.True(t, enrollment.StateProcessing.CanTransition(enrollment.StateRejected))
	assert.True(t, enrollment.StateProcessing.CanTransition(enrollment.StateError))
	assert.True(t, enrollment.StateRejected.CanTransition(enrollment.StateIdle))

	assert.False(t, enrollment.StateIdle.CanTransition(enrollment.StateAccepted))
	assert.False(t, enrollment.StateRecording.CanTransition(enrollment.StateAccepted))
	assert.False(t, enrollment.StateAccepted.CanTransition(enrollment.StateRejected))

	for _, s := range []enrollment.CaptureState{enrollment.StateAccepted, enrollment.StateRejected, enrollment.StateError} {
		assert.True(t, s.Terminal(), s)
	}
	for _, s := range []enrollment.CaptureState{enrollment.StateIdle, enrollment.StateRecording, enrollment.StateProcessing} {
		assert.False(t, s.Terminal(), s)
	}

	assert.Equal(t, enrollment.StateIdle, enrollment.StateForError(nil))
	assert.Equal(t, enrollment.StateError, enrollment.StateForError(errors.New("boom")))
}

func TestNormalizeUserID(t *testing.T) {
	got, err := enrollment.NormalizeUserID("  user-1\t")
	require.NoError(t, err)
	assert.Equal(t, "user-1", got)

	_, err = enrollment.NormalizeUserID(" \n ")
	assert.ErrorIs(t, err, enrollment.ErrInvalidUserID)
}
