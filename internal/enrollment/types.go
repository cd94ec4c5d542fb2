package enrollment

import (
	"fmt"
	"strings"
	"time"

	"github.com/Raikerian/go-voice-auth/pkg/voiceprint"
)

// Mode tags how a sample entered the system.
type Mode string

const (
	ModeSetup Mode = "setup"
	ModeLogin Mode = "login"
)

// ParseMode parses a client-supplied mode, case-insensitively.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeSetup:
		return ModeSetup, nil
	case ModeLogin:
		return ModeLogin, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", ErrInvalidInput, s)
	}
}

// Template is an enrolled voiceprint. It is never mutated after it is built;
// re-enrollment replaces it as a whole.
type Template struct {
	voiceprint.Features `bson:",inline" msgpack:",inline"`

	ID         string    `json:"id" bson:"template_id" msgpack:"id"`
	UserID     string    `json:"userId" bson:"user_id" msgpack:"userId"`
	Transcript string    `json:"transcript" bson:"transcript" msgpack:"transcript"`
	Mode       Mode      `json:"mode" bson:"mode" msgpack:"mode"`
	CreatedAt  time.Time `json:"createdAt" bson:"created_at" msgpack:"createdAt"`
}

// VerificationResult is the outcome of one verification attempt. It is not
// persisted. Verify leaves CapturedTranscript empty; callers fill it from
// Service.Transcribe once the verdict is known.
type VerificationResult struct {
	UserID             string                    `json:"userId"`
	Score              float64                   `json:"score"`
	Accepted           bool                      `json:"accepted"`
	Threshold          float64                   `json:"threshold"`
	CapturedTranscript string                    `json:"capturedTranscript,omitempty"`
	Breakdown          voiceprint.ScoreBreakdown `json:"breakdown"`
}

// State returns the terminal capture state this result drives.
func (r *VerificationResult) State() CaptureState {
	if r.Accepted {
		return StateAccepted
	}
	return StateRejected
}

// CaptureState is the state of a client capture session:
// idle -> recording -> processing -> accepted | rejected | error.
type CaptureState string

const (
	StateIdle       CaptureState = "idle"
	StateRecording  CaptureState = "recording"
	StateProcessing CaptureState = "processing"
	StateAccepted   CaptureState = "accepted"
	StateRejected   CaptureState = "rejected"
	StateError      CaptureState = "error"
)

var captureTransitions = map[CaptureState][]CaptureState{
	StateIdle:       {StateRecording},
	StateRecording:  {StateProcessing, StateError},
	StateProcessing: {StateAccepted, StateRejected, StateError},
	StateAccepted:   {StateIdle},
	StateRejected:   {StateIdle},
	StateError:      {StateIdle},
}

// CanTransition reports whether a capture session may move from s to next.
// Terminal states may only return to idle for a retry.
func (s CaptureState) CanTransition(next CaptureState) bool {
	for _, allowed := range captureTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether s ends a capture session.
func (s CaptureState) Terminal() bool {
	return s == StateAccepted || s == StateRejected || s == StateError
}

// StateForError maps a failed operation to the error state. A nil error
// leaves the session idle.
func StateForError(err error) CaptureState {
	if err == nil {
		return StateIdle
	}
	return StateError
}
