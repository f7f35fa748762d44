package speech

import "errors"

// Sentinel errors for the speech subsystem. Speak never surfaces
// these to callers; they exist for logging and for engine
// implementations.
var (
	// Engine errors
	ErrEngineUnavailable = errors.New("speech engine is not available")
	ErrEngineBusy        = errors.New("speech engine already has an active utterance")
	ErrNotSpeaking       = errors.New("no active utterance")
	ErrNotSupported      = errors.New("operation not supported on this platform")

	// Request errors
	ErrEmptyText  = errors.New("no speakable text after sanitization")
	ErrNoVoices   = errors.New("no voices available")
	ErrNilRequest = errors.New("nil utterance")
)
