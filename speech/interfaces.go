package speech

// Engine is the platform speech capability consumed by the Controller.
// Implementations wrap whatever synthesizer the host system provides
// (a subprocess binary, a remote service, or a mock for tests). Only
// one utterance may be active per engine at a time; submitting a new
// one without cancelling the previous is undefined.
type Engine interface {
	// Available reports whether the engine can synthesize speech at
	// all. When false every other method may be a no-op.
	Available() bool

	// Voices returns the current voice catalog. Engines that load
	// voices asynchronously may return an empty slice at first and
	// fire the voices-changed notification later.
	Voices() []Voice

	// Speak submits an utterance and returns without waiting for it
	// to finish. Completion is reported through the utterance's
	// OnEnd/OnError callbacks, which may run on any goroutine.
	Speak(u *Utterance) error

	// Cancel discards the active utterance, if any. Idempotent.
	Cancel()

	// Pause suspends the active utterance.
	Pause() error

	// Resume continues a paused utterance.
	Resume() error

	// Speaking reports whether an utterance is currently active.
	Speaking() bool

	// OnVoicesChanged registers a callback fired when the voice
	// catalog changes after the initial query.
	OnVoicesChanged(fn func())
}

// Voice is a named, language-tagged synthetic speaker supplied by the
// engine. The application only ever reads and ranks voices.
type Voice struct {
	Name string // unique within the engine's catalog
	Lang string // BCP-47 tag, e.g. "hi-IN", "en-US"
}

// Utterance is a single synthesis request handed to an engine. It
// carries the text plus tuning, and the callbacks that drive the
// session state machine.
type Utterance struct {
	Text   string
	Lang   string // language tag fallback when no voice is bound
	Voice  *Voice // bound voice, nil when the catalog is empty
	Rate   float64
	Pitch  float64
	Volume float64

	OnStart func()
	OnEnd   func()
	OnError func(err error)
}

// Request is the application-facing speak request. Zero-valued tuning
// fields fall back to the package defaults before clamping.
type Request struct {
	Text   string
	Lang   string  // language hint, defaults to the preferred language
	Voice  *Voice  // explicit voice, overrides the selection policy
	Rate   float64 // clamped to [0.1, 10], default 0.9
	Pitch  float64 // clamped to [0, 2], default 1.0
	Volume float64 // clamped to [0, 1], default 1.0
}
