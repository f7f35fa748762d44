// Package mock provides a scriptable speech engine for testing.
package mock

import (
	"sync"

	"github.com/pathshala/vaani/speech"
)

// Engine implements speech.Engine with fully scriptable behavior.
// Utterances stay active until the test finishes or fails them.
type Engine struct {
	mu        sync.Mutex
	available bool
	voices    []speech.Voice
	current   *speech.Utterance
	speaking  bool
	paused    bool
	speakErr  error

	pauses  int
	resumes int
	cancels int

	changed []func()
}

// New creates a mock engine with the given voice catalog.
func New(voices ...speech.Voice) *Engine {
	return &Engine{
		available: true,
		voices:    voices,
	}
}

// Available reports the scripted availability.
func (e *Engine) Available() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.available
}

// Voices returns the scripted voice catalog.
func (e *Engine) Voices() []speech.Voice {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]speech.Voice, len(e.voices))
	copy(out, e.voices)
	return out
}

// Speak accepts the utterance and leaves it active until FinishCurrent
// or FailCurrent is called.
func (e *Engine) Speak(u *speech.Utterance) error {
	e.mu.Lock()
	if e.speakErr != nil {
		err := e.speakErr
		e.speakErr = nil
		e.mu.Unlock()
		return err
	}
	e.current = u
	e.speaking = true
	e.paused = false
	e.mu.Unlock()

	if u.OnStart != nil {
		u.OnStart()
	}
	return nil
}

// Cancel discards the active utterance without firing its callbacks.
func (e *Engine) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancels++
	e.current = nil
	e.speaking = false
	e.paused = false
}

// Pause records the pause and suspends the active utterance.
func (e *Engine) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.speaking {
		return speech.ErrNotSpeaking
	}
	e.pauses++
	e.paused = true
	return nil
}

// Resume records the resume.
func (e *Engine) Resume() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.speaking {
		return speech.ErrNotSpeaking
	}
	e.resumes++
	e.paused = false
	return nil
}

// Speaking reports whether an utterance is active.
func (e *Engine) Speaking() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.speaking
}

// OnVoicesChanged registers a catalog-change callback.
func (e *Engine) OnVoicesChanged(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.changed = append(e.changed, fn)
}

// Test control methods

// FinishCurrent completes the active utterance naturally.
func (e *Engine) FinishCurrent() {
	e.mu.Lock()
	u := e.current
	e.current = nil
	e.speaking = false
	e.paused = false
	e.mu.Unlock()

	if u != nil && u.OnEnd != nil {
		u.OnEnd()
	}
}

// FailCurrent ends the active utterance with an engine error.
func (e *Engine) FailCurrent(err error) {
	e.mu.Lock()
	u := e.current
	e.current = nil
	e.speaking = false
	e.paused = false
	e.mu.Unlock()

	if u != nil && u.OnError != nil {
		u.OnError(err)
	}
}

// SetAvailable scripts the availability flag.
func (e *Engine) SetAvailable(ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.available = ok
}

// SetVoices replaces the catalog and fires the voices-changed
// notification, simulating asynchronous voice loading.
func (e *Engine) SetVoices(voices []speech.Voice) {
	e.mu.Lock()
	e.voices = voices
	callbacks := make([]func(), len(e.changed))
	copy(callbacks, e.changed)
	e.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// FailNextSpeak makes the next Speak call return err.
func (e *Engine) FailNextSpeak(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.speakErr = err
}

// Current returns the active utterance, or nil.
func (e *Engine) Current() *speech.Utterance {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.current
}

// PauseCount returns the number of Pause calls.
func (e *Engine) PauseCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pauses
}

// ResumeCount returns the number of Resume calls.
func (e *Engine) ResumeCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.resumes
}

// CancelCount returns the number of Cancel calls.
func (e *Engine) CancelCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cancels
}
