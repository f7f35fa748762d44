// Package speech narrates application text through a pluggable
// synthesis engine, preferring Hindi and Indian-English voices. The
// contract is best-effort: every failure path degrades to silence and
// a log line, never an error the caller has to handle.
package speech

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var logger = log.WithPrefix("speech")

// Tuning bounds and defaults for utterances.
const (
	MinRate   = 0.1
	MaxRate   = 10.0
	MinPitch  = 0.0
	MaxPitch  = 2.0
	MinVolume = 0.0
	MaxVolume = 1.0

	DefaultRate   = 0.9
	DefaultPitch  = 1.0
	DefaultVolume = 1.0
)

// Controller owns the engine's single utterance slot. Starting a new
// speak call cancels whatever is in flight; the superseded call's
// completion signal still resolves.
type Controller struct {
	engine  Engine
	catalog *Catalog
	cfg     Config

	mu      sync.Mutex
	session *session
}

// NewController wires a controller to an engine. A nil or unavailable
// engine is fine; Speak degrades to a no-op.
func NewController(engine Engine, cfg Config) *Controller {
	return &Controller{
		engine:  engine,
		catalog: NewCatalog(engine),
		cfg:     cfg,
	}
}

// Catalog exposes the cached voice list for UI components.
func (c *Controller) Catalog() *Catalog {
	return c.catalog
}

// Speak narrates the request's text. The returned channel closes when
// the utterance ends for any reason: natural completion, engine error,
// Stop, or supersession by a later Speak. It always closes, and
// nothing is ever sent on it. Failures are logged, not returned.
func (c *Controller) Speak(req Request) <-chan struct{} {
	if c.engine == nil || !c.engine.Available() {
		logger.Debug("engine unavailable, skipping narration")
		return closedChan()
	}

	text := Sanitize(req.Text)
	if text == "" {
		logger.Debug("nothing to narrate after sanitization")
		return closedChan()
	}

	s := newSession()

	c.mu.Lock()
	if prev := c.session; prev != nil {
		// Supersession: resolve the old signal before cancelling so
		// the engine's late callbacks find a finished session.
		prev.finish()
		c.engine.Cancel()
	}
	c.session = s
	c.mu.Unlock()

	go c.start(s, text, req)
	return s.done
}

// Stop cancels any in-flight utterance and resets to not-speaking.
// Idempotent.
func (c *Controller) Stop() {
	c.mu.Lock()
	s := c.session
	c.session = nil
	c.mu.Unlock()

	if s != nil {
		s.finish()
	}
	if c.engine != nil {
		c.engine.Cancel()
	}
}

// Speaking reports whether an utterance has been handed to the engine
// and has not yet ended.
func (c *Controller) Speaking() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session != nil && c.session.speaking.Load()
}

// start runs the deferred half of Speak: it waits out the settle
// delay (cancellation needs a beat to land on some engines), builds
// the utterance, and hands it over.
func (c *Controller) start(s *session, text string, req Request) {
	settle := time.NewTimer(c.cfg.SettleDelay)
	defer settle.Stop()
	select {
	case <-settle.C:
	case <-s.done:
		// Superseded or stopped while settling.
		return
	}

	utt := c.buildUtterance(s, text, req)
	s.speaking.Store(true)

	if err := c.engine.Speak(utt); err != nil {
		logger.Warn("engine rejected utterance", "err", err)
		c.endSession(s)
		return
	}

	if c.cfg.KeepAliveInterval > 0 {
		go c.keepAlive(s)
	}
}

func (c *Controller) buildUtterance(s *session, text string, req Request) *Utterance {
	utt := &Utterance{
		Text:   text,
		Rate:   clamp(orDefault(req.Rate, c.cfg.Rate), MinRate, MaxRate),
		Pitch:  clamp(orDefault(req.Pitch, c.cfg.Pitch), MinPitch, MaxPitch),
		Volume: clamp(orDefault(req.Volume, c.cfg.Volume), MinVolume, MaxVolume),
	}

	switch {
	case req.Voice != nil:
		utt.Voice = req.Voice
		utt.Lang = req.Voice.Lang
	default:
		if v := c.catalog.Best(); v != nil {
			utt.Voice = v
			utt.Lang = v.Lang
			break
		}
		// No voices loaded at all: let the engine pick by tag.
		utt.Lang = req.Lang
		if utt.Lang == "" {
			utt.Lang = c.cfg.PreferredLang
		}
		logger.Debug("no voices available, falling back to language tag", "lang", utt.Lang)
	}

	utt.OnEnd = func() {
		c.endSession(s)
	}
	utt.OnError = func(err error) {
		logger.Warn("utterance failed", "err", err)
		c.endSession(s)
	}
	return utt
}

// keepAlive works around engines that silently stall long utterances:
// a pause/resume cycle on a fixed period nudges them along. It stops
// the moment the engine reports it is no longer speaking, and is tied
// to the session so it can never outlive it.
func (c *Controller) keepAlive(s *session) {
	ticker := time.NewTicker(c.cfg.KeepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			if !c.engine.Speaking() {
				return
			}
			if err := c.engine.Pause(); err != nil {
				logger.Debug("keep-alive pause failed", "err", err)
				continue
			}
			if err := c.engine.Resume(); err != nil {
				logger.Debug("keep-alive resume failed", "err", err)
			}
		}
	}
}

// endSession tears the session down exactly once and detaches it from
// the controller if it is still current. Superseded sessions resolve
// without touching controller state.
func (c *Controller) endSession(s *session) {
	c.mu.Lock()
	if c.session == s {
		c.session = nil
	}
	c.mu.Unlock()
	s.finish()
}

func closedChan() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func orDefault(v, fallback float64) float64 {
	if v == 0 {
		return fallback
	}
	return v
}
