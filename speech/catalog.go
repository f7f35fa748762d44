package speech

import (
	"strings"
	"sync"
)

// Catalog caches the engine's voice list and keeps it current through
// the engine's voices-changed notification. Voices may load after the
// initial query, so an empty catalog is a valid transient state.
type Catalog struct {
	mu     sync.RWMutex
	engine Engine
	voices []Voice
}

// NewCatalog builds a catalog for the given engine and subscribes to
// its voices-changed notification. A nil engine yields an always-empty
// catalog.
func NewCatalog(engine Engine) *Catalog {
	c := &Catalog{engine: engine}
	if engine != nil {
		engine.OnVoicesChanged(c.Refresh)
		c.Refresh()
	}
	return c
}

// Refresh re-queries the engine's voice list.
func (c *Catalog) Refresh() {
	if c.engine == nil {
		return
	}
	voices := c.engine.Voices()
	c.mu.Lock()
	c.voices = voices
	c.mu.Unlock()
}

// Voices returns a copy of the cached voice list.
func (c *Catalog) Voices() []Voice {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Voice, len(c.voices))
	copy(out, c.voices)
	return out
}

// Best returns the preferred voice from the cached catalog, or nil
// when no voices have loaded yet.
func (c *Catalog) Best() *Voice {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return BestVoice(c.voices)
}

// BestVoice picks a voice by language preference: Hindi first, then
// Indian English, then any English, then whatever is available. Nil
// when the catalog is empty; callers fall back to a bare language tag.
func BestVoice(voices []Voice) *Voice {
	for i := range voices {
		if voices[i].Lang == "hi-IN" {
			return &voices[i]
		}
	}
	for i := range voices {
		if voices[i].Lang == "en-IN" {
			return &voices[i]
		}
	}
	for i := range voices {
		if strings.HasPrefix(voices[i].Lang, "en") {
			return &voices[i]
		}
	}
	if len(voices) > 0 {
		return &voices[0]
	}
	return nil
}
