// Package espeak drives the espeak-ng binary as a speech engine. One
// process is spawned per utterance; pause and resume map onto process
// stop/continue signals.
package espeak

import (
	"bufio"
	"bytes"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	"github.com/pathshala/vaani/speech"
)

// espeak-ng's native baselines: 175 words per minute at rate 1.0,
// pitch 50 of 99, amplitude 100 of 200.
const (
	baseWordsPerMinute = 175
	basePitch          = 50
	baseAmplitude      = 100
)

// Engine wraps the espeak-ng command line synthesizer.
type Engine struct {
	binary string

	mu        sync.Mutex
	cmd       *exec.Cmd
	cancelled bool
	speaking  bool
	paused    bool

	voices       []speech.Voice
	voicesLoaded bool

	changed []func()
}

// New creates an espeak engine from backend configuration.
func New(cfg speech.EspeakConfig) *Engine {
	return &Engine{binary: cfg.Binary}
}

// Available reports whether the espeak binary can be found.
func (e *Engine) Available() bool {
	_, err := exec.LookPath(e.binary)
	return err == nil
}

// Voices lists the synthesizer's installed voices. The list is loaded
// once and cached; espeak's catalog is static for the process
// lifetime.
func (e *Engine) Voices() []speech.Voice {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.voicesLoaded {
		if voices, err := e.loadVoices(); err == nil {
			e.voices = voices
			e.voicesLoaded = true
		}
	}

	out := make([]speech.Voice, len(e.voices))
	copy(out, e.voices)
	return out
}

// Speak spawns an espeak process for the utterance and returns once
// it has started. Completion is reported through the utterance
// callbacks from the wait goroutine.
func (e *Engine) Speak(u *speech.Utterance) error {
	if u == nil {
		return speech.ErrNilRequest
	}

	e.mu.Lock()
	if e.cmd != nil {
		e.mu.Unlock()
		return speech.ErrEngineBusy
	}

	cmd := exec.Command(e.binary, buildArgs(u)...) //nolint:gosec
	cmd.Stdin = strings.NewReader(u.Text)
	if err := cmd.Start(); err != nil {
		e.mu.Unlock()
		return err
	}
	e.cmd = cmd
	e.cancelled = false
	e.speaking = true
	e.paused = false
	e.mu.Unlock()

	if u.OnStart != nil {
		u.OnStart()
	}

	go e.wait(cmd, u)
	return nil
}

// Cancel kills the active espeak process, if any. The cancelled
// utterance's callbacks do not fire; the caller owns its lifecycle.
func (e *Engine) Cancel() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cmd == nil {
		return
	}
	e.cancelled = true
	e.speaking = false
	e.paused = false
	_ = e.cmd.Process.Kill()
}

// Pause suspends the active process.
func (e *Engine) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cmd == nil || !e.speaking {
		return speech.ErrNotSpeaking
	}
	if e.paused {
		return nil
	}
	if err := pauseProcess(e.cmd.Process); err != nil {
		return err
	}
	e.paused = true
	return nil
}

// Resume continues a paused process.
func (e *Engine) Resume() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.cmd == nil {
		return speech.ErrNotSpeaking
	}
	if !e.paused {
		return nil
	}
	if err := resumeProcess(e.cmd.Process); err != nil {
		return err
	}
	e.paused = false
	return nil
}

// Speaking reports whether an espeak process is active.
func (e *Engine) Speaking() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.speaking
}

// OnVoicesChanged registers a catalog-change callback. espeak's
// catalog never changes after load, so the callback is kept but never
// fired.
func (e *Engine) OnVoicesChanged(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.changed = append(e.changed, fn)
}

func (e *Engine) wait(cmd *exec.Cmd, u *speech.Utterance) {
	err := cmd.Wait()

	e.mu.Lock()
	cancelled := e.cancelled
	if e.cmd == cmd {
		e.cmd = nil
		e.speaking = false
		e.paused = false
	}
	e.mu.Unlock()

	if cancelled {
		return
	}
	if err != nil {
		if u.OnError != nil {
			u.OnError(err)
		}
		return
	}
	if u.OnEnd != nil {
		u.OnEnd()
	}
}

func (e *Engine) loadVoices() ([]speech.Voice, error) {
	out, err := exec.Command(e.binary, "--voices").Output() //nolint:gosec
	if err != nil {
		return nil, err
	}
	return parseVoices(out), nil
}

// parseVoices reads `espeak-ng --voices` output. Columns are
// Pty, Language, Age/Gender, VoiceName, File, Other Languages.
func parseVoices(out []byte) []speech.Voice {
	var voices []speech.Voice

	scanner := bufio.NewScanner(bytes.NewReader(out))
	first := true
	for scanner.Scan() {
		if first {
			first = false // header row
			continue
		}
		fields := strings.Fields(scanner.Text())
		if len(fields) < 4 {
			continue
		}
		voices = append(voices, speech.Voice{
			Name: fields[3],
			Lang: canonicalTag(fields[1]),
		})
	}
	return voices
}

// canonicalTag normalizes espeak's lowercase language codes to BCP-47
// casing. espeak's region-less "hi" is its Indian Hindi voice.
func canonicalTag(tag string) string {
	if tag == "hi" {
		return "hi-IN"
	}
	parts := strings.SplitN(tag, "-", 2)
	if len(parts) == 2 {
		return strings.ToLower(parts[0]) + "-" + strings.ToUpper(parts[1])
	}
	return strings.ToLower(tag)
}

func buildArgs(u *speech.Utterance) []string {
	args := []string{
		"-s", strconv.Itoa(clampInt(int(u.Rate*baseWordsPerMinute), 80, 450)),
		"-p", strconv.Itoa(clampInt(int(u.Pitch*basePitch), 0, 99)),
		"-a", strconv.Itoa(clampInt(int(u.Volume*baseAmplitude), 0, 200)),
	}

	voice := u.Lang
	if u.Voice != nil && u.Voice.Lang != "" {
		voice = u.Voice.Lang
	}
	if voice != "" {
		voice = strings.ToLower(voice)
		if voice == "hi-in" {
			voice = "hi" // espeak's Hindi voice carries no region
		}
		args = append(args, "-v", voice)
	}
	return args
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
