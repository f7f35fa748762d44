package mock_test

import (
	"errors"
	"testing"

	"github.com/pathshala/vaani/speech"
	"github.com/pathshala/vaani/speech/engines/mock"
)

// TestSpeakLifecycle verifies callbacks fire at the right moments.
func TestSpeakLifecycle(t *testing.T) {
	e := mock.New()

	var started, ended bool
	u := &speech.Utterance{
		Text:    "hello",
		OnStart: func() { started = true },
		OnEnd:   func() { ended = true },
	}

	if err := e.Speak(u); err != nil {
		t.Fatalf("Speak failed: %v", err)
	}
	if !started {
		t.Error("OnStart did not fire")
	}
	if !e.Speaking() {
		t.Error("expected Speaking() true")
	}

	e.FinishCurrent()
	if !ended {
		t.Error("OnEnd did not fire")
	}
	if e.Speaking() {
		t.Error("expected Speaking() false after finish")
	}
}

// TestCancelSuppressesCallbacks verifies Cancel discards the utterance
// silently.
func TestCancelSuppressesCallbacks(t *testing.T) {
	e := mock.New()

	var ended bool
	u := &speech.Utterance{Text: "hello", OnEnd: func() { ended = true }}
	if err := e.Speak(u); err != nil {
		t.Fatalf("Speak failed: %v", err)
	}

	e.Cancel()
	if ended {
		t.Error("OnEnd fired after Cancel")
	}
	if e.CancelCount() != 1 {
		t.Errorf("cancel count = %d, want 1", e.CancelCount())
	}
	if e.Current() != nil {
		t.Error("expected no current utterance after Cancel")
	}
}

// TestFailCurrent verifies error delivery.
func TestFailCurrent(t *testing.T) {
	e := mock.New()

	var got error
	u := &speech.Utterance{Text: "hello", OnError: func(err error) { got = err }}
	if err := e.Speak(u); err != nil {
		t.Fatalf("Speak failed: %v", err)
	}

	want := errors.New("synthesis broke")
	e.FailCurrent(want)
	if got != want {
		t.Errorf("OnError got %v, want %v", got, want)
	}
	if e.Speaking() {
		t.Error("expected Speaking() false after failure")
	}
}

// TestFailNextSpeak verifies the scripted rejection applies once.
func TestFailNextSpeak(t *testing.T) {
	e := mock.New()
	want := errors.New("busy")
	e.FailNextSpeak(want)

	if err := e.Speak(&speech.Utterance{Text: "a"}); err != want {
		t.Errorf("Speak = %v, want %v", err, want)
	}
	if err := e.Speak(&speech.Utterance{Text: "b"}); err != nil {
		t.Errorf("second Speak = %v, want nil", err)
	}
}

// TestPauseResumeGuards verifies idle pause and resume are rejected
// and active ones counted.
func TestPauseResumeGuards(t *testing.T) {
	e := mock.New()

	if err := e.Pause(); err != speech.ErrNotSpeaking {
		t.Errorf("idle Pause = %v, want ErrNotSpeaking", err)
	}
	if err := e.Resume(); err != speech.ErrNotSpeaking {
		t.Errorf("idle Resume = %v, want ErrNotSpeaking", err)
	}

	if err := e.Speak(&speech.Utterance{Text: "hello"}); err != nil {
		t.Fatalf("Speak failed: %v", err)
	}
	if err := e.Pause(); err != nil {
		t.Errorf("Pause failed: %v", err)
	}
	if err := e.Resume(); err != nil {
		t.Errorf("Resume failed: %v", err)
	}
	if e.PauseCount() != 1 || e.ResumeCount() != 1 {
		t.Errorf("counts = %d/%d, want 1/1", e.PauseCount(), e.ResumeCount())
	}
}

// TestSetVoicesNotifies verifies registered callbacks fire on catalog
// change.
func TestSetVoicesNotifies(t *testing.T) {
	e := mock.New(speech.Voice{Name: "A", Lang: "en-US"})

	var notified int
	e.OnVoicesChanged(func() { notified++ })

	e.SetVoices([]speech.Voice{{Name: "B", Lang: "hi-IN"}})
	if notified != 1 {
		t.Errorf("notified = %d, want 1", notified)
	}

	voices := e.Voices()
	if len(voices) != 1 || voices[0].Name != "B" {
		t.Errorf("voices = %v, want [B]", voices)
	}
}
