package espeak

import (
	"testing"

	"github.com/pathshala/vaani/speech"
)

const voicesOutput = `Pty Language       Age/Gender VoiceName          File                 Other Languages
 5  af              --/M      Afrikaans          gmw/af
 5  en-gb           --/M      English_(Great_Britain) gmw/en
 2  en-gb-x-rp      --/M      English_(Received_Pronunciation) gmw/en-GB-x-rp
 5  en-us           --/M      English_(America)  gmw/en-US
 5  hi              --/M      Hindi              inc/hi
 5  mr              --/M      Marathi            inc/mr
`

// TestParseVoices verifies column extraction and tag normalization.
func TestParseVoices(t *testing.T) {
	voices := parseVoices([]byte(voicesOutput))
	if len(voices) != 6 {
		t.Fatalf("expected 6 voices, got %d", len(voices))
	}

	byName := make(map[string]speech.Voice)
	for _, v := range voices {
		byName[v.Name] = v
	}

	hindi, ok := byName["Hindi"]
	if !ok {
		t.Fatal("Hindi voice not parsed")
	}
	if hindi.Lang != "hi-IN" {
		t.Errorf("Hindi lang = %q, want hi-IN", hindi.Lang)
	}

	us, ok := byName["English_(America)"]
	if !ok {
		t.Fatal("American English voice not parsed")
	}
	if us.Lang != "en-US" {
		t.Errorf("en-us lang = %q, want en-US", us.Lang)
	}
}

// TestParseVoicesSkipsShortRows verifies malformed rows are dropped.
func TestParseVoicesSkipsShortRows(t *testing.T) {
	out := "Pty Language Age/Gender VoiceName File\n 5 en\n"
	if voices := parseVoices([]byte(out)); len(voices) != 0 {
		t.Errorf("expected no voices, got %v", voices)
	}
}

// TestCanonicalTag verifies BCP-47 normalization.
func TestCanonicalTag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"hi", "hi-IN"},
		{"en-gb", "en-GB"},
		{"en-us", "en-US"},
		{"EN-US", "en-US"},
		{"mr", "mr"},
	}

	for _, tt := range tests {
		if got := canonicalTag(tt.in); got != tt.want {
			t.Errorf("canonicalTag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

// TestBuildArgs verifies the tuning math against espeak's baselines.
func TestBuildArgs(t *testing.T) {
	tests := []struct {
		name string
		utt  speech.Utterance
		want []string
	}{
		{
			name: "defaults",
			utt:  speech.Utterance{Rate: 1.0, Pitch: 1.0, Volume: 1.0, Lang: "en-US"},
			want: []string{"-s", "175", "-p", "50", "-a", "100", "-v", "en-us"},
		},
		{
			name: "slowed hindi",
			utt:  speech.Utterance{Rate: 0.9, Pitch: 1.0, Volume: 1.0, Lang: "hi-IN"},
			want: []string{"-s", "157", "-p", "50", "-a", "100", "-v", "hi"},
		},
		{
			name: "rate clamps low",
			utt:  speech.Utterance{Rate: 0.1, Pitch: 1.0, Volume: 1.0},
			want: []string{"-s", "80", "-p", "50", "-a", "100"},
		},
		{
			name: "rate clamps high",
			utt:  speech.Utterance{Rate: 10, Pitch: 2.0, Volume: 1.0},
			want: []string{"-s", "450", "-p", "99", "-a", "100"},
		},
		{
			name: "voice overrides lang",
			utt: speech.Utterance{
				Rate: 1.0, Pitch: 1.0, Volume: 1.0,
				Lang:  "en-US",
				Voice: &speech.Voice{Name: "Hindi", Lang: "hi-IN"},
			},
			want: []string{"-s", "175", "-p", "50", "-a", "100", "-v", "hi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := buildArgs(&tt.utt)
			if len(got) != len(tt.want) {
				t.Fatalf("args = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("arg %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// TestEngineUnavailableBinary verifies a missing binary reports
// unavailable and yields no voices.
func TestEngineUnavailableBinary(t *testing.T) {
	e := New(speech.EspeakConfig{Binary: "definitely-not-a-real-binary"})
	if e.Available() {
		t.Error("expected unavailable")
	}
	if voices := e.Voices(); len(voices) != 0 {
		t.Errorf("expected no voices, got %v", voices)
	}
}

// TestEngineIdleStates verifies pause and resume refuse when nothing
// is active.
func TestEngineIdleStates(t *testing.T) {
	e := New(speech.EspeakConfig{Binary: "espeak-ng"})
	if e.Speaking() {
		t.Error("expected not speaking")
	}
	if err := e.Pause(); err != speech.ErrNotSpeaking {
		t.Errorf("Pause = %v, want ErrNotSpeaking", err)
	}
	if err := e.Resume(); err != speech.ErrNotSpeaking {
		t.Errorf("Resume = %v, want ErrNotSpeaking", err)
	}
	e.Cancel() // no-op when idle
}

// TestSpeakNilUtterance verifies the nil guard.
func TestSpeakNilUtterance(t *testing.T) {
	e := New(speech.EspeakConfig{Binary: "espeak-ng"})
	if err := e.Speak(nil); err != speech.ErrNilRequest {
		t.Errorf("Speak(nil) = %v, want ErrNilRequest", err)
	}
}
