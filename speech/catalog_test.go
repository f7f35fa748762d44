package speech_test

import (
	"testing"

	"github.com/pathshala/vaani/speech"
	"github.com/pathshala/vaani/speech/engines/mock"
)

// TestBestVoicePriority verifies the language preference order.
func TestBestVoicePriority(t *testing.T) {
	tests := []struct {
		name   string
		voices []speech.Voice
		want   string // voice name, "" for nil
	}{
		{
			name: "hindi wins over everything",
			voices: []speech.Voice{
				{Name: "Samantha", Lang: "en-US"},
				{Name: "Rishi", Lang: "en-IN"},
				{Name: "Lekha", Lang: "hi-IN"},
			},
			want: "Lekha",
		},
		{
			name: "indian english beats other english",
			voices: []speech.Voice{
				{Name: "Samantha", Lang: "en-US"},
				{Name: "Rishi", Lang: "en-IN"},
			},
			want: "Rishi",
		},
		{
			name: "first english when no indian voices",
			voices: []speech.Voice{
				{Name: "Samantha", Lang: "en-US"},
				{Name: "Daniel", Lang: "en-GB"},
			},
			want: "Samantha",
		},
		{
			name: "any voice beats none",
			voices: []speech.Voice{
				{Name: "Amelie", Lang: "fr-FR"},
			},
			want: "Amelie",
		},
		{
			name:   "empty catalog",
			voices: nil,
			want:   "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := speech.BestVoice(tt.voices)
			if tt.want == "" {
				if got != nil {
					t.Errorf("BestVoice = %v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatalf("BestVoice = nil, want %s", tt.want)
			}
			if got.Name != tt.want {
				t.Errorf("BestVoice = %s, want %s", got.Name, tt.want)
			}
		})
	}
}

// TestCatalogRefreshOnVoicesChanged verifies the catalog follows the
// engine's asynchronous voice loading.
func TestCatalogRefreshOnVoicesChanged(t *testing.T) {
	engine := mock.New()
	catalog := speech.NewCatalog(engine)

	if got := len(catalog.Voices()); got != 0 {
		t.Fatalf("expected empty catalog, got %d voices", got)
	}
	if catalog.Best() != nil {
		t.Error("expected nil best voice for empty catalog")
	}

	engine.SetVoices([]speech.Voice{{Name: "Lekha", Lang: "hi-IN"}})

	voices := catalog.Voices()
	if len(voices) != 1 || voices[0].Name != "Lekha" {
		t.Errorf("catalog did not pick up voices-changed, got %v", voices)
	}
	best := catalog.Best()
	if best == nil || best.Name != "Lekha" {
		t.Errorf("Best = %v, want Lekha", best)
	}
}

// TestCatalogNilEngine verifies a nil engine yields an empty catalog.
func TestCatalogNilEngine(t *testing.T) {
	catalog := speech.NewCatalog(nil)
	if got := len(catalog.Voices()); got != 0 {
		t.Errorf("expected empty catalog, got %d voices", got)
	}
	catalog.Refresh()
	if catalog.Best() != nil {
		t.Error("expected nil best voice")
	}
}
