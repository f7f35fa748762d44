package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
	"github.com/pathshala/vaani/speech"
)

// Greetings spoken when previewing a voice.
const (
	previewGreetingHindi   = "नमस्ते! मैं आपकी आवाज़ हूँ।"
	previewGreetingEnglish = "Hello! This is how I sound."
)

// languageLabels maps the tags we expect to see to human-readable
// labels. Anything else renders as the raw tag.
var languageLabels = map[string]string{
	"hi-IN": "🇮🇳 हिन्दी (Hindi)",
	"hi":    "हिन्दी (Hindi)",
	"en-IN": "🇮🇳 English (India)",
	"en-US": "🇺🇸 English (US)",
	"en-GB": "🇬🇧 English (UK)",
}

// VoicePicker lets the user choose a narration voice and preview it.
// Only Hindi and English voices are offered; the speech controller can
// still use anything in the engine's catalog.
type VoicePicker struct {
	controller *speech.Controller
	voices     []speech.Voice
	cursor     int
	selected   string
	previewing bool
	onChange   func(name string)
}

// previewDoneMsg is delivered when a preview utterance resolves.
type previewDoneMsg struct {
	name string
}

// NewVoicePicker builds a picker over the given catalog. onChange is
// invoked with the voice name whenever the user selects a different
// voice; it may be nil.
func NewVoicePicker(controller *speech.Controller, voices []speech.Voice, onChange func(string)) VoicePicker {
	return VoicePicker{
		controller: controller,
		voices:     orderVoices(voices),
		onChange:   onChange,
	}
}

// SetVoices replaces the catalog, e.g. after a voices-changed
// notification.
func (p VoicePicker) SetVoices(voices []speech.Voice) VoicePicker {
	p.voices = orderVoices(voices)
	if p.cursor >= len(p.voices) {
		p.cursor = 0
	}
	return p
}

// Selected returns the chosen voice name, or "" when none is chosen.
func (p VoicePicker) Selected() string {
	return p.selected
}

// Previewing reports whether a preview is playing.
func (p VoicePicker) Previewing() bool {
	return p.previewing
}

// Update handles key and preview messages.
func (p VoicePicker) Update(msg tea.Msg) (VoicePicker, tea.Cmd) {
	switch msg := msg.(type) {
	case previewDoneMsg:
		p.previewing = false
		return p, nil

	case tea.KeyMsg:
		if len(p.voices) == 0 {
			return p, nil
		}
		switch msg.String() {
		case "up", "k":
			if p.cursor > 0 {
				p.cursor--
			}
		case "down", "j":
			if p.cursor < len(p.voices)-1 {
				p.cursor++
			}
		case "enter":
			v := p.voices[p.cursor]
			if v.Name != p.selected {
				p.selected = v.Name
				if p.onChange != nil {
					p.onChange(v.Name)
				}
			}
		case "p":
			return p.togglePreview()
		}
	}
	return p, nil
}

// togglePreview starts a preview of the cursored voice, or cancels the
// one already playing.
func (p VoicePicker) togglePreview() (VoicePicker, tea.Cmd) {
	if p.previewing {
		p.controller.Stop()
		p.previewing = false
		return p, nil
	}

	v := p.voices[p.cursor]
	p.previewing = true
	return p, previewCmd(p.controller, v)
}

func previewCmd(c *speech.Controller, v speech.Voice) tea.Cmd {
	return func() tea.Msg {
		<-c.Speak(speech.Request{
			Text:  greetingFor(v.Lang),
			Voice: &v,
			Rate:  0.9,
			Pitch: 1.0,
		})
		return previewDoneMsg{name: v.Name}
	}
}

func greetingFor(lang string) string {
	if strings.HasPrefix(lang, "hi") {
		return previewGreetingHindi
	}
	return previewGreetingEnglish
}

// View renders the picker. An empty catalog renders nothing at all;
// the host layout collapses the pane.
func (p VoicePicker) View() string {
	if len(p.voices) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Narration voice"))
	b.WriteString("\n")

	for i, v := range p.voices {
		cursor := "  "
		if i == p.cursor {
			cursor = cursorStyle.Render("> ")
		}

		label := truncate.StringWithTail(voiceLabel(v), 48, "…")
		if v.Name == p.selected {
			label = selectedStyle.Render(label + " ✓")
		}

		line := cursor + label
		if i == p.cursor && p.previewing {
			line += subtleStyle.Render(" ♪")
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString(subtleStyle.Render("enter: select • p: preview"))
	return b.String()
}

// voiceLabel formats a catalog entry for display.
func voiceLabel(v speech.Voice) string {
	label, ok := languageLabels[v.Lang]
	if !ok {
		label = v.Lang
	}
	return fmt.Sprintf("%s - %s", v.Name, label)
}

// orderVoices arranges the catalog for the picker: Hindi voices first,
// then Indian English, then remaining English. Other languages are
// omitted.
func orderVoices(voices []speech.Voice) []speech.Voice {
	var hindi, indianEnglish, english []speech.Voice
	for _, v := range voices {
		switch {
		case strings.HasPrefix(v.Lang, "hi"):
			hindi = append(hindi, v)
		case v.Lang == "en-IN":
			indianEnglish = append(indianEnglish, v)
		case strings.HasPrefix(v.Lang, "en"):
			english = append(english, v)
		}
	}

	out := make([]speech.Voice, 0, len(hindi)+len(indianEnglish)+len(english))
	out = append(out, hindi...)
	out = append(out, indianEnglish...)
	out = append(out, english...)
	return out
}
