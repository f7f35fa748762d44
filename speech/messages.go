package speech

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Messages for Bubble Tea communication between speech and the UI.

// DoneMsg indicates a speak call has resolved, by completion, error,
// stop, or supersession. Speech never reports failure upward, so this
// is the only terminal message.
type DoneMsg struct{}

// StoppedMsg indicates an explicit Stop was issued.
type StoppedMsg struct{}

// VoicesChangedMsg indicates the voice catalog has been refreshed.
type VoicesChangedMsg struct {
	Voices []Voice
}

// SpeakCmd narrates the request and delivers DoneMsg when the
// completion signal resolves.
func SpeakCmd(c *Controller, req Request) tea.Cmd {
	return func() tea.Msg {
		<-c.Speak(req)
		return DoneMsg{}
	}
}

// StopCmd cancels any in-flight narration.
func StopCmd(c *Controller) tea.Cmd {
	return func() tea.Msg {
		c.Stop()
		return StoppedMsg{}
	}
}

// RefreshVoicesCmd re-queries the engine's catalog and reports the
// result.
func RefreshVoicesCmd(c *Controller) tea.Cmd {
	return func() tea.Msg {
		c.Catalog().Refresh()
		return VoicesChangedMsg{Voices: c.Catalog().Voices()}
	}
}
