// Package ui provides the terminal dashboard: a voice picker, the
// subscription renewal list, and a narration status line.
package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/pathshala/vaani/roster"
	"github.com/pathshala/vaani/speech"
)

type pane int

const (
	paneVoices pane = iota
	paneExpiry
)

// Config carries everything the dashboard needs to run.
type Config struct {
	Controller    *speech.Controller
	Students      []roster.Student
	ThresholdDays int
}

// NewProgram returns a new Tea program running the dashboard.
func NewProgram(cfg Config) *tea.Program {
	log.Debug("starting dashboard", "students", len(cfg.Students), "threshold_days", cfg.ThresholdDays)
	return tea.NewProgram(newModel(cfg), tea.WithAltScreen())
}

type model struct {
	cfg       Config
	picker    VoicePicker
	expiry    ExpiryList
	focus     pane
	narrating bool
	spinner   spinner.Model
	showAll   bool
	status    string
	width     int
}

func newModel(cfg Config) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = statusStyle

	m := model{
		cfg:     cfg,
		spinner: sp,
	}
	m.picker = NewVoicePicker(cfg.Controller, cfg.Controller.Catalog().Voices(), func(name string) {
		log.Debug("voice selected", "voice", name)
	})
	m.expiry = NewExpiryList(cfg.Students, cfg.ThresholdDays, nil)
	return m
}

func (m model) Init() tea.Cmd {
	return speech.RefreshVoicesCmd(m.cfg.Controller)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.cfg.Controller.Stop()
			return m, tea.Quit
		case "tab":
			if m.focus == paneVoices {
				m.focus = paneExpiry
			} else {
				m.focus = paneVoices
			}
			return m, nil
		case "esc":
			if m.showAll {
				m.showAll = false
				return m, nil
			}
		case "n":
			return m.toggleNarration()
		}

	case speech.DoneMsg:
		m.narrating = false
		m.status = ""
		return m, nil

	case speech.StoppedMsg:
		m.narrating = false
		m.status = ""
		return m, nil

	case speech.VoicesChangedMsg:
		m.picker = m.picker.SetVoices(msg.Voices)
		return m, nil

	case ViewAllMsg:
		m.showAll = true
		return m, nil

	case spinner.TickMsg:
		if !m.narrating {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	// Route remaining messages to the focused pane. The preview done
	// message always belongs to the picker.
	var cmd tea.Cmd
	if _, ok := msg.(previewDoneMsg); ok || m.focus == paneVoices {
		m.picker, cmd = m.picker.Update(msg)
	} else {
		m.expiry, cmd = m.expiry.Update(msg)
	}
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// toggleNarration reads the renewal summary aloud, or stops mid-way.
func (m model) toggleNarration() (tea.Model, tea.Cmd) {
	if m.narrating {
		m.narrating = false
		m.status = ""
		return m, speech.StopCmd(m.cfg.Controller)
	}

	var voice *speech.Voice
	if name := m.picker.Selected(); name != "" {
		for _, v := range m.cfg.Controller.Catalog().Voices() {
			if v.Name == name {
				voice = &v
				break
			}
		}
	}

	m.narrating = true
	m.status = "narrating"
	return m, tea.Batch(
		m.spinner.Tick,
		speech.SpeakCmd(m.cfg.Controller, speech.Request{
			Text:  m.expiry.NarrationText(),
			Voice: voice,
		}),
	)
}

func (m model) View() string {
	if m.showAll {
		return m.viewAll()
	}

	left := m.renderPane(m.picker.View(), m.focus == paneVoices)
	right := m.renderPane(m.expiry.View(), m.focus == paneExpiry)

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	return b.String()
}

// viewAll lists every expiring student without the row cap.
func (m model) viewAll() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("All renewals due"))
	b.WriteString("\n")

	expiring := m.expiry.Expiring()
	if len(expiring) == 0 {
		b.WriteString(emptyStyle.Render("Nothing due."))
	}
	for _, s := range expiring {
		b.WriteString(expiryRow(s))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(subtleStyle.Render("esc: back"))
	return b.String()
}

func (m model) renderPane(content string, focused bool) string {
	if content == "" {
		return ""
	}
	if focused {
		return focusedPaneStyle.Render(content)
	}
	return paneStyle.Render(content)
}

func (m model) statusLine() string {
	help := "tab: switch pane • n: narrate • q: quit"
	if m.narrating {
		return m.spinner.View() + statusStyle.Render(" narrating… press n to stop")
	}
	return subtleStyle.Render(help)
}
