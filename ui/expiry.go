package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
	"github.com/pathshala/vaani/roster"
)

// maxExpiryRows caps how many students the widget lists; the rest are
// summarized in a "+N more" line.
const maxExpiryRows = 5

const maxNameWidth = 28

// ExpiryList shows pro subscriptions ending within the configured
// threshold. It recomputes on every render so the view can never go
// stale while the program sits idle overnight.
type ExpiryList struct {
	students      []roster.Student
	thresholdDays int
	now           func() time.Time
	onViewAll     func()
}

// NewExpiryList builds the widget. thresholdDays <= 0 falls back to
// the default window. onViewAll is invoked when the user asks for the
// full list; it may be nil.
func NewExpiryList(students []roster.Student, thresholdDays int, onViewAll func()) ExpiryList {
	if thresholdDays <= 0 {
		thresholdDays = roster.DefaultThresholdDays
	}
	return ExpiryList{
		students:      students,
		thresholdDays: thresholdDays,
		now:           time.Now,
		onViewAll:     onViewAll,
	}
}

// SetStudents replaces the roster backing the widget.
func (e ExpiryList) SetStudents(students []roster.Student) ExpiryList {
	e.students = students
	return e
}

// Expiring returns the current window contents, soonest first.
func (e ExpiryList) Expiring() []roster.ExpiringStudent {
	return roster.Expiring(e.students, e.now(), e.thresholdDays)
}

// ViewAllMsg asks the host view to show the uncapped renewal list.
type ViewAllMsg struct{}

// Update handles the view-all key.
func (e ExpiryList) Update(msg tea.Msg) (ExpiryList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.String() == "a" {
		if e.onViewAll != nil {
			e.onViewAll()
		}
		return e, func() tea.Msg { return ViewAllMsg{} }
	}
	return e, nil
}

// View renders the widget.
func (e ExpiryList) View() string {
	expiring := e.Expiring()

	var b strings.Builder
	b.WriteString(titleStyle.Render("Renewals due"))
	b.WriteString("\n")

	if len(expiring) == 0 {
		b.WriteString(emptyStyle.Render(fmt.Sprintf("No subscriptions expiring in the next %d days.", e.thresholdDays)))
		return b.String()
	}

	shown := expiring
	if len(shown) > maxExpiryRows {
		shown = shown[:maxExpiryRows]
	}

	for _, s := range shown {
		b.WriteString(expiryRow(s))
		b.WriteString("\n")
	}

	if extra := len(expiring) - len(shown); extra > 0 {
		b.WriteString(subtleStyle.Render(fmt.Sprintf("+%d more, press a to view all", extra)))
		b.WriteString("\n")
	}

	sum := roster.Summarize(expiring)
	b.WriteString(statusStyle.Render(fmt.Sprintf("%d critical · %d soon", sum.Critical, sum.Soon)))
	return b.String()
}

// NarrationText is the widget's summary phrased for the speech
// controller.
func (e ExpiryList) NarrationText() string {
	expiring := e.Expiring()
	if len(expiring) == 0 {
		return fmt.Sprintf("No subscriptions are expiring in the next %d days.", e.thresholdDays)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d subscriptions are expiring soon. ", len(expiring))
	for _, s := range expiring {
		fmt.Fprintf(&b, "%s, %s. ", s.Student.Name, daysLeftText(s.DaysLeft))
	}
	return strings.TrimSpace(b.String())
}

func expiryRow(s roster.ExpiringStudent) string {
	style := bandStyle(s.Band())
	bullet := style.Render("●")
	name := truncate.StringWithTail(s.Student.Name, maxNameWidth, "…")
	return fmt.Sprintf("%s %s %s", bullet, name, style.Render(daysLeftText(s.DaysLeft)))
}

func daysLeftText(days int) string {
	if days <= 1 {
		return "expires tomorrow"
	}
	return fmt.Sprintf("%d days left", days)
}
