package timer

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/internal/timeutil"
)

var (
	clockStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#B0DB43")).
			Padding(1, 0)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#12EAEA"))

	hintStyle = lipgloss.NewStyle().
			Faint(true)
)

func (m *Model) timerView() string {
	var s strings.Builder

	if m.clock.Running() {
		s.WriteString(statusStyle.Render("[Running]"))
	} else {
		s.WriteString(statusStyle.Render("[Paused]"))
	}

	timeFormat := "03:04:05 PM"
	if m.opts.Settings.TwentyFourHour {
		timeFormat = "15:04:05"
	}

	s.WriteString(
		hintStyle.Render(
			" since " + m.clock.SessionStart().Format(timeFormat),
		),
	)

	s.WriteString("\n")
	s.WriteString(clockStyle.Render(timeutil.FormatClock(m.clock.Elapsed())))
	s.WriteString("\n")

	bindings := []key.Binding{m.keymap.pause, m.keymap.stop, m.keymap.quit}
	if !m.clock.Running() {
		bindings = []key.Binding{m.keymap.resume, m.keymap.stop, m.keymap.quit}
	}

	s.WriteString(m.help.ShortHelpView(bindings))

	return s.String()
}

func (m *Model) View() string {
	if m.form != nil {
		return m.form.View()
	}

	return m.timerView()
}
