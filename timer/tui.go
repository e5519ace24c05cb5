package timer

import (
	"log/slog"
	"os/exec"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/gen2brain/beeep"
	"github.com/kballard/go-shellquote"

	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/internal/config"
	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/internal/session"
	"github.com/FelixvanDijk/WORK-HOURS-TRACKER/store"
)

// tickInterval is the cadence of the live display refresh.
const tickInterval = 200 * time.Millisecond

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type keymap struct {
	pause  key.Binding
	resume key.Binding
	stop   key.Binding
	quit   key.Binding
}

var defaultKeymap = keymap{
	pause: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "pause"),
	),
	resume: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "resume"),
	),
	stop: key.NewBinding(
		key.WithKeys("s", "enter"),
		key.WithHelp("s", "stop & save"),
	),
	quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit without saving"),
	),
}

// Model drives the interactive timer display.
type Model struct {
	clock   *SessionTimer
	db      store.Records
	opts    *config.Config
	help    help.Model
	keymap  keymap
	form    *huh.Form
	comment string
	fin     FinalizedSession
	saved   bool
	err     error
}

// NewModel creates the timer display model. The underlying session is
// started before the program runs so that a freshly opened display is
// already accumulating time.
func NewModel(db store.Records, opts *config.Config) (*Model, error) {
	clock := New()

	err := clock.Start()
	if err != nil {
		return nil, err
	}

	return &Model{
		clock:  clock,
		db:     db,
		opts:   opts,
		help:   help.New(),
		keymap: defaultKeymap,
	}, nil
}

func (m *Model) Init() tea.Cmd {
	return tick()
}

// stopSession finalizes the running session and opens the comment
// form.
func (m *Model) stopSession() (tea.Model, tea.Cmd) {
	fin, err := m.clock.Stop()
	if err != nil {
		m.err = err
		return m, tea.Quit
	}

	m.fin = fin

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Add a comment for this session (optional)").
				Value(&m.comment),
		),
	)

	return m, m.form.Init()
}

// saveSession persists the finalized session as a record.
func (m *Model) saveSession() error {
	rec := session.New(m.fin.StartTime, m.fin.EndTime, m.fin.Elapsed, m.comment)

	err := m.db.Append(rec)
	if err != nil {
		return err
	}

	m.saved = true

	m.notify()

	return m.runSessionCmd(m.opts.Settings.Cmd)
}

// notify sends a desktop notification after a session is recorded. A
// failed notification is logged rather than surfaced because the
// record has already been saved.
func (m *Model) notify() {
	if !m.opts.Notifications.Enabled {
		return
	}

	err := beeep.Notify(
		"Session recorded",
		"Your work session has been saved.",
		"",
	)
	if err != nil {
		slog.Error("unable to display notification", slog.Any("error", err))
	}
}

// runSessionCmd executes the configured post-session command.
func (m *Model) runSessionCmd(sessionCmd string) error {
	if sessionCmd == "" {
		return nil
	}

	cmdSlice, err := shellquote.Split(sessionCmd)
	if err != nil {
		return err
	}

	if len(cmdSlice) == 0 {
		return nil
	}

	name := cmdSlice[0]
	args := cmdSlice[1:]

	return exec.Command(name, args...).Run()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// once the comment form is open, it owns all input
	if m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State == huh.StateCompleted {
			m.err = m.saveSession()
			return m, tea.Quit
		}

		return m, cmd
	}

	switch msg := msg.(type) {
	case tickMsg:
		return m, tick()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keymap.pause):
			// pausing an already paused timer is a no-op for the display
			_ = m.clock.Pause()
		case key.Matches(msg, m.keymap.resume):
			_ = m.clock.Resume()
		case key.Matches(msg, m.keymap.stop):
			return m.stopSession()
		case key.Matches(msg, m.keymap.quit):
			return m, tea.Quit
		}
	}

	return m, nil
}

// Saved reports whether a record was persisted before the program
// exited.
func (m *Model) Saved() bool {
	return m.saved
}

// Err returns the error that terminated the display, if any.
func (m *Model) Err() error {
	return m.err
}
