package cli

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/obeck/ticklog/internal/domain"
)

// tickMsg drives the live elapsed display once per second.
type tickMsg time.Time

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// appendResultMsg reports the outcome of persisting a finalized entry.
type appendResultMsg struct {
	entry *domain.LogEntry
	path  string
	err   error
}

// folderSavedMsg reports the outcome of a storage folder change.
type folderSavedMsg struct {
	path string
	err  error
}

// trackerModel is the single-screen tracker UI. The bubbletea update loop
// is the cooperative scheduler here: the 1s tick, key handling, and the
// async append all interleave on it.
type trackerModel struct {
	app *App

	width  int
	height int

	// Ticket source: either a pick from the configured list or, when manual
	// is set, free text. Exactly one source is active; resolved at start.
	tickets     []string
	selected    int
	manual      bool
	ticketInput textinput.Model

	commentInput textinput.Model

	folder    string
	status    string
	statusErr bool
	elapsed   time.Duration

	// Folder selection form; non-nil while open.
	form        *huh.Form
	folderValue string

	quitting bool
}

func newTrackerModel(app *App) trackerModel {
	ticketInput := textinput.New()
	ticketInput.Placeholder = "ABC-123"
	ticketInput.CharLimit = 64

	commentInput := textinput.New()
	commentInput.Placeholder = "What did you work on? (optional)"
	commentInput.CharLimit = 200

	m := trackerModel{
		app:          app,
		tickets:      app.Settings.Tickets(),
		ticketInput:  ticketInput,
		commentInput: commentInput,
	}

	if folder, err := app.Settings.StorageFolder(); err == nil {
		m.folder = folder
	}
	if len(m.tickets) == 0 {
		m.manual = true
		m.ticketInput.Focus()
	}
	if app.Settings.FirstRun() {
		m.openFolderForm()
	}

	return m
}

func (m trackerModel) Init() tea.Cmd {
	cmds := []tea.Cmd{tickCmd(), textinput.Blink}
	if m.form != nil {
		cmds = append(cmds, m.form.Init())
	}
	return tea.Batch(cmds...)
}

func (m trackerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		if elapsed, running := m.app.Tracker.Elapsed(); running {
			m.elapsed = elapsed
		}
		return m, tickCmd()

	case appendResultMsg:
		if msg.err != nil {
			// The session is already finalized; the interval is reported but
			// not restored, so a retry cannot double-count it.
			m.status = "Error: " + msg.err.Error() + " (tracked " + domain.FormatElapsed(m.elapsed) + ", not saved)"
			m.statusErr = true
		} else {
			m.status = "Saved: " + msg.entry.TimeSpent
			m.statusErr = false
		}
		m.elapsed = 0
		return m, nil

	case folderSavedMsg:
		if msg.err != nil {
			m.status = "Error: " + msg.err.Error()
			m.statusErr = true
		} else {
			m.folder = msg.path
			m.status = "Storage folder updated"
			m.statusErr = false
		}
		return m, nil

	case tea.KeyMsg:
		if m.form != nil {
			return m.updateForm(msg)
		}
		return m.handleKey(msg)
	}

	if m.form != nil {
		return m.updateForm(msg)
	}
	return m, nil
}

func (m trackerModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	running := m.app.Tracker.Running()

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case msg.String() == "q" && !running && !m.manual:
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, keys.StartStop):
		return m.startStop()

	case key.Matches(msg, keys.Manual) && !running:
		m.manual = !m.manual
		if m.manual {
			m.ticketInput.Focus()
		} else {
			m.ticketInput.Blur()
		}
		return m, nil

	case key.Matches(msg, keys.Folder):
		m.openFolderForm()
		return m, m.form.Init()

	case key.Matches(msg, keys.Up) && !running && !m.manual:
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, keys.Down) && !running && !m.manual:
		if m.selected < len(m.tickets)-1 {
			m.selected++
		}
		return m, nil
	}

	// Everything else belongs to whichever input is active.
	var cmd tea.Cmd
	if running {
		m.commentInput, cmd = m.commentInput.Update(msg)
	} else if m.manual {
		m.ticketInput, cmd = m.ticketInput.Update(msg)
	}
	return m, cmd
}

// currentTicket resolves the effective identifier from the active source.
func (m *trackerModel) currentTicket() string {
	if m.manual {
		return m.ticketInput.Value()
	}
	if len(m.tickets) == 0 {
		return ""
	}
	return m.tickets[m.selected]
}

func (m trackerModel) startStop() (tea.Model, tea.Cmd) {
	if m.app.Tracker.Running() {
		entry, err := m.app.Tracker.Stop(m.commentInput.Value())
		if err != nil {
			m.status = "Error: " + err.Error()
			m.statusErr = true
			return m, nil
		}
		m.commentInput.Reset()
		m.commentInput.Blur()
		if m.manual {
			m.ticketInput.Focus()
		}
		m.status = "Saving..."
		m.statusErr = false
		return m, appendCmd(m.app, entry)
	}

	if _, err := m.app.Tracker.Start(m.currentTicket()); err != nil {
		if errors.Is(err, domain.ErrEmptyTicket) {
			m.status = "Please select or enter a ticket"
		} else {
			m.status = "Error: " + err.Error()
		}
		m.statusErr = true
		return m, nil
	}

	m.elapsed = 0
	m.status = "Timer running..."
	m.statusErr = false
	m.ticketInput.Blur()
	m.commentInput.Reset()
	m.commentInput.Focus()
	return m, nil
}

func appendCmd(app *App, entry *domain.LogEntry) tea.Cmd {
	return func() tea.Msg {
		path, err := app.Logbook.Append(context.Background(), entry)
		return appendResultMsg{entry: entry, path: path, err: err}
	}
}
