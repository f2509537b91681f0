// Package teatest provides a synchronous test driver for bubbletea models.
//
// It replaces tea.Program in tests by calling Update() directly and
// synchronously draining returned Cmds, which makes model behavior
// deterministic and goroutine-free. Timer-backed Cmds (ticks, cursor
// blinks) block on their timers; those are executed with a short timeout
// and skipped when they don't return promptly.
package teatest

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrainDepth is the safety limit for command draining.
const maxDrainDepth = 100

// cmdTimeout separates instant Cmds (message factories, file writes) from
// timer-backed ones, which block for hundreds of milliseconds or more.
const cmdTimeout = 25 * time.Millisecond

// Driver is a synchronous test harness for any tea.Model.
type Driver struct {
	T     *testing.T
	Model tea.Model

	// Quitting is set when tea.QuitMsg is seen during drain. The bubbletea
	// runtime normally intercepts it, so the driver detects it explicitly.
	Quitting bool
}

// New creates a Driver for the given model, sends an initial window size,
// and drains the model's Init command.
func New(t *testing.T, model tea.Model, width, height int) *Driver {
	t.Helper()
	d := &Driver{T: t, Model: model}
	updated, _ := d.Model.Update(tea.WindowSizeMsg{Width: width, Height: height})
	d.Model = updated
	d.drainCmd(d.Model.Init(), 0)
	return d
}

// Send dispatches a message through Update and drains all resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.T.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.Model.Update(msg)
	d.Model = updated
	d.drainCmd(cmd, 0)
}

// Type sends each rune as a key press.
func (d *Driver) Type(s string) {
	d.T.Helper()
	for _, r := range s {
		d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// PressEnter sends the enter key.
func (d *Driver) PressEnter() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyEnter})
}

// PressTab sends the tab key.
func (d *Driver) PressTab() {
	d.T.Helper()
	d.Send(tea.KeyMsg{Type: tea.KeyTab})
}

// PressKey sends a named key such as "down" or "ctrl+f".
func (d *Driver) PressKey(name string) {
	d.T.Helper()
	switch name {
	case "up":
		d.Send(tea.KeyMsg{Type: tea.KeyUp})
	case "down":
		d.Send(tea.KeyMsg{Type: tea.KeyDown})
	case "esc":
		d.Send(tea.KeyMsg{Type: tea.KeyEsc})
	case "ctrl+c":
		d.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	case "ctrl+f":
		d.Send(tea.KeyMsg{Type: tea.KeyCtrlF})
	default:
		d.T.Fatalf("teatest: unknown key %q", name)
	}
}

// View renders the current model.
func (d *Driver) View() string {
	return d.Model.View()
}

// drainCmd recursively executes a Cmd tree, feeding produced messages back
// through Update.
func (d *Driver) drainCmd(cmd tea.Cmd, depth int) {
	d.T.Helper()
	if cmd == nil || d.Quitting {
		return
	}
	if depth > maxDrainDepth {
		d.T.Fatalf("teatest: command drain exceeded depth %d", maxDrainDepth)
	}

	msg := runWithTimeout(cmd)
	if msg == nil {
		return
	}

	switch msg := msg.(type) {
	case tea.QuitMsg:
		d.Quitting = true
	case tea.BatchMsg:
		for _, c := range msg {
			d.drainCmd(c, depth+1)
		}
	default:
		updated, next := d.Model.Update(msg)
		d.Model = updated
		d.drainCmd(next, depth+1)
	}
}

// runWithTimeout executes a Cmd, returning nil if it does not finish within
// cmdTimeout (timer-backed Cmds are intentionally skipped).
func runWithTimeout(cmd tea.Cmd) tea.Msg {
	result := make(chan tea.Msg, 1)
	go func() {
		result <- cmd()
	}()
	select {
	case msg := <-result:
		return msg
	case <-time.After(cmdTimeout):
		return nil
	}
}
