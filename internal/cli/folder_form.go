package cli

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

func validateFolder(path string) error {
	if path == "" {
		return fmt.Errorf("enter a folder path")
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("folder does not exist")
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory")
	}
	return nil
}

// openFolderForm replaces the tracker content with a folder selection form.
// Also shown automatically on the very first launch.
func (m *trackerModel) openFolderForm() {
	m.folderValue = m.folder

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Folder for time logs").
				Description("Daily task_log files are written here.").
				Value(&m.folderValue).
				Validate(validateFolder),
		),
	).WithTheme(huh.ThemeBase16()).WithShowHelp(false)
}

func (m trackerModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.String() == "esc" {
		m.form = nil
		return m, nil
	}

	updated, cmd := m.form.Update(msg)
	if form, ok := updated.(*huh.Form); ok {
		m.form = form
	}

	if m.form.State == huh.StateCompleted {
		path := m.folderValue
		m.form = nil
		return m, saveFolderCmd(m.app, path)
	}
	if m.form.State == huh.StateAborted {
		m.form = nil
		return m, nil
	}

	return m, cmd
}

func saveFolderCmd(app *App, path string) tea.Cmd {
	return func() tea.Msg {
		err := app.Settings.SetStorageFolder(context.Background(), path)
		return folderSavedMsg{path: path, err: err}
	}
}
