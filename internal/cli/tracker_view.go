package cli

import (
	"strings"

	"github.com/obeck/ticklog/internal/cli/formatter"
	"github.com/obeck/ticklog/internal/domain"
)

func (m trackerModel) View() string {
	if m.quitting {
		return ""
	}

	if m.form != nil {
		return formatter.RenderBox("Storage Folder", m.form.View())
	}

	var b strings.Builder

	b.WriteString(formatter.StyleHeader.Render("ticklog"))
	b.WriteString("\n\n")

	b.WriteString("  " + formatter.StyleTimer.Render(domain.FormatElapsed(m.elapsed)))
	b.WriteString("\n\n")

	if m.app.Tracker.Running() {
		b.WriteString("Tracking " + formatter.StyleBold.Render(m.app.Tracker.Ticket()))
		b.WriteString("\n\n")
		b.WriteString("Comment: " + m.commentInput.View())
		b.WriteString("\n")
	} else {
		b.WriteString(m.viewTicketSource())
	}

	b.WriteString("\n")
	if line := formatter.StatusLine(m.status, m.statusErr); line != "" {
		b.WriteString(line)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(formatter.Dim("Logs: " + m.folder))
	b.WriteString("\n")
	b.WriteString(m.viewHelp())

	return b.String()
}

func (m trackerModel) viewTicketSource() string {
	var b strings.Builder

	if m.manual {
		b.WriteString("Ticket: " + m.ticketInput.View())
		b.WriteString("\n")
		return b.String()
	}

	if len(m.tickets) == 0 {
		b.WriteString(formatter.Dim("No tickets configured; press tab to type one."))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString("Ticket:\n")
	for i, ticket := range m.tickets {
		if i == m.selected {
			b.WriteString(formatter.StyleCursor.Render("> "+ticket) + "\n")
		} else {
			b.WriteString("  " + ticket + "\n")
		}
	}
	return b.String()
}

func (m trackerModel) viewHelp() string {
	hints := []string{
		keys.StartStop.Help().Key + " " + keys.StartStop.Help().Desc,
	}
	if !m.app.Tracker.Running() {
		hints = append(hints,
			keys.Manual.Help().Key+" "+keys.Manual.Help().Desc,
			keys.Up.Help().Key+" "+keys.Up.Help().Desc,
		)
	}
	hints = append(hints,
		keys.Folder.Help().Key+" "+keys.Folder.Help().Desc,
		keys.Quit.Help().Key+" "+keys.Quit.Help().Desc,
	)
	return formatter.Dim(strings.Join(hints, "  ·  "))
}
