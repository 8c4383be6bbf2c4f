package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// newHistoryTable lists the finished rounds, most recent first.
func newHistoryTable(rounds []round, best, height int) table.Model {
	columns := []table.Column{
		{Title: "Round", Width: 7},
		{Title: "Score", Width: 8},
		{Title: "Ended", Width: 10},
		{Title: "", Width: 6},
	}

	rows := make([]table.Row, 0, len(rounds))
	for i := len(rounds) - 1; i >= 0; i-- {
		r := rounds[i]
		mark := ""
		if r.score == best && best > 0 {
			mark = "best"
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.score),
			r.ended.Format("15:04:05"),
			mark,
		})
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(max(height, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// historyView renders the rounds finished this session.
func (m Model) historyView() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Rounds this session  Best: %d", m.hud.best())))
	b.WriteString("\n\n")

	if len(m.hud.rounds) == 0 {
		b.WriteString("No rounds finished yet.")
	} else {
		t := newHistoryTable(m.hud.rounds, m.hud.best(), m.screen.Height()-4)
		b.WriteString(t.View())
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab: back to the game"))
	return b.String()
}
