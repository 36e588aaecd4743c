package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/veggie-run/internal/storage"
)

var (
	summaryTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("229"))
	summaryBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
	summaryDimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)
)

// RenderSummary builds the post-session report: one table row per run in
// play order followed by totals. tickRate converts ticks to seconds.
func RenderSummary(store *storage.Store, gameID string, tickRate int) (string, error) {
	if store == nil {
		return "", nil
	}

	runs, err := store.Runs(gameID)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(summaryTitleStyle.Render("RUN SUMMARY"))
	b.WriteString("\n")

	if len(runs) == 0 {
		b.WriteString(summaryDimStyle.Render("No runs recorded."))
		b.WriteString("\n")
		return b.String(), nil
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return "", err
	}

	t := newSummaryTable(runs, tickRate)
	b.WriteString(summaryBoxStyle.Render(t.View()))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Runs: %d  Best: %d  Avg: %.1f  Bosses: %d  Time: %s\n",
		stats.Runs, stats.BestScore, stats.AvgScore, stats.TotalBosses,
		formatTicks(int(stats.TotalTicks), tickRate)))

	// Only worth ranking once there is something to compare
	if len(runs) > 1 {
		top, err := store.TopRuns(gameID, topRunsShown)
		if err != nil {
			return "", err
		}
		b.WriteString(renderTopRuns(top, runs))
	}
	return b.String(), nil
}

// topRunsShown is how many runs the podium lists.
const topRunsShown = 3

// renderTopRuns lists the best runs, numbered the way the table numbers them.
func renderTopRuns(top, runs []storage.RunRecord) string {
	order := make(map[int64]int, len(runs))
	for i, r := range runs {
		order[r.ID] = i + 1
	}

	var b strings.Builder
	b.WriteString(summaryTitleStyle.Render("Top runs"))
	b.WriteString("\n")
	for i, r := range top {
		b.WriteString(fmt.Sprintf("  %d. run #%d  %d veggies, %d bosses\n",
			i+1, order[r.ID], r.Score, r.BossesDefeated))
	}
	return b.String()
}

// newSummaryTable lays the runs out in a non-interactive table.
func newSummaryTable(runs []storage.RunRecord, tickRate int) table.Model {
	columns := []table.Column{
		{Title: "Run", Width: 5},
		{Title: "Veggies", Width: 8},
		{Title: "Bosses", Width: 7},
		{Title: "Time", Width: 8},
		{Title: "Ended", Width: 10},
	}

	rows := make([]table.Row, len(runs))
	for i, r := range runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.BossesDefeated),
			formatTicks(r.Ticks, tickRate),
			endLabel(r.EndReason),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selectable here
	s.Selected = s.Cell
	t.SetStyles(s)

	return t
}

// formatTicks renders a tick count as m:ss at the given rate.
func formatTicks(ticks, tickRate int) string {
	if tickRate <= 0 {
		tickRate = 60
	}
	secs := ticks / tickRate
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

func endLabel(reason string) string {
	switch reason {
	case EndGameOver:
		return "energy out"
	case EndQuit:
		return "quit"
	default:
		return reason
	}
}
