package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	summaryWeakKeys   = 5
	summaryPlotHeight = 6
	summaryPlotTitle  = "Progress"
)

var (
	cardStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// RenderSummary writes the end-of-session report: metric cards, a WPM
// sparkline and the weakest keys, followed by a plot of the smoothed curves
// sized to the terminal when more than one word was finished.
func RenderSummary(w io.Writer, s Summary) error {
	if _, err := fmt.Fprintln(w, SummaryView(s, 0)); err != nil {
		return err
	}
	if len(s.Series) < 2 {
		return nil
	}
	return PlotSeries(w, summaryPlotTitle, Curves(s.Series, CurveWindow), 0, summaryPlotHeight)
}

// SummaryView renders the report. Cards are stacked when width is below 60.
func SummaryView(s Summary, width int) string {
	if !s.HasLast {
		return mutedStyle.Render("No finished words, nothing to report.")
	}
	cards := []string{
		metricCard("WPM", fmt.Sprintf("%.1f", s.Last.WPM)),
		metricCard("Raw", fmt.Sprintf("%.1f", s.Last.Raw)),
		metricCard("Accuracy", fmt.Sprintf("%.1f%%", s.Last.Accuracy*100)),
		metricCard("Words", fmt.Sprintf("%d/%d", s.CorrectWords, s.Words)),
	}
	var body string
	if width > 0 && width < 60 {
		body = lipgloss.JoinVertical(lipgloss.Left, cards...)
	} else {
		body = lipgloss.JoinHorizontal(lipgloss.Top, cards...)
	}

	parts := []string{body}
	if len(s.Series) > 1 {
		parts = append(parts, mutedStyle.Render("wpm  ")+Sparkline(WPMSeries(s.Series)))
	}
	if weak := KeyTable(WeakestKeys(s.Keys, summaryWeakKeys)); len(weak) > 0 {
		parts = append(parts, mutedStyle.Render("Weakest keys"), strings.Join(weak, "\n"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}
