package formatter

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexanderramin/recap/internal/domain"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// KindBadge returns a colored label for an insight kind.
func KindBadge(kind domain.InsightKind) string {
	switch kind {
	case domain.InsightDaily:
		return StyleGreen.Render("daily")
	case domain.InsightWeekly:
		return StyleBlue.Render("weekly")
	case domain.InsightMonthly:
		return StylePurple.Render("monthly")
	case domain.InsightActivity:
		return StyleYellow.Render("activity")
	default:
		return StyleDim.Render(string(kind))
	}
}

// HumanDate returns a human-friendly absolute date string.
func HumanDate(t time.Time) string {
	now := time.Now()
	y1, m1, d1 := now.Date()
	y2, m2, d2 := t.Date()

	if y1 == y2 && m1 == m2 && d1 == d2 {
		return "Today"
	}
	yesterday := now.AddDate(0, 0, -1)
	y3, m3, d3 := yesterday.Date()
	if y2 == y3 && m2 == m3 && d2 == d3 {
		return "Yesterday"
	}
	return t.Format("Jan 2, 2006")
}

// HumanTimestamp returns a human-friendly relative timestamp string.
func HumanTimestamp(t time.Time) string {
	now := time.Now()
	diff := now.Sub(t)

	switch {
	case diff < 0:
		return HumanDate(t)
	case diff < time.Minute:
		return "Just now"
	case diff < time.Hour:
		return fmt.Sprintf("%dm ago", int(diff.Minutes()))
	case diff < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(diff.Hours()))
	default:
		return HumanDate(t)
	}
}

// FormatSeconds converts a duration in seconds into human-friendly form.
func FormatSeconds(sec int) string {
	if sec <= 0 {
		return "0m"
	}
	min := sec / 60
	h := min / 60
	m := min % 60
	if h > 0 && m > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	if h > 0 {
		return fmt.Sprintf("%dh", h)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatHours renders fractional hours to one decimal, e.g. "2.5h".
func FormatHours(hours float64) string {
	return fmt.Sprintf("%.1fh", hours)
}

// Truncate shortens text to at most n runes with an ellipsis.
func Truncate(text string, n int) string {
	runes := []rune(text)
	if len(runes) <= n {
		return text
	}
	if n <= 3 {
		return string(runes[:n])
	}
	return string(runes[:n-3]) + "..."
}

// RenderSummary renders an aggregated summary as a stats block.
func RenderSummary(s *domain.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s  %s\n", Bold(s.Window.Label), KindBadge(s.Window.Kind))
	fmt.Fprintf(&b, "Sessions: %s   Time: %s   Avg: %.0f min\n",
		Bold(fmt.Sprintf("%d", s.TotalSessions)),
		Bold(FormatHours(s.TotalHours)),
		s.AvgSessionMinutes)

	if len(s.Activities) > 0 {
		b.WriteString("\n")
		headers := []string{"#", "ACTIVITY", "TIME", "SHARE"}
		rows := make([][]string, 0, len(s.Activities))
		for i, a := range s.Activities {
			rows = append(rows, []string{
				fmt.Sprintf("%d", i+1),
				a.Name,
				FormatHours(a.Hours),
				fmt.Sprintf("%.0f%%", a.Percent),
			})
		}
		b.WriteString(RenderTable(headers, rows))
	}

	if s.Trend != nil {
		t := s.Trend
		b.WriteString("\n")
		fmt.Fprintf(&b, "Trend: %s sessions (%s), %s hours (%s)\n",
			signedInt(t.SessionsDelta),
			signedPct(t.SessionsPctChange),
			signedFloat(t.HoursDelta),
			signedPct(t.HoursPctChange))
	}

	return b.String()
}

func signedInt(v int) string {
	text := fmt.Sprintf("%+d", v)
	if v < 0 {
		return StyleYellow.Render(text)
	}
	return StyleGreen.Render(text)
}

func signedFloat(v float64) string {
	text := fmt.Sprintf("%+.1f", v)
	if v < 0 {
		return StyleYellow.Render(text)
	}
	return StyleGreen.Render(text)
}

func signedPct(v float64) string {
	text := fmt.Sprintf("%+.0f%%", v)
	if v < 0 {
		return StyleYellow.Render(text)
	}
	return StyleGreen.Render(text)
}
