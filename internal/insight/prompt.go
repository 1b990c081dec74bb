package insight

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/recap/internal/domain"
)

// denseDescriptionThreshold gates whether session notes are excerpted
// into the prompt.
const denseDescriptionThreshold = 0.3

// promptExcerptCap bounds how many session notes the prompt quotes.
const promptExcerptCap = 3

const (
	dailyInstructions = "Write 2-3 sentences covering: (1) the day's main pattern or achievement, " +
		"(2) one actionable suggestion for tomorrow. Keep the tone encouraging and specific."

	weeklyInstructions = "Write 3-4 sentences covering: (1) the week's dominant pattern, " +
		"(2) how the week compares to the prior one, " +
		"(3) one actionable suggestion for next week. Keep the tone encouraging and specific."

	monthlyInstructions = "Write 4-5 sentences covering: (1) the month's big-picture trajectory, " +
		"(2) the most significant habit or shift, (3) what is working well, " +
		"(4) one actionable suggestion for next month. Keep the tone encouraging and specific."

	activityInstructions = "Write 2-3 sentences covering: (1) the standout pattern for this activity, " +
		"(2) one actionable suggestion to improve it. Keep the tone encouraging and specific."
)

// BuildPrompt renders the generation prompt for one summary and kind.
// Pure string construction: a nil or zeroed summary renders the
// encouragement prompt rather than failing.
func BuildPrompt(kind domain.InsightKind, summary *domain.Summary) string {
	if summary == nil {
		summary = &domain.Summary{}
	}
	if summary.TotalSessions == 0 {
		return encouragementPrompt(kind, summary.Window.Activity)
	}

	var b strings.Builder
	b.WriteString("You write short insights for a focus-tracking app.\n\n")
	fmt.Fprintf(&b, "Period: %s\n", periodLabel(kind, summary))
	fmt.Fprintf(&b, "Sessions: %d\n", summary.TotalSessions)
	fmt.Fprintf(&b, "Total time: %.1fh\n", summary.TotalHours)
	fmt.Fprintf(&b, "Average session: %.0f min\n", summary.AvgSessionMinutes)

	b.WriteString("\nTop activities:\n")
	for i, a := range summary.TopActivities(3) {
		fmt.Fprintf(&b, "%d. %s: %.1fh (%.0f%%)\n", i+1, a.Name, a.Hours, a.Percent)
	}

	if kind == domain.InsightWeekly && summary.Trend != nil {
		t := summary.Trend
		b.WriteString("\nVersus prior week:\n")
		fmt.Fprintf(&b, "Sessions: %+d (%+.0f%%)\n", t.SessionsDelta, t.SessionsPctChange)
		fmt.Fprintf(&b, "Hours: %+.1f (%+.0f%%)\n", t.HoursDelta, t.HoursPctChange)
	}

	if summary.DescriptionDensity > denseDescriptionThreshold && len(summary.SampleDescriptions) > 0 {
		b.WriteString("\nRecent session notes:\n")
		for i, d := range summary.SampleDescriptions {
			if i == promptExcerptCap {
				break
			}
			fmt.Fprintf(&b, "- %s\n", d)
		}
	}

	b.WriteString("\n")
	b.WriteString(instructionsFor(kind))
	return b.String()
}

func instructionsFor(kind domain.InsightKind) string {
	switch kind {
	case domain.InsightWeekly:
		return weeklyInstructions
	case domain.InsightMonthly:
		return monthlyInstructions
	case domain.InsightActivity:
		return activityInstructions
	default:
		return dailyInstructions
	}
}

func periodLabel(kind domain.InsightKind, summary *domain.Summary) string {
	if summary.Window.Label != "" {
		return summary.Window.Label
	}
	return string(kind)
}

// encouragementPrompt is the fixed zero-session prompt. It never
// references statistics.
func encouragementPrompt(kind domain.InsightKind, activity string) string {
	var subject string
	switch kind {
	case domain.InsightWeekly:
		subject = "this week"
	case domain.InsightMonthly:
		subject = "this month"
	case domain.InsightActivity:
		subject = "for this activity recently"
		if activity != "" {
			subject = fmt.Sprintf("for %s recently", activity)
		}
	default:
		subject = "today"
	}
	return fmt.Sprintf(
		"The user logged no focus sessions %s. "+
			"Write one or two warm, encouraging sentences inviting them to start a small session. "+
			"Do not mention statistics or numbers.", subject)
}
