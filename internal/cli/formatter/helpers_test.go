package formatter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/recap/internal/domain"
)

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "0m", FormatSeconds(0))
	assert.Equal(t, "45m", FormatSeconds(45*60))
	assert.Equal(t, "1h", FormatSeconds(3600))
	assert.Equal(t, "1h 30m", FormatSeconds(5400))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "2.5h", FormatHours(2.5))
	assert.Equal(t, "0.0h", FormatHours(0))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "exactly", Truncate("exactly", 7))
	assert.Equal(t, "a long d...", Truncate("a long description here", 11))
}

func TestHumanDate(t *testing.T) {
	assert.Equal(t, "Today", HumanDate(time.Now()))
	assert.Equal(t, "Yesterday", HumanDate(time.Now().AddDate(0, 0, -1)))
	assert.Equal(t, "Mar 10, 2020", HumanDate(time.Date(2020, 3, 10, 12, 0, 0, 0, time.Local)))
}

func TestRenderSummary_IncludesRankingAndTrend(t *testing.T) {
	s := &domain.Summary{
		Window:            domain.Window{Kind: domain.InsightWeekly, Label: "Week of Mar 9"},
		TotalSessions:     4,
		TotalHours:        3.5,
		AvgSessionMinutes: 52,
		Activities: []domain.ActivityStat{
			{Name: "coding", Seconds: 9000, Hours: 2.5, Percent: 71},
			{Name: "reading", Seconds: 3600, Hours: 1.0, Percent: 29},
		},
		Trend: &domain.Trend{SessionsDelta: 1, SessionsPctChange: 33, HoursDelta: 0.5, HoursPctChange: 17},
	}

	out := RenderSummary(s)
	assert.Contains(t, out, "Week of Mar 9")
	assert.Contains(t, out, "coding")
	assert.Contains(t, out, "2.5h")
	assert.Contains(t, out, "Trend:")
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable([]string{"A", "B"}, [][]string{{"one", "two"}, {"x", "y"}})
	assert.Contains(t, out, "one")
	assert.Contains(t, out, "y")
}
