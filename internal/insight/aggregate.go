package insight

import (
	"sort"

	"github.com/alexanderramin/recap/internal/domain"
)

// sampleDescriptionCap bounds how many free-text descriptions a summary
// carries into the prompt.
const sampleDescriptionCap = 5

// Aggregate derives the summary for a window from raw session records.
// Records starting outside the half-open window are ignored, and
// malformed records whose end time precedes their start time are dropped
// rather than failing the whole aggregation. Pure: identical inputs
// yield identical summaries.
func Aggregate(records []domain.SessionRecord, window domain.Window, prior *domain.Summary) domain.Summary {
	summary := domain.Summary{Window: window}

	var matched []domain.SessionRecord
	for _, r := range records {
		if r.EndTime.Before(r.StartTime) {
			continue
		}
		if !window.Contains(r.StartTime) {
			continue
		}
		matched = append(matched, r)
	}

	if len(matched) > 0 {
		var totalSeconds int
		byActivity := make(map[string]int)
		withDescription := 0
		for _, r := range matched {
			totalSeconds += r.Duration
			byActivity[r.ActivityType] += r.Duration
			if r.HasDescription() {
				withDescription++
			}
		}

		summary.TotalSessions = len(matched)
		summary.TotalHours = float64(totalSeconds) / 3600
		summary.AvgSessionMinutes = float64(totalSeconds) / 60 / float64(len(matched))
		summary.Activities = rankActivities(byActivity, totalSeconds)
		summary.DescriptionDensity = clamp01(float64(withDescription) / float64(len(matched)))
		summary.SampleDescriptions = sampleDescriptions(matched)
	}

	if prior != nil {
		summary.Trend = computeTrend(&summary, prior)
	}
	return summary
}

func rankActivities(byActivity map[string]int, totalSeconds int) []domain.ActivityStat {
	stats := make([]domain.ActivityStat, 0, len(byActivity))
	for name, seconds := range byActivity {
		stats = append(stats, domain.ActivityStat{
			Name:    name,
			Seconds: seconds,
			Hours:   float64(seconds) / 3600,
			Percent: float64(seconds) / float64(totalSeconds) * 100,
		})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Seconds != stats[j].Seconds {
			return stats[i].Seconds > stats[j].Seconds
		}
		return stats[i].Name < stats[j].Name
	})
	return stats
}

// sampleDescriptions collects up to sampleDescriptionCap descriptions,
// most recent session first.
func sampleDescriptions(matched []domain.SessionRecord) []string {
	described := make([]domain.SessionRecord, 0, len(matched))
	for _, r := range matched {
		if r.HasDescription() {
			described = append(described, r)
		}
	}
	sort.Slice(described, func(i, j int) bool {
		return described[i].StartTime.After(described[j].StartTime)
	})

	var out []string
	for _, r := range described {
		if len(out) == sampleDescriptionCap {
			break
		}
		out = append(out, r.Description)
	}
	return out
}

// computeTrend compares the current summary against the prior window.
// Percentage change is 0 when the prior total is 0.
func computeTrend(cur, prior *domain.Summary) *domain.Trend {
	t := &domain.Trend{
		SessionsDelta: cur.TotalSessions - prior.TotalSessions,
		HoursDelta:    cur.TotalHours - prior.TotalHours,
	}
	if prior.TotalSessions > 0 {
		t.SessionsPctChange = float64(t.SessionsDelta) / float64(prior.TotalSessions) * 100
	}
	if prior.TotalHours > 0 {
		t.HoursPctChange = t.HoursDelta / prior.TotalHours * 100
	}
	return t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
