package domain

// ActivityStat is one entry in a summary's activity ranking.
type ActivityStat struct {
	Name    string  `json:"name"`
	Seconds int     `json:"seconds"`
	Hours   float64 `json:"hours"`
	Percent float64 `json:"percent"`
}

// Trend compares a summary against the prior window of the same kind.
type Trend struct {
	SessionsDelta     int     `json:"sessions_delta"`
	SessionsPctChange float64 `json:"sessions_pct_change"`
	HoursDelta        float64 `json:"hours_delta"`
	HoursPctChange    float64 `json:"hours_pct_change"`
}

// Summary is the derived aggregate for one window. It is recomputed on
// every request and never persisted.
type Summary struct {
	Window             Window         `json:"-"`
	TotalSessions      int            `json:"total_sessions"`
	TotalHours         float64        `json:"total_hours"`
	AvgSessionMinutes  float64        `json:"avg_session_minutes"`
	Activities         []ActivityStat `json:"activities"`
	DescriptionDensity float64        `json:"description_density"`
	SampleDescriptions []string       `json:"sample_descriptions,omitempty"`
	Trend              *Trend         `json:"trend,omitempty"`
}

// TopActivities returns up to n leading entries of the activity ranking.
func (s *Summary) TopActivities(n int) []ActivityStat {
	if n > len(s.Activities) {
		n = len(s.Activities)
	}
	return s.Activities[:n]
}
