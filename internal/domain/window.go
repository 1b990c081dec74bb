package domain

import (
	"fmt"
	"time"
)

// Window is a half-open interval [Start, End) identifying which sessions
// an aggregation or insight covers. Activity is set only for
// activity-specific windows.
type Window struct {
	Kind     InsightKind
	Start    time.Time
	End      time.Time
	Label    string
	Activity string
}

// Contains reports whether t falls inside the half-open interval.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// DayWindow returns the daily window covering the calendar day of t.
func DayWindow(t time.Time) Window {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return Window{
		Kind:  InsightDaily,
		Start: start,
		End:   start.AddDate(0, 0, 1),
		Label: start.Format("Mon, Jan 2"),
	}
}

// WeekWindow returns the weekly window covering the Monday-start week of t.
func WeekWindow(t time.Time) Window {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	start := day.AddDate(0, 0, -offset)
	end := start.AddDate(0, 0, 7)
	return Window{
		Kind:  InsightWeekly,
		Start: start,
		End:   end,
		Label: fmt.Sprintf("Week of %s", start.Format("Jan 2")),
	}
}

// MonthWindow returns the monthly window covering the calendar month of t.
func MonthWindow(t time.Time) Window {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	return Window{
		Kind:  InsightMonthly,
		Start: start,
		End:   start.AddDate(0, 1, 0),
		Label: start.Format("January 2006"),
	}
}

// ActivityWindow returns an activity-specific window covering the last
// `days` calendar days ending at the day of `end` (exclusive of tomorrow).
func ActivityWindow(activity string, end time.Time, days int) Window {
	if days <= 0 {
		days = 30
	}
	dayEnd := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location()).AddDate(0, 0, 1)
	return Window{
		Kind:     InsightActivity,
		Start:    dayEnd.AddDate(0, 0, -days),
		End:      dayEnd,
		Label:    fmt.Sprintf("%s, last %d days", activity, days),
		Activity: activity,
	}
}

// Prior returns the window of the same kind and length immediately
// preceding w, used as the trend baseline.
func (w Window) Prior() Window {
	length := w.End.Sub(w.Start)
	prior := Window{
		Kind:     w.Kind,
		Start:    w.Start.Add(-length),
		End:      w.Start,
		Activity: w.Activity,
	}
	switch w.Kind {
	case InsightDaily:
		prior.Label = prior.Start.Format("Mon, Jan 2")
	case InsightWeekly:
		prior.Label = fmt.Sprintf("Week of %s", prior.Start.Format("Jan 2"))
	case InsightMonthly:
		prior.Label = prior.Start.Format("January 2006")
	default:
		prior.Label = w.Label
	}
	return prior
}
