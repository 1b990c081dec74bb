package domain

// InsightKind is the granularity of a generated insight.
type InsightKind string

const (
	InsightDaily    InsightKind = "daily"
	InsightWeekly   InsightKind = "weekly"
	InsightMonthly  InsightKind = "monthly"
	InsightActivity InsightKind = "activity"
)
