package insight

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alexanderramin/recap/internal/domain"
)

func fingerprintFixtures() []domain.SessionRecord {
	base := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	return []domain.SessionRecord{
		{ID: 1, ActivityType: "coding", Duration: 1800, StartTime: base, EndTime: base.Add(30 * time.Minute), CreatedAt: base},
		{ID: 2, ActivityType: "reading", Duration: 3600, StartTime: base.Add(time.Hour), EndTime: base.Add(2 * time.Hour), CreatedAt: base.Add(time.Hour)},
		{ID: 3, ActivityType: "writing", Duration: 900, StartTime: base.Add(3 * time.Hour), EndTime: base.Add(3*time.Hour + 15*time.Minute), CreatedAt: base.Add(3 * time.Hour)},
	}
}

func TestFingerprint_OrderInvariant(t *testing.T) {
	records := fingerprintFixtures()
	shuffled := []domain.SessionRecord{records[2], records[0], records[1]}

	assert.Equal(t, Fingerprint(records), Fingerprint(shuffled))
}

func TestFingerprint_Deterministic(t *testing.T) {
	records := fingerprintFixtures()
	assert.Equal(t, Fingerprint(records), Fingerprint(records))
}

func TestFingerprint_ChangesWithContent(t *testing.T) {
	records := fingerprintFixtures()
	original := Fingerprint(records)

	mutations := map[string]func([]domain.SessionRecord){
		"id":        func(rs []domain.SessionRecord) { rs[0].ID = 99 },
		"activity":  func(rs []domain.SessionRecord) { rs[0].ActivityType = "review" },
		"duration":  func(rs []domain.SessionRecord) { rs[0].Duration = 60 },
		"createdAt": func(rs []domain.SessionRecord) { rs[0].CreatedAt = rs[0].CreatedAt.Add(time.Second) },
	}
	for name, mutate := range mutations {
		mutated := fingerprintFixtures()
		mutate(mutated)
		assert.NotEqual(t, original, Fingerprint(mutated), "mutating %s must change the fingerprint", name)
	}
}

func TestFingerprint_ChangesWithMembership(t *testing.T) {
	records := fingerprintFixtures()
	original := Fingerprint(records)

	assert.NotEqual(t, original, Fingerprint(records[:2]), "removing a record must change the fingerprint")

	extra := append(fingerprintFixtures(), domain.SessionRecord{
		ID: 4, ActivityType: "coding", Duration: 600,
		CreatedAt: time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC),
	})
	assert.NotEqual(t, original, Fingerprint(extra), "adding a record must change the fingerprint")
}

func TestFingerprint_EmptySentinel(t *testing.T) {
	assert.Equal(t, EmptyFingerprint, Fingerprint(nil))
	assert.Equal(t, EmptyFingerprint, Fingerprint([]domain.SessionRecord{}))
	assert.NotEqual(t, EmptyFingerprint, Fingerprint(fingerprintFixtures()))
}

func TestSummaryFingerprint(t *testing.T) {
	a := &domain.Summary{TotalSessions: 3, TotalHours: 2.0}
	b := &domain.Summary{TotalSessions: 3, TotalHours: 2.0}
	c := &domain.Summary{TotalSessions: 4, TotalHours: 2.5}

	assert.Equal(t, SummaryFingerprint(a), SummaryFingerprint(b))
	assert.NotEqual(t, SummaryFingerprint(a), SummaryFingerprint(c))
	assert.Equal(t, EmptyFingerprint, SummaryFingerprint(nil))
}
