package insight

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"sort"
	"strconv"
	"strings"

	"github.com/alexanderramin/recap/internal/domain"
)

// EmptyFingerprint is the sentinel digest for an empty record set. It is
// never produced for non-empty input.
const EmptyFingerprint = "empty"

// Fingerprint derives a deterministic, order-independent digest of a
// record set. Equal sets yield equal digests regardless of input order;
// changing any record's id, activity, duration or creation time, or the
// set's membership, changes the digest. The digest detects equality only
// and is not a security primitive.
func Fingerprint(records []domain.SessionRecord) string {
	if len(records) == 0 {
		return EmptyFingerprint
	}
	parts := make([]string, len(records))
	for i, r := range records {
		parts[i] = fmt.Sprintf("%d:%s:%d:%d",
			r.ID, r.ActivityType, r.Duration, r.CreatedAt.UTC().Unix())
	}
	sort.Strings(parts)
	return digest(strings.Join(parts, "|"))
}

// SummaryFingerprint digests a summary's canonical JSON form, used when
// only the derived summary is available for comparison.
func SummaryFingerprint(s *domain.Summary) string {
	if s == nil {
		return EmptyFingerprint
	}
	b, err := json.Marshal(s)
	if err != nil {
		// Summary holds only plain values; Marshal cannot fail on it.
		return EmptyFingerprint
	}
	return digest(string(b))
}

func digest(s string) string {
	h := fnv.New32a()
	h.Write([]byte(s))
	return strconv.FormatUint(uint64(h.Sum32()), 36)
}
