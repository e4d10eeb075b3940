package expiry

import (
	"math"
	"testing"
	"time"
)

// Preparation dates are plain dates (midnight), like the inventory API
// serves them.
var prep = time.Date(2025, 3, 5, 0, 0, 0, 0, time.UTC)

func TestDaysRemaining_ExpiresLaterToday(t *testing.T) {
	// Expiry instant is midnight Mar 10; at noon the same day the item
	// must read as day 0, not -1.
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	if got := DaysRemaining(prep, 5, now); got != 0 {
		t.Errorf("expected 0 days remaining, got %d", got)
	}
}

func TestDaysRemaining_Tomorrow(t *testing.T) {
	now := time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC)
	if got := DaysRemaining(prep, 5, now); got != 1 {
		t.Errorf("expected 1 day remaining, got %d", got)
	}
}

func TestDaysRemaining_NegativeOnceExpired(t *testing.T) {
	now := time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC)
	if got := DaysRemaining(prep, 5, now); got != -2 {
		t.Errorf("expected -2 days remaining, got %d", got)
	}
}

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		now  time.Time
		want Status
	}{
		{"fresh", time.Date(2025, 3, 6, 12, 0, 0, 0, time.UTC), Fresh},
		{"expiring at badge window", time.Date(2025, 3, 7, 12, 0, 0, 0, time.UTC), Expiring},
		{"expired on the day", time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), Expired},
		{"long expired", time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), Expired},
	}

	for _, c := range cases {
		if got := Classify(prep, 5, c.now); got != c.want {
			t.Errorf("%s: expected %v, got %v", c.name, c.want, got)
		}
	}
}

// The status is always exactly one of the three values, and Expired holds
// exactly when no whole day is left under the elapsed-days definition.
// Note DaysRemaining uses the query-path rounding, which can disagree with
// the elapsed-days count by one day at half-day boundaries; the two
// policies are intentionally separate.
func TestClassify_ExpiredMatchesElapsedDays(t *testing.T) {
	for daysToExpiry := 1; daysToExpiry <= 30; daysToExpiry++ {
		for offset := -40; offset <= 40; offset++ {
			now := prep.Add(time.Duration(offset) * 12 * time.Hour)
			status := Classify(prep, daysToExpiry, now)

			switch status {
			case Fresh, Expiring, Expired:
			default:
				t.Fatalf("unexpected status %d", status)
			}

			elapsed := int(math.Ceil(float64(now.Sub(prep)) / float64(24*time.Hour)))
			if got, want := status == Expired, daysToExpiry-elapsed <= 0; got != want {
				t.Fatalf("expired=%v with %d elapsed days (daysToExpiry=%d offset=%d)",
					got, elapsed, daysToExpiry, offset)
			}
		}
	}
}
