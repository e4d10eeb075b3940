package expiry

import (
	"math"
	"time"
)

type Status uint

const (
	Fresh Status = iota
	Expiring
	Expired
)

func (s Status) String() string {
	switch s {
	case Expired:
		return "expired"
	case Expiring:
		return "expiring"
	default:
		return "fresh"
	}
}

// BadgeWindowDays is how close to the expiry threshold an item must be to
// carry the "expiring" badge. The query engine uses its own, wider window
// for the "soon" bucket; the two values are intentionally separate.
const BadgeWindowDays = 2

const day = 24 * time.Hour

// DaysRemaining returns the whole days left before the item expires,
// negative once it already has. Rounding is a ceiling over the raw
// duration, so an item expiring later today still reads as day 0.
func DaysRemaining(preparation time.Time, daysToExpiry int, now time.Time) int {
	expiresAt := preparation.Add(time.Duration(daysToExpiry) * day)
	return int(math.Ceil(float64(expiresAt.Sub(now)) / float64(day)))
}

// Classify buckets an item from the days elapsed since preparation.
func Classify(preparation time.Time, daysToExpiry int, now time.Time) Status {
	elapsed := int(math.Ceil(float64(now.Sub(preparation)) / float64(day)))

	switch {
	case elapsed >= daysToExpiry:
		return Expired
	case elapsed >= daysToExpiry-BadgeWindowDays:
		return Expiring
	default:
		return Fresh
	}
}
