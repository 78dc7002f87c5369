// Package schedule implements the appointment classification, ordering and
// summary engine: temporal buckets relative to the current instant, the
// status badge projection, named filters, chronological sort and the
// aggregate counters consumed by the presentation layer.
package schedule

import "time"

// Bucket is the temporal classification of an appointment relative to now.
type Bucket int

const (
	BucketPast Bucket = iota
	BucketToday
	BucketUpcoming
)

func (b Bucket) String() string {
	switch b {
	case BucketToday:
		return "today"
	case BucketUpcoming:
		return "upcoming"
	default:
		return "past"
	}
}

// IsUpcoming reports whether the bucket counts as upcoming. Today counts
// too: the buckets are deliberately non-exclusive and "upcoming" is a
// superset of "today".
func (b Bucket) IsUpcoming() bool {
	return b == BucketToday || b == BucketUpcoming
}

// Classify maps an appointment instant to its temporal bucket. Only the
// calendar date matters; the time of day never changes the bucket.
func Classify(startAt, now time.Time) Bucket {
	ay, am, ad := startAt.Date()
	ny, nm, nd := now.Date()

	a := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	n := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)

	switch {
	case a.Equal(n):
		return BucketToday
	case a.After(n):
		return BucketUpcoming
	default:
		return BucketPast
	}
}
