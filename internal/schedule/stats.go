package schedule

import (
	"time"

	"github.com/clinickit/agenda-api/internal/model"
)

// Stats are the summary counters shown alongside the appointment list.
type Stats struct {
	Today             int `json:"today"`
	Completed         int `json:"completed"`
	Missed            int `json:"missed"`
	UpcomingScheduled int `json:"upcoming_scheduled"`
}

// Aggregate computes the four summary counters in one pass over a single
// snapshot, against a single now. Missed mirrors the badge rule: a past
// appointment whose stored status is still scheduled.
func Aggregate(appointments []*model.Appointment, now time.Time) Stats {
	var s Stats
	for _, a := range appointments {
		bucket := Classify(a.StartAt(), now)
		scheduled := a.Status == model.AppointmentStatusScheduled

		if bucket == BucketToday {
			s.Today++
		}
		if a.Status == model.AppointmentStatusCompleted {
			s.Completed++
		}
		if bucket == BucketPast && scheduled {
			s.Missed++
		}
		if bucket.IsUpcoming() && scheduled {
			s.UpcomingScheduled++
		}
	}
	return s
}
