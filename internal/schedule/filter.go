package schedule

import (
	"time"

	"github.com/clinickit/agenda-api/internal/model"
)

// FilterKey names one of the fixed filter predicates.
type FilterKey string

const (
	FilterAll       FilterKey = "all"
	FilterToday     FilterKey = "today"
	FilterUpcoming  FilterKey = "upcoming"
	FilterPast      FilterKey = "past"
	FilterScheduled FilterKey = "scheduled"
	FilterCompleted FilterKey = "completed"
	FilterCancelled FilterKey = "cancelled"
)

// Filter applies the named predicate over the collection. Temporal keys
// match the Classify bucket ("upcoming" includes today's appointments) and
// status keys match the raw stored status, never the derived badge label.
// An unknown key behaves as "all".
func Filter(appointments []*model.Appointment, key FilterKey, now time.Time) []*model.Appointment {
	var keep func(*model.Appointment) bool

	switch key {
	case FilterToday:
		keep = func(a *model.Appointment) bool {
			return Classify(a.StartAt(), now) == BucketToday
		}
	case FilterUpcoming:
		keep = func(a *model.Appointment) bool {
			return Classify(a.StartAt(), now).IsUpcoming()
		}
	case FilterPast:
		keep = func(a *model.Appointment) bool {
			return Classify(a.StartAt(), now) == BucketPast
		}
	case FilterScheduled:
		keep = func(a *model.Appointment) bool {
			return a.Status == model.AppointmentStatusScheduled
		}
	case FilterCompleted:
		keep = func(a *model.Appointment) bool {
			return a.Status == model.AppointmentStatusCompleted
		}
	case FilterCancelled:
		keep = func(a *model.Appointment) bool {
			return a.Status == model.AppointmentStatusCancelled
		}
	default:
		// "all" and any unknown key.
		return appointments
	}

	filtered := make([]*model.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if keep(a) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
