package schedule

import (
	"time"

	"github.com/clinickit/agenda-api/internal/model"
)

// View is one appointment annotated with its display badge. This is the
// shape that crosses the presentation boundary.
type View struct {
	*model.Appointment
	Badge
}

// Annotate attaches badges to every appointment in order, using a single
// now for the whole slice.
func Annotate(appointments []*model.Appointment, now time.Time) []View {
	views := make([]View, 0, len(appointments))
	for _, a := range appointments {
		views = append(views, View{
			Appointment: a,
			Badge:       Evaluate(a.Status, Classify(a.StartAt(), now)),
		})
	}
	return views
}
