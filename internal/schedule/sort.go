package schedule

import (
	"bytes"
	"sort"

	"github.com/clinickit/agenda-api/internal/model"
)

// SortByStart orders appointments ascending by their combined date+time
// instant. Equal instants break ties by id ascending so the order is total
// and reproducible. The source slice is left untouched.
func SortByStart(appointments []*model.Appointment) []*model.Appointment {
	ordered := make([]*model.Appointment, len(appointments))
	copy(ordered, appointments)

	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i].StartAt(), ordered[j].StartAt()
		if !a.Equal(b) {
			return a.Before(b)
		}
		return bytes.Compare(ordered[i].ID[:], ordered[j].ID[:]) < 0
	})

	return ordered
}
