package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinickit/agenda-api/internal/model"
)

func testCollection() []*model.Appointment {
	return []*model.Appointment{
		makeAppointment(0, -5, "09:00", model.AppointmentStatusScheduled),
		makeAppointment(1, -2, "10:00", model.AppointmentStatusCompleted),
		makeAppointment(2, 0, "14:30", model.AppointmentStatusScheduled),
		makeAppointment(3, 0, "09:00", model.AppointmentStatusCancelled),
		makeAppointment(4, 3, "11:00", model.AppointmentStatusScheduled),
		makeAppointment(5, 7, "16:00", model.AppointmentStatusNoShow),
	}
}

func TestFilterAllIsIdentity(t *testing.T) {
	appointments := testCollection()
	assert.Equal(t, appointments, Filter(appointments, FilterAll, testNow))
}

func TestFilterUnknownKeyBehavesAsAll(t *testing.T) {
	appointments := testCollection()
	assert.Equal(t, appointments, Filter(appointments, FilterKey("bogus"), testNow))
}

func TestFilterToday(t *testing.T) {
	got := Filter(testCollection(), FilterToday, testNow)

	require.Len(t, got, 2)
	for _, a := range got {
		assert.Equal(t, BucketToday, Classify(a.StartAt(), testNow))
	}
}

// upcoming is a superset of today: an appointment dated today appears in
// both results, whatever its status.
func TestFilterUpcomingIncludesToday(t *testing.T) {
	appointments := testCollection()

	today := Filter(appointments, FilterToday, testNow)
	upcoming := Filter(appointments, FilterUpcoming, testNow)

	require.Len(t, upcoming, 4)
	for _, a := range today {
		assert.Contains(t, upcoming, a)
	}
}

func TestFilterPast(t *testing.T) {
	got := Filter(testCollection(), FilterPast, testNow)

	require.Len(t, got, 2)
	for _, a := range got {
		assert.Equal(t, BucketPast, Classify(a.StartAt(), testNow))
	}
}

// Status keys match the stored status, not the derived label: a past
// scheduled appointment shows as Missed but still matches "scheduled".
func TestFilterByStatusMatchesRawStatus(t *testing.T) {
	appointments := []*model.Appointment{
		makeAppointment(0, -5, "09:00", model.AppointmentStatusScheduled),
		makeAppointment(1, 1, "10:00", model.AppointmentStatusCompleted),
	}

	got := Filter(appointments, FilterScheduled, testNow)

	require.Len(t, got, 1)
	assert.Equal(t, appointments[0].ID, got[0].ID)
	assert.Equal(t, "Missed", Evaluate(got[0].Status, Classify(got[0].StartAt(), testNow)).Label)
}

func TestFilterIdempotent(t *testing.T) {
	appointments := testCollection()

	for _, key := range []FilterKey{FilterAll, FilterToday, FilterUpcoming, FilterPast, FilterScheduled, FilterCompleted, FilterCancelled} {
		once := Filter(appointments, key, testNow)
		twice := Filter(once, key, testNow)
		assert.Equal(t, once, twice, "key %s", key)
	}
}

func TestFilterEmptyCollection(t *testing.T) {
	for _, key := range []FilterKey{FilterAll, FilterToday, FilterScheduled} {
		assert.Empty(t, Filter(nil, key, testNow))
	}
}
