// Package memory is the fallback store adapter used when no Postgres
// backend is reachable. It is seeded with deterministic sample records so
// every temporal bucket and status is represented.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"

	"github.com/clinickit/agenda-api/internal/model"
	apperrors "github.com/clinickit/agenda-api/pkg/errors"
)

const seedValue = 42

type appointmentRepository struct {
	mu           sync.RWMutex
	appointments map[uuid.UUID]*model.Appointment
}

func NewAppointmentRepository() *appointmentRepository {
	return &appointmentRepository{
		appointments: make(map[uuid.UUID]*model.Appointment),
	}
}

// NewSeededRepository builds a store pre-populated with sample records
// placed relative to now. The same now always yields the same records.
func NewSeededRepository(now time.Time) *appointmentRepository {
	r := NewAppointmentRepository()
	r.seed(now)
	return r
}

func (r *appointmentRepository) seed(now time.Time) {
	faker := gofakeit.New(seedValue)

	samples := []struct {
		dayOffset int
		startTime string
		status    model.AppointmentStatus
	}{
		{-7, "10:30", model.AppointmentStatusCompleted},
		{-5, "09:00", model.AppointmentStatusScheduled}, // shows as Missed
		{-3, "14:00", model.AppointmentStatusNoShow},
		{-1, "11:15", model.AppointmentStatusCancelled},
		{0, "09:00", model.AppointmentStatusScheduled},
		{0, "14:30", model.AppointmentStatusScheduled},
		{0, "16:00", model.AppointmentStatusCompleted},
		{1, "08:45", model.AppointmentStatusScheduled},
		{3, "13:00", model.AppointmentStatusScheduled},
		{7, "10:00", model.AppointmentStatusCancelled},
		{14, "15:30", model.AppointmentStatusScheduled},
	}

	durations := []int{15, 30, 45, 60}

	for i, s := range samples {
		id := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("agenda-sample-%d", i)))
		patientID := uuid.NewSHA1(uuid.NameSpaceOID, []byte(fmt.Sprintf("agenda-patient-%d", i)))
		date := now.AddDate(0, 0, s.dayOffset)

		r.appointments[id] = &model.Appointment{
			ID:              id,
			PatientID:       patientID,
			PatientName:     faker.Name(),
			Date:            time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location()),
			StartTime:       s.startTime,
			DurationMinutes: durations[i%len(durations)],
			Status:          s.status,
			Reason:          faker.Sentence(),
			CreatedAt:       now.AddDate(0, 0, s.dayOffset-14),
		}
	}
}

func (r *appointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	appointments := make([]*model.Appointment, 0, len(r.appointments))
	for _, a := range r.appointments {
		clone := *a
		appointments = append(appointments, &clone)
	}
	return appointments, nil
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.appointments[id]
	if !ok {
		return nil, apperrors.NotFound("appointment", nil)
	}
	clone := *a
	return &clone, nil
}

func (r *appointmentRepository) Update(ctx context.Context, id uuid.UUID, patch *model.AppointmentPatch) (*model.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.appointments[id]
	if !ok {
		return nil, apperrors.NotFound("appointment", nil)
	}

	if patch.Date != nil {
		a.Date = *patch.Date
	}
	if patch.StartTime != nil {
		a.StartTime = *patch.StartTime
	}
	if patch.DurationMinutes != nil {
		a.DurationMinutes = *patch.DurationMinutes
	}
	if patch.Status != nil {
		a.Status = *patch.Status
	}
	if patch.Reason != nil {
		a.Reason = *patch.Reason
	}
	if patch.Notes != nil {
		a.Notes = *patch.Notes
	}

	clone := *a
	return &clone, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[id]; !ok {
		return apperrors.NotFound("appointment", nil)
	}
	delete(r.appointments, id)
	return nil
}

func (r *appointmentRepository) Ping(ctx context.Context) error {
	return nil
}
