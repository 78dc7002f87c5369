package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusNoShow    AppointmentStatus = "no-show"
)

type Appointment struct {
	ID              uuid.UUID         `db:"id" json:"id"`
	PatientID       uuid.UUID         `db:"patient_id" json:"patient_id"`
	PatientName     string            `db:"patient_name" json:"patient_name"`
	Date            time.Time         `db:"date" json:"date"`
	StartTime       string            `db:"start_time" json:"time"`
	DurationMinutes int               `db:"duration_minutes" json:"duration_minutes"`
	Status          AppointmentStatus `db:"status" json:"status"`
	Reason          string            `db:"reason" json:"reason,omitempty"`
	Notes           string            `db:"notes" json:"notes,omitempty"`
	CreatedAt       time.Time         `db:"created_at" json:"created_at"`
}

// StartAt combines the calendar date and the "15:04" time of day into the
// single instant used for temporal classification and ordering. A malformed
// time of day falls back to midnight.
func (a *Appointment) StartAt() time.Time {
	t, err := time.Parse("15:04", a.StartTime)
	if err != nil {
		return time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(), 0, 0, 0, 0, a.Date.Location())
	}
	return time.Date(a.Date.Year(), a.Date.Month(), a.Date.Day(), t.Hour(), t.Minute(), 0, 0, a.Date.Location())
}

// AppointmentPatch is a partial update; nil fields are left unchanged.
type AppointmentPatch struct {
	Date            *time.Time         `json:"date"`
	StartTime       *string            `json:"time"`
	DurationMinutes *int               `json:"duration_minutes"`
	Status          *AppointmentStatus `json:"status"`
	Reason          *string            `json:"reason"`
	Notes           *string            `json:"notes"`
}

type UpdateStatusRequest struct {
	Status AppointmentStatus `json:"status" binding:"required" validate:"required,oneof=scheduled completed cancelled no-show"`
}
