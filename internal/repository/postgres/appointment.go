package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/clinickit/agenda-api/internal/model"
	apperrors "github.com/clinickit/agenda-api/pkg/errors"
)

type appointmentRepository struct {
	db *sqlx.DB
}

func NewAppointmentRepository(db *sqlx.DB) *appointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) List(ctx context.Context) ([]*model.Appointment, error) {
	query := `
		SELECT id, patient_id, patient_name, date, start_time,
			   duration_minutes, status, reason, notes, created_at
		FROM appointments
	`
	appointments := []*model.Appointment{}
	if err := r.db.SelectContext(ctx, &appointments, query); err != nil {
		return nil, apperrors.StoreUnavailable(fmt.Errorf("failed to list appointments: %w", err))
	}
	return appointments, nil
}

func (r *appointmentRepository) Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	query := `
		SELECT id, patient_id, patient_name, date, start_time,
			   duration_minutes, status, reason, notes, created_at
		FROM appointments
		WHERE id = $1
	`
	var appointment model.Appointment
	err := r.db.GetContext(ctx, &appointment, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("appointment", err)
	}
	if err != nil {
		return nil, apperrors.StoreUnavailable(fmt.Errorf("failed to get appointment: %w", err))
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, id uuid.UUID, patch *model.AppointmentPatch) (*model.Appointment, error) {
	query := `UPDATE appointments SET`
	args := []interface{}{}
	argCount := 1

	set := func(column string, value interface{}) {
		if argCount > 1 {
			query += ","
		}
		query += fmt.Sprintf(" %s = $%d", column, argCount)
		args = append(args, value)
		argCount++
	}

	if patch.Date != nil {
		set("date", *patch.Date)
	}
	if patch.StartTime != nil {
		set("start_time", *patch.StartTime)
	}
	if patch.DurationMinutes != nil {
		set("duration_minutes", *patch.DurationMinutes)
	}
	if patch.Status != nil {
		set("status", *patch.Status)
	}
	if patch.Reason != nil {
		set("reason", *patch.Reason)
	}
	if patch.Notes != nil {
		set("notes", *patch.Notes)
	}

	if len(args) == 0 {
		return r.Get(ctx, id)
	}

	query += fmt.Sprintf(` WHERE id = $%d
		RETURNING id, patient_id, patient_name, date, start_time,
				  duration_minutes, status, reason, notes, created_at`, argCount)
	args = append(args, id)

	var appointment model.Appointment
	err := r.db.GetContext(ctx, &appointment, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("appointment", err)
	}
	if err != nil {
		return nil, apperrors.StoreUnavailable(fmt.Errorf("failed to update appointment: %w", err))
	}
	return &appointment, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		DELETE FROM appointments
		WHERE id = $1
	`
	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return apperrors.StoreUnavailable(fmt.Errorf("failed to delete appointment: %w", err))
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return apperrors.StoreUnavailable(fmt.Errorf("failed to get rows affected: %w", err))
	}
	if rows == 0 {
		return apperrors.NotFound("appointment", nil)
	}

	return nil
}

func (r *appointmentRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
