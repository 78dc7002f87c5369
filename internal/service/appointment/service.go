package appointment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"

	"github.com/clinickit/agenda-api/internal/model"
	"github.com/clinickit/agenda-api/internal/repository"
	"github.com/clinickit/agenda-api/internal/schedule"
	apperrors "github.com/clinickit/agenda-api/pkg/errors"
	"github.com/clinickit/agenda-api/pkg/messaging"
	"github.com/clinickit/agenda-api/pkg/validator"
)

const (
	snapshotKey  = "appointments:snapshot"
	eventChannel = "agenda.appointments"
	statusRules  = "required,oneof=scheduled completed cancelled no-show"
)

// Service orchestrates the read-side pipeline (snapshot -> filter -> sort ->
// badges / stats) and governs status transitions. It keeps no state of its
// own beyond a TTL snapshot cache that is invalidated and reloaded after
// every successful mutation, so the presented collection never diverges from
// the store.
type Service struct {
	repo     repository.AppointmentRepository
	cache    *gocache.Cache
	broker   messaging.Broker
	logger   *zerolog.Logger
	validate *validator.Validator
	now      func() time.Time
}

func NewService(repo repository.AppointmentRepository, cacheTTL time.Duration, broker messaging.Broker, logger *zerolog.Logger) *Service {
	return &Service{
		repo:     repo,
		cache:    gocache.New(cacheTTL, 2*cacheTTL),
		broker:   broker,
		logger:   logger,
		validate: validator.New(),
		now:      time.Now,
	}
}

// WithClock overrides the time source, for tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) snapshot(ctx context.Context) ([]*model.Appointment, error) {
	if cached, ok := s.cache.Get(snapshotKey); ok {
		return cached.([]*model.Appointment), nil
	}

	appointments, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load appointments: %w", err)
	}
	s.cache.SetDefault(snapshotKey, appointments)
	return appointments, nil
}

// reload discards the cached snapshot and fetches a fresh one. Called after
// every acknowledged mutation.
func (s *Service) reload(ctx context.Context) error {
	s.cache.Delete(snapshotKey)
	_, err := s.snapshot(ctx)
	return err
}

// ListView returns the filtered, chronologically ordered collection with
// per-appointment display badges. The whole pass uses a single now.
func (s *Service) ListView(ctx context.Context, key schedule.FilterKey) ([]schedule.View, error) {
	appointments, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	filtered := schedule.Filter(appointments, key, now)
	ordered := schedule.SortByStart(filtered)
	return schedule.Annotate(ordered, now), nil
}

// Overview computes the summary counters over the full collection.
func (s *Service) Overview(ctx context.Context) (schedule.Stats, error) {
	appointments, err := s.snapshot(ctx)
	if err != nil {
		return schedule.Stats{}, err
	}
	return schedule.Aggregate(appointments, s.now()), nil
}

func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return appointment, nil
}

// UpdateStatus applies a status transition. Any of the four statuses is
// reachable from any other; only malformed values are rejected. On success
// the change is persisted with every other field untouched, the snapshot is
// reloaded from the store, and a change event is published best-effort.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status model.AppointmentStatus) (*model.Appointment, error) {
	if err := s.validate.ValidateVar(string(status), statusRules); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, &model.AppointmentPatch{Status: &status})
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment status: %w", err)
	}

	if err := s.reload(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("snapshot reload after status update failed")
	}

	s.publish(ctx, "appointment.status_changed", updated.ID.String(), updated)
	return updated, nil
}

// DeleteAppointment removes an appointment. The caller must signal explicit
// confirmation; unconfirmed requests never reach the store.
func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID, confirmed bool) error {
	if !confirmed {
		return apperrors.Validation("delete requires confirmation", nil)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}

	if err := s.reload(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("snapshot reload after delete failed")
	}

	s.publish(ctx, "appointment.deleted", id.String(), nil)
	return nil
}

func (s *Service) publish(ctx context.Context, eventType, resourceID string, payload interface{}) {
	if s.broker == nil {
		return
	}
	event := messaging.Event{
		Type:       eventType,
		Resource:   "appointment",
		ResourceID: resourceID,
		Payload:    payload,
	}
	if err := s.broker.Publish(ctx, eventChannel, event); err != nil {
		s.logger.Warn().Err(err).Str("event", eventType).Msg("event publish failed")
	}
}
