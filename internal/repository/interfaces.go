package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/clinickit/agenda-api/internal/model"
)

// AppointmentRepository is the store adapter boundary. The core is agnostic
// to which implementation is active; the choice is made once at process
// start and never branched on per call.
type AppointmentRepository interface {
	List(ctx context.Context) ([]*model.Appointment, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	Update(ctx context.Context, id uuid.UUID, patch *model.AppointmentPatch) (*model.Appointment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Pinger is implemented by stores that can report backend reachability,
// used by the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}
