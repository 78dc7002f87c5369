package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinickit/agenda-api/internal/model"
	"github.com/clinickit/agenda-api/internal/schedule"
	apperrors "github.com/clinickit/agenda-api/pkg/errors"
)

var seedNow = time.Date(2024, 2, 25, 12, 0, 0, 0, time.UTC)

func TestSeededRepositoryIsDeterministic(t *testing.T) {
	ctx := context.Background()

	first, err := NewSeededRepository(seedNow).List(ctx)
	require.NoError(t, err)
	second, err := NewSeededRepository(seedNow).List(ctx)
	require.NoError(t, err)

	require.NotEmpty(t, first)
	assert.ElementsMatch(t, first, second)
}

func TestSeededRepositoryCoversAllBuckets(t *testing.T) {
	appointments, err := NewSeededRepository(seedNow).List(context.Background())
	require.NoError(t, err)

	buckets := map[schedule.Bucket]int{}
	statuses := map[model.AppointmentStatus]int{}
	for _, a := range appointments {
		buckets[schedule.Classify(a.StartAt(), seedNow)]++
		statuses[a.Status]++
		assert.Greater(t, a.DurationMinutes, 0)
	}

	assert.NotZero(t, buckets[schedule.BucketPast])
	assert.NotZero(t, buckets[schedule.BucketToday])
	assert.NotZero(t, buckets[schedule.BucketUpcoming])
	assert.NotZero(t, statuses[model.AppointmentStatusScheduled])
	assert.NotZero(t, statuses[model.AppointmentStatusCompleted])
	assert.NotZero(t, statuses[model.AppointmentStatusCancelled])
	assert.NotZero(t, statuses[model.AppointmentStatusNoShow])
}

func TestGetUnknownIDReturnsNotFound(t *testing.T) {
	repo := NewSeededRepository(seedNow)

	_, err := repo.Get(context.Background(), uuid.New())

	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdatePatchesOnlyProvidedFields(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededRepository(seedNow)

	appointments, err := repo.List(ctx)
	require.NoError(t, err)
	original := appointments[0]

	status := model.AppointmentStatusCompleted
	updated, err := repo.Update(ctx, original.ID, &model.AppointmentPatch{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, model.AppointmentStatusCompleted, updated.Status)
	assert.Equal(t, original.PatientName, updated.PatientName)
	assert.Equal(t, original.Date, updated.Date)
	assert.Equal(t, original.StartTime, updated.StartTime)
	assert.Equal(t, original.CreatedAt, updated.CreatedAt)
}

func TestUpdateUnknownIDReturnsNotFound(t *testing.T) {
	repo := NewSeededRepository(seedNow)

	status := model.AppointmentStatusCompleted
	_, err := repo.Update(context.Background(), uuid.New(), &model.AppointmentPatch{Status: &status})

	assert.True(t, apperrors.IsNotFound(err))
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededRepository(seedNow)

	appointments, err := repo.List(ctx)
	require.NoError(t, err)
	before := len(appointments)

	require.NoError(t, repo.Delete(ctx, appointments[0].ID))

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, before-1)

	assert.True(t, apperrors.IsNotFound(repo.Delete(ctx, appointments[0].ID)))
}

// List hands out copies: mutating a returned record must not leak into the
// store.
func TestListReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewSeededRepository(seedNow)

	appointments, err := repo.List(ctx)
	require.NoError(t, err)

	appointments[0].Status = model.AppointmentStatusCancelled
	appointments[0].Notes = "scribbled on"

	fresh, err := repo.Get(ctx, appointments[0].ID)
	require.NoError(t, err)
	assert.NotEqual(t, "scribbled on", fresh.Notes)
}
