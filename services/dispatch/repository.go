package dispatch

import (
	"context"
	"time"

	"github.com/antarkita/dispatch/internal/pkg/models"
	"github.com/google/uuid"
)

// DispatchRepo defines the storage contract of the dispatch engine.
// Jobs, helpers and driver profiles live in Postgres; the availability
// pool and driver locations live in Redis.
type DispatchRepo interface {
	// Job operations
	GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error)
	// ClaimJob is the CAS that marks a job processing with a driver,
	// guarded on status still being requested. Returns false when the
	// guard failed (a concurrent claim or acceptance won).
	ClaimJob(ctx context.Context, jobID, driverID uuid.UUID, now time.Time) (bool, error)
	// ExpireJob terminates a job whose re-search budget ran out, guarded
	// the same way as ClaimJob.
	ExpireJob(ctx context.Context, jobID uuid.UUID, now time.Time) (bool, error)

	// Dispatch helper operations
	GetHelper(ctx context.Context, id uuid.UUID) (*models.DispatchHelper, error)
	GetHelperByJob(ctx context.Context, jobID uuid.UUID) (*models.DispatchHelper, error)
	CreateHelper(ctx context.Context, jobID uuid.UUID, driverIDs []uuid.UUID, nextAttemptAt time.Time) (*models.DispatchHelper, error)
	UpdateHelper(ctx context.Context, id uuid.UUID, driverIDs []uuid.UUID, nextAttemptAt time.Time) error
	DeleteHelper(ctx context.Context, id uuid.UUID) error
	DeleteHelperByJob(ctx context.Context, jobID uuid.UUID) error
	FindHelpersDue(ctx context.Context, now time.Time, batchSize int) ([]*models.DispatchHelper, error)

	// Driver pool operations
	FindNearbyDrivers(ctx context.Context, pickup models.Location, limit int) ([]*models.NearbyDriver, error)
	SetDriverOnline(ctx context.Context, driverID string, online bool) error
	UpdateDriverLocation(ctx context.Context, driverID string, location models.Location) error
	SetDriverOffer(ctx context.Context, driverID, jobID string) error
	GetDriverOffer(ctx context.Context, driverID string) (string, error)
	ClearDriverOffer(ctx context.Context, driverID string) error
}
