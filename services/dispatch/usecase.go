package dispatch

import (
	"context"
	"time"

	"github.com/antarkita/dispatch/internal/pkg/models"
	"github.com/google/uuid"
)

// DispatchUC defines the interface for dispatch business logic
type DispatchUC interface {
	// Event intake
	HandleJobRequested(ctx context.Context, event models.JobRequestedEvent) error
	HandleJobDeclined(ctx context.Context, event models.JobDeclinedEvent) error
	HandleJobCancelled(ctx context.Context, event models.JobCancelledEvent) error
	HandleDriverBeacon(ctx context.Context, event models.DriverBeaconEvent) error

	// Offer engine
	OfferNext(ctx context.Context, helperID uuid.UUID) error
	Research(ctx context.Context, jobID uuid.UUID, round int) error
	DispatchDue(ctx context.Context, now time.Time) (int, error)

	// Ops surface
	JobDispatchStatus(ctx context.Context, jobID uuid.UUID) (*models.Job, *models.DispatchHelper, error)
	FindNearby(ctx context.Context, pickup models.Location, limit int) ([]*models.NearbyDriver, error)
}
