package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/antarkita/dispatch/internal/pkg/logger"
	"github.com/antarkita/dispatch/internal/pkg/models"
	"github.com/google/uuid"
)

// HandleJobRequested starts dispatching a freshly created job: run the
// proximity search, persist the helper and fire the first offer cycle.
// A helper is created even when the search comes back empty, so the
// empty-queue branch of the dispatcher uniformly notifies the requester
// and enters the re-search loop.
func (uc *DispatchUC) HandleJobRequested(ctx context.Context, event models.JobRequestedEvent) error {
	jobID, err := uuid.Parse(event.JobID)
	if err != nil {
		logger.Warn("Dropping job requested event with malformed id",
			logger.String("job_id", event.JobID))
		return nil
	}

	job, err := uc.dispatchRepo.GetJob(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to load requested job: %w", err)
	}
	if job == nil {
		logger.Warn("Job requested event for unknown job",
			logger.String("job_id", event.JobID))
		return nil
	}
	if !job.Dispatchable() {
		// Duplicate delivery or the requester already cancelled.
		return nil
	}

	if existing, err := uc.dispatchRepo.GetHelperByJob(ctx, jobID); err != nil {
		return fmt.Errorf("failed to check existing helper: %w", err)
	} else if existing != nil {
		// Duplicate event; the existing helper will advance on its own.
		return nil
	}

	candidates, err := uc.dispatchRepo.FindNearbyDrivers(ctx, job.PickupLocation, uc.cfg.Dispatch.MaxCandidates)
	if err != nil {
		return fmt.Errorf("failed to search nearby drivers: %w", err)
	}

	driverIDs := make([]uuid.UUID, 0, len(candidates))
	for _, candidate := range candidates {
		id, err := uuid.Parse(candidate.ID)
		if err != nil {
			logger.Warn("Skipping candidate with malformed id",
				logger.String("driver_id", candidate.ID))
			continue
		}
		driverIDs = append(driverIDs, id)
	}

	helper, err := uc.dispatchRepo.CreateHelper(ctx, jobID, driverIDs, time.Now())
	if err != nil {
		return fmt.Errorf("failed to create helper: %w", err)
	}

	logger.Info("Dispatching new job",
		logger.String("job_id", event.JobID),
		logger.String("kind", string(job.Kind)),
		logger.Int("candidates", len(driverIDs)))

	return uc.OfferNext(ctx, helper.ID)
}

// HandleJobDeclined reacts to a declined or timed-out offer. The accept
// handler has already reset the job's processing fields; here we put
// the driver back into the pool and move the queue forward.
func (uc *DispatchUC) HandleJobDeclined(ctx context.Context, event models.JobDeclinedEvent) error {
	jobID, err := uuid.Parse(event.JobID)
	if err != nil {
		logger.Warn("Dropping job declined event with malformed id",
			logger.String("job_id", event.JobID))
		return nil
	}

	if event.DriverID != "" {
		uc.restoreDriver(ctx, event.DriverID)
	}

	helper, err := uc.dispatchRepo.GetHelperByJob(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to load helper for declined job: %w", err)
	}
	if helper != nil {
		return uc.OfferNext(ctx, helper.ID)
	}

	// The queue already drained while this driver sat on the offer.
	return uc.Research(ctx, jobID, 1)
}

// HandleJobCancelled tears down dispatch state for a cancelled job. The
// job row itself is the job service's to mutate; we only remove the
// helper and release any driver holding an outstanding offer.
func (uc *DispatchUC) HandleJobCancelled(ctx context.Context, event models.JobCancelledEvent) error {
	jobID, err := uuid.Parse(event.JobID)
	if err != nil {
		logger.Warn("Dropping job cancelled event with malformed id",
			logger.String("job_id", event.JobID))
		return nil
	}

	job, err := uc.dispatchRepo.GetJob(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to load cancelled job: %w", err)
	}
	if job != nil && job.ProcessingDriverID != nil {
		uc.restoreDriver(ctx, job.ProcessingDriverID.String())
	}

	if err := uc.dispatchRepo.DeleteHelperByJob(ctx, jobID); err != nil {
		return fmt.Errorf("failed to delete helper for cancelled job: %w", err)
	}

	logger.Info("Dispatch state cleared for cancelled job",
		logger.String("job_id", event.JobID))
	return nil
}

// HandleDriverBeacon maintains the availability pool from realtime
// driver beacons. A driver holding an outstanding offer stays out of
// the pool regardless of what their beacon says.
func (uc *DispatchUC) HandleDriverBeacon(ctx context.Context, event models.DriverBeaconEvent) error {
	if !event.IsActive {
		return uc.dispatchRepo.SetDriverOnline(ctx, event.DriverID, false)
	}

	if err := uc.dispatchRepo.UpdateDriverLocation(ctx, event.DriverID, event.Location); err != nil {
		return fmt.Errorf("failed to update driver location: %w", err)
	}

	offer, err := uc.dispatchRepo.GetDriverOffer(ctx, event.DriverID)
	if err != nil {
		return fmt.Errorf("failed to check outstanding offer: %w", err)
	}
	if offer != "" {
		return nil
	}

	return uc.dispatchRepo.SetDriverOnline(ctx, event.DriverID, true)
}

// restoreDriver clears a driver's outstanding offer marker and returns
// them to the online pool. Best-effort: failures are logged, the driver
// re-enters the pool on their next beacon anyway.
func (uc *DispatchUC) restoreDriver(ctx context.Context, driverID string) {
	if err := uc.dispatchRepo.ClearDriverOffer(ctx, driverID); err != nil {
		logger.Error("Failed to clear outstanding offer",
			logger.String("driver_id", driverID),
			logger.Err(err))
	}
	if err := uc.dispatchRepo.SetDriverOnline(ctx, driverID, true); err != nil {
		logger.Error("Failed to restore driver to pool",
			logger.String("driver_id", driverID),
			logger.Err(err))
	}
}
