package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/antarkita/dispatch/internal/pkg/constants"
	"github.com/antarkita/dispatch/internal/pkg/logger"
	"github.com/antarkita/dispatch/internal/pkg/models"
	"github.com/antarkita/dispatch/internal/pkg/observability"
	"github.com/google/uuid"
)

// OfferNext runs one offer cycle for a dispatch helper: pop the next
// candidate, claim the job for them, push the offer, take them off the
// online pool and reschedule the helper.
//
// Every invocation re-validates the job first, so duplicate and stale
// triggers degrade to no-ops. Storage failures abandon the cycle; the
// next trigger picks the helper up again.
func (uc *DispatchUC) OfferNext(ctx context.Context, helperID uuid.UUID) error {
	start := time.Now()
	defer func() {
		observability.OfferCycleDuration.Observe(time.Since(start).Seconds())
	}()

	helper, err := uc.dispatchRepo.GetHelper(ctx, helperID)
	if err != nil {
		observability.OffersTotal.WithLabelValues(observability.OutcomeError).Inc()
		return fmt.Errorf("failed to load helper: %w", err)
	}
	if helper == nil {
		// Deleted concurrently, expected race outcome
		observability.OffersTotal.WithLabelValues(observability.OutcomeStale).Inc()
		return nil
	}

	job, err := uc.dispatchRepo.GetJob(ctx, helper.JobID)
	if err != nil {
		observability.OffersTotal.WithLabelValues(observability.OutcomeError).Inc()
		return fmt.Errorf("failed to load job: %w", err)
	}
	if job == nil {
		// Job gone; the helper is an orphan now
		logger.Warn("Dispatch helper references missing job, removing",
			logger.String("helper_id", helper.ID.String()),
			logger.String("job_id", helper.JobID.String()))
		observability.OffersTotal.WithLabelValues(observability.OutcomeStale).Inc()
		return uc.dispatchRepo.DeleteHelper(ctx, helper.ID)
	}

	if !job.Dispatchable() {
		// Accepted, cancelled or already processing: silent no-op
		observability.OffersTotal.WithLabelValues(observability.OutcomeStale).Inc()
		return nil
	}

	candidate, tail, ok := helper.Head()
	if !ok {
		return uc.handleExhausted(ctx, job, helper)
	}

	now := time.Now()
	claimed, err := uc.dispatchRepo.ClaimJob(ctx, job.ID, candidate, now)
	if err != nil {
		observability.OffersTotal.WithLabelValues(observability.OutcomeError).Inc()
		return fmt.Errorf("failed to claim job: %w", err)
	}
	if !claimed {
		// A concurrent acceptance or another trigger won the race.
		logger.Debug("Job claim lost race, skipping offer",
			logger.String("job_id", job.ID.String()),
			logger.String("driver_id", candidate.String()))
		observability.OffersTotal.WithLabelValues(observability.OutcomeLostRace).Inc()
		return nil
	}

	uc.notifyCandidate(ctx, job, helper, candidate, now)

	if err := uc.dispatchRepo.SetDriverOnline(ctx, candidate.String(), false); err != nil {
		logger.Error("Failed to remove offered driver from pool",
			logger.String("driver_id", candidate.String()),
			logger.Err(err))
	}
	if err := uc.dispatchRepo.SetDriverOffer(ctx, candidate.String(), job.ID.String()); err != nil {
		logger.Error("Failed to record outstanding offer",
			logger.String("driver_id", candidate.String()),
			logger.Err(err))
	}

	observability.OffersTotal.WithLabelValues(observability.OutcomeOffered).Inc()

	if len(tail) > 0 {
		nextAttempt := now.Add(uc.offerTimeout())
		if err := uc.dispatchRepo.UpdateHelper(ctx, helper.ID, tail, nextAttempt); err != nil {
			return fmt.Errorf("failed to advance helper queue: %w", err)
		}

		if uc.queueTriggered() {
			trigger := models.DispatchTriggerMessage{
				HelperID:   helper.ID.String(),
				JobID:      job.ID.String(),
				EnqueuedAt: now,
			}
			if err := uc.dispatchGW.ScheduleTrigger(ctx, trigger, uc.offerTimeout()); err != nil {
				// The poll fallback or a decline event will still pick the
				// helper up once next_attempt_at elapses.
				logger.Error("Failed to schedule deferred trigger",
					logger.String("helper_id", helper.ID.String()),
					logger.Err(err))
			}
		}
		return nil
	}

	// Queue drained with this offer outstanding. Further movement for
	// this job only happens through the decline path.
	return uc.dispatchRepo.DeleteHelper(ctx, helper.ID)
}

// handleExhausted runs the empty-queue branch of the offer cycle:
// remove the helper, tell the requester, hand off to the re-search loop.
func (uc *DispatchUC) handleExhausted(ctx context.Context, job *models.Job, helper *models.DispatchHelper) error {
	observability.OffersTotal.WithLabelValues(observability.OutcomeExhausted).Inc()
	observability.JobsExhaustedTotal.Inc()

	if err := uc.dispatchRepo.DeleteHelper(ctx, helper.ID); err != nil {
		return fmt.Errorf("failed to delete exhausted helper: %w", err)
	}

	notification := models.UserNotification{
		UserID:    job.RequesterID.String(),
		Title:     "Still searching",
		Message:   "No drivers are currently available, we keep looking for one.",
		Severity:  models.SeverityInfo,
		Timestamp: time.Now(),
	}
	if err := uc.dispatchGW.NotifyUser(ctx, notification); err != nil {
		logger.Error("Failed to notify requester about exhausted search",
			logger.String("job_id", job.ID.String()),
			logger.Err(err))
	}

	return uc.Research(ctx, job.ID, 1)
}

// notifyCandidate pushes the realtime offer event and an informational
// notification to the claimed driver. Both are fire-and-forget.
func (uc *DispatchUC) notifyCandidate(ctx context.Context, job *models.Job, helper *models.DispatchHelper, candidate uuid.UUID, now time.Time) {
	offer := models.JobOfferEvent{
		JobID:      job.ID.String(),
		Kind:       job.Kind,
		DriverID:   candidate.String(),
		Pickup:     job.PickupLocation,
		ExpiresAt:  now.Add(uc.offerTimeout()),
		OfferedAt:  now,
		Requester:  job.RequesterID.String(),
		EventName:  constants.EventJobOffer,
		AttemptSeq: len(helper.DriverIDs),
	}
	if err := uc.dispatchGW.PushJobOffer(ctx, offer); err != nil {
		logger.Error("Failed to push job offer to driver",
			logger.String("job_id", job.ID.String()),
			logger.String("driver_id", candidate.String()),
			logger.Err(err))
	}

	notification := models.UserNotification{
		UserID:    candidate.String(),
		Title:     "New job nearby",
		Message:   fmt.Sprintf("A %s request near you is waiting for a driver.", job.Kind),
		Severity:  models.SeverityInfo,
		Timestamp: now,
	}
	if err := uc.dispatchGW.NotifyUser(ctx, notification); err != nil {
		logger.Error("Failed to notify offered driver",
			logger.String("driver_id", candidate.String()),
			logger.Err(err))
	}
}

// DispatchDue is the poll-trigger entry point: scan for helpers whose
// next attempt time elapsed and run an offer cycle for each, errors
// isolated per helper.
func (uc *DispatchUC) DispatchDue(ctx context.Context, now time.Time) (int, error) {
	helpers, err := uc.dispatchRepo.FindHelpersDue(ctx, now, uc.cfg.Dispatch.PollBatchSize)
	if err != nil {
		return 0, fmt.Errorf("failed to find due helpers: %w", err)
	}

	var wg sync.WaitGroup
	for _, helper := range helpers {
		wg.Add(1)
		go func(id uuid.UUID) {
			defer wg.Done()
			if err := uc.OfferNext(ctx, id); err != nil {
				logger.Error("Offer cycle failed",
					logger.String("helper_id", id.String()),
					logger.Err(err))
			}
		}(helper.ID)
	}
	wg.Wait()

	return len(helpers), nil
}

// JobDispatchStatus returns the job and its helper, if any, for ops
// inspection.
func (uc *DispatchUC) JobDispatchStatus(ctx context.Context, jobID uuid.UUID) (*models.Job, *models.DispatchHelper, error) {
	job, err := uc.dispatchRepo.GetJob(ctx, jobID)
	if err != nil {
		return nil, nil, err
	}
	if job == nil {
		return nil, nil, nil
	}

	helper, err := uc.dispatchRepo.GetHelperByJob(ctx, jobID)
	if err != nil {
		return job, nil, err
	}
	return job, helper, nil
}

// FindNearby exposes the proximity finder for the ops probe endpoint.
func (uc *DispatchUC) FindNearby(ctx context.Context, pickup models.Location, limit int) ([]*models.NearbyDriver, error) {
	if limit <= 0 || limit > uc.cfg.Dispatch.MaxCandidates {
		limit = uc.cfg.Dispatch.MaxCandidates
	}
	return uc.dispatchRepo.FindNearbyDrivers(ctx, pickup, limit)
}
