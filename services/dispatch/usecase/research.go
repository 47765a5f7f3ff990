package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/antarkita/dispatch/internal/pkg/logger"
	"github.com/antarkita/dispatch/internal/pkg/models"
	"github.com/antarkita/dispatch/internal/pkg/observability"
	"github.com/google/uuid"
)

// Research re-runs the candidate search for a job whose queue drained
// without an acceptance. Found candidates start a fresh offer cycle
// immediately; an empty search schedules the next round after the
// research backoff. The loop ends when the job leaves the requested
// state, or when the configured round budget (if any) runs out.
func (uc *DispatchUC) Research(ctx context.Context, jobID uuid.UUID, round int) error {
	job, err := uc.dispatchRepo.GetJob(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to load job for re-search: %w", err)
	}
	if job == nil || !job.Dispatchable() {
		// Cancelled, accepted or an offer is in flight: the loop is over.
		return nil
	}

	if max := uc.cfg.Dispatch.MaxResearchRounds; max > 0 && round > max {
		return uc.expireJob(ctx, job)
	}

	observability.ResearchRoundsTotal.Inc()

	candidates, err := uc.dispatchRepo.FindNearbyDrivers(ctx, job.PickupLocation, uc.cfg.Dispatch.MaxCandidates)
	if err != nil {
		return fmt.Errorf("failed to search nearby drivers: %w", err)
	}

	if len(candidates) == 0 {
		logger.Debug("Re-search found no candidates, scheduling next round",
			logger.String("job_id", job.ID.String()),
			logger.Int("round", round))

		msg := models.ResearchMessage{
			JobID:      job.ID.String(),
			Round:      round + 1,
			EnqueuedAt: time.Now(),
		}
		return uc.dispatchGW.ScheduleResearch(ctx, msg, uc.researchDelay())
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

	helper, err := uc.dispatchRepo.CreateHelper(ctx, job.ID, driverIDs, time.Now())
	if err != nil {
		return fmt.Errorf("failed to create helper after re-search: %w", err)
	}

	logger.Info("Re-search found candidates, dispatching",
		logger.String("job_id", job.ID.String()),
		logger.Int("candidates", len(driverIDs)),
		logger.Int("round", round))

	// Offer immediately rather than waiting for the next trigger tick.
	return uc.OfferNext(ctx, helper.ID)
}

// expireJob terminates a job whose re-search budget ran out.
func (uc *DispatchUC) expireJob(ctx context.Context, job *models.Job) error {
	expired, err := uc.dispatchRepo.ExpireJob(ctx, job.ID, time.Now())
	if err != nil {
		return fmt.Errorf("failed to expire job: %w", err)
	}
	if !expired {
		// Someone accepted or cancelled in the meantime.
		return nil
	}

	logger.Info("Job expired after exhausting re-search rounds",
		logger.String("job_id", job.ID.String()),
		logger.Int("max_rounds", uc.cfg.Dispatch.MaxResearchRounds))

	if err := uc.dispatchGW.PublishJobExpired(ctx, job.ID.String()); err != nil {
		logger.Error("Failed to publish job expired event",
			logger.String("job_id", job.ID.String()),
			logger.Err(err))
	}

	notification := models.UserNotification{
		UserID:    job.RequesterID.String(),
		Title:     "No drivers found",
		Message:   "We could not find a driver for your request. Please try again later.",
		Severity:  models.SeverityWarning,
		Timestamp: time.Now(),
	}
	if err := uc.dispatchGW.NotifyUser(ctx, notification); err != nil {
		logger.Error("Failed to notify requester about expired job",
			logger.String("job_id", job.ID.String()),
			logger.Err(err))
	}

	return nil
}
