package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/antarkita/dispatch/internal/pkg/models"
	"github.com/google/uuid"
)

// GetJob retrieves a job by ID. Returns (nil, nil) when the job does
// not exist.
func (r *DispatchRepository) GetJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	query := `
		SELECT
			id, kind, requester_id,
			pickup_latitude, pickup_longitude,
			dropoff_latitude, dropoff_longitude,
			status, is_processing, processing_driver_id, processing_at,
			requested_at, updated_at
		FROM jobs
		WHERE id = $1
	`

	var dto models.JobDTO
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&dto.ID, &dto.Kind, &dto.RequesterID,
		&dto.PickupLatitude, &dto.PickupLongitude,
		&dto.DropoffLatitude, &dto.DropoffLongitude,
		&dto.Status, &dto.IsProcessing, &dto.ProcessingDriverID, &dto.ProcessingAt,
		&dto.RequestedAt, &dto.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get job: %w", err)
	}

	return dto.ToJob(), nil
}

// ClaimJob atomically marks a job as processing with the given driver.
// The guard on status and is_processing makes this the single CAS that
// decides which trigger wins a concurrent dispatch race; it must stay
// one statement, never a read-then-write pair.
func (r *DispatchRepository) ClaimJob(ctx context.Context, jobID, driverID uuid.UUID, now time.Time) (bool, error) {
	query := `
		UPDATE jobs
		SET is_processing = true,
			processing_driver_id = $2,
			processing_at = $3,
			updated_at = $3
		WHERE id = $1
		  AND status = $4
		  AND is_processing = false
	`

	result, err := r.db.ExecContext(ctx, query, jobID, driverID, now, models.JobStatusRequested)
	if err != nil {
		return false, fmt.Errorf("failed to claim job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read claim result: %w", err)
	}

	return rows == 1, nil
}

// ExpireJob terminates a still-requested job whose search budget ran
// out, with the same guard as ClaimJob.
func (r *DispatchRepository) ExpireJob(ctx context.Context, jobID uuid.UUID, now time.Time) (bool, error) {
	query := `
		UPDATE jobs
		SET status = $2,
			updated_at = $3
		WHERE id = $1
		  AND status = $4
		  AND is_processing = false
	`

	result, err := r.db.ExecContext(ctx, query, jobID, models.JobStatusExpired, now, models.JobStatusRequested)
	if err != nil {
		return false, fmt.Errorf("failed to expire job: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read expire result: %w", err)
	}

	return rows == 1, nil
}
