package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/antarkita/dispatch/internal/pkg/models"
	"github.com/google/uuid"
)

// helperDTO flattens the jsonb candidate queue for database scans
type helperDTO struct {
	ID            uuid.UUID `db:"id"`
	JobID         uuid.UUID `db:"job_id"`
	DriverIDs     []byte    `db:"driver_ids"`
	NextAttemptAt time.Time `db:"next_attempt_at"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

func (dto *helperDTO) toHelper() (*models.DispatchHelper, error) {
	var driverIDs []uuid.UUID
	if len(dto.DriverIDs) > 0 {
		if err := json.Unmarshal(dto.DriverIDs, &driverIDs); err != nil {
			return nil, fmt.Errorf("failed to decode candidate queue: %w", err)
		}
	}

	return &models.DispatchHelper{
		ID:            dto.ID,
		JobID:         dto.JobID,
		DriverIDs:     driverIDs,
		NextAttemptAt: dto.NextAttemptAt,
		CreatedAt:     dto.CreatedAt,
		UpdatedAt:     dto.UpdatedAt,
	}, nil
}

const helperColumns = "id, job_id, driver_ids, next_attempt_at, created_at, updated_at"

// GetHelper retrieves a dispatch helper by ID. Returns (nil, nil) when
// it does not exist.
func (r *DispatchRepository) GetHelper(ctx context.Context, id uuid.UUID) (*models.DispatchHelper, error) {
	query := `SELECT ` + helperColumns + ` FROM dispatch_helpers WHERE id = $1`

	var dto helperDTO
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&dto.ID, &dto.JobID, &dto.DriverIDs, &dto.NextAttemptAt, &dto.CreatedAt, &dto.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get helper: %w", err)
	}

	return dto.toHelper()
}

// GetHelperByJob retrieves the dispatch helper owned by a job, if any.
func (r *DispatchRepository) GetHelperByJob(ctx context.Context, jobID uuid.UUID) (*models.DispatchHelper, error) {
	query := `SELECT ` + helperColumns + ` FROM dispatch_helpers WHERE job_id = $1`

	var dto helperDTO
	err := r.db.QueryRowContext(ctx, query, jobID).Scan(
		&dto.ID, &dto.JobID, &dto.DriverIDs, &dto.NextAttemptAt, &dto.CreatedAt, &dto.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get helper by job: %w", err)
	}

	return dto.toHelper()
}

// CreateHelper persists a new candidate queue for a job. The job_id
// unique constraint plus the upsert keeps the helper 1:1 with its job
// even when a re-search races a duplicate trigger.
func (r *DispatchRepository) CreateHelper(ctx context.Context, jobID uuid.UUID, driverIDs []uuid.UUID, nextAttemptAt time.Time) (*models.DispatchHelper, error) {
	if driverIDs == nil {
		driverIDs = []uuid.UUID{}
	}
	queueJSON, err := json.Marshal(driverIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode candidate queue: %w", err)
	}

	helper := &models.DispatchHelper{
		ID:            uuid.New(),
		JobID:         jobID,
		DriverIDs:     driverIDs,
		NextAttemptAt: nextAttemptAt,
	}
	now := time.Now()
	helper.CreatedAt = now
	helper.UpdatedAt = now

	query := `
		INSERT INTO dispatch_helpers (id, job_id, driver_ids, next_attempt_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $5)
		ON CONFLICT (job_id) DO UPDATE
		SET driver_ids = EXCLUDED.driver_ids,
			next_attempt_at = EXCLUDED.next_attempt_at,
			updated_at = EXCLUDED.updated_at
		RETURNING id
	`

	if err := r.db.QueryRowContext(ctx, query, helper.ID, jobID, queueJSON, nextAttemptAt, now).Scan(&helper.ID); err != nil {
		return nil, fmt.Errorf("failed to create helper: %w", err)
	}

	return helper, nil
}

// UpdateHelper replaces the candidate queue and next attempt time.
func (r *DispatchRepository) UpdateHelper(ctx context.Context, id uuid.UUID, driverIDs []uuid.UUID, nextAttemptAt time.Time) error {
	if driverIDs == nil {
		driverIDs = []uuid.UUID{}
	}
	queueJSON, err := json.Marshal(driverIDs)
	if err != nil {
		return fmt.Errorf("failed to encode candidate queue: %w", err)
	}

	query := `
		UPDATE dispatch_helpers
		SET driver_ids = $2, next_attempt_at = $3, updated_at = $4
		WHERE id = $1
	`

	if _, err := r.db.ExecContext(ctx, query, id, queueJSON, nextAttemptAt, time.Now()); err != nil {
		return fmt.Errorf("failed to update helper: %w", err)
	}
	return nil
}

// DeleteHelper removes a dispatch helper. Deleting an already-deleted
// helper is not an error.
func (r *DispatchRepository) DeleteHelper(ctx context.Context, id uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM dispatch_helpers WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete helper: %w", err)
	}
	return nil
}

// DeleteHelperByJob removes the helper owned by a job, if any.
func (r *DispatchRepository) DeleteHelperByJob(ctx context.Context, jobID uuid.UUID) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM dispatch_helpers WHERE job_id = $1`, jobID); err != nil {
		return fmt.Errorf("failed to delete helper by job: %w", err)
	}
	return nil
}

// FindHelpersDue returns helpers whose next attempt time has elapsed
// and whose parent job is still waiting for an offer, oldest first.
func (r *DispatchRepository) FindHelpersDue(ctx context.Context, now time.Time, batchSize int) ([]*models.DispatchHelper, error) {
	query := `
		SELECT h.id, h.job_id, h.driver_ids, h.next_attempt_at, h.created_at, h.updated_at
		FROM dispatch_helpers h
		JOIN jobs j ON j.id = h.job_id
		WHERE h.next_attempt_at <= $1
		  AND j.status = $2
		  AND j.is_processing = false
		ORDER BY h.next_attempt_at ASC
		LIMIT $3
	`

	rows, err := r.db.QueryContext(ctx, query, now, models.JobStatusRequested, batchSize)
	if err != nil {
		return nil, fmt.Errorf("failed to query due helpers: %w", err)
	}
	defer rows.Close()

	var helpers []*models.DispatchHelper
	for rows.Next() {
		var dto helperDTO
		if err := rows.Scan(&dto.ID, &dto.JobID, &dto.DriverIDs, &dto.NextAttemptAt, &dto.CreatedAt, &dto.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan due helper: %w", err)
		}

		helper, err := dto.toHelper()
		if err != nil {
			return nil, err
		}
		helpers = append(helpers, helper)
	}

	return helpers, rows.Err()
}
