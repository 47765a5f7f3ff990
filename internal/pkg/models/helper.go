package models

import (
	"time"

	"github.com/google/uuid"
)

// DispatchHelper tracks the remaining candidate-driver queue and the
// next offer time for one job. It is owned 1:1 by its job: created when
// the job is requested (or re-created after a successful re-search),
// advanced by the dispatcher on every offer cycle, and deleted when the
// queue drains or the job leaves the requested state.
type DispatchHelper struct {
	ID            uuid.UUID   `json:"id" db:"id"`
	JobID         uuid.UUID   `json:"job_id" db:"job_id"`
	DriverIDs     []uuid.UUID `json:"driver_ids"`
	NextAttemptAt time.Time   `json:"next_attempt_at" db:"next_attempt_at"`
	CreatedAt     time.Time   `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time   `json:"updated_at" db:"updated_at"`
}

// Head returns the next candidate to offer and the remaining tail.
// ok is false when the queue is exhausted.
func (h *DispatchHelper) Head() (head uuid.UUID, tail []uuid.UUID, ok bool) {
	if len(h.DriverIDs) == 0 {
		return uuid.Nil, nil, false
	}
	return h.DriverIDs[0], h.DriverIDs[1:], true
}
