package models

import "time"

// JobRequestedEvent is published by the job service when a new trip or
// parcel request needs a driver.
type JobRequestedEvent struct {
	JobID       string    `json:"job_id"`
	Kind        JobKind   `json:"kind"`
	RequesterID string    `json:"requester_id"`
	Pickup      Location  `json:"pickup"`
	Timestamp   time.Time `json:"timestamp"`
}

// JobDeclinedEvent is published by the accept handler when the offered
// driver declines or the offer times out. The handler has already reset
// the job's processing fields before publishing.
type JobDeclinedEvent struct {
	JobID     string    `json:"job_id"`
	DriverID  string    `json:"driver_id"`
	Timestamp time.Time `json:"timestamp"`
}

// JobCancelledEvent is published when the requester cancels a job.
type JobCancelledEvent struct {
	JobID     string    `json:"job_id"`
	Timestamp time.Time `json:"timestamp"`
}

// DriverBeaconEvent is published by the realtime edge when a driver
// toggles availability or reports a location update.
type DriverBeaconEvent struct {
	DriverID  string    `json:"driver_id"`
	IsActive  bool      `json:"is_active"`
	Location  Location  `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}

// JobOfferEvent is what the realtime edge delivers to a driver when the
// dispatcher offers them a job. Best-effort, no delivery confirmation.
type JobOfferEvent struct {
	JobID      string    `json:"job_id"`
	Kind       JobKind   `json:"kind"`
	DriverID   string    `json:"driver_id"`
	Pickup     Location  `json:"pickup"`
	ExpiresAt  time.Time `json:"expires_at"`
	OfferedAt  time.Time `json:"offered_at"`
	Requester  string    `json:"requester_id"`
	EventName  string    `json:"event"`
	AttemptSeq int       `json:"attempt_seq"`
}

// UserNotification is an informational message for a user, delivered by
// the notification service.
type UserNotification struct {
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Severity  string    `json:"severity"`
	Timestamp time.Time `json:"timestamp"`
}

// Notification severities
const (
	SeverityInfo    = "info"
	SeverityWarning = "warning"
)

// DispatchTriggerMessage is the deferred-queue payload that re-invokes
// the dispatcher for a helper after the offer timeout elapses.
type DispatchTriggerMessage struct {
	HelperID   string    `json:"helper_id"`
	JobID      string    `json:"job_id"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// ResearchMessage is the deferred-queue payload that re-runs the
// candidate search for a job after the research backoff elapses.
type ResearchMessage struct {
	JobID      string    `json:"job_id"`
	Round      int       `json:"round"`
	EnqueuedAt time.Time `json:"enqueued_at"`
}
