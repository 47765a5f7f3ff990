package models

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
)

// JobKind distinguishes the two job shapes moved by the dispatch engine.
type JobKind string

const (
	JobKindTrip   JobKind = "trip"
	JobKindParcel JobKind = "parcel"
)

// JobStatus represents the lifecycle state of a job
type JobStatus string

const (
	JobStatusRequested JobStatus = "requested"
	JobStatusAccepted  JobStatus = "accepted"
	JobStatusOngoing   JobStatus = "ongoing"
	JobStatusCompleted JobStatus = "completed"
	JobStatusCancelled JobStatus = "cancelled"
	JobStatusExpired   JobStatus = "expired"
)

// Job represents a trip or parcel request that needs a driver.
//
// While an offer is outstanding, IsProcessing is true and
// ProcessingDriverID holds the single driver the job is offered to; the
// status stays "requested" until the driver accepts. At most one driver
// is ever attached to the processing fields at a time.
type Job struct {
	ID                 uuid.UUID  `json:"id" db:"id"`
	Kind               JobKind    `json:"kind" db:"kind"`
	RequesterID        uuid.UUID  `json:"requester_id" db:"requester_id"`
	PickupLocation     Location   `json:"pickup_location"`
	DropoffLocation    *Location  `json:"dropoff_location,omitempty"`
	Status             JobStatus  `json:"status" db:"status"`
	IsProcessing       bool       `json:"is_processing" db:"is_processing"`
	ProcessingDriverID *uuid.UUID `json:"processing_driver_id,omitempty" db:"processing_driver_id"`
	ProcessingAt       *time.Time `json:"processing_at,omitempty" db:"processing_at"`
	RequestedAt        time.Time  `json:"requested_at" db:"requested_at"`
	UpdatedAt          time.Time  `json:"updated_at" db:"updated_at"`
}

// Dispatchable reports whether the dispatcher may offer this job to a
// new candidate. This is the re-validation guard every trigger runs
// before touching anything.
func (j *Job) Dispatchable() bool {
	return j.Status == JobStatusRequested && !j.IsProcessing
}

// JobDTO flattens the nested Location structs for database scans.
type JobDTO struct {
	ID                 uuid.UUID       `db:"id"`
	Kind               JobKind         `db:"kind"`
	RequesterID        uuid.UUID       `db:"requester_id"`
	PickupLatitude     float64         `db:"pickup_latitude"`
	PickupLongitude    float64         `db:"pickup_longitude"`
	DropoffLatitude    sql.NullFloat64 `db:"dropoff_latitude"`
	DropoffLongitude   sql.NullFloat64 `db:"dropoff_longitude"`
	Status             JobStatus       `db:"status"`
	IsProcessing       bool            `db:"is_processing"`
	ProcessingDriverID *uuid.UUID      `db:"processing_driver_id"`
	ProcessingAt       sql.NullTime    `db:"processing_at"`
	RequestedAt        time.Time       `db:"requested_at"`
	UpdatedAt          time.Time       `db:"updated_at"`
}

// ToJob converts a JobDTO to a Job
func (dto *JobDTO) ToJob() *Job {
	job := &Job{
		ID:          dto.ID,
		Kind:        dto.Kind,
		RequesterID: dto.RequesterID,
		PickupLocation: Location{
			Latitude:  dto.PickupLatitude,
			Longitude: dto.PickupLongitude,
		},
		Status:             dto.Status,
		IsProcessing:       dto.IsProcessing,
		ProcessingDriverID: dto.ProcessingDriverID,
		RequestedAt:        dto.RequestedAt,
		UpdatedAt:          dto.UpdatedAt,
	}

	if dto.DropoffLatitude.Valid && dto.DropoffLongitude.Valid {
		job.DropoffLocation = &Location{
			Latitude:  dto.DropoffLatitude.Float64,
			Longitude: dto.DropoffLongitude.Float64,
		}
	}
	if dto.ProcessingAt.Valid {
		t := dto.ProcessingAt.Time
		job.ProcessingAt = &t
	}

	return job
}
