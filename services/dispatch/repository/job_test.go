package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarkita/dispatch/internal/pkg/database"
	"github.com/antarkita/dispatch/internal/pkg/models"
)

func setupDispatchRepoTest(t *testing.T) (*DispatchRepository, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &DispatchRepository{
		cfg:         &models.Config{Dispatch: models.DispatchConfig{CellPrecision: 5, MaxCandidates: 20}},
		db:          sqlxDB,
		redisClient: &database.RedisClient{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}
	return repo, mock, cleanup
}

var jobColumns = []string{
	"id", "kind", "requester_id",
	"pickup_latitude", "pickup_longitude",
	"dropoff_latitude", "dropoff_longitude",
	"status", "is_processing", "processing_driver_id", "processing_at",
	"requested_at", "updated_at",
}

func TestGetJob(t *testing.T) {
	jobID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440001")
	requesterID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440002")

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, job *models.Job, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				now := time.Now()
				rows := sqlmock.NewRows(jobColumns).AddRow(
					jobID, "trip", requesterID,
					-6.2, 106.8,
					nil, nil,
					"requested", false, nil, nil,
					now, now,
				)
				mock.ExpectQuery("SELECT(.|\\n)*FROM jobs").
					WithArgs(jobID).
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, job *models.Job, err error) {
				assert.NoError(t, err)
				assert.NotNil(t, job)
				assert.Equal(t, models.JobKindTrip, job.Kind)
				assert.Equal(t, -6.2, job.PickupLocation.Latitude)
				assert.Nil(t, job.DropoffLocation)
				assert.True(t, job.Dispatchable())
			},
		},
		{
			name: "Not Found",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT(.|\\n)*FROM jobs").
					WithArgs(jobID).
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, job *models.Job, err error) {
				assert.NoError(t, err)
				assert.Nil(t, job)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT(.|\\n)*FROM jobs").
					WithArgs(jobID).
					WillReturnError(errors.New("connection reset"))
			},
			assertFunc: func(t *testing.T, job *models.Job, err error) {
				assert.Error(t, err)
				assert.Nil(t, job)
				assert.Contains(t, err.Error(), "failed to get job")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupDispatchRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			job, err := repo.GetJob(context.Background(), jobID)

			tc.assertFunc(t, job, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestClaimJob(t *testing.T) {
	jobID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440001")
	driverID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440003")
	now := time.Now()

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, claimed bool, err error)
	}{
		{
			name: "Claim Wins",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE jobs").
					WithArgs(jobID, driverID, now, models.JobStatusRequested).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, claimed bool, err error) {
				assert.NoError(t, err)
				assert.True(t, claimed)
			},
		},
		{
			name: "Claim Loses Race",
			mockSetup: func(mock sqlmock.Sqlmock) {
				// Guard matched no row: another claim or an
				// acceptance got there first
				mock.ExpectExec("UPDATE jobs").
					WithArgs(jobID, driverID, now, models.JobStatusRequested).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertFunc: func(t *testing.T, claimed bool, err error) {
				assert.NoError(t, err)
				assert.False(t, claimed)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("UPDATE jobs").
					WithArgs(jobID, driverID, now, models.JobStatusRequested).
					WillReturnError(errors.New("connection reset"))
			},
			assertFunc: func(t *testing.T, claimed bool, err error) {
				assert.Error(t, err)
				assert.False(t, claimed)
				assert.Contains(t, err.Error(), "failed to claim job")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupDispatchRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			claimed, err := repo.ClaimJob(context.Background(), jobID, driverID, now)

			tc.assertFunc(t, claimed, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestExpireJob(t *testing.T) {
	jobID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440001")
	now := time.Now()

	t.Run("Expires Requested Job", func(t *testing.T) {
		repo, mock, cleanup := setupDispatchRepoTest(t)
		defer cleanup()

		mock.ExpectExec("UPDATE jobs").
			WithArgs(jobID, models.JobStatusExpired, now, models.JobStatusRequested).
			WillReturnResult(sqlmock.NewResult(0, 1))

		expired, err := repo.ExpireJob(context.Background(), jobID, now)

		assert.NoError(t, err)
		assert.True(t, expired)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Job Already Moved On", func(t *testing.T) {
		repo, mock, cleanup := setupDispatchRepoTest(t)
		defer cleanup()

		mock.ExpectExec("UPDATE jobs").
			WithArgs(jobID, models.JobStatusExpired, now, models.JobStatusRequested).
			WillReturnResult(sqlmock.NewResult(0, 0))

		expired, err := repo.ExpireJob(context.Background(), jobID, now)

		assert.NoError(t, err)
		assert.False(t, expired)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
