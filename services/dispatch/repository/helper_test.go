package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/antarkita/dispatch/internal/pkg/models"
)

var helperTestColumns = []string{"id", "job_id", "driver_ids", "next_attempt_at", "created_at", "updated_at"}

func TestGetHelper(t *testing.T) {
	helperID := uuid.MustParse("660e8400-e29b-41d4-a716-446655440001")
	jobID := uuid.MustParse("660e8400-e29b-41d4-a716-446655440002")
	first := uuid.MustParse("660e8400-e29b-41d4-a716-446655440003")
	second := uuid.MustParse("660e8400-e29b-41d4-a716-446655440004")

	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupDispatchRepoTest(t)
		defer cleanup()

		queueJSON, err := json.Marshal([]uuid.UUID{first, second})
		require.NoError(t, err)

		now := time.Now()
		rows := sqlmock.NewRows(helperTestColumns).
			AddRow(helperID, jobID, queueJSON, now, now, now)
		mock.ExpectQuery("SELECT(.|\\n)*FROM dispatch_helpers WHERE id").
			WithArgs(helperID).
			WillReturnRows(rows)

		helper, err := repo.GetHelper(context.Background(), helperID)

		assert.NoError(t, err)
		assert.NotNil(t, helper)
		assert.Equal(t, jobID, helper.JobID)
		// FIFO order survives the jsonb round trip
		assert.Equal(t, []uuid.UUID{first, second}, helper.DriverIDs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		repo, mock, cleanup := setupDispatchRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("SELECT(.|\\n)*FROM dispatch_helpers WHERE id").
			WithArgs(helperID).
			WillReturnError(sql.ErrNoRows)

		helper, err := repo.GetHelper(context.Background(), helperID)

		assert.NoError(t, err)
		assert.Nil(t, helper)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty Queue", func(t *testing.T) {
		repo, mock, cleanup := setupDispatchRepoTest(t)
		defer cleanup()

		now := time.Now()
		rows := sqlmock.NewRows(helperTestColumns).
			AddRow(helperID, jobID, []byte("[]"), now, now, now)
		mock.ExpectQuery("SELECT(.|\\n)*FROM dispatch_helpers WHERE id").
			WithArgs(helperID).
			WillReturnRows(rows)

		helper, err := repo.GetHelper(context.Background(), helperID)

		assert.NoError(t, err)
		assert.NotNil(t, helper)
		assert.Empty(t, helper.DriverIDs)

		_, _, ok := helper.Head()
		assert.False(t, ok)
	})
}

func TestCreateHelper(t *testing.T) {
	jobID := uuid.MustParse("660e8400-e29b-41d4-a716-446655440002")
	first := uuid.MustParse("660e8400-e29b-41d4-a716-446655440003")
	nextAttempt := time.Now()

	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupDispatchRepoTest(t)
		defer cleanup()

		returnedID := uuid.New()
		mock.ExpectQuery("INSERT INTO dispatch_helpers").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(returnedID))

		helper, err := repo.CreateHelper(context.Background(), jobID, []uuid.UUID{first}, nextAttempt)

		assert.NoError(t, err)
		assert.NotNil(t, helper)
		assert.Equal(t, returnedID, helper.ID)
		assert.Equal(t, jobID, helper.JobID)
		assert.Equal(t, []uuid.UUID{first}, helper.DriverIDs)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nil Queue Becomes Empty", func(t *testing.T) {
		repo, mock, cleanup := setupDispatchRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("INSERT INTO dispatch_helpers").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New()))

		helper, err := repo.CreateHelper(context.Background(), jobID, nil, nextAttempt)

		assert.NoError(t, err)
		assert.NotNil(t, helper)
		assert.NotNil(t, helper.DriverIDs)
		assert.Empty(t, helper.DriverIDs)
	})
}

func TestUpdateHelper(t *testing.T) {
	helperID := uuid.MustParse("660e8400-e29b-41d4-a716-446655440001")
	second := uuid.MustParse("660e8400-e29b-41d4-a716-446655440004")
	nextAttempt := time.Now().Add(5 * time.Second)

	repo, mock, cleanup := setupDispatchRepoTest(t)
	defer cleanup()

	queueJSON, err := json.Marshal([]uuid.UUID{second})
	require.NoError(t, err)

	mock.ExpectExec("UPDATE dispatch_helpers").
		WithArgs(helperID, queueJSON, nextAttempt, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err = repo.UpdateHelper(context.Background(), helperID, []uuid.UUID{second}, nextAttempt)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteHelper(t *testing.T) {
	helperID := uuid.MustParse("660e8400-e29b-41d4-a716-446655440001")
	jobID := uuid.MustParse("660e8400-e29b-41d4-a716-446655440002")

	t.Run("By ID", func(t *testing.T) {
		repo, mock, cleanup := setupDispatchRepoTest(t)
		defer cleanup()

		mock.ExpectExec("DELETE FROM dispatch_helpers WHERE id").
			WithArgs(helperID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.DeleteHelper(context.Background(), helperID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("By Job Tolerates Missing Helper", func(t *testing.T) {
		repo, mock, cleanup := setupDispatchRepoTest(t)
		defer cleanup()

		mock.ExpectExec("DELETE FROM dispatch_helpers WHERE job_id").
			WithArgs(jobID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.NoError(t, repo.DeleteHelperByJob(context.Background(), jobID))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFindHelpersDue(t *testing.T) {
	now := time.Now()

	t.Run("Returns Due Helpers Oldest First", func(t *testing.T) {
		repo, mock, cleanup := setupDispatchRepoTest(t)
		defer cleanup()

		olderID := uuid.New()
		newerID := uuid.New()
		rows := sqlmock.NewRows(helperTestColumns).
			AddRow(olderID, uuid.New(), []byte("[]"), now.Add(-10*time.Second), now, now).
			AddRow(newerID, uuid.New(), []byte("[]"), now.Add(-2*time.Second), now, now)

		mock.ExpectQuery("SELECT(.|\\n)*FROM dispatch_helpers h(.|\\n)*JOIN jobs j").
			WithArgs(now, models.JobStatusRequested, 100).
			WillReturnRows(rows)

		helpers, err := repo.FindHelpersDue(context.Background(), now, 100)

		assert.NoError(t, err)
		assert.Len(t, helpers, 2)
		assert.Equal(t, olderID, helpers[0].ID)
		assert.Equal(t, newerID, helpers[1].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty Scan", func(t *testing.T) {
		repo, mock, cleanup := setupDispatchRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("SELECT(.|\\n)*FROM dispatch_helpers h(.|\\n)*JOIN jobs j").
			WithArgs(now, models.JobStatusRequested, 100).
			WillReturnRows(sqlmock.NewRows(helperTestColumns))

		helpers, err := repo.FindHelpersDue(context.Background(), now, 100)

		assert.NoError(t, err)
		assert.Empty(t, helpers)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
