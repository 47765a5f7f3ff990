package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/antarkita/dispatch/internal/pkg/models"
	"github.com/antarkita/dispatch/services/dispatch/mocks"
	"github.com/antarkita/dispatch/services/dispatch/usecase"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestResearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatchRepo := mocks.NewMockDispatchRepo(ctrl)
	dispatchGW := mocks.NewMockDispatchGW(ctrl)
	uc := usecase.NewDispatchUC(testConfig(), dispatchRepo, dispatchGW)

	ctx := context.Background()
	requesterID := uuid.New()

	t.Run("found candidates start a fresh offer cycle", func(t *testing.T) {
		job := requestedJob(requesterID)
		driverID := uuid.New()
		helper := &models.DispatchHelper{
			ID:        uuid.New(),
			JobID:     job.ID,
			DriverIDs: []uuid.UUID{driverID},
		}

		dispatchRepo.EXPECT().GetJob(ctx, job.ID).Return(job, nil).Times(2)
		dispatchRepo.EXPECT().FindNearbyDrivers(ctx, job.PickupLocation, 20).Return(
			[]*models.NearbyDriver{{ID: driverID.String()}}, nil)
		dispatchRepo.EXPECT().CreateHelper(ctx, job.ID, []uuid.UUID{driverID}, gomock.Any()).Return(helper, nil)

		// The offer cycle runs immediately against the new helper
		dispatchRepo.EXPECT().GetHelper(ctx, helper.ID).Return(helper, nil)
		dispatchRepo.EXPECT().ClaimJob(ctx, job.ID, driverID, gomock.Any()).Return(true, nil)
		dispatchGW.EXPECT().PushJobOffer(ctx, gomock.Any()).Return(nil)
		dispatchGW.EXPECT().NotifyUser(ctx, gomock.Any()).Return(nil)
		dispatchRepo.EXPECT().SetDriverOnline(ctx, driverID.String(), false).Return(nil)
		dispatchRepo.EXPECT().SetDriverOffer(ctx, driverID.String(), job.ID.String()).Return(nil)
		dispatchRepo.EXPECT().DeleteHelper(ctx, helper.ID).Return(nil)

		err := uc.Research(ctx, job.ID, 2)

		assert.NoError(t, err)
	})

	t.Run("empty search schedules the next round", func(t *testing.T) {
		job := requestedJob(requesterID)

		dispatchRepo.EXPECT().GetJob(ctx, job.ID).Return(job, nil)
		dispatchRepo.EXPECT().FindNearbyDrivers(ctx, job.PickupLocation, 20).Return(nil, nil)
		dispatchGW.EXPECT().ScheduleResearch(ctx, gomock.Any(), 10*time.Second).DoAndReturn(
			func(_ context.Context, msg models.ResearchMessage, _ time.Duration) error {
				assert.Equal(t, job.ID.String(), msg.JobID)
				assert.Equal(t, 4, msg.Round)
				return nil
			})

		err := uc.Research(ctx, job.ID, 3)

		assert.NoError(t, err)
	})

	t.Run("stops when the job left the requested state", func(t *testing.T) {
		job := requestedJob(requesterID)
		job.Status = models.JobStatusCancelled

		dispatchRepo.EXPECT().GetJob(ctx, job.ID).Return(job, nil)

		err := uc.Research(ctx, job.ID, 2)

		assert.NoError(t, err)
	})

	t.Run("stops when the job is gone", func(t *testing.T) {
		jobID := uuid.New()
		dispatchRepo.EXPECT().GetJob(ctx, jobID).Return(nil, nil)

		err := uc.Research(ctx, jobID, 1)

		assert.NoError(t, err)
	})
}

func TestResearchRoundBudget(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testConfig()
	cfg.Dispatch.MaxResearchRounds = 3

	dispatchRepo := mocks.NewMockDispatchRepo(ctrl)
	dispatchGW := mocks.NewMockDispatchGW(ctrl)
	uc := usecase.NewDispatchUC(cfg, dispatchRepo, dispatchGW)

	ctx := context.Background()
	requesterID := uuid.New()

	t.Run("expires the job past the final round", func(t *testing.T) {
		job := requestedJob(requesterID)

		dispatchRepo.EXPECT().GetJob(ctx, job.ID).Return(job, nil)
		dispatchRepo.EXPECT().ExpireJob(ctx, job.ID, gomock.Any()).Return(true, nil)
		dispatchGW.EXPECT().PublishJobExpired(ctx, job.ID.String()).Return(nil)
		dispatchGW.EXPECT().NotifyUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, n models.UserNotification) error {
				assert.Equal(t, requesterID.String(), n.UserID)
				assert.Equal(t, models.SeverityWarning, n.Severity)
				return nil
			})

		err := uc.Research(ctx, job.ID, 4)

		assert.NoError(t, err)
	})

	t.Run("still searches on the final round", func(t *testing.T) {
		job := requestedJob(requesterID)

		dispatchRepo.EXPECT().GetJob(ctx, job.ID).Return(job, nil)
		dispatchRepo.EXPECT().FindNearbyDrivers(ctx, job.PickupLocation, 20).Return(nil, nil)
		dispatchGW.EXPECT().ScheduleResearch(ctx, gomock.Any(), gomock.Any()).Return(nil)

		err := uc.Research(ctx, job.ID, 3)

		assert.NoError(t, err)
	})

	t.Run("expiry losing the race publishes nothing", func(t *testing.T) {
		job := requestedJob(requesterID)

		dispatchRepo.EXPECT().GetJob(ctx, job.ID).Return(job, nil)
		dispatchRepo.EXPECT().ExpireJob(ctx, job.ID, gomock.Any()).Return(false, nil)

		err := uc.Research(ctx, job.ID, 4)

		assert.NoError(t, err)
	})
}
