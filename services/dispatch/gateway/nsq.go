package gateway

import (
	"context"
	"time"

	"github.com/antarkita/dispatch/internal/pkg/constants"
	"github.com/antarkita/dispatch/internal/pkg/logger"
	"github.com/antarkita/dispatch/internal/pkg/models"
)

// PushJobOffer publishes a job offer for the realtime edge to deliver
// to the driver. Fire-and-forget: a lost offer simply times out and the
// next candidate gets tried.
func (g *DispatchGateway) PushJobOffer(ctx context.Context, offer models.JobOfferEvent) error {
	if err := g.producer.Publish(constants.TopicDriverOffer, offer); err != nil {
		return err
	}

	logger.Info("Published job offer",
		logger.String("job_id", offer.JobID),
		logger.String("driver_id", offer.DriverID))
	return nil
}

// NotifyUser publishes an informational notification. Retried briefly:
// these are user-visible, but still best-effort.
func (g *DispatchGateway) NotifyUser(ctx context.Context, notification models.UserNotification) error {
	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.producer.Publish(constants.TopicUserNotification, notification)
	})
}

// PublishJobExpired tells the job service a job ran out of its
// re-search budget.
func (g *DispatchGateway) PublishJobExpired(ctx context.Context, jobID string) error {
	event := map[string]interface{}{
		"job_id":    jobID,
		"timestamp": time.Now(),
	}
	return g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.producer.Publish(constants.TopicJobExpired, event)
	})
}

// ScheduleTrigger enqueues a deferred dispatch trigger for a helper.
// nsqd holds the message until the delay elapses.
func (g *DispatchGateway) ScheduleTrigger(ctx context.Context, msg models.DispatchTriggerMessage, delay time.Duration) error {
	return g.producer.DeferredPublish(constants.TopicDispatchTrigger, delay, msg)
}

// ScheduleResearch enqueues a deferred re-search round for a job.
func (g *DispatchGateway) ScheduleResearch(ctx context.Context, msg models.ResearchMessage, delay time.Duration) error {
	return g.producer.DeferredPublish(constants.TopicDispatchResearch, delay, msg)
}
