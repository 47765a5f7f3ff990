package dispatch

import (
	"context"
	"time"

	"github.com/antarkita/dispatch/internal/pkg/models"
)

// DispatchGW defines the outbound edges of the dispatch engine: the
// realtime layer, the notification service and the deferred trigger
// queue. All pushes are best-effort; the engine never waits for
// delivery confirmation.
type DispatchGW interface {
	PushJobOffer(ctx context.Context, offer models.JobOfferEvent) error
	NotifyUser(ctx context.Context, notification models.UserNotification) error
	PublishJobExpired(ctx context.Context, jobID string) error

	ScheduleTrigger(ctx context.Context, msg models.DispatchTriggerMessage, delay time.Duration) error
	ScheduleResearch(ctx context.Context, msg models.ResearchMessage, delay time.Duration) error
}
