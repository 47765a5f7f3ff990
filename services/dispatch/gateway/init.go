package gateway

import (
	"github.com/antarkita/dispatch/internal/pkg/nsq"
	"github.com/antarkita/dispatch/internal/pkg/retry"
)

// DispatchGateway publishes the dispatch engine's outbound events over
// NSQ: realtime offers for the edge service, user notifications for the
// notification service, and the deferred messages that drive its own
// trigger and re-search timing.
type DispatchGateway struct {
	producer *nsq.Producer
	retrier  *retry.Retrier
}

// NewDispatchGateway creates a new dispatch gateway
func NewDispatchGateway(producer *nsq.Producer) *DispatchGateway {
	return &DispatchGateway{
		producer: producer,
		retrier:  retry.NewWithDefaults(),
	}
}
