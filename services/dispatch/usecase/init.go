package usecase

import (
	"time"

	"github.com/antarkita/dispatch/internal/pkg/models"
	"github.com/antarkita/dispatch/services/dispatch"
)

// TriggerQueue advances offers with deferred NSQ messages; TriggerPoll
// relies on the periodic due-helper scan.
const (
	TriggerQueue = "queue"
	TriggerPoll  = "poll"
)

// DispatchUC implements the dispatch use case interface
type DispatchUC struct {
	cfg          *models.Config
	dispatchRepo dispatch.DispatchRepo
	dispatchGW   dispatch.DispatchGW
}

// NewDispatchUC creates a new dispatch use case
func NewDispatchUC(
	cfg *models.Config,
	dispatchRepo dispatch.DispatchRepo,
	dispatchGW dispatch.DispatchGW,
) *DispatchUC {
	return &DispatchUC{
		cfg:          cfg,
		dispatchRepo: dispatchRepo,
		dispatchGW:   dispatchGW,
	}
}

func (uc *DispatchUC) offerTimeout() time.Duration {
	return time.Duration(uc.cfg.Dispatch.OfferTimeoutSec) * time.Second
}

func (uc *DispatchUC) researchDelay() time.Duration {
	return time.Duration(uc.cfg.Dispatch.ResearchDelaySec) * time.Second
}

func (uc *DispatchUC) queueTriggered() bool {
	return uc.cfg.Dispatch.Trigger != TriggerPoll
}
