package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/antarkita/dispatch/internal/pkg/logger"
	"github.com/antarkita/dispatch/internal/pkg/models"
	"github.com/antarkita/dispatch/services/dispatch"
	"github.com/robfig/cron/v3"
)

// Poller is the poll-based trigger: a fixed-interval scan for dispatch
// helpers whose next attempt time has elapsed. It is the alternative to
// the deferred-queue trigger and tolerates running alongside it, since
// the dispatcher re-validates on every invocation.
type Poller struct {
	dispatchUC dispatch.DispatchUC
	cfg        *models.Config
	cron       *cron.Cron
}

// NewPoller creates a new dispatch poller
func NewPoller(dispatchUC dispatch.DispatchUC, cfg *models.Config) *Poller {
	return &Poller{
		dispatchUC: dispatchUC,
		cfg:        cfg,
		cron:       cron.New(cron.WithSeconds()),
	}
}

// Start begins the periodic due-helper scan.
func (p *Poller) Start() error {
	interval := p.cfg.Dispatch.PollIntervalSec
	if interval <= 0 {
		interval = 5
	}

	spec := fmt.Sprintf("*/%d * * * * *", interval)
	_, err := p.cron.AddFunc(spec, func() {
		ctx := context.Background()

		dispatched, err := p.dispatchUC.DispatchDue(ctx, time.Now())
		if err != nil {
			logger.Error("Dispatch poll tick failed", logger.Err(err))
			return
		}
		if dispatched > 0 {
			logger.Debug("Dispatch poll tick", logger.Int("helpers", dispatched))
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule dispatch poll: %w", err)
	}

	p.cron.Start()
	logger.Info("Dispatch poller started", logger.Int("interval_sec", interval))
	return nil
}

// Stop stops the poller and waits for a running tick to finish.
func (p *Poller) Stop() {
	ctx := p.cron.Stop()
	<-ctx.Done()
	logger.Info("Dispatch poller stopped")
}
