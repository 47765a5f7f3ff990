package handler

import (
	"context"
	"fmt"

	"github.com/antarkita/dispatch/internal/pkg/constants"
	"github.com/antarkita/dispatch/internal/pkg/logger"
	"github.com/antarkita/dispatch/internal/pkg/models"
	nsqpkg "github.com/antarkita/dispatch/internal/pkg/nsq"
	"github.com/antarkita/dispatch/services/dispatch/usecase"
	"github.com/google/uuid"
)

// InitNSQConsumers subscribes to every topic the dispatch engine
// consumes. The deferred trigger topic is only consumed under the queue
// trigger; the re-search topic is always consumed because both trigger
// modes use it for backoff.
func (h *Handler) InitNSQConsumers() error {
	subscriptions := []struct {
		topic   string
		handler nsqpkg.MessageHandler
		enabled bool
	}{
		{constants.TopicJobRequested, h.handleJobRequested, true},
		{constants.TopicJobDeclined, h.handleJobDeclined, true},
		{constants.TopicJobCancelled, h.handleJobCancelled, true},
		{constants.TopicDriverBeacon, h.handleDriverBeacon, true},
		{constants.TopicDispatchResearch, h.handleResearch, true},
		{constants.TopicDispatchTrigger, h.handleTrigger, h.cfg.Dispatch.Trigger != usecase.TriggerPoll},
	}

	for _, sub := range subscriptions {
		if !sub.enabled {
			continue
		}

		consumer, err := nsqpkg.NewConsumer(sub.topic, h.cfg.NSQ.Channel, h.cfg.NSQ.NSQDAddress, sub.handler)
		if err != nil {
			return fmt.Errorf("failed to subscribe to %s: %w", sub.topic, err)
		}
		if len(h.cfg.NSQ.LookupdAddresses) > 0 {
			if err := consumer.ConnectToLookupd(h.cfg.NSQ.LookupdAddresses); err != nil {
				return fmt.Errorf("failed to connect %s consumer to lookupd: %w", sub.topic, err)
			}
		}
		h.consumers = append(h.consumers, consumer)
	}

	return nil
}

func (h *Handler) handleJobRequested(msg []byte) error {
	var event models.JobRequestedEvent
	if err := nsqpkg.UnmarshalMessage(msg, &event); err != nil {
		logger.Error("Failed to unmarshal job requested event", logger.Err(err))
		return nil // malformed, do not requeue
	}

	return h.dispatchUC.HandleJobRequested(context.Background(), event)
}

func (h *Handler) handleJobDeclined(msg []byte) error {
	var event models.JobDeclinedEvent
	if err := nsqpkg.UnmarshalMessage(msg, &event); err != nil {
		logger.Error("Failed to unmarshal job declined event", logger.Err(err))
		return nil
	}

	return h.dispatchUC.HandleJobDeclined(context.Background(), event)
}

func (h *Handler) handleJobCancelled(msg []byte) error {
	var event models.JobCancelledEvent
	if err := nsqpkg.UnmarshalMessage(msg, &event); err != nil {
		logger.Error("Failed to unmarshal job cancelled event", logger.Err(err))
		return nil
	}

	return h.dispatchUC.HandleJobCancelled(context.Background(), event)
}

func (h *Handler) handleDriverBeacon(msg []byte) error {
	var event models.DriverBeaconEvent
	if err := nsqpkg.UnmarshalMessage(msg, &event); err != nil {
		logger.Error("Failed to unmarshal driver beacon event", logger.Err(err))
		return nil
	}

	return h.dispatchUC.HandleDriverBeacon(context.Background(), event)
}

// handleTrigger advances a helper once its deferred message comes due.
// The use case re-validates everything, so duplicate triggers are safe.
func (h *Handler) handleTrigger(msg []byte) error {
	var trigger models.DispatchTriggerMessage
	if err := nsqpkg.UnmarshalMessage(msg, &trigger); err != nil {
		logger.Error("Failed to unmarshal dispatch trigger", logger.Err(err))
		return nil
	}

	helperID, err := uuid.Parse(trigger.HelperID)
	if err != nil {
		logger.Error("Dispatch trigger with malformed helper id",
			logger.String("helper_id", trigger.HelperID))
		return nil
	}

	return h.dispatchUC.OfferNext(context.Background(), helperID)
}

func (h *Handler) handleResearch(msg []byte) error {
	var research models.ResearchMessage
	if err := nsqpkg.UnmarshalMessage(msg, &research); err != nil {
		logger.Error("Failed to unmarshal research message", logger.Err(err))
		return nil
	}

	jobID, err := uuid.Parse(research.JobID)
	if err != nil {
		logger.Error("Research message with malformed job id",
			logger.String("job_id", research.JobID))
		return nil
	}

	return h.dispatchUC.Research(context.Background(), jobID, research.Round)
}
