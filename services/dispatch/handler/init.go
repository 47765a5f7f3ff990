package handler

import (
	"github.com/antarkita/dispatch/internal/pkg/models"
	"github.com/antarkita/dispatch/internal/pkg/nsq"
	"github.com/antarkita/dispatch/services/dispatch"
)

// Handler wires the dispatch use case to its NSQ consumers and the
// internal HTTP surface.
type Handler struct {
	dispatchUC dispatch.DispatchUC
	cfg        *models.Config
	consumers  []*nsq.Consumer
}

// NewHandler creates a new dispatch handler
func NewHandler(dispatchUC dispatch.DispatchUC, cfg *models.Config) *Handler {
	return &Handler{
		dispatchUC: dispatchUC,
		cfg:        cfg,
	}
}

// Stop stops all NSQ consumers
func (h *Handler) Stop() {
	for _, consumer := range h.consumers {
		consumer.Stop()
	}
}
