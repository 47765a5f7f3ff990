package handler

import (
	"github.com/antarkita/dispatch/internal/pkg/middleware"
	dispatchhttp "github.com/antarkita/dispatch/services/dispatch/handler/http"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes registers the internal ops endpoints, protected by the
// service API keys.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	httpHandler := dispatchhttp.NewDispatchHandler(h.dispatchUC)

	internal := e.Group("/internal",
		middleware.ValidateAPIKey(h.cfg.APIKeys.JobService, h.cfg.APIKeys.RealtimeService))

	internal.GET("/jobs/:id", httpHandler.GetJobStatus)
	internal.POST("/jobs/:id/dispatch", httpHandler.RedispatchJob)
	internal.GET("/drivers/nearby", httpHandler.GetNearbyDrivers)
}
