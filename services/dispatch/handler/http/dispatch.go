package http

import (
	"net/http"
	"strconv"

	"github.com/antarkita/dispatch/internal/pkg/models"
	"github.com/antarkita/dispatch/services/dispatch"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// DispatchHandler exposes the internal ops surface of the dispatch
// engine. These endpoints are for service-to-service and operator use
// only; public clients never reach the dispatch core directly.
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates a new dispatch HTTP handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{dispatchUC: dispatchUC}
}

// GetJobStatus returns a job's dispatch state and its pending candidate
// queue, if any.
func (h *DispatchHandler) GetJobStatus(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid job id")
	}

	job, helper, err := h.dispatchUC.JobDispatchStatus(c.Request().Context(), jobID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load dispatch status")
	}
	if job == nil {
		return echo.NewHTTPError(http.StatusNotFound, "job not found")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"job":    job,
		"helper": helper,
	})
}

// RedispatchJob manually re-enters a job into the search loop. Useful
// when operators need to kick a stuck request.
func (h *DispatchHandler) RedispatchJob(c echo.Context) error {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid job id")
	}

	if err := h.dispatchUC.Research(c.Request().Context(), jobID, 1); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to redispatch job")
	}

	return c.JSON(http.StatusAccepted, map[string]string{"status": "redispatch scheduled"})
}

// GetNearbyDrivers probes the proximity finder around a point.
func (h *DispatchHandler) GetNearbyDrivers(c echo.Context) error {
	lat, err := strconv.ParseFloat(c.QueryParam("lat"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid lat")
	}
	lng, err := strconv.ParseFloat(c.QueryParam("lng"), 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid lng")
	}

	limit := 0
	if raw := c.QueryParam("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
	}

	drivers, err := h.dispatchUC.FindNearby(c.Request().Context(), models.Location{Latitude: lat, Longitude: lng}, limit)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to search nearby drivers")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"drivers": drivers,
		"count":   len(drivers),
	})
}
