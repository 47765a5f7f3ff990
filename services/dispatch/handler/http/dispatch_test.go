package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/antarkita/dispatch/internal/pkg/models"
	"github.com/antarkita/dispatch/services/dispatch/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetJobStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatchUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(dispatchUC)
	e := echo.New()

	t.Run("returns job and helper", func(t *testing.T) {
		jobID := uuid.New()
		job := &models.Job{ID: jobID, Status: models.JobStatusRequested}
		helper := &models.DispatchHelper{ID: uuid.New(), JobID: jobID}

		dispatchUC.EXPECT().JobDispatchStatus(gomock.Any(), jobID).Return(job, helper, nil)

		req := httptest.NewRequest(http.MethodGet, "/internal/jobs/"+jobID.String(), nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(jobID.String())

		err := handler.GetJobStatus(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var body map[string]json.RawMessage
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body, "job")
		assert.Contains(t, body, "helper")
	})

	t.Run("unknown job is a 404", func(t *testing.T) {
		jobID := uuid.New()
		dispatchUC.EXPECT().JobDispatchStatus(gomock.Any(), jobID).Return(nil, nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/internal/jobs/"+jobID.String(), nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(jobID.String())

		err := handler.GetJobStatus(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusNotFound, httpErr.Code)
	})

	t.Run("malformed id is a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/internal/jobs/nope", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("nope")

		err := handler.GetJobStatus(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}

func TestRedispatchJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatchUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(dispatchUC)
	e := echo.New()

	t.Run("kicks off a fresh search round", func(t *testing.T) {
		jobID := uuid.New()
		dispatchUC.EXPECT().Research(gomock.Any(), jobID, 1).Return(nil)

		req := httptest.NewRequest(http.MethodPost, "/internal/jobs/"+jobID.String()+"/dispatch", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues(jobID.String())

		err := handler.RedispatchJob(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusAccepted, rec.Code)
	})
}

func TestGetNearbyDrivers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dispatchUC := mocks.NewMockDispatchUC(ctrl)
	handler := NewDispatchHandler(dispatchUC)
	e := echo.New()

	t.Run("probes the proximity finder", func(t *testing.T) {
		drivers := []*models.NearbyDriver{{ID: uuid.New().String()}}
		dispatchUC.EXPECT().FindNearby(gomock.Any(), models.Location{Latitude: -6.2, Longitude: 106.8}, 5).Return(drivers, nil)

		req := httptest.NewRequest(http.MethodGet, "/internal/drivers/nearby?lat=-6.2&lng=106.8&limit=5", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.GetNearbyDrivers(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var body struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, 1, body.Count)
	})

	t.Run("missing coordinates are a 400", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/internal/drivers/nearby", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.GetNearbyDrivers(c)

		var httpErr *echo.HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	})
}
