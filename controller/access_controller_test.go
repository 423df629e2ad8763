package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	nestly_errors "github.com/dev-sahilarora/nestly/api/errors"
	"github.com/dev-sahilarora/nestly/api/model"
	apimock "github.com/dev-sahilarora/nestly/api/test/mock"
)

func setupAccessRouter(svc *apimock.MockAccessService) *gin.Engine {
	engine := gin.New()
	api := engine.Group("/api/v1")
	NewAccessController(svc).RegisterRoutes(api)
	return engine
}

func postJSON(engine *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRecordAccess_Success(t *testing.T) {
	svc := new(apimock.MockAccessService)
	ts := time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC)
	svc.On("RecordAccess", mock.Anything, mock.AnythingOfType("model.RecordAccessRequest")).
		Return(&model.AccessEventReceipt{
			Success:     true,
			LogID:       "ev-1",
			IsLateEntry: true,
			Timestamp:   ts,
			Message:     "Check-in recorded successfully (late entry)",
		}, nil)

	engine := setupAccessRouter(svc)
	w := postJSON(engine, "/api/v1/access-logs", model.RecordAccessRequest{
		UserID:               "user-1",
		PropertyID:           "prop-1",
		CheckType:            model.CheckTypeIn,
		AuthenticationMethod: model.AuthMethodFaceRecognition,
	})

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "ev-1", body["log_id"])
	assert.Equal(t, true, body["is_late_entry"])
	assert.Equal(t, "Check-in recorded successfully (late entry)", body["message"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestRecordAccess_MissingFields(t *testing.T) {
	svc := new(apimock.MockAccessService)
	svc.On("RecordAccess", mock.Anything, mock.AnythingOfType("model.RecordAccessRequest")).
		Return(nil, fmt.Errorf("%w: user_id, check_type", nestly_errors.ErrMissingRequiredFields))

	engine := setupAccessRouter(svc)
	w := postJSON(engine, "/api/v1/access-logs", map[string]string{
		"property_id":           "prop-1",
		"authentication_method": "manual",
	})

	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Missing required fields: user_id, check_type", body["error"])
}

func TestRecordAccess_PersistFailure(t *testing.T) {
	svc := new(apimock.MockAccessService)
	svc.On("RecordAccess", mock.Anything, mock.AnythingOfType("model.RecordAccessRequest")).
		Return(nil, fmt.Errorf("failed to record entry: %w", nestly_errors.ErrDatabaseOperation))

	engine := setupAccessRouter(svc)
	w := postJSON(engine, "/api/v1/access-logs", model.RecordAccessRequest{
		UserID:               "user-1",
		PropertyID:           "prop-1",
		CheckType:            model.CheckTypeIn,
		AuthenticationMethod: model.AuthMethodManual,
	})

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Failed to record entry", body["error"])
}

func TestRecordAccess_MalformedJSON(t *testing.T) {
	svc := new(apimock.MockAccessService)
	engine := setupAccessRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/access-logs", bytes.NewReader([]byte("{")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "RecordAccess", mock.Anything, mock.Anything)
}

func TestListAccessLogs_FiltersPassedThrough(t *testing.T) {
	svc := new(apimock.MockAccessService)
	svc.On("ListAccessEvents", mock.Anything, mock.MatchedBy(func(f model.AccessEventFilter) bool {
		return f.PropertyID == "prop-1" &&
			f.AuthMethod == model.AuthMethodSmartCard &&
			f.Date != nil && f.Date.Format("2006-01-02") == "2026-03-14" &&
			f.Limit == 10 && f.Offset == 20
	})).Return([]model.AccessEvent{{ID: "ev-1"}}, int64(1), nil)

	engine := setupAccessRouter(svc)
	req := httptest.NewRequest(http.MethodGet,
		"/api/v1/access-logs?property_id=prop-1&authentication_method=smart_card&date=2026-03-14&limit=10&offset=20", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		AccessLogs []model.AccessEvent `json:"access_logs"`
		Total      int64               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.AccessLogs, 1)
	assert.Equal(t, int64(1), body.Total)
}

func TestListAccessLogs_InvalidDate(t *testing.T) {
	svc := new(apimock.MockAccessService)
	engine := setupAccessRouter(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/access-logs?date=yesterday", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	svc.AssertNotCalled(t, "ListAccessEvents", mock.Anything, mock.Anything)
}

func TestUserAccessHistory_DefaultLimit(t *testing.T) {
	svc := new(apimock.MockAccessService)
	svc.On("UserAccessHistory", mock.Anything, "user-1", 50, (*time.Time)(nil), (*time.Time)(nil)).
		Return([]model.AccessEvent{}, nil)

	engine := setupAccessRouter(svc)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users/user-1/access-logs", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}
