package controller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	nestly_errors "github.com/dev-sahilarora/nestly/api/errors"
	"github.com/dev-sahilarora/nestly/api/model"
	apimock "github.com/dev-sahilarora/nestly/api/test/mock"
)

func setupCurfewRouter(svc *apimock.MockCurfewService, actorID string) *gin.Engine {
	engine := gin.New()
	api := engine.Group("/api/v1")
	if actorID != "" {
		api.Use(func(c *gin.Context) {
			c.Set("userID", actorID)
		})
	}
	NewCurfewController(svc).RegisterRoutes(api)
	return engine
}

func TestGetCurfewSettings_Success(t *testing.T) {
	svc := new(apimock.MockCurfewService)
	svc.On("GetSettings", mock.Anything, "prop-1").Return(&model.PropertyCurfewSettings{
		PropertyID:                    "prop-1",
		CurfewStartTime:               "22:00",
		CurfewEndTime:                 "06:00",
		LateEntryNotificationsEnabled: true,
		NotificationRecipients:        datatypes.JSONSlice[string]{"ops@nestly.io"},
	}, nil)

	engine := setupCurfewRouter(svc, "")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/prop-1/curfew-settings", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body model.PropertyCurfewSettings
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "22:00", body.CurfewStartTime)
	assert.Equal(t, "06:00", body.CurfewEndTime)
}

func TestGetCurfewSettings_NotFound(t *testing.T) {
	svc := new(apimock.MockCurfewService)
	svc.On("GetSettings", mock.Anything, "prop-1").
		Return(nil, nestly_errors.ErrCurfewSettingsNotFound)

	engine := setupCurfewRouter(svc, "")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties/prop-1/curfew-settings", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCurfewSettings_Success(t *testing.T) {
	svc := new(apimock.MockCurfewService)
	svc.On("UpdateSettings", mock.Anything, mock.MatchedBy(func(s model.PropertyCurfewSettings) bool {
		// The property id always comes from the path, not the body.
		return s.PropertyID == "prop-1" && s.CurfewStartTime == "23:00"
	}), "admin-1").Return(&model.PropertyCurfewSettings{
		PropertyID:      "prop-1",
		CurfewStartTime: "23:00",
		CurfewEndTime:   "05:00",
	}, nil)

	engine := setupCurfewRouter(svc, "admin-1")
	payload, _ := json.Marshal(map[string]any{
		"property_id":       "other-prop",
		"curfew_start_time": "23:00",
		"curfew_end_time":   "05:00",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/properties/prop-1/curfew-settings", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	svc.AssertExpectations(t)
}

func TestUpdateCurfewSettings_InvalidWindow(t *testing.T) {
	svc := new(apimock.MockCurfewService)
	svc.On("UpdateSettings", mock.Anything, mock.AnythingOfType("model.PropertyCurfewSettings"), "admin-1").
		Return(nil, fmt.Errorf("invalid curfew settings: %w", nestly_errors.ErrInvalidCurfewWindow))

	engine := setupCurfewRouter(svc, "admin-1")
	payload, _ := json.Marshal(map[string]any{
		"curfew_start_time": "25:00",
		"curfew_end_time":   "06:00",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/properties/prop-1/curfew-settings", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateCurfewSettings_NoActor(t *testing.T) {
	svc := new(apimock.MockCurfewService)

	engine := setupCurfewRouter(svc, "")
	payload, _ := json.Marshal(map[string]any{
		"curfew_start_time": "22:00",
		"curfew_end_time":   "06:00",
	})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/properties/prop-1/curfew-settings", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "UpdateSettings", mock.Anything, mock.Anything, mock.Anything)
}
