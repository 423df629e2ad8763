package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	nestly_errors "github.com/dev-sahilarora/nestly/api/errors"
	"github.com/dev-sahilarora/nestly/api/model"
	apimock "github.com/dev-sahilarora/nestly/api/test/mock"
	"github.com/dev-sahilarora/nestly/api/util"
)

// settingsCacheStub serves a fixed settings row from the cache layer so
// tests can prove the DAO is bypassed on a hit.
type settingsCacheStub struct {
	apimock.NoopCacheService
	settings *model.PropertyCurfewSettings
}

func (c settingsCacheStub) GetCurfewSettings(ctx context.Context, propertyID string) (*model.PropertyCurfewSettings, error) {
	return c.settings, nil
}

func overnightSettings(propertyID string) *model.PropertyCurfewSettings {
	return &model.PropertyCurfewSettings{
		ID:                            "cs-1",
		PropertyID:                    propertyID,
		CurfewStartTime:               "22:00",
		CurfewEndTime:                 "06:00",
		LateEntryNotificationsEnabled: true,
		NotificationRecipients:        datatypes.JSONSlice[string]{"ops@nestly.io"},
	}
}

func newCurfewServiceForTest(settingsDAO *apimock.MockCurfewSettingsDAO) *CurfewService {
	return NewCurfewService(settingsDAO, util.NewValidationUtil(), apimock.NoopCacheService{}, util.NewEventBus())
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 14, hour, minute, 0, 0, time.UTC)
}

func TestClassify_NoSettingsConfigured(t *testing.T) {
	settingsDAO := new(apimock.MockCurfewSettingsDAO)
	settingsDAO.On("GetByProperty", mock.Anything, "prop-1").
		Return(nil, nestly_errors.ErrCurfewSettingsNotFound)

	svc := newCurfewServiceForTest(settingsDAO)

	verdict := svc.Classify(context.Background(), "prop-1", at(23, 30))
	assert.Equal(t, model.VerdictNotLate, verdict)
}

func TestClassify_LookupFailureDegradesToUnknown(t *testing.T) {
	settingsDAO := new(apimock.MockCurfewSettingsDAO)
	settingsDAO.On("GetByProperty", mock.Anything, "prop-1").
		Return(nil, errors.New("connection refused"))

	svc := newCurfewServiceForTest(settingsDAO)

	verdict := svc.Classify(context.Background(), "prop-1", at(23, 30))
	assert.Equal(t, model.VerdictUnknown, verdict)
	assert.False(t, verdict.IsLate())
}

func TestClassify_OvernightWindow(t *testing.T) {
	settingsDAO := new(apimock.MockCurfewSettingsDAO)
	settingsDAO.On("GetByProperty", mock.Anything, "prop-1").
		Return(overnightSettings("prop-1"), nil)

	svc := newCurfewServiceForTest(settingsDAO)

	tests := []struct {
		name     string
		t        time.Time
		expected model.CurfewVerdict
	}{
		{"before midnight", at(23, 30), model.VerdictLate},
		{"after midnight", at(5, 30), model.VerdictLate},
		{"midday", at(12, 0), model.VerdictNotLate},
		{"at curfew start", at(22, 0), model.VerdictLate},
		{"at curfew end", at(6, 0), model.VerdictNotLate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, svc.Classify(context.Background(), "prop-1", tt.t))
		})
	}
}

func TestClassify_UnparseableWindowDegradesToUnknown(t *testing.T) {
	settings := overnightSettings("prop-1")
	settings.CurfewStartTime = "garbage"

	settingsDAO := new(apimock.MockCurfewSettingsDAO)
	settingsDAO.On("GetByProperty", mock.Anything, "prop-1").Return(settings, nil)

	svc := newCurfewServiceForTest(settingsDAO)

	verdict := svc.Classify(context.Background(), "prop-1", at(23, 30))
	assert.Equal(t, model.VerdictUnknown, verdict)
}

func TestClassify_CacheHitSkipsDAO(t *testing.T) {
	settingsDAO := new(apimock.MockCurfewSettingsDAO)
	cache := settingsCacheStub{settings: overnightSettings("prop-1")}

	svc := NewCurfewService(settingsDAO, util.NewValidationUtil(), cache, util.NewEventBus())

	verdict := svc.Classify(context.Background(), "prop-1", at(23, 30))
	assert.Equal(t, model.VerdictLate, verdict)
	settingsDAO.AssertNotCalled(t, "GetByProperty", mock.Anything, mock.Anything)
}

func TestUpdateSettings_InvalidWindowRejected(t *testing.T) {
	settingsDAO := new(apimock.MockCurfewSettingsDAO)
	svc := newCurfewServiceForTest(settingsDAO)

	settings := overnightSettings("prop-1")
	settings.CurfewEndTime = "25:00"

	_, err := svc.UpdateSettings(context.Background(), *settings, "admin-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, nestly_errors.ErrInvalidCurfewWindow)
	settingsDAO.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateSettings_Success(t *testing.T) {
	settingsDAO := new(apimock.MockCurfewSettingsDAO)
	settingsDAO.On("Upsert", mock.Anything, mock.AnythingOfType("*model.PropertyCurfewSettings"), "admin-1").
		Return(nil)

	svc := newCurfewServiceForTest(settingsDAO)

	updated, err := svc.UpdateSettings(context.Background(), *overnightSettings("prop-1"), "admin-1")
	require.NoError(t, err)
	assert.Equal(t, "prop-1", updated.PropertyID)
	assert.Equal(t, "22:00", updated.CurfewStartTime)
	settingsDAO.AssertExpectations(t)
}
