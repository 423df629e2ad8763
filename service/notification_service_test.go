package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
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

type notificationFixture struct {
	svc             *NotificationService
	notificationDAO *apimock.MockNotificationDAO
	settingsDAO     *apimock.MockCurfewSettingsDAO
	userDAO         *apimock.MockUserDAO
	propertyDAO     *apimock.MockPropertyDAO
}

func newNotificationFixture() *notificationFixture {
	notificationDAO := new(apimock.MockNotificationDAO)
	settingsDAO := new(apimock.MockCurfewSettingsDAO)
	userDAO := new(apimock.MockUserDAO)
	propertyDAO := new(apimock.MockPropertyDAO)

	svc := NewNotificationService(
		notificationDAO, settingsDAO, userDAO, propertyDAO,
		apimock.NoopCacheService{}, util.NewValidationUtil(),
	)
	return &notificationFixture{
		svc:             svc,
		notificationDAO: notificationDAO,
		settingsDAO:     settingsDAO,
		userDAO:         userDAO,
		propertyDAO:     propertyDAO,
	}
}

func lateEntryEvent() model.AccessEvent {
	return model.AccessEvent{
		ID:                   "ev-1",
		UserID:               "user-1",
		PropertyID:           "prop-1",
		CheckType:            model.CheckTypeIn,
		AuthenticationMethod: model.AuthMethodFingerprint,
		DeviceID:             "terminal-lobby-1",
		Timestamp:            time.Date(2026, 3, 14, 23, 30, 0, 0, time.UTC),
		IsLateEntry:          true,
	}
}

func testResident() *model.User {
	return &model.User{
		ID:       "user-1",
		FullName: "Priya Sharma",
		Email:    "priya@example.com",
		Role:     model.UserRoleResident,
		Status:   model.UserStatusActive,
	}
}

// capturedNotifications records every Create call; admin copies are written
// concurrently so access is guarded.
type capturedNotifications struct {
	mu    sync.Mutex
	items []model.Notification
}

func (c *capturedNotifications) add(n model.Notification) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = append(c.items, n)
}

func (c *capturedNotifications) byTitle(title string) []model.Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []model.Notification
	for _, n := range c.items {
		if n.Title == title {
			out = append(out, n)
		}
	}
	return out
}

func TestDispatchLateEntry_FanOut(t *testing.T) {
	f := newNotificationFixture()

	f.settingsDAO.On("GetByProperty", mock.Anything, "prop-1").Return(&model.PropertyCurfewSettings{
		PropertyID:                    "prop-1",
		CurfewStartTime:               "22:00",
		CurfewEndTime:                 "06:00",
		LateEntryNotificationsEnabled: true,
		NotificationRecipients:        datatypes.JSONSlice[string]{"ops@nestly.io"},
	}, nil)
	f.userDAO.On("GetByID", mock.Anything, "user-1").Return(testResident(), nil)
	f.propertyDAO.On("GetByID", mock.Anything, "prop-1").Return(&model.Property{
		ID:   "prop-1",
		Name: "Maple House",
	}, nil)
	f.userDAO.On("ListActiveAdmins", mock.Anything).Return([]model.User{
		{ID: "admin-1", Role: model.UserRoleAdmin, Status: model.UserStatusActive},
		{ID: "admin-2", Role: model.UserRoleAdmin, Status: model.UserStatusActive},
	}, nil)

	captured := &capturedNotifications{}
	f.notificationDAO.On("Create", mock.Anything, mock.AnythingOfType("*model.Notification")).
		Run(func(args mock.Arguments) {
			captured.add(*(args.Get(1).(*model.Notification)))
		}).
		Return(nil)

	err := f.svc.DispatchLateEntry(context.Background(), lateEntryEvent())
	require.NoError(t, err)

	f.notificationDAO.AssertNumberOfCalls(t, "Create", 3)

	residentCopies := captured.byTitle("Late Entry Recorded")
	require.Len(t, residentCopies, 1)
	assert.Equal(t, "user-1", residentCopies[0].UserID)
	assert.Contains(t, residentCopies[0].Message, "Maple House")
	assert.Contains(t, residentCopies[0].Message, "after curfew")
	assert.Equal(t, model.NotificationTypeLateEntry, residentCopies[0].Type)

	var residentMeta model.LateEntryMetadata
	require.NoError(t, json.Unmarshal(residentCopies[0].Metadata, &residentMeta))
	assert.Equal(t, "ev-1", residentMeta.AccessLogID)
	assert.Empty(t, residentMeta.ResidentID)

	adminCopies := captured.byTitle("Late Entry Alert")
	require.Len(t, adminCopies, 2)
	recipients := []string{adminCopies[0].UserID, adminCopies[1].UserID}
	assert.ElementsMatch(t, []string{"admin-1", "admin-2"}, recipients)
	assert.Contains(t, adminCopies[0].Message, "Priya Sharma")
	assert.Contains(t, adminCopies[0].Message, "checked in late")

	var adminMeta model.LateEntryMetadata
	require.NoError(t, json.Unmarshal(adminCopies[0].Metadata, &adminMeta))
	assert.Equal(t, "user-1", adminMeta.ResidentID)
	assert.Equal(t, "priya@example.com", adminMeta.ResidentEmail)
}

func TestDispatchLateEntry_NotificationsDisabled(t *testing.T) {
	f := newNotificationFixture()

	f.settingsDAO.On("GetByProperty", mock.Anything, "prop-1").Return(&model.PropertyCurfewSettings{
		PropertyID:                    "prop-1",
		LateEntryNotificationsEnabled: false,
	}, nil)

	err := f.svc.DispatchLateEntry(context.Background(), lateEntryEvent())
	require.NoError(t, err)

	f.notificationDAO.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	f.userDAO.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestDispatchLateEntry_NoSettingsConfigured(t *testing.T) {
	f := newNotificationFixture()

	f.settingsDAO.On("GetByProperty", mock.Anything, "prop-1").
		Return(nil, nestly_errors.ErrCurfewSettingsNotFound)

	err := f.svc.DispatchLateEntry(context.Background(), lateEntryEvent())
	require.NoError(t, err)
	f.notificationDAO.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDispatchLateEntry_NoRecipientsSkipsAdmins(t *testing.T) {
	f := newNotificationFixture()

	f.settingsDAO.On("GetByProperty", mock.Anything, "prop-1").Return(&model.PropertyCurfewSettings{
		PropertyID:                    "prop-1",
		LateEntryNotificationsEnabled: true,
	}, nil)
	f.userDAO.On("GetByID", mock.Anything, "user-1").Return(testResident(), nil)
	f.propertyDAO.On("GetByID", mock.Anything, "prop-1").Return(&model.Property{
		ID:   "prop-1",
		Name: "Maple House",
	}, nil)
	f.notificationDAO.On("Create", mock.Anything, mock.AnythingOfType("*model.Notification")).Return(nil)

	err := f.svc.DispatchLateEntry(context.Background(), lateEntryEvent())
	require.NoError(t, err)

	f.notificationDAO.AssertNumberOfCalls(t, "Create", 1)
	f.userDAO.AssertNotCalled(t, "ListActiveAdmins", mock.Anything)
}

func TestDispatchLateEntry_ResidentLookupFailureAborts(t *testing.T) {
	f := newNotificationFixture()

	f.settingsDAO.On("GetByProperty", mock.Anything, "prop-1").Return(&model.PropertyCurfewSettings{
		PropertyID:                    "prop-1",
		LateEntryNotificationsEnabled: true,
		NotificationRecipients:        datatypes.JSONSlice[string]{"ops@nestly.io"},
	}, nil)
	f.userDAO.On("GetByID", mock.Anything, "user-1").Return(nil, errors.New("user store down"))

	err := f.svc.DispatchLateEntry(context.Background(), lateEntryEvent())
	require.NoError(t, err)
	f.notificationDAO.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestDispatchLateEntry_CreateFailuresAreSwallowed(t *testing.T) {
	f := newNotificationFixture()

	f.settingsDAO.On("GetByProperty", mock.Anything, "prop-1").Return(&model.PropertyCurfewSettings{
		PropertyID:                    "prop-1",
		LateEntryNotificationsEnabled: true,
		NotificationRecipients:        datatypes.JSONSlice[string]{"ops@nestly.io"},
	}, nil)
	f.userDAO.On("GetByID", mock.Anything, "user-1").Return(testResident(), nil)
	f.propertyDAO.On("GetByID", mock.Anything, "prop-1").Return(&model.Property{
		ID:   "prop-1",
		Name: "Maple House",
	}, nil)
	f.userDAO.On("ListActiveAdmins", mock.Anything).Return([]model.User{
		{ID: "admin-1"}, {ID: "admin-2"},
	}, nil)
	f.notificationDAO.On("Create", mock.Anything, mock.AnythingOfType("*model.Notification")).
		Return(errors.New("insert failed"))

	err := f.svc.DispatchLateEntry(context.Background(), lateEntryEvent())
	require.NoError(t, err)
	f.notificationDAO.AssertNumberOfCalls(t, "Create", 3)
}

func TestMarkRead_NotFoundPassedThrough(t *testing.T) {
	f := newNotificationFixture()

	f.notificationDAO.On("MarkRead", mock.Anything, "missing").
		Return(nestly_errors.ErrNotificationNotFound)

	err := f.svc.MarkRead(context.Background(), "missing")
	assert.ErrorIs(t, err, nestly_errors.ErrNotificationNotFound)
}
