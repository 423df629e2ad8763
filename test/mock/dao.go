package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dev-sahilarora/nestly/api/model"
)

// MockAccessEventDAO is a mock implementation of dao.AccessEventDAO
type MockAccessEventDAO struct {
	mock.Mock
}

func (m *MockAccessEventDAO) Create(ctx context.Context, event *model.AccessEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockAccessEventDAO) ListFiltered(ctx context.Context, filter model.AccessEventFilter) ([]model.AccessEvent, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.AccessEvent), args.Get(1).(int64), args.Error(2)
}

func (m *MockAccessEventDAO) RecentByUser(ctx context.Context, userID string, limit int, from, to *time.Time) ([]model.AccessEvent, error) {
	args := m.Called(ctx, userID, limit, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AccessEvent), args.Error(1)
}

// MockCurfewSettingsDAO is a mock implementation of dao.CurfewSettingsDAO
type MockCurfewSettingsDAO struct {
	mock.Mock
}

func (m *MockCurfewSettingsDAO) GetByProperty(ctx context.Context, propertyID string) (*model.PropertyCurfewSettings, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PropertyCurfewSettings), args.Error(1)
}

func (m *MockCurfewSettingsDAO) Upsert(ctx context.Context, settings *model.PropertyCurfewSettings, actorID string) error {
	args := m.Called(ctx, settings, actorID)
	return args.Error(0)
}

// MockNotificationDAO is a mock implementation of dao.NotificationDAO
type MockNotificationDAO struct {
	mock.Mock
}

func (m *MockNotificationDAO) Create(ctx context.Context, notification *model.Notification) error {
	args := m.Called(ctx, notification)
	return args.Error(0)
}

func (m *MockNotificationDAO) ListByUser(ctx context.Context, userID string, limit, offset int) ([]model.Notification, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Notification), args.Error(1)
}

func (m *MockNotificationDAO) MarkRead(ctx context.Context, notificationID string) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}

// MockUserDAO is a mock implementation of dao.UserDAO
type MockUserDAO struct {
	mock.Mock
}

func (m *MockUserDAO) GetByID(ctx context.Context, userID string) (*model.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserDAO) ListActiveAdmins(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockPropertyDAO is a mock implementation of dao.PropertyDAO
type MockPropertyDAO struct {
	mock.Mock
}

func (m *MockPropertyDAO) GetByID(ctx context.Context, propertyID string) (*model.Property, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Property), args.Error(1)
}
