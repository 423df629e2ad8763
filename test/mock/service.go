package mock

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/dev-sahilarora/nestly/api/model"
)

// MockAccessService is a mock implementation of service.IAccessService
type MockAccessService struct {
	mock.Mock
}

func (m *MockAccessService) RecordAccess(ctx context.Context, req model.RecordAccessRequest) (*model.AccessEventReceipt, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.AccessEventReceipt), args.Error(1)
}

func (m *MockAccessService) ListAccessEvents(ctx context.Context, filter model.AccessEventFilter) ([]model.AccessEvent, int64, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]model.AccessEvent), args.Get(1).(int64), args.Error(2)
}

func (m *MockAccessService) UserAccessHistory(ctx context.Context, userID string, limit int, from, to *time.Time) ([]model.AccessEvent, error) {
	args := m.Called(ctx, userID, limit, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.AccessEvent), args.Error(1)
}

// MockCurfewService is a mock implementation of service.ICurfewService
type MockCurfewService struct {
	mock.Mock
}

func (m *MockCurfewService) Classify(ctx context.Context, propertyID string, t time.Time) model.CurfewVerdict {
	args := m.Called(ctx, propertyID, t)
	return args.Get(0).(model.CurfewVerdict)
}

func (m *MockCurfewService) GetSettings(ctx context.Context, propertyID string) (*model.PropertyCurfewSettings, error) {
	args := m.Called(ctx, propertyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PropertyCurfewSettings), args.Error(1)
}

func (m *MockCurfewService) UpdateSettings(ctx context.Context, settings model.PropertyCurfewSettings, actorID string) (*model.PropertyCurfewSettings, error) {
	args := m.Called(ctx, settings, actorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PropertyCurfewSettings), args.Error(1)
}

// MockNotificationService is a mock implementation of service.INotificationService
type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) DispatchLateEntry(ctx context.Context, event model.AccessEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockNotificationService) ListNotifications(ctx context.Context, userID string, limit, offset int) ([]model.Notification, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Notification), args.Error(1)
}

func (m *MockNotificationService) MarkRead(ctx context.Context, notificationID string) error {
	args := m.Called(ctx, notificationID)
	return args.Error(0)
}
