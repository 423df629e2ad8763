package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/dev-sahilarora/nestly/api/dao"
	logger "github.com/dev-sahilarora/nestly/api/logging"
	"github.com/dev-sahilarora/nestly/api/model"
	"github.com/dev-sahilarora/nestly/api/util"
)

// IAccessService is the ingestion and reporting surface for access events.
type IAccessService interface {
	RecordAccess(ctx context.Context, req model.RecordAccessRequest) (*model.AccessEventReceipt, error)
	ListAccessEvents(ctx context.Context, filter model.AccessEventFilter) ([]model.AccessEvent, int64, error)
	UserAccessHistory(ctx context.Context, userID string, limit int, from, to *time.Time) ([]model.AccessEvent, error)
}

// AccessService orchestrates the ingestion pipeline: validate, evaluate the
// curfew policy, persist, then notify. The stages run strictly in that
// order; persistence always happens before notification and a notification
// failure never changes the response.
type AccessService struct {
	accessDAO       dao.AccessEventDAO
	curfewService   ICurfewService
	notificationSvc INotificationService
	validationUtil  *util.ValidationUtil
	eventBus        *util.EventBus
}

func NewAccessService(
	accessDAO dao.AccessEventDAO,
	curfewService ICurfewService,
	notificationSvc INotificationService,
	validationUtil *util.ValidationUtil,
	eventBus *util.EventBus,
) *AccessService {
	service := &AccessService{
		accessDAO:       accessDAO,
		curfewService:   curfewService,
		notificationSvc: notificationSvc,
		validationUtil:  validationUtil,
		eventBus:        eventBus,
	}

	// Set up event subscriptions
	eventBus.Subscribe("access.late_entry", service.handleLateEntryRecorded)

	return service
}

func (s *AccessService) handleLateEntryRecorded(ctx context.Context, event util.Event) error {
	accessEvent, ok := event.Payload.(model.AccessEvent)
	if !ok {
		return fmt.Errorf("invalid event payload type: %T", event.Payload)
	}
	logger.Info("Late entry recorded",
		zap.String("eventID", accessEvent.ID),
		zap.String("userID", accessEvent.UserID),
		zap.String("propertyID", accessEvent.PropertyID),
		zap.String("deviceID", accessEvent.DeviceID))
	return nil
}

// RecordAccess handles one access event submission from a terminal.
func (s *AccessService) RecordAccess(ctx context.Context, req model.RecordAccessRequest) (*model.AccessEventReceipt, error) {
	// Validating
	if err := s.validationUtil.ValidateAccessEventRequest(req); err != nil {
		return nil, err
	}

	// Evaluating: the timestamp is the instant of request processing,
	// never client input.
	now := time.Now().UTC()
	verdict := s.curfewService.Classify(ctx, req.PropertyID, now)

	// Persisting
	event := model.AccessEvent{
		ID:                   uuid.New().String(),
		UserID:               req.UserID,
		PropertyID:           req.PropertyID,
		RoomID:               req.RoomID,
		CheckType:            req.CheckType,
		AuthenticationMethod: req.AuthenticationMethod,
		DeviceID:             req.DeviceID,
		Timestamp:            now,
		IsLateEntry:          verdict.IsLate(),
		Notes:                req.Notes,
	}
	if err := s.accessDAO.Create(ctx, &event); err != nil {
		logger.Error("Error persisting access event",
			zap.Error(err),
			zap.String("userID", req.UserID),
			zap.String("propertyID", req.PropertyID))
		return nil, fmt.Errorf("failed to record entry: %w", err)
	}

	// Notifying: only late check-ins, inline, and best-effort. The event
	// is already durable; nothing past this point can fail the request.
	if event.CheckType == model.CheckTypeIn && event.IsLateEntry {
		if err := s.notificationSvc.DispatchLateEntry(ctx, event); err != nil {
			logger.Warn("Late entry notification dispatch failed",
				zap.Error(err),
				zap.String("eventID", event.ID))
		}
		s.eventBus.Publish(ctx, "access.late_entry", event)
	}
	s.eventBus.Publish(ctx, "access.recorded", event)

	// Responding
	label := "Check-in"
	if event.CheckType == model.CheckTypeOut {
		label = "Check-out"
	}
	message := fmt.Sprintf("%s recorded successfully", label)
	if event.IsLateEntry {
		message += " (late entry)"
	}

	return &model.AccessEventReceipt{
		Success:     true,
		LogID:       event.ID,
		IsLateEntry: event.IsLateEntry,
		Timestamp:   event.Timestamp,
		Message:     message,
	}, nil
}

// ListAccessEvents returns events matching the reporting filter.
func (s *AccessService) ListAccessEvents(ctx context.Context, filter model.AccessEventFilter) ([]model.AccessEvent, int64, error) {
	events, total, err := s.accessDAO.ListFiltered(ctx, filter)
	if err != nil {
		logger.Error("Error listing access events", zap.Error(err))
		return nil, 0, fmt.Errorf("failed to list access events: %w", err)
	}
	return events, total, nil
}

// UserAccessHistory returns a resident's own recent events.
func (s *AccessService) UserAccessHistory(ctx context.Context, userID string, limit int, from, to *time.Time) ([]model.AccessEvent, error) {
	events, err := s.accessDAO.RecentByUser(ctx, userID, limit, from, to)
	if err != nil {
		logger.Error("Error fetching user access history",
			zap.Error(err),
			zap.String("userID", userID))
		return nil, fmt.Errorf("failed to fetch access history: %w", err)
	}
	return events, nil
}
