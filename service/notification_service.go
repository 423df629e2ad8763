package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dev-sahilarora/nestly/api/dao"
	nestly_errors "github.com/dev-sahilarora/nestly/api/errors"
	logger "github.com/dev-sahilarora/nestly/api/logging"
	"github.com/dev-sahilarora/nestly/api/model"
	"github.com/dev-sahilarora/nestly/api/util"
	helper_util "github.com/dev-sahilarora/nestly/api/util/helper"
)

// INotificationService writes late-entry notifications and serves the
// portal's notification feed.
type INotificationService interface {
	DispatchLateEntry(ctx context.Context, event model.AccessEvent) error
	ListNotifications(ctx context.Context, userID string, limit, offset int) ([]model.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
}

// NotificationService handles the late-entry fan-out: one notification for
// the resident and, when recipients are configured, one per active admin.
type NotificationService struct {
	notificationDAO dao.NotificationDAO
	settingsDAO     dao.CurfewSettingsDAO
	userDAO         dao.UserDAO
	propertyDAO     dao.PropertyDAO
	cacheService    util.ICacheService
	validationUtil  *util.ValidationUtil
}

func NewNotificationService(
	notificationDAO dao.NotificationDAO,
	settingsDAO dao.CurfewSettingsDAO,
	userDAO dao.UserDAO,
	propertyDAO dao.PropertyDAO,
	cacheService util.ICacheService,
	validationUtil *util.ValidationUtil,
) *NotificationService {
	return &NotificationService{
		notificationDAO: notificationDAO,
		settingsDAO:     settingsDAO,
		userDAO:         userDAO,
		propertyDAO:     propertyDAO,
		cacheService:    cacheService,
		validationUtil:  validationUtil,
	}
}

// DispatchLateEntry is invoked for a late check-in after the access event
// has been durably stored. Every write here is best-effort: a partial
// failure is logged and never rolled back, and no failure here ever
// surfaces to the terminal that posted the event.
func (s *NotificationService) DispatchLateEntry(ctx context.Context, event model.AccessEvent) error {
	settings, err := s.settingsDAO.GetByProperty(ctx, event.PropertyID)
	if err != nil {
		if errors.Is(err, nestly_errors.ErrCurfewSettingsNotFound) {
			return nil
		}
		return fmt.Errorf("failed to load curfew settings for dispatch: %w", err)
	}
	if !settings.LateEntryNotificationsEnabled {
		logger.Debug("Late entry notifications disabled, skipping dispatch",
			zap.String("propertyID", event.PropertyID))
		return nil
	}

	resident, err := s.userCached(ctx, event.UserID)
	if err != nil {
		logger.Warn("Failed to load resident profile, aborting late entry dispatch",
			zap.Error(err),
			zap.String("userID", event.UserID))
		return nil
	}
	property, err := s.propertyCached(ctx, event.PropertyID)
	if err != nil {
		logger.Warn("Failed to load property, aborting late entry dispatch",
			zap.Error(err),
			zap.String("propertyID", event.PropertyID))
		return nil
	}

	when := helper_util.FormatHumanTime(event.Timestamp)

	residentMeta, _ := json.Marshal(model.LateEntryMetadata{
		AccessLogID:          event.ID,
		CheckType:            event.CheckType,
		AuthenticationMethod: event.AuthenticationMethod,
		DeviceID:             event.DeviceID,
		Timestamp:            event.Timestamp,
	})
	residentNotification := model.Notification{
		UserID:     resident.ID,
		PropertyID: event.PropertyID,
		Title:      "Late Entry Recorded",
		Message:    fmt.Sprintf("Your check-in at %s was recorded at %s, after curfew.", property.Name, when),
		Type:       model.NotificationTypeLateEntry,
		Metadata:   residentMeta,
	}
	if err := s.validationUtil.ValidateNotification(residentNotification); err != nil {
		logger.Warn("Resident late entry notification failed validation, skipping",
			zap.Error(err),
			zap.String("userID", resident.ID))
	} else if err := s.notificationDAO.Create(ctx, &residentNotification); err != nil {
		logger.Warn("Failed to create resident late entry notification",
			zap.Error(err),
			zap.String("userID", resident.ID))
	}

	// The recipients list gates whether admins are alerted; the fan-out
	// itself targets every active admin account.
	if len(settings.NotificationRecipients) == 0 {
		return nil
	}

	admins, err := s.userDAO.ListActiveAdmins(ctx)
	if err != nil {
		logger.Warn("Failed to list active admins for late entry alert",
			zap.Error(err),
			zap.String("propertyID", event.PropertyID))
		return nil
	}

	adminMeta, _ := json.Marshal(model.LateEntryMetadata{
		AccessLogID:          event.ID,
		CheckType:            event.CheckType,
		AuthenticationMethod: event.AuthenticationMethod,
		DeviceID:             event.DeviceID,
		Timestamp:            event.Timestamp,
		ResidentID:           resident.ID,
		ResidentName:         resident.FullName,
		ResidentEmail:        resident.Email,
	})
	adminMessage := fmt.Sprintf("%s checked in late at %s at %s.", resident.FullName, property.Name, when)

	g, gctx := errgroup.WithContext(ctx)
	semaphore := make(chan struct{}, 10)
	for _, admin := range admins {
		admin := admin
		g.Go(func() error {
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			n := model.Notification{
				UserID:     admin.ID,
				PropertyID: event.PropertyID,
				Title:      "Late Entry Alert",
				Message:    adminMessage,
				Type:       model.NotificationTypeLateEntry,
				Metadata:   adminMeta,
			}
			if err := s.notificationDAO.Create(gctx, &n); err != nil {
				// Each admin copy is independent; log and keep going.
				logger.Warn("Failed to create admin late entry alert",
					zap.Error(err),
					zap.String("adminID", admin.ID))
			}
			return nil
		})
	}
	g.Wait()

	logger.Info("Late entry notifications dispatched",
		zap.String("eventID", event.ID),
		zap.String("propertyID", event.PropertyID),
		zap.Int("adminCount", len(admins)))
	return nil
}

// ListNotifications returns a user's notification feed, newest first.
func (s *NotificationService) ListNotifications(ctx context.Context, userID string, limit, offset int) ([]model.Notification, error) {
	notifications, err := s.notificationDAO.ListByUser(ctx, userID, limit, offset)
	if err != nil {
		logger.Error("Error listing notifications", zap.Error(err), zap.String("userID", userID))
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return notifications, nil
}

// MarkRead marks one notification as read.
func (s *NotificationService) MarkRead(ctx context.Context, notificationID string) error {
	if err := s.notificationDAO.MarkRead(ctx, notificationID); err != nil {
		if errors.Is(err, nestly_errors.ErrNotificationNotFound) {
			return err
		}
		logger.Error("Error marking notification read",
			zap.Error(err),
			zap.String("notificationID", notificationID))
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	return nil
}

func (s *NotificationService) userCached(ctx context.Context, userID string) (*model.User, error) {
	cached, err := s.cacheService.GetUser(ctx, userID)
	if err == nil && cached != nil {
		return cached, nil
	}
	user, err := s.userDAO.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if err := s.cacheService.SetUser(ctx, *user); err != nil {
		logger.Warn("Failed to cache user", zap.Error(err), zap.String("userID", userID))
	}
	return user, nil
}

func (s *NotificationService) propertyCached(ctx context.Context, propertyID string) (*model.Property, error) {
	cached, err := s.cacheService.GetProperty(ctx, propertyID)
	if err == nil && cached != nil {
		return cached, nil
	}
	property, err := s.propertyDAO.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if err := s.cacheService.SetProperty(ctx, *property); err != nil {
		logger.Warn("Failed to cache property", zap.Error(err), zap.String("propertyID", propertyID))
	}
	return property, nil
}
