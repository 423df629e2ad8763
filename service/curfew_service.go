package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/dev-sahilarora/nestly/api/dao"
	nestly_errors "github.com/dev-sahilarora/nestly/api/errors"
	logger "github.com/dev-sahilarora/nestly/api/logging"
	"github.com/dev-sahilarora/nestly/api/model"
	"github.com/dev-sahilarora/nestly/api/util"
)

// ICurfewService classifies timestamps against property curfew policies and
// manages the policies themselves.
type ICurfewService interface {
	Classify(ctx context.Context, propertyID string, t time.Time) model.CurfewVerdict
	GetSettings(ctx context.Context, propertyID string) (*model.PropertyCurfewSettings, error)
	UpdateSettings(ctx context.Context, settings model.PropertyCurfewSettings, actorID string) (*model.PropertyCurfewSettings, error)
}

// CurfewService handles business logic for curfew policy evaluation and
// administration.
type CurfewService struct {
	settingsDAO    dao.CurfewSettingsDAO
	validationUtil *util.ValidationUtil
	cacheService   util.ICacheService
	eventBus       *util.EventBus
}

func NewCurfewService(settingsDAO dao.CurfewSettingsDAO, validationUtil *util.ValidationUtil, cacheService util.ICacheService, eventBus *util.EventBus) *CurfewService {
	return &CurfewService{
		settingsDAO:    settingsDAO,
		validationUtil: validationUtil,
		cacheService:   cacheService,
		eventBus:       eventBus,
	}
}

// Classify decides whether t falls inside the property's curfew window.
// The policy is fail-open on purpose: a property with no configured curfew
// has no late window, and a failed lookup degrades to Unknown rather than
// blocking ingestion. Callers treat Unknown as not late.
func (s *CurfewService) Classify(ctx context.Context, propertyID string, t time.Time) model.CurfewVerdict {
	settings, err := s.settingsCached(ctx, propertyID)
	if err != nil {
		if errors.Is(err, nestly_errors.ErrCurfewSettingsNotFound) {
			return model.VerdictNotLate
		}
		logger.Warn("Curfew settings lookup failed, degrading to not late",
			zap.Error(err),
			zap.String("propertyID", propertyID))
		return model.VerdictUnknown
	}

	window, err := settings.Window()
	if err != nil {
		logger.Warn("Curfew settings hold an unparseable window, degrading to not late",
			zap.Error(err),
			zap.String("propertyID", propertyID))
		return model.VerdictUnknown
	}

	if window.Contains(t) {
		return model.VerdictLate
	}
	return model.VerdictNotLate
}

// GetSettings retrieves a property's curfew settings.
func (s *CurfewService) GetSettings(ctx context.Context, propertyID string) (*model.PropertyCurfewSettings, error) {
	return s.settingsCached(ctx, propertyID)
}

// UpdateSettings writes a property's curfew policy, invalidates the cached
// copy and publishes a curfew.updated event.
func (s *CurfewService) UpdateSettings(ctx context.Context, settings model.PropertyCurfewSettings, actorID string) (*model.PropertyCurfewSettings, error) {
	if err := s.validationUtil.ValidateCurfewSettings(settings); err != nil {
		return nil, fmt.Errorf("invalid curfew settings: %w", err)
	}

	if err := s.settingsDAO.Upsert(ctx, &settings, actorID); err != nil {
		logger.Error("Error updating curfew settings",
			zap.Error(err),
			zap.String("propertyID", settings.PropertyID),
			zap.String("actorID", actorID))
		return nil, fmt.Errorf("failed to update curfew settings: %w", err)
	}

	if err := s.cacheService.DeleteCurfewSettings(ctx, settings.PropertyID); err != nil {
		logger.Warn("Failed to invalidate cached curfew settings",
			zap.Error(err),
			zap.String("propertyID", settings.PropertyID))
	}

	s.eventBus.Publish(ctx, "curfew.updated", settings)

	logger.Info("Curfew settings updated successfully",
		zap.String("propertyID", settings.PropertyID),
		zap.String("actorID", actorID))
	return &settings, nil
}

// settingsCached reads through the cache to the DAO. Cache failures are
// non-fatal; the DAO is the source of truth.
func (s *CurfewService) settingsCached(ctx context.Context, propertyID string) (*model.PropertyCurfewSettings, error) {
	cached, err := s.cacheService.GetCurfewSettings(ctx, propertyID)
	if err == nil && cached != nil {
		return cached, nil
	}
	if err != nil {
		logger.Warn("Failed to read curfew settings from cache",
			zap.Error(err),
			zap.String("propertyID", propertyID))
	}

	settings, err := s.settingsDAO.GetByProperty(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	if err := s.cacheService.SetCurfewSettings(ctx, *settings); err != nil {
		logger.Warn("Failed to cache curfew settings",
			zap.Error(err),
			zap.String("propertyID", propertyID))
	}

	return settings, nil
}
