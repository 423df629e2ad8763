// api/util/cache_service.go

package util

import (
	"context"

	"github.com/dev-sahilarora/nestly/api/db"
	"github.com/dev-sahilarora/nestly/api/model"
)

// ICacheService is the read-through cache used by the services. The Redis
// implementation lives in db; tests substitute a no-op mock.
type ICacheService interface {
	GetCurfewSettings(ctx context.Context, propertyID string) (*model.PropertyCurfewSettings, error)
	SetCurfewSettings(ctx context.Context, settings model.PropertyCurfewSettings) error
	DeleteCurfewSettings(ctx context.Context, propertyID string) error

	GetUser(ctx context.Context, userID string) (*model.User, error)
	SetUser(ctx context.Context, user model.User) error
	DeleteUser(ctx context.Context, userID string) error

	GetProperty(ctx context.Context, propertyID string) (*model.Property, error)
	SetProperty(ctx context.Context, property model.Property) error
	DeleteProperty(ctx context.Context, propertyID string) error
}

type CacheService struct{}

func NewCacheService() *CacheService {
	return &CacheService{}
}

func (c *CacheService) GetCurfewSettings(ctx context.Context, propertyID string) (*model.PropertyCurfewSettings, error) {
	return db.GetCachedCurfewSettings(ctx, propertyID)
}

func (c *CacheService) SetCurfewSettings(ctx context.Context, settings model.PropertyCurfewSettings) error {
	return db.CacheCurfewSettings(ctx, &settings)
}

func (c *CacheService) DeleteCurfewSettings(ctx context.Context, propertyID string) error {
	return db.DeleteCachedCurfewSettings(ctx, propertyID)
}

func (c *CacheService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return db.GetCachedUser(ctx, userID)
}

func (c *CacheService) SetUser(ctx context.Context, user model.User) error {
	return db.CacheUser(ctx, &user)
}

func (c *CacheService) DeleteUser(ctx context.Context, userID string) error {
	return db.DeleteCachedUser(ctx, userID)
}

func (c *CacheService) GetProperty(ctx context.Context, propertyID string) (*model.Property, error) {
	return db.GetCachedProperty(ctx, propertyID)
}

func (c *CacheService) SetProperty(ctx context.Context, property model.Property) error {
	return db.CacheProperty(ctx, &property)
}

func (c *CacheService) DeleteProperty(ctx context.Context, propertyID string) error {
	return db.DeleteCachedProperty(ctx, propertyID)
}
