package mock

import (
	"context"

	"github.com/dev-sahilarora/nestly/api/model"
)

// NoopCacheService always misses and accepts every write; service tests use
// it so that every read goes through the DAO mocks.
type NoopCacheService struct{}

func (NoopCacheService) GetCurfewSettings(ctx context.Context, propertyID string) (*model.PropertyCurfewSettings, error) {
	return nil, nil
}

func (NoopCacheService) SetCurfewSettings(ctx context.Context, settings model.PropertyCurfewSettings) error {
	return nil
}

func (NoopCacheService) DeleteCurfewSettings(ctx context.Context, propertyID string) error {
	return nil
}

func (NoopCacheService) GetUser(ctx context.Context, userID string) (*model.User, error) {
	return nil, nil
}

func (NoopCacheService) SetUser(ctx context.Context, user model.User) error {
	return nil
}

func (NoopCacheService) DeleteUser(ctx context.Context, userID string) error {
	return nil
}

func (NoopCacheService) GetProperty(ctx context.Context, propertyID string) (*model.Property, error) {
	return nil, nil
}

func (NoopCacheService) SetProperty(ctx context.Context, property model.Property) error {
	return nil
}

func (NoopCacheService) DeleteProperty(ctx context.Context, propertyID string) error {
	return nil
}
