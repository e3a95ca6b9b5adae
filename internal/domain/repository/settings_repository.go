package repository

import (
	"context"

	"shavtzak-service/internal/domain/entity"
)

// SettingsRepository defines the interface for the global settings
// collection: one document per key, full-document overwrite on set.
type SettingsRepository interface {
	// Get decodes the document stored under key into out, or returns
	// entity.ErrNotFound.
	Get(ctx context.Context, key entity.SettingKey, out interface{}) error
	// Set overwrites the document stored under key.
	Set(ctx context.Context, key entity.SettingKey, value interface{}) error
}
