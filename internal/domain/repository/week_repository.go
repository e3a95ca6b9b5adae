package repository

import (
	"context"

	"shavtzak-service/internal/domain/entity"
)

// WeekRepository defines the interface for week document operations
type WeekRepository interface {
	// Load returns the stored container for weekNumber, or
	// entity.ErrNotFound when no document exists yet.
	Load(ctx context.Context, weekNumber int) (*entity.WeekContainer, error)
	// Save persists the full container under its week number,
	// overwriting any stored document.
	Save(ctx context.Context, container *entity.WeekContainer) error
}
