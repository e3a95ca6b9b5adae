package repository

import (
	"context"
	"time"

	"shavtzak-service/internal/domain/entity"
)

// WeatherProvider defines the interface for the external forecast
// lookup. Implementations fall back to deterministic pseudo-data when
// the lookup fails, so the method never errors.
type WeatherProvider interface {
	// WeekForecast returns one display entry per operational weekday,
	// starting at the given Sunday.
	WeekForecast(ctx context.Context, start time.Time) []entity.DayForecast
}
