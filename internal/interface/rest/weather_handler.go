package rest

import (
	"net/http"
	"time"

	"shavtzak-service/internal/domain/repository"
	"shavtzak-service/pkg/logger"
	"shavtzak-service/pkg/weekclock"

	"github.com/go-chi/render"
)

// GetWeather returns the display forecast for the current operational
// week. The provider falls back to deterministic pseudo-data, so this
// endpoint always answers 200.
func GetWeather(log logger.Logger, weather repository.WeatherProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		start, _ := weekclock.DateRangeForWeek(weekclock.CurrentWeekNumber(now), now)
		render.JSON(w, r, map[string]interface{}{
			"startDate": start.Format("2006-01-02"),
			"days":      weather.WeekForecast(r.Context(), start),
		})
	}
}
