package rest

import (
	"context"
	"net/http"
	"strconv"

	"shavtzak-service/internal/domain/entity"
	"shavtzak-service/internal/usecase"
	"shavtzak-service/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// HistoryProvider is the read-only historical browsing surface. It
// deliberately exposes no mutation.
type HistoryProvider interface {
	AvailableWeeks(year int) []int
	LoadWeek(ctx context.Context, year, weekOfYear int) (*usecase.HistoricalWeek, error)
}

// GetAvailableWeeks lists the browsable week numbers for a year.
func GetAvailableWeeks(log logger.Logger, history HistoryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := yearParam(r)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		render.JSON(w, r, map[string]interface{}{
			"year":  year,
			"weeks": history.AvailableWeeks(year),
		})
	}
}

// GetHistoricalWeek loads one past week read-only. A week with no
// stored document answers 404 "no data for this week".
func GetHistoricalWeek(log logger.Logger, history HistoryProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err := yearParam(r)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		weekOfYear, err := strconv.Atoi(chi.URLParam(r, "weekOfYear"))
		if err != nil || weekOfYear < 1 {
			writeError(w, r, log, &entity.ValidationError{MissingFields: []string{"weekOfYear"}})
			return
		}

		week, err := history.LoadWeek(r.Context(), year, weekOfYear)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		render.JSON(w, r, week)
	}
}

func yearParam(r *http.Request) (int, error) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year < 2000 {
		return 0, &entity.ValidationError{MissingFields: []string{"year"}}
	}
	return year, nil
}
