package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"shavtzak-service/internal/domain/entity"
	"shavtzak-service/pkg/logger"
	"shavtzak-service/pkg/weekclock"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// WeekProvider is the week-container surface the handlers need.
type WeekProvider interface {
	Load(ctx context.Context, weekNumber int) (*entity.WeekContainer, error)
	AddActivity(ctx context.Context, weekNumber int, day entity.Weekday, record entity.ActivityRecord) (*entity.ActivityRecord, error)
	UpdateActivity(ctx context.Context, weekNumber int, day entity.Weekday, record entity.ActivityRecord) (bool, error)
	DeleteActivity(ctx context.Context, weekNumber int, day entity.Weekday, id int64) (bool, error)
}

// SerialAutoFiller applies the dealer-number mapping before a flight
// record is saved.
type SerialAutoFiller interface {
	AutoFillSerial(ctx context.Context, record *entity.ActivityRecord) error
}

type weekResponse struct {
	WeekNumber int                   `json:"weekNumber"`
	StartDate  string                `json:"startDate"`
	EndDate    string                `json:"endDate"`
	Container  *entity.WeekContainer `json:"container"`
}

type activityResponse struct {
	Record   entity.ActivityRecord `json:"record"`
	Warnings entity.RecordWarnings `json:"warnings"`
}

// GetCurrentWeek resolves which stored week "now" addresses. Managers
// pass offset 0..2 and get the Friday-10:00 rollover pre-advance;
// ordinary users always see offset 0 unadjusted.
func GetCurrentWeek(log logger.Logger, weeks WeekProvider, loc *time.Location) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now()
		offset := 0
		if r.URL.Query().Get("manager") == "true" {
			requested, _ := strconv.Atoi(r.URL.Query().Get("offset"))
			offset = weekclock.EffectiveOffset(requested, now, loc)
		}
		weekNumber := weekclock.CurrentWeekNumber(now) + offset

		container, err := weeks.Load(r.Context(), weekNumber)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		start, end := weekclock.DateRangeForWeek(weekNumber, now)
		render.JSON(w, r, weekResponse{
			WeekNumber: weekNumber,
			StartDate:  start.Format("2006-01-02"),
			EndDate:    end.Format("2006-01-02"),
			Container:  container,
		})
	}
}

// GetWeek loads one week by number; a never-saved week answers with a
// fresh empty container.
func GetWeek(log logger.Logger, weeks WeekProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weekNumber, err := weekNumberParam(r)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		container, err := weeks.Load(r.Context(), weekNumber)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		start, end := weekclock.DateRangeForWeek(weekNumber, time.Now())
		render.JSON(w, r, weekResponse{
			WeekNumber: weekNumber,
			StartDate:  start.Format("2006-01-02"),
			EndDate:    end.Format("2006-01-02"),
			Container:  container,
		})
	}
}

// AddActivity validates and appends one record to a day.
func AddActivity(log logger.Logger, weeks WeekProvider, autofill SerialAutoFiller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weekNumber, err := weekNumberParam(r)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		day := entity.Weekday(chi.URLParam(r, "day"))

		var record entity.ActivityRecord
		if err := render.DecodeJSON(r.Body, &record); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, errorResponse{Error: "malformed request body"})
			return
		}
		record.Normalize()

		if err := autofill.AutoFillSerial(r.Context(), &record); err != nil {
			writeError(w, r, log, err)
			return
		}

		saved, err := weeks.AddActivity(r.Context(), weekNumber, day, record)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		render.Status(r, http.StatusCreated)
		render.JSON(w, r, activityResponse{Record: *saved, Warnings: entity.Warnings(*saved)})
	}
}

// UpdateActivity replaces the record addressed by the URL id. An
// absent id is the documented no-op: nothing persisted, updated=false.
func UpdateActivity(log logger.Logger, weeks WeekProvider, autofill SerialAutoFiller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weekNumber, err := weekNumberParam(r)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		day := entity.Weekday(chi.URLParam(r, "day"))
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, errorResponse{Error: "malformed activity id"})
			return
		}

		var record entity.ActivityRecord
		if err := render.DecodeJSON(r.Body, &record); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, errorResponse{Error: "malformed request body"})
			return
		}
		record.ID = id
		record.Normalize()

		if err := autofill.AutoFillSerial(r.Context(), &record); err != nil {
			writeError(w, r, log, err)
			return
		}

		updated, err := weeks.UpdateActivity(r.Context(), weekNumber, day, record)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		render.JSON(w, r, map[string]interface{}{
			"updated":  updated,
			"warnings": entity.Warnings(record),
		})
	}
}

// DeleteActivity removes the record addressed by the URL id;
// idempotent by the same no-op rule.
func DeleteActivity(log logger.Logger, weeks WeekProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weekNumber, err := weekNumberParam(r)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		day := entity.Weekday(chi.URLParam(r, "day"))
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, errorResponse{Error: "malformed activity id"})
			return
		}

		deleted, err := weeks.DeleteActivity(r.Context(), weekNumber, day, id)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		render.JSON(w, r, map[string]bool{"deleted": deleted})
	}
}

func weekNumberParam(r *http.Request) (int, error) {
	weekNumber, err := strconv.Atoi(chi.URLParam(r, "weekNumber"))
	if err != nil || weekNumber < 1 {
		return 0, &entity.ValidationError{MissingFields: []string{"weekNumber"}}
	}
	return weekNumber, nil
}
