package rest

import (
	"context"
	"errors"
	"net/http"

	"shavtzak-service/internal/domain/entity"
	"shavtzak-service/internal/usecase"
	"shavtzak-service/pkg/logger"

	"github.com/go-chi/render"
)

// ReplicationProvider fans activity copies out to (week, day) targets.
type ReplicationProvider interface {
	Paste(ctx context.Context, template entity.ActivityRecord, targetWeek int, targetDays []entity.Weekday) ([]usecase.PasteResult, error)
	CreateMultiDay(ctx context.Context, draft entity.ActivityRecord, weekNumber int) ([]usecase.PasteResult, error)
}

type pasteRequest struct {
	Record           entity.ActivityRecord `json:"record"`
	TargetWeekNumber int                   `json:"targetWeekNumber"`
	TargetDays       []entity.Weekday      `json:"targetDays"`
}

type failedTarget struct {
	WeekNumber int            `json:"weekNumber"`
	Day        entity.Weekday `json:"day"`
	Error      string         `json:"error"`
}

type pasteResponse struct {
	Pasted []usecase.PasteResult `json:"pasted"`
	Failed []failedTarget        `json:"failed,omitempty"`
}

// PasteActivity copies one record into the selected days of the
// target week. Partial failure answers 207 with both the days that
// were written and the days that were not; the written ones stay.
func PasteActivity(log logger.Logger, replicator ReplicationProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req pasteRequest
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, errorResponse{Error: "malformed request body"})
			return
		}
		if req.TargetWeekNumber < 1 {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, errorResponse{Error: "validation failed", MissingFields: []string{"targetWeekNumber"}})
			return
		}
		if len(req.TargetDays) == 0 {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, errorResponse{Error: "validation failed", MissingFields: []string{entity.FieldTargetDays}})
			return
		}

		template := usecase.CopyTemplate(req.Record)
		results, err := replicator.Paste(r.Context(), template, req.TargetWeekNumber, req.TargetDays)
		respondFanout(w, r, log, results, err)
	}
}

// CreateMultiDayActivity creates one independent abroad record per
// selected weekday of the given week.
func CreateMultiDayActivity(log logger.Logger, replicator ReplicationProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weekNumber, err := weekNumberParam(r)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		var draft entity.ActivityRecord
		if err := render.DecodeJSON(r.Body, &draft); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, errorResponse{Error: "malformed request body"})
			return
		}
		draft.Normalize()

		results, err := replicator.CreateMultiDay(r.Context(), draft, weekNumber)
		respondFanout(w, r, log, results, err)
	}
}

func respondFanout(w http.ResponseWriter, r *http.Request, log logger.Logger, results []usecase.PasteResult, err error) {
	var replicationErr *entity.ReplicationError
	if errors.As(err, &replicationErr) {
		failed := make([]failedTarget, 0, len(replicationErr.Failed))
		for _, f := range replicationErr.Failed {
			failed = append(failed, failedTarget{
				WeekNumber: f.WeekNumber,
				Day:        f.Day,
				Error:      f.Err.Error(),
			})
		}
		render.Status(r, http.StatusMultiStatus)
		render.JSON(w, r, pasteResponse{Pasted: results, Failed: failed})
		return
	}
	if err != nil {
		writeError(w, r, log, err)
		return
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, pasteResponse{Pasted: results})
}
