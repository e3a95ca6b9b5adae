package rest

import (
	"errors"
	"net/http"

	"shavtzak-service/internal/domain/entity"
	"shavtzak-service/pkg/logger"

	"github.com/go-chi/render"
)

// errorResponse is the uniform error body. MissingFields is populated
// for validation failures so the client can highlight them.
type errorResponse struct {
	Error         string   `json:"error"`
	MissingFields []string `json:"missingFields,omitempty"`
}

// writeError maps the domain error taxonomy onto HTTP statuses.
func writeError(w http.ResponseWriter, r *http.Request, log logger.Logger, err error) {
	var validationErr *entity.ValidationError
	if errors.As(err, &validationErr) {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, errorResponse{
			Error:         "validation failed",
			MissingFields: validationErr.MissingFields,
		})
		return
	}
	if errors.Is(err, entity.ErrCapacityExceeded) {
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, errorResponse{Error: err.Error()})
		return
	}
	if errors.Is(err, entity.ErrNotFound) {
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, errorResponse{Error: "no data for this week"})
		return
	}

	log.Error("Request failed", "path", r.URL.Path, "error", err)
	render.Status(r, http.StatusInternalServerError)
	render.JSON(w, r, errorResponse{Error: "could not save/load"})
}
