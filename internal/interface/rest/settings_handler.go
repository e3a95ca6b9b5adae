package rest

import (
	"context"
	"net/http"

	"shavtzak-service/internal/domain/entity"
	"shavtzak-service/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// SettingsProvider is the reference-data surface the handlers need.
type SettingsProvider interface {
	Get(ctx context.Context, key entity.SettingKey) (interface{}, error)
	Set(ctx context.Context, key entity.SettingKey, value interface{}) error
	SetDebounced(key entity.SettingKey, value interface{}) error
}

// GetSetting returns the stored document for one settings key.
func GetSetting(log logger.Logger, settings SettingsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := entity.SettingKey(chi.URLParam(r, "key"))
		value, err := settings.Get(r.Context(), key)
		if err != nil {
			writeError(w, r, log, err)
			return
		}
		render.JSON(w, r, map[string]interface{}{"key": key, "value": value})
	}
}

// PutSetting overwrites one settings document. With ?debounce=true
// bursts of edits coalesce into a single store write after a quiet
// period; the response then only acknowledges scheduling.
func PutSetting(log logger.Logger, settings SettingsProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := entity.SettingKey(chi.URLParam(r, "key"))

		var req struct {
			Value interface{} `json:"value"`
		}
		if err := render.DecodeJSON(r.Body, &req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, errorResponse{Error: "malformed request body"})
			return
		}

		if r.URL.Query().Get("debounce") == "true" {
			if err := settings.SetDebounced(key, req.Value); err != nil {
				writeError(w, r, log, err)
				return
			}
			render.Status(r, http.StatusAccepted)
			render.JSON(w, r, map[string]string{"status": "scheduled"})
			return
		}

		if err := settings.Set(r.Context(), key, req.Value); err != nil {
			writeError(w, r, log, err)
			return
		}
		render.JSON(w, r, map[string]string{"status": "saved"})
	}
}
