package rest

import (
	"net/http"
	"time"

	"shavtzak-service/internal/domain/repository"
	"shavtzak-service/internal/usecase"
	"shavtzak-service/pkg/logger"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

// Dependencies bundles everything the router mounts.
type Dependencies struct {
	Logger          logger.Logger
	ManagerPassword string
	AllowedOrigins  []string
	Location        *time.Location

	Weeks      *usecase.WeekService
	Replicator *usecase.Replicator
	History    *usecase.HistoryService
	Settings   *usecase.SettingsService
	Exporter   *usecase.WeekExporter
	Weather    repository.WeatherProvider
	Blobs      repository.BlobRepository
}

// NewRouter builds the service's HTTP surface.
func NewRouter(deps Dependencies) *chi.Mux {
	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   deps.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})
	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	log := deps.Logger

	router.Post("/api/auth/check", CheckPassword(log, deps.ManagerPassword))

	router.Get("/api/weeks/current", GetCurrentWeek(log, deps.Weeks, deps.Location))
	router.Get("/api/weeks/{weekNumber}", GetWeek(log, deps.Weeks))
	router.Get("/api/weeks/{weekNumber}/export", ExportWeek(log, deps.Exporter))
	router.Post("/api/weeks/{weekNumber}/days/{day}/activities", AddActivity(log, deps.Weeks, deps.Settings))
	router.Post("/api/weeks/{weekNumber}/activities/multi", CreateMultiDayActivity(log, deps.Replicator))
	router.Put("/api/weeks/{weekNumber}/days/{day}/activities/{id}", UpdateActivity(log, deps.Weeks, deps.Settings))
	router.Delete("/api/weeks/{weekNumber}/days/{day}/activities/{id}", DeleteActivity(log, deps.Weeks))

	router.Post("/api/activities/paste", PasteActivity(log, deps.Replicator))

	router.Get("/api/history/{year}/weeks", GetAvailableWeeks(log, deps.History))
	router.Get("/api/history/{year}/{weekOfYear}", GetHistoricalWeek(log, deps.History))

	router.Get("/api/settings/{key}", GetSetting(log, deps.Settings))
	router.Put("/api/settings/{key}", PutSetting(log, deps.Settings))

	router.Get("/api/weather", GetWeather(log, deps.Weather))

	router.Post("/api/frequency-table/image", UploadFrequencyTable(log, deps.Blobs))
	router.Get("/api/frequency-table/image", GetFrequencyTable(log, deps.Blobs))
	router.Delete("/api/frequency-table/image", DeleteFrequencyTable(log, deps.Blobs))

	router.Handle("/metrics", promhttp.Handler())
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	return router
}
