package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"shavtzak-service/internal/domain/entity"
	"shavtzak-service/internal/domain/repository"
	"shavtzak-service/pkg/logger"
)

// ForecastService resolves weekly weather display strings from an
// external forecast endpoint, falling back to deterministic
// pseudo-data when the lookup fails or no endpoint is configured.
type ForecastService struct {
	endpoint  string
	latitude  string
	longitude string
	client    *http.Client
	logger    logger.Logger
}

// NewForecastService creates a new forecast service
func NewForecastService(endpoint, latitude, longitude string, logger logger.Logger) repository.WeatherProvider {
	return &ForecastService{
		endpoint:  endpoint,
		latitude:  latitude,
		longitude: longitude,
		client:    &http.Client{Timeout: 10 * time.Second},
		logger:    logger,
	}
}

type forecastResponse struct {
	Daily struct {
		Time        []string  `json:"time"`
		WeatherCode []int     `json:"weathercode"`
		TempMin     []float64 `json:"temperature_2m_min"`
		TempMax     []float64 `json:"temperature_2m_max"`
	} `json:"daily"`
}

// WeekForecast returns one entry per operational weekday starting at
// the given Sunday.
func (s *ForecastService) WeekForecast(ctx context.Context, start time.Time) []entity.DayForecast {
	if s.endpoint != "" {
		forecast, err := s.fetch(ctx, start)
		if err == nil {
			return forecast
		}
		s.logger.Warn("Forecast lookup failed, using fallback data", "error", err)
	}
	return s.fallback(start)
}

func (s *ForecastService) fetch(ctx context.Context, start time.Time) ([]entity.DayForecast, error) {
	query := url.Values{}
	query.Set("latitude", s.latitude)
	query.Set("longitude", s.longitude)
	query.Set("daily", "weathercode,temperature_2m_min,temperature_2m_max")
	query.Set("start_date", start.Format("2006-01-02"))
	query.Set("end_date", start.AddDate(0, 0, 4).Format("2006-01-02"))
	query.Set("timezone", "auto")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("forecast endpoint returned %d", resp.StatusCode)
	}

	var body forecastResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, err
	}
	if len(body.Daily.Time) < len(entity.OperationalWeekdays) {
		return nil, fmt.Errorf("forecast returned %d days", len(body.Daily.Time))
	}

	forecast := make([]entity.DayForecast, 0, len(entity.OperationalWeekdays))
	for i, day := range entity.OperationalWeekdays {
		forecast = append(forecast, entity.DayForecast{
			Day:     day,
			Date:    body.Daily.Time[i],
			Summary: summaryForCode(body.Daily.WeatherCode[i]),
			TempMin: int(body.Daily.TempMin[i]),
			TempMax: int(body.Daily.TempMax[i]),
			Source:  "forecast",
		})
	}
	return forecast, nil
}

// fallback produces pseudo-data that is a pure function of the date,
// so repeated calls for the same week render identically.
func (s *ForecastService) fallback(start time.Time) []entity.DayForecast {
	forecast := make([]entity.DayForecast, 0, len(entity.OperationalWeekdays))
	for i, day := range entity.OperationalWeekdays {
		date := start.AddDate(0, 0, i)
		seed := date.YearDay() + date.Year()
		min := 14 + (seed+i)%7
		forecast = append(forecast, entity.DayForecast{
			Day:     day,
			Date:    date.Format("2006-01-02"),
			Summary: fallbackSummaries[(seed+i)%len(fallbackSummaries)],
			TempMin: min,
			TempMax: min + 8 + (seed*i)%4,
			Source:  "fallback",
		})
	}
	return forecast
}

var fallbackSummaries = []string{
	"בהיר",
	"מעונן חלקית",
	"מעונן",
	"נאה",
}

func summaryForCode(code int) string {
	switch {
	case code == 0:
		return "בהיר"
	case code <= 3:
		return "מעונן חלקית"
	case code <= 48:
		return "ערפילי"
	case code <= 67:
		return "גשום"
	case code <= 77:
		return "שלג"
	case code <= 99:
		return "סופות"
	}
	return "מעונן"
}
