package usecase

import (
	"context"
	"time"

	"shavtzak-service/internal/domain/entity"
	"shavtzak-service/internal/domain/repository"
	"shavtzak-service/pkg/logger"
	"shavtzak-service/pkg/weekclock"
)

// HistoryService resolves (year, week-of-year) pairs to stored week
// documents for read-only browsing. It exposes no mutating operation.
type HistoryService struct {
	weeks  repository.WeekRepository
	logger logger.Logger
	now    func() time.Time
}

// NewHistoryService creates a new history service. now may be nil,
// defaulting to time.Now.
func NewHistoryService(weeks repository.WeekRepository, logger logger.Logger, now func() time.Time) *HistoryService {
	if now == nil {
		now = time.Now
	}
	return &HistoryService{
		weeks:  weeks,
		logger: logger,
		now:    now,
	}
}

// HistoricalWeek is a read-only view of a past week with its
// operational date range.
type HistoricalWeek struct {
	Year       int                   `json:"year"`
	WeekOfYear int                   `json:"weekOfYear"`
	WeekNumber int                   `json:"weekNumber"`
	StartDate  string                `json:"startDate"`
	EndDate    string                `json:"endDate"`
	Container  *entity.WeekContainer `json:"container"`
}

// AvailableWeeks lists the browsable week numbers for a year; the
// current week and anything after it are never offered.
func (s *HistoryService) AvailableWeeks(year int) []int {
	return weekclock.AvailableWeeksForYear(year, s.now())
}

// LoadWeek fetches the stored container mapped from (year,
// weekOfYear). A week with no stored document returns
// entity.ErrNotFound, surfaced to the caller as "no data for this
// week".
func (s *HistoryService) LoadWeek(ctx context.Context, year, weekOfYear int) (*HistoricalWeek, error) {
	weekNumber := weekclock.WeekNumberForYearWeek(year, weekOfYear)
	container, err := s.weeks.Load(ctx, weekNumber)
	if err != nil {
		return nil, err
	}

	start, end := weekclock.DateRangeForWeek(weekNumber, s.now())
	return &HistoricalWeek{
		Year:       year,
		WeekOfYear: weekOfYear,
		WeekNumber: weekNumber,
		StartDate:  start.Format("2006-01-02"),
		EndDate:    end.Format("2006-01-02"),
		Container:  container,
	}, nil
}
