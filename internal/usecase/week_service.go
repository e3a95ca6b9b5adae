package usecase

import (
	"context"
	"errors"
	"strconv"
	"time"

	"shavtzak-service/internal/domain/entity"
	"shavtzak-service/internal/domain/repository"
	"shavtzak-service/pkg/logger"
	"shavtzak-service/pkg/metrics"

	"golang.org/x/sync/singleflight"
)

// WeekService orchestrates week-container reads and the manager
// editing flow. Mutations follow the source's optimistic model:
// load, mutate in memory, save the whole document (last writer wins).
type WeekService struct {
	weeks   repository.WeekRepository
	audit   repository.AuditRepository
	metrics *metrics.Metrics
	logger  logger.Logger
	loads   singleflight.Group
}

// NewWeekService creates a new week service. audit and metrics may be
// nil, which disables them.
func NewWeekService(
	weeks repository.WeekRepository,
	audit repository.AuditRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *WeekService {
	return &WeekService{
		weeks:   weeks,
		audit:   audit,
		metrics: metrics,
		logger:  logger,
	}
}

// Load returns the container for weekNumber. A week that was never
// saved yields a freshly initialized container that is not persisted
// until the first mutation. Concurrent loads of the same week collapse
// into one store read; joined callers get their own deep copy so no
// two callers ever mutate the same container.
func (s *WeekService) Load(ctx context.Context, weekNumber int) (*entity.WeekContainer, error) {
	v, err, shared := s.loads.Do(strconv.Itoa(weekNumber), func() (interface{}, error) {
		container, err := s.weeks.Load(ctx, weekNumber)
		if errors.Is(err, entity.ErrNotFound) {
			return entity.NewWeekContainer(weekNumber), nil
		}
		if err != nil {
			return nil, err
		}
		return container, nil
	})
	if err != nil {
		s.countError("load_week")
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.WeeksLoaded.Inc()
	}
	container := v.(*entity.WeekContainer)
	if shared {
		container = container.Clone()
	}
	return container, nil
}

// Save persists the container as a full overwrite.
func (s *WeekService) Save(ctx context.Context, container *entity.WeekContainer) error {
	start := time.Now()
	if err := s.weeks.Save(ctx, container); err != nil {
		s.countError("save_week")
		return err
	}
	if s.metrics != nil {
		s.metrics.WeeksSaved.Inc()
		s.metrics.SaveDuration.Observe(time.Since(start).Seconds())
	}
	return nil
}

// AddActivity validates the record, assigns an id if the draft has
// none, appends it to the day's list and persists the week.
func (s *WeekService) AddActivity(ctx context.Context, weekNumber int, day entity.Weekday, record entity.ActivityRecord) (*entity.ActivityRecord, error) {
	if err := checkOperationalDay(day); err != nil {
		return nil, err
	}
	record.Normalize()
	if missing := entity.ValidateForSave(record); len(missing) > 0 {
		return nil, &entity.ValidationError{MissingFields: missing}
	}
	if record.ID == 0 {
		record.ID = entity.NewActivityID()
	}

	container, err := s.Load(ctx, weekNumber)
	if err != nil {
		return nil, err
	}
	if err := container.AddActivity(day, record); err != nil {
		return nil, err
	}
	if err := s.Save(ctx, container); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, weekNumber, day, entity.AuditAdd, record.ID)
	return &record, nil
}

// UpdateActivity replaces the record with the same id on the given
// day. An absent id is a documented no-op: nothing is persisted and
// found is false.
func (s *WeekService) UpdateActivity(ctx context.Context, weekNumber int, day entity.Weekday, record entity.ActivityRecord) (bool, error) {
	if err := checkOperationalDay(day); err != nil {
		return false, err
	}
	record.Normalize()
	if missing := entity.ValidateForSave(record); len(missing) > 0 {
		return false, &entity.ValidationError{MissingFields: missing}
	}

	container, err := s.Load(ctx, weekNumber)
	if err != nil {
		return false, err
	}
	if !container.UpdateActivity(day, record) {
		s.logger.Warn("Update target not found", "week", weekNumber, "day", day, "id", record.ID)
		return false, nil
	}
	if err := s.Save(ctx, container); err != nil {
		return false, err
	}

	s.recordAudit(ctx, weekNumber, day, entity.AuditUpdate, record.ID)
	return true, nil
}

// DeleteActivity removes the record with the given id. An absent id is
// a documented no-op.
func (s *WeekService) DeleteActivity(ctx context.Context, weekNumber int, day entity.Weekday, id int64) (bool, error) {
	if err := checkOperationalDay(day); err != nil {
		return false, err
	}

	container, err := s.Load(ctx, weekNumber)
	if err != nil {
		return false, err
	}
	if !container.DeleteActivity(day, id) {
		s.logger.Warn("Delete target not found", "week", weekNumber, "day", day, "id", id)
		return false, nil
	}
	if err := s.Save(ctx, container); err != nil {
		return false, err
	}

	s.recordAudit(ctx, weekNumber, day, entity.AuditDelete, id)
	return true, nil
}

func (s *WeekService) recordAudit(ctx context.Context, weekNumber int, day entity.Weekday, action entity.AuditAction, activityID int64) {
	if s.audit == nil {
		return
	}
	entry := entity.AuditEntry{
		WeekNumber: weekNumber,
		Day:        day,
		Action:     action,
		ActivityID: activityID,
	}
	if err := s.audit.Record(ctx, entry); err != nil {
		s.logger.Error("Failed to record audit entry", "error", err)
	}
}

func (s *WeekService) countError(operation string) {
	if s.metrics != nil {
		s.metrics.ErrorsCount.WithLabelValues(operation).Inc()
	}
}

// checkOperationalDay rejects mutations outside the five-day
// operational week, keeping the weekend buckets permanently empty.
func checkOperationalDay(day entity.Weekday) error {
	for _, d := range entity.OperationalWeekdays {
		if d == day {
			return nil
		}
	}
	return &entity.ValidationError{MissingFields: []string{"day"}}
}
