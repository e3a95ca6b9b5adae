package usecase

import (
	"context"
	"errors"

	"shavtzak-service/internal/domain/entity"
	"shavtzak-service/internal/domain/repository"
	"shavtzak-service/pkg/logger"
	"shavtzak-service/pkg/metrics"
)

// Replicator fans one activity record out to multiple (week, day)
// targets. Every target is an independent load-mutate-save; targets
// that persisted before a failure stay persisted.
type Replicator struct {
	weeks   repository.WeekRepository
	audit   repository.AuditRepository
	metrics *metrics.Metrics
	logger  logger.Logger
}

// NewReplicator creates a new replicator. audit and metrics may be
// nil, which disables them.
func NewReplicator(
	weeks repository.WeekRepository,
	audit repository.AuditRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *Replicator {
	return &Replicator{
		weeks:   weeks,
		audit:   audit,
		metrics: metrics,
		logger:  logger,
	}
}

// PasteResult is one successfully written fan-out target.
type PasteResult struct {
	WeekNumber int                   `json:"weekNumber"`
	Day        entity.Weekday        `json:"day"`
	Record     entity.ActivityRecord `json:"record"`
}

// CopyTemplate strips the identity from a record, producing a
// reusable paste template.
func CopyTemplate(record entity.ActivityRecord) entity.ActivityRecord {
	template := record.Clone()
	template.ID = 0
	if template.Abroad != nil {
		template.Abroad.TargetDays = nil
	}
	return template
}

// Paste writes one fresh copy of template into each target day of
// targetWeek. Partial failure returns the successes alongside a
// ReplicationError naming the days that failed; nothing is rolled
// back.
func (r *Replicator) Paste(ctx context.Context, template entity.ActivityRecord, targetWeek int, targetDays []entity.Weekday) ([]PasteResult, error) {
	var (
		results []PasteResult
		failed  []entity.DayFailure
	)
	for _, day := range targetDays {
		record, err := r.pasteOne(ctx, template, targetWeek, day)
		if err != nil {
			r.logger.Error("Paste target failed", "week", targetWeek, "day", day, "error", err)
			failed = append(failed, entity.DayFailure{WeekNumber: targetWeek, Day: day, Err: err})
			continue
		}
		results = append(results, PasteResult{WeekNumber: targetWeek, Day: day, Record: *record})
		if r.metrics != nil {
			r.metrics.PasteTargets.Inc()
		}
	}
	if len(failed) > 0 {
		return results, &entity.ReplicationError{Failed: failed}
	}
	return results, nil
}

// CreateMultiDay fans a new abroad draft out to its selected target
// days within weekNumber, one independent record per day. Only abroad
// drafts carry a target-day selection, so any other kind is rejected.
func (r *Replicator) CreateMultiDay(ctx context.Context, draft entity.ActivityRecord, weekNumber int) ([]PasteResult, error) {
	if draft.Kind != entity.KindAbroad {
		return nil, &entity.ValidationError{MissingFields: []string{"kind"}}
	}
	if missing := entity.ValidateForCreate(draft); len(missing) > 0 {
		return nil, &entity.ValidationError{MissingFields: missing}
	}
	targetDays := draft.Abroad.TargetDays
	return r.Paste(ctx, CopyTemplate(draft), weekNumber, targetDays)
}

// pasteOne is one independent target write: its own load, its own
// fresh id, its own save.
func (r *Replicator) pasteOne(ctx context.Context, template entity.ActivityRecord, weekNumber int, day entity.Weekday) (*entity.ActivityRecord, error) {
	if err := checkOperationalDay(day); err != nil {
		return nil, err
	}

	container, err := r.weeks.Load(ctx, weekNumber)
	if errors.Is(err, entity.ErrNotFound) {
		container = entity.NewWeekContainer(weekNumber)
	} else if err != nil {
		return nil, err
	}

	record := template.Clone()
	record.ID = entity.NewFanoutActivityID()
	record.Normalize()
	if err := container.AddActivity(day, record); err != nil {
		return nil, err
	}
	if err := r.weeks.Save(ctx, container); err != nil {
		return nil, err
	}

	if r.audit != nil {
		entry := entity.AuditEntry{
			WeekNumber: weekNumber,
			Day:        day,
			Action:     entity.AuditPaste,
			ActivityID: record.ID,
		}
		if err := r.audit.Record(ctx, entry); err != nil {
			r.logger.Error("Failed to record audit entry", "error", err)
		}
	}
	return &record, nil
}
