package entity

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound marks lookups whose target document or record does not
// exist. Update/delete on a missing activity id is a documented no-op
// and does not produce this error; historical week lookups do.
var ErrNotFound = errors.New("not found")

// ErrCapacityExceeded rejects adding a sixth passenger to one leg of
// a vehicle assignment.
var ErrCapacityExceeded = errors.New("passenger capacity exceeded")

// ValidationError reports which required fields were empty; the save
// that produced it performed no mutation.
type ValidationError struct {
	MissingFields []string
}

func (e *ValidationError) Error() string {
	return "missing required fields: " + strings.Join(e.MissingFields, ", ")
}

// StoreError wraps a failed document-store read or write. In-memory
// state is left as-is; the core never retries.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// DayFailure is one failed target of a multi-day fan-out.
type DayFailure struct {
	WeekNumber int
	Day        Weekday
	Err        error
}

// ReplicationError aggregates the targets that failed during a
// multi-day paste or creation. Targets that succeeded before the
// failures stay persisted; there is no rollback.
type ReplicationError struct {
	Failed []DayFailure
}

func (e *ReplicationError) Error() string {
	days := make([]string, 0, len(e.Failed))
	for _, f := range e.Failed {
		days = append(days, fmt.Sprintf("week %d %s", f.WeekNumber, f.Day))
	}
	return "replication failed for: " + strings.Join(days, ", ")
}
