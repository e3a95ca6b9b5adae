package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"shavtzak-service/internal/domain/entity"
	"shavtzak-service/internal/domain/repository"
	"shavtzak-service/pkg/logger"
)

// SettingsService manages the global reference-data documents.
// Burst edits to one key are debounced into a single store write;
// reads and explicit sets go straight through.
type SettingsService struct {
	settings repository.SettingsRepository
	logger   logger.Logger
	debounce time.Duration

	mu      sync.Mutex
	pending map[entity.SettingKey]*pendingWrite
}

type pendingWrite struct {
	timer *time.Timer
	value interface{}
}

// NewSettingsService creates a new settings service
func NewSettingsService(settings repository.SettingsRepository, debounce time.Duration, logger logger.Logger) *SettingsService {
	return &SettingsService{
		settings: settings,
		logger:   logger,
		debounce: debounce,
		pending:  make(map[entity.SettingKey]*pendingWrite),
	}
}

// Get returns the stored value for a known setting key, or
// entity.ErrNotFound when nothing was saved yet.
func (s *SettingsService) Get(ctx context.Context, key entity.SettingKey) (interface{}, error) {
	if !entity.IsKnownSettingKey(key) {
		return nil, &entity.ValidationError{MissingFields: []string{"key"}}
	}
	var out interface{}
	if err := s.settings.Get(ctx, key, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Set overwrites a setting immediately, cancelling any pending
// debounced write for the same key.
func (s *SettingsService) Set(ctx context.Context, key entity.SettingKey, value interface{}) error {
	if !entity.IsKnownSettingKey(key) {
		return &entity.ValidationError{MissingFields: []string{"key"}}
	}

	s.mu.Lock()
	if p, ok := s.pending[key]; ok {
		p.timer.Stop()
		delete(s.pending, key)
	}
	s.mu.Unlock()

	return s.settings.Set(ctx, key, value)
}

// SetDebounced schedules a write for key, collapsing bursts of edits
// into one persisted write after a quiet period. Write failures are
// logged; the caller has already moved on.
func (s *SettingsService) SetDebounced(key entity.SettingKey, value interface{}) error {
	if !entity.IsKnownSettingKey(key) {
		return &entity.ValidationError{MissingFields: []string{"key"}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if p, ok := s.pending[key]; ok {
		p.value = value
		p.timer.Reset(s.debounce)
		return nil
	}
	p := &pendingWrite{value: value}
	p.timer = time.AfterFunc(s.debounce, func() { s.firePending(key) })
	s.pending[key] = p
	return nil
}

func (s *SettingsService) firePending(key entity.SettingKey) {
	s.mu.Lock()
	p, ok := s.pending[key]
	if ok {
		delete(s.pending, key)
	}
	s.mu.Unlock()
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.settings.Set(ctx, key, p.value); err != nil {
		s.logger.Error("Debounced settings write failed", "key", key, "error", err)
	}
}

// Flush persists every pending debounced write immediately; called on
// shutdown so a quiet-period timer still in flight is not lost.
func (s *SettingsService) Flush(ctx context.Context) {
	s.mu.Lock()
	drained := make(map[entity.SettingKey]interface{}, len(s.pending))
	for key, p := range s.pending {
		p.timer.Stop()
		drained[key] = p.value
		delete(s.pending, key)
	}
	s.mu.Unlock()

	for key, value := range drained {
		if err := s.settings.Set(ctx, key, value); err != nil {
			s.logger.Error("Settings flush failed", "key", key, "error", err)
		}
	}
}

// DealerNumbers returns the managed tail-number/dealer-number pairs;
// an unsaved list reads as empty.
func (s *SettingsService) DealerNumbers(ctx context.Context) ([]entity.DealerNumber, error) {
	var dealers []entity.DealerNumber
	err := s.settings.Get(ctx, entity.SettingDealerNumbers, &dealers)
	if errors.Is(err, entity.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return dealers, nil
}

// AutoFillSerial applies the dealer-number mapping to a flight
// record's tail number, overwriting its serial number on a match.
func (s *SettingsService) AutoFillSerial(ctx context.Context, record *entity.ActivityRecord) error {
	dealers, err := s.DealerNumbers(ctx)
	if err != nil {
		return err
	}
	entity.ApplySerialAutoFill(record, dealers)
	return nil
}
