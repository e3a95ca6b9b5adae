package usecase

import (
	"context"
	"reflect"
	"sync"
	"testing"
	"time"

	"shavtzak-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSettingsRepo struct {
	mu     sync.Mutex
	values map[entity.SettingKey]interface{}
	sets   int
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{values: map[entity.SettingKey]interface{}{}}
}

func (f *fakeSettingsRepo) Get(ctx context.Context, key entity.SettingKey, out interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	value, ok := f.values[key]
	if !ok {
		return entity.ErrNotFound
	}
	reflect.ValueOf(out).Elem().Set(reflect.ValueOf(value))
	return nil
}

func (f *fakeSettingsRepo) Set(ctx context.Context, key entity.SettingKey, value interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sets++
	f.values[key] = value
	return nil
}

func (f *fakeSettingsRepo) setCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.sets
}

func (f *fakeSettingsRepo) value(key entity.SettingKey) interface{} {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[key]
}

func TestSettingsGetSet(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo, time.Hour, testLogger())
	ctx := context.Background()

	_, err := svc.Get(ctx, entity.SettingMealsLink)
	assert.ErrorIs(t, err, entity.ErrNotFound)

	require.NoError(t, svc.Set(ctx, entity.SettingMealsLink, "https://meals.example"))
	value, err := svc.Get(ctx, entity.SettingMealsLink)
	require.NoError(t, err)
	assert.Equal(t, "https://meals.example", value)

	var validationErr *entity.ValidationError
	assert.ErrorAs(t, svc.Set(ctx, "nonsense", "x"), &validationErr)
	_, err = svc.Get(ctx, "nonsense")
	assert.ErrorAs(t, err, &validationErr)
}

func TestSetDebouncedCollapsesBursts(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo, 20*time.Millisecond, testLogger())

	for _, text := range []string{"א", "אב", "אבג"} {
		require.NoError(t, svc.SetDebounced(entity.SettingAdditionalInfo, text))
	}
	assert.Zero(t, repo.setCount())

	assert.Eventually(t, func() bool {
		return repo.setCount() == 1
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "אבג", repo.value(entity.SettingAdditionalInfo))
}

func TestImmediateSetCancelsPending(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo, 30*time.Millisecond, testLogger())
	ctx := context.Background()

	require.NoError(t, svc.SetDebounced(entity.SettingMealsLink, "draft"))
	require.NoError(t, svc.Set(ctx, entity.SettingMealsLink, "final"))

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, 1, repo.setCount())
	assert.Equal(t, "final", repo.value(entity.SettingMealsLink))
}

func TestFlushPersistsPendingWrites(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo, time.Hour, testLogger())

	require.NoError(t, svc.SetDebounced(entity.SettingMealsLink, "link"))
	require.NoError(t, svc.SetDebounced(entity.SettingAdditionalInfo, "info"))
	assert.Zero(t, repo.setCount())

	svc.Flush(context.Background())
	assert.Equal(t, 2, repo.setCount())
	assert.Equal(t, "link", repo.value(entity.SettingMealsLink))

	// Flushing again writes nothing.
	svc.Flush(context.Background())
	assert.Equal(t, 2, repo.setCount())
}

func TestAutoFillSerial(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo, time.Hour, testLogger())
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, entity.SettingDealerNumbers, []entity.DealerNumber{
		{TailNumber: "401", DealerNumber: "D-1001"},
	}))

	record := completeFlightRecord()
	record.Flight.TailNumber = "401"
	require.NoError(t, svc.AutoFillSerial(ctx, &record))
	assert.Equal(t, "D-1001", record.Flight.SerialNumber)

	// An empty mapping leaves the record alone.
	empty := NewSettingsService(newFakeSettingsRepo(), time.Hour, testLogger())
	untouched := completeFlightRecord()
	untouched.Flight.TailNumber = "401"
	untouched.Flight.SerialNumber = "manual"
	require.NoError(t, empty.AutoFillSerial(ctx, &untouched))
	assert.Equal(t, "manual", untouched.Flight.SerialNumber)
}
