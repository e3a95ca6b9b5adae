package rest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shavtzak-service/internal/domain/entity"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWeekProvider struct {
	containers map[int]*entity.WeekContainer
	added      *entity.ActivityRecord
	loadErr    error
}

func (f *fakeWeekProvider) Load(ctx context.Context, weekNumber int) (*entity.WeekContainer, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if c, ok := f.containers[weekNumber]; ok {
		return c, nil
	}
	return entity.NewWeekContainer(weekNumber), nil
}

func (f *fakeWeekProvider) AddActivity(ctx context.Context, weekNumber int, day entity.Weekday, record entity.ActivityRecord) (*entity.ActivityRecord, error) {
	if missing := entity.ValidateForSave(record); len(missing) > 0 {
		return nil, &entity.ValidationError{MissingFields: missing}
	}
	if record.ID == 0 {
		record.ID = entity.NewActivityID()
	}
	f.added = &record
	return &record, nil
}

func (f *fakeWeekProvider) UpdateActivity(ctx context.Context, weekNumber int, day entity.Weekday, record entity.ActivityRecord) (bool, error) {
	return record.ID == 1, nil
}

func (f *fakeWeekProvider) DeleteActivity(ctx context.Context, weekNumber int, day entity.Weekday, id int64) (bool, error) {
	return id == 1, nil
}

type nopAutoFill struct{}

func (nopAutoFill) AutoFillSerial(ctx context.Context, record *entity.ActivityRecord) error {
	return nil
}

func weekRouter(provider *fakeWeekProvider) chi.Router {
	r := chi.NewRouter()
	r.Get("/api/weeks/{weekNumber}", GetWeek(nopLogger{}, provider))
	r.Post("/api/weeks/{weekNumber}/days/{day}/activities", AddActivity(nopLogger{}, provider, nopAutoFill{}))
	r.Put("/api/weeks/{weekNumber}/days/{day}/activities/{id}", UpdateActivity(nopLogger{}, provider, nopAutoFill{}))
	r.Delete("/api/weeks/{weekNumber}/days/{day}/activities/{id}", DeleteActivity(nopLogger{}, provider))
	return r
}

func TestGetWeek(t *testing.T) {
	router := weekRouter(&fakeWeekProvider{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/weeks/12", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp weekResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, 12, resp.WeekNumber)
	assert.Len(t, resp.Container.Activities, 7)
	assert.NotEmpty(t, resp.StartDate)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/weeks/0", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddActivityHandler(t *testing.T) {
	provider := &fakeWeekProvider{}
	router := weekRouter(provider)

	body := `{
		"activityType": "flight",
		"taskName": "גיחת צילום",
		"manager": "דנה",
		"flight": {"platform": "כוכב", "type": "aerial", "workSite": "מגרש צפון", "projectNumber": "P-1"}
	}`
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost,
		"/api/weeks/5/days/ראשון/activities", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp activityResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotZero(t, resp.Record.ID)
	// Crew fields were left empty, so the save succeeds with warnings.
	assert.True(t, resp.Warnings.CrewIncomplete)
	require.NotNil(t, provider.added)

	// Missing required fields answer 400.
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost,
		"/api/weeks/5/days/ראשון/activities", strings.NewReader(`{"activityType":"flight"}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost,
		"/api/weeks/5/days/ראשון/activities", strings.NewReader(`{oops`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateAndDeleteNoop(t *testing.T) {
	router := weekRouter(&fakeWeekProvider{})

	body := `{"activityType":"mant","taskName":"טיפול"}`
	for id, want := range map[int]bool{1: true, 42: false} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPut,
			fmt.Sprintf("/api/weeks/5/days/שני/activities/%d", id), strings.NewReader(body)))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]interface{}
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, want, resp["updated"], "id %d", id)
	}

	for id, want := range map[int]bool{1: true, 42: false} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete,
			fmt.Sprintf("/api/weeks/5/days/שני/activities/%d", id), nil))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]bool
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, want, resp["deleted"], "id %d", id)
	}
}

func TestErrorMapping(t *testing.T) {
	router := weekRouter(&fakeWeekProvider{loadErr: entity.ErrNotFound})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/weeks/3", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	var resp errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "no data for this week", resp.Error)
}
