package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"shavtzak-service/internal/domain/entity"
	"shavtzak-service/internal/usecase"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeReplicator struct {
	results []usecase.PasteResult
	err     error
	called  bool
}

func (f *fakeReplicator) Paste(ctx context.Context, template entity.ActivityRecord, targetWeek int, targetDays []entity.Weekday) ([]usecase.PasteResult, error) {
	f.called = true
	return f.results, f.err
}

func (f *fakeReplicator) CreateMultiDay(ctx context.Context, draft entity.ActivityRecord, weekNumber int) ([]usecase.PasteResult, error) {
	f.called = true
	return f.results, f.err
}

func pasteRouter(replicator *fakeReplicator) chi.Router {
	r := chi.NewRouter()
	r.Post("/api/activities/paste", PasteActivity(nopLogger{}, replicator))
	r.Post("/api/weeks/{weekNumber}/activities/multi", CreateMultiDayActivity(nopLogger{}, replicator))
	return r
}

func TestPasteActivityValidatesTarget(t *testing.T) {
	replicator := &fakeReplicator{}
	router := pasteRouter(replicator)

	// Week numbers start at 1; nothing may be written under week 0 or
	// a negative week.
	for _, body := range []string{
		`{"record":{"activityType":"mant","taskName":"x"},"targetWeekNumber":0,"targetDays":["ראשון"]}`,
		`{"record":{"activityType":"mant","taskName":"x"},"targetWeekNumber":-3,"targetDays":["ראשון"]}`,
		`{"record":{"activityType":"mant","taskName":"x"},"targetWeekNumber":6}`,
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost,
			"/api/activities/paste", strings.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.False(t, replicator.called, body)
	}
}

func TestPasteActivityResponses(t *testing.T) {
	record := entity.NewDraft(entity.KindMant)
	record.TaskName = "טיפול"
	body := `{"record":{"activityType":"mant","taskName":"טיפול"},"targetWeekNumber":6,"targetDays":["ראשון","שני"]}`

	ok := &fakeReplicator{results: []usecase.PasteResult{
		{WeekNumber: 6, Day: entity.Weekdays[0], Record: record},
		{WeekNumber: 6, Day: entity.Weekdays[1], Record: record},
	}}
	rec := httptest.NewRecorder()
	pasteRouter(ok).ServeHTTP(rec, httptest.NewRequest(http.MethodPost,
		"/api/activities/paste", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code)

	var resp pasteResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Pasted, 2)
	assert.Empty(t, resp.Failed)

	partial := &fakeReplicator{
		results: []usecase.PasteResult{{WeekNumber: 6, Day: entity.Weekdays[0], Record: record}},
		err: &entity.ReplicationError{Failed: []entity.DayFailure{
			{WeekNumber: 6, Day: entity.Weekdays[1], Err: assert.AnError},
		}},
	}
	rec = httptest.NewRecorder()
	pasteRouter(partial).ServeHTTP(rec, httptest.NewRequest(http.MethodPost,
		"/api/activities/paste", strings.NewReader(body)))
	require.Equal(t, http.StatusMultiStatus, rec.Code)

	resp = pasteResponse{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.Pasted, 1)
	require.Len(t, resp.Failed, 1)
	assert.Equal(t, entity.Weekdays[1], resp.Failed[0].Day)
}

func TestCreateMultiDayActivityRejectsWrongKind(t *testing.T) {
	replicator := &fakeReplicator{err: &entity.ValidationError{MissingFields: []string{"kind"}}}
	router := pasteRouter(replicator)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPost,
		"/api/weeks/6/activities/multi",
		strings.NewReader(`{"activityType":"mant","taskName":"טיפול"}`)))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp errorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, []string{"kind"}, resp.MissingFields)
}
