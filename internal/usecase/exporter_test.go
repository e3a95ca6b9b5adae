package usecase

import (
	"bytes"
	"context"
	"testing"

	"shavtzak-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xuri/excelize/v2"
)

func TestGenerateEmptyWeek(t *testing.T) {
	exporter := NewWeekExporter(newFakeWeekRepo(), testLogger())

	data, err := exporter.Generate(context.Background(), 40)
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	// xlsx is a zip archive
	assert.Equal(t, []byte("PK"), data[:2])
}

func TestGenerateWritesActivityRows(t *testing.T) {
	repo := newFakeWeekRepo()
	exporter := NewWeekExporter(repo, testLogger())
	ctx := context.Background()

	container := entity.NewWeekContainer(41)
	flight := completeFlightRecord()
	require.NoError(t, container.AddActivity(entity.Weekdays[0], flight))
	mant := entity.NewDraft(entity.KindMant)
	mant.TaskName = "טיפול שבועי"
	require.NoError(t, container.AddActivity(entity.Weekdays[2], mant))
	require.NoError(t, repo.Save(ctx, container))

	data, err := exporter.Generate(ctx, 41)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	sheet := "שבוע 41"
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + two activities

	assert.Equal(t, "יום", rows[0][0])
	assert.Equal(t, string(entity.Weekdays[0]), rows[1][0])
	assert.Equal(t, string(entity.KindFlight), rows[1][1])
	assert.Equal(t, flight.Flight.Platform, rows[1][3])
	assert.Equal(t, string(entity.Weekdays[2]), rows[2][0])
	assert.Equal(t, string(entity.KindMant), rows[2][1])
}
