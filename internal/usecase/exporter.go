package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shavtzak-service/internal/domain/entity"
	"shavtzak-service/internal/domain/repository"
	"shavtzak-service/pkg/logger"

	"github.com/xuri/excelize/v2"
)

// WeekExporter renders a stored week as an xlsx workbook, one row per
// activity grouped by operational day.
type WeekExporter struct {
	weeks  repository.WeekRepository
	logger logger.Logger
}

// NewWeekExporter creates a new week exporter
func NewWeekExporter(weeks repository.WeekRepository, logger logger.Logger) *WeekExporter {
	return &WeekExporter{
		weeks:  weeks,
		logger: logger,
	}
}

var exportHeaders = []string{
	"יום",
	"סוג",
	"משימה",
	"פלטפורמה",
	"שעות",
	"מוביל",
	"צוות",
	"רכבים",
	"אתר עבודה",
	"מספר פרויקט",
	"הערות",
}

// Generate builds the workbook for weekNumber. A week that was never
// saved exports as an empty schedule.
func (g *WeekExporter) Generate(ctx context.Context, weekNumber int) ([]byte, error) {
	container, err := g.weeks.Load(ctx, weekNumber)
	if errors.Is(err, entity.ErrNotFound) {
		container = entity.NewWeekContainer(weekNumber)
	} else if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()
	sheet := fmt.Sprintf("שבוע %d", weekNumber)
	f.SetSheetName("Sheet1", sheet)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:   &excelize.Font{Bold: true},
		Fill:   excelize.Fill{Type: "pattern", Color: []string{"E0E0E0"}, Pattern: 1},
		Border: []excelize.Border{{Type: "bottom", Color: "000000", Style: 2}},
	})

	for i, name := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, name)
	}
	lastCol, _ := excelize.CoordinatesToCellName(len(exportHeaders), 1)
	f.SetCellStyle(sheet, "A1", lastCol, headerStyle)

	row := 2
	for _, day := range entity.OperationalWeekdays {
		for _, record := range container.Activities[day] {
			g.writeRecord(f, sheet, row, day, record)
			row++
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *WeekExporter) writeRecord(f *excelize.File, sheet string, row int, day entity.Weekday, record entity.ActivityRecord) {
	set := func(col int, value interface{}) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		f.SetCellValue(sheet, cell, value)
	}

	set(1, string(day))
	set(2, string(record.Kind))
	set(3, record.DisplayName())
	set(6, record.Manager)
	set(7, strings.Join(entity.EligiblePassengers(record), ", "))
	set(11, record.Notes)

	switch record.Kind {
	case entity.KindFlight:
		if record.Flight == nil {
			return
		}
		set(4, record.Flight.Platform)
		if record.Flight.StartTime != "" || record.Flight.EndTime != "" {
			set(5, record.Flight.StartTime+"-"+record.Flight.EndTime)
		}
		set(8, strings.Join(record.Flight.VehiclesList, ", "))
		set(9, record.Flight.WorkSite)
		set(10, record.Flight.ProjectNumber)
	case entity.KindMant:
		if record.Mant != nil {
			set(10, record.Mant.ProjectNumber)
		}
	case entity.KindAbroad:
		if record.Abroad != nil {
			set(10, record.Abroad.ProjectNumber)
		}
	}
}
