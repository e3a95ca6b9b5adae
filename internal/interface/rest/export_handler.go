package rest

import (
	"context"
	"fmt"
	"net/http"

	"shavtzak-service/pkg/logger"
)

// ExportProvider renders one week as an xlsx workbook.
type ExportProvider interface {
	Generate(ctx context.Context, weekNumber int) ([]byte, error)
}

// ExportWeek answers with a downloadable xlsx of the week's schedule.
func ExportWeek(log logger.Logger, exporter ExportProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		weekNumber, err := weekNumberParam(r)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		data, err := exporter.Generate(r.Context(), weekNumber)
		if err != nil {
			writeError(w, r, log, err)
			return
		}

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="week_%d.xlsx"`, weekNumber))
		w.Write(data)
	}
}
