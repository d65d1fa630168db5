// Package report renders export rows into downloadable documents.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"github.com/omerfdemir/pickuptracker/internal/models"
)

// CSVContentType is the MIME type attached to CSV exports.
const CSVContentType = "text/csv"

var csvHeader = []string{"ID", "Donor", "Address", "Status", "Driver", "Items Collected", "Created At"}

// TasksCSV renders the export rows as a CSV document with a fixed
// header, one row per task.
func TasksCSV(rows []models.TaskExportRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.ID,
			row.DonorName,
			row.Address,
			models.StatusDisplay(row.Status),
			row.Driver,
			row.ItemsSummary,
			row.CreatedAt.UTC().Format("2006-01-02 15:04:05"),
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

// ExportFileName names the download after the export date.
func ExportFileName(now time.Time) string {
	return fmt.Sprintf("tasks_export_%s.csv", now.UTC().Format("2006-01-02"))
}
