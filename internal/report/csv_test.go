package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omerfdemir/pickuptracker/internal/models"
)

func TestTasksCSV(t *testing.T) {
	created := time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

	rows := []models.TaskExportRow{
		{
			ID:           "11111111-1111-1111-1111-111111111111",
			DonorName:    "Jane",
			Address:      "42 Elm Street",
			Status:       models.TaskStatusCompleted,
			Driver:       "driver1",
			CreatedAt:    created,
			ItemsSummary: "2 Chairs, 1 Table",
		},
		{
			ID:        "22222222-2222-2222-2222-222222222222",
			DonorName: "John",
			Status:    models.TaskStatusAssigned,
			Driver:    "Unassigned",
			CreatedAt: created,
		},
	}

	data, err := TasksCSV(rows)
	require.NoError(t, err)

	want := "ID,Donor,Address,Status,Driver,Items Collected,Created At\n" +
		"11111111-1111-1111-1111-111111111111,Jane,42 Elm Street,Completed,driver1,\"2 Chairs, 1 Table\",2025-03-14 09:30:00\n" +
		"22222222-2222-2222-2222-222222222222,John,,Assigned,Unassigned,,2025-03-14 09:30:00\n"
	assert.Equal(t, want, string(data))
}

func TestTasksCSV_EmptyStillHasHeader(t *testing.T) {
	data, err := TasksCSV(nil)
	require.NoError(t, err)
	assert.Equal(t, "ID,Donor,Address,Status,Driver,Items Collected,Created At\n", string(data))
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, "tasks_export_2025-03-14.csv", ExportFileName(now))
}

func TestStatusDisplay(t *testing.T) {
	assert.Equal(t, "In Progress", models.StatusDisplay(models.TaskStatusInProgress))
	assert.Equal(t, "Cancelled", models.StatusDisplay(models.TaskStatusCancelled))
	assert.Equal(t, "mystery", models.StatusDisplay("mystery"))
}
