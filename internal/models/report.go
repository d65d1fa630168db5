package models

import (
	"time"
)

// Task status values as stored in the database.
const (
	TaskStatusAssigned   = "assigned"
	TaskStatusInProgress = "in_progress"
	TaskStatusCompleted  = "completed"
	TaskStatusCancelled  = "cancelled"
)

// StatusDisplay maps a stored status value to its human-readable label,
// used in CSV exports.
func StatusDisplay(status string) string {
	switch status {
	case TaskStatusAssigned:
		return "Assigned"
	case TaskStatusInProgress:
		return "In Progress"
	case TaskStatusCompleted:
		return "Completed"
	case TaskStatusCancelled:
		return "Cancelled"
	default:
		return status
	}
}

// TaskExportRow is one flattened task row for the CSV export, produced
// by the sqlx reporting query.
type TaskExportRow struct {
	ID        string    `db:"id"`
	DonorName string    `db:"donor_name"`
	Address   string    `db:"address"`
	Status    string    `db:"status"`
	Driver    string    `db:"driver"`
	CreatedAt time.Time `db:"created_at"`

	// ItemsSummary is the comma-joined "{quantity} {category}" list for
	// the task's items, filled in after the item query.
	ItemsSummary string `db:"-"`
}

// ItemExportRow is one collected item joined to its task for the export.
type ItemExportRow struct {
	TaskID   string `db:"task_id"`
	Quantity uint32 `db:"quantity"`
	Category string `db:"category"`
}
