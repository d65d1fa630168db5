// internal/repository/report_repository.go
package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/omerfdemir/pickuptracker/internal/models"
)

// ReportRepository runs the flattened export queries with sqlx, straight
// against the same connection pool the ent client uses. The SQL sticks
// to the portable subset so reporting works on both Postgres and the
// sqlite databases used in tests.
type ReportRepository struct {
	db *sqlx.DB
}

func NewReportRepository(db *sqlx.DB) *ReportRepository {
	return &ReportRepository{
		db: db,
	}
}

// ExportFilter narrows the exported task set. Semantics match the task
// list filters.
type ExportFilter struct {
	Status    *string
	Keyword   Keyword
	StartDate *time.Time // calendar date, inclusive
	EndDate   *time.Time // calendar date, inclusive
}

// ExportRows returns one row per matching task with the driver username
// resolved and the items summary joined in submission order.
func (r *ReportRepository) ExportRows(ctx context.Context, filter ExportFilter) ([]models.TaskExportRow, error) {
	where, args := buildExportWhere(filter)

	taskQuery := `
		SELECT t.id AS id,
		       t.donor_name AS donor_name,
		       t.address AS address,
		       t.status AS status,
		       COALESCE(u.username, 'Unassigned') AS driver,
		       t.created_at AS created_at
		FROM tasks t
		LEFT JOIN users u ON u.id = t.assigned_to` + where + `
		ORDER BY t.created_at, t.id`

	var rows []models.TaskExportRow
	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(taskQuery), args...); err != nil {
		return nil, fmt.Errorf("query export tasks: %w", err)
	}

	if len(rows) == 0 {
		return rows, nil
	}

	itemQuery := `
		SELECT i.task_id AS task_id,
		       i.quantity AS quantity,
		       i.category AS category
		FROM items i
		JOIN tasks t ON t.id = i.task_id` + where + `
		ORDER BY i.position, i.created_at`

	var items []models.ItemExportRow
	if err := r.db.SelectContext(ctx, &items, r.db.Rebind(itemQuery), args...); err != nil {
		return nil, fmt.Errorf("query export items: %w", err)
	}

	summaries := make(map[string][]string, len(rows))
	for _, it := range items {
		summaries[it.TaskID] = append(summaries[it.TaskID], fmt.Sprintf("%d %s", it.Quantity, it.Category))
	}
	for i := range rows {
		rows[i].ItemsSummary = strings.Join(summaries[rows[i].ID], ", ")
	}

	return rows, nil
}

func buildExportWhere(filter ExportFilter) (string, []interface{}) {
	var (
		conds []string
		args  []interface{}
	)

	if filter.Status != nil {
		conds = append(conds, "t.status = ?")
		args = append(args, *filter.Status)
	}

	switch filter.Keyword {
	case KeywordPending:
		conds = append(conds, "t.status <> ?")
		args = append(args, models.TaskStatusCompleted)
	case KeywordUrgent:
		conds = append(conds, "t.is_urgent")
	case KeywordCompleted:
		conds = append(conds, "t.status = ?")
		args = append(args, models.TaskStatusCompleted)
	}

	if filter.StartDate != nil {
		conds = append(conds, "t.created_at >= ?")
		args = append(args, startOfDay(*filter.StartDate))
	}
	if filter.EndDate != nil {
		conds = append(conds, "t.created_at < ?")
		args = append(args, startOfDay(*filter.EndDate).AddDate(0, 0, 1))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "\n\t\tWHERE " + strings.Join(conds, " AND "), args
}
