package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/marcverde/ansilog/internal/models"
)

// PerPage is the fixed page size for task log queries.
const PerPage = 100

// InsertTaskLog appends one task log entry. Rows are never updated or
// deleted afterwards; the id is assigned by the store.
func (c *SQLiteClient) InsertTaskLog(ctx context.Context, entry *models.TaskLogEntry) error {
	query := `
		INSERT INTO task_logs (
			timestamp, inventory_hostname, playbook, playbook_uuid,
			module, task_name, status, result
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := c.db.ExecContext(ctx, query,
		entry.Timestamp.Format(TimeLayout),
		entry.InventoryHostname,
		entry.Playbook,
		entry.PlaybookUUID,
		entry.Module,
		entry.TaskName,
		entry.Status,
		entry.Result,
	)
	if err != nil {
		return fmt.Errorf("insert task log: %w", err)
	}

	return nil
}

// buildLogFilter translates a normalized filter into a WHERE clause and
// its arguments. The same clause is used for both the COUNT and the page
// fetch so the two can never diverge.
func buildLogFilter(f models.LogFilter) (string, []interface{}) {
	clauses := []string{}
	args := []interface{}{}

	if f.Host != "" {
		clauses = append(clauses, "inventory_hostname LIKE ?")
		args = append(args, "%"+f.Host+"%")
	}
	if f.Playbook != "" {
		clauses = append(clauses, "playbook LIKE ?")
		args = append(args, "%"+f.Playbook+"%")
	}
	if f.PlaybookUUID != "" {
		clauses = append(clauses, "playbook_uuid = ?")
		args = append(args, f.PlaybookUUID)
	}
	if f.Module != "" {
		clauses = append(clauses, "module LIKE ?")
		args = append(args, "%"+f.Module+"%")
	}
	if f.Task != "" {
		clauses = append(clauses, "task_name LIKE ?")
		args = append(args, "%"+f.Task+"%")
	}
	if f.Status != "" {
		clauses = append(clauses, "status = ?")
		args = append(args, f.Status)
	}
	if f.Year != "" {
		clauses = append(clauses, "strftime('%Y', timestamp) = ?")
		args = append(args, f.Year)
	}
	if f.Month != "" {
		clauses = append(clauses, "strftime('%m', timestamp) = ?")
		args = append(args, f.Month)
	}
	if f.Day != "" {
		clauses = append(clauses, "strftime('%d', timestamp) = ?")
		args = append(args, f.Day)
	}
	if f.Hour != "" {
		clauses = append(clauses, "strftime('%H', timestamp) = ?")
		args = append(args, f.Hour)
	}

	if len(clauses) == 0 {
		return "", args
	}
	return "WHERE " + strings.Join(clauses, " AND "), args
}

// ListTaskLogs retrieves one page of task log entries matching the
// filter, newest insertion first, plus the total match count.
func (c *SQLiteClient) ListTaskLogs(ctx context.Context, f models.LogFilter) ([]models.TaskLogRow, int64, error) {
	whereClause, args := buildLogFilter(f)

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM task_logs %s", whereClause)
	var total int64
	if err := c.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count task logs: %w", err)
	}

	page := f.Page
	if page < 1 {
		page = 1
	}
	offset := (page - 1) * PerPage

	listQuery := fmt.Sprintf(`
		SELECT id, timestamp, inventory_hostname, playbook, playbook_uuid,
		       module, task_name, status, result
		FROM task_logs
		%s
		ORDER BY id DESC
		LIMIT ? OFFSET ?
	`, whereClause)

	args = append(args, PerPage, offset)

	rows, err := c.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list task logs: %w", err)
	}
	defer rows.Close()

	entries := []models.TaskLogRow{}
	for rows.Next() {
		var (
			entry        models.TaskLogRow
			timestamp    sql.NullString
			hostname     sql.NullString
			playbook     sql.NullString
			playbookUUID sql.NullString
			module       sql.NullString
			taskName     sql.NullString
			status       sql.NullString
			result       sql.NullString
		)
		err := rows.Scan(
			&entry.ID,
			&timestamp,
			&hostname,
			&playbook,
			&playbookUUID,
			&module,
			&taskName,
			&status,
			&result,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("scan task log: %w", err)
		}

		entry.Timestamp = timestamp.String
		entry.InventoryHostname = hostname.String
		entry.Playbook = playbook.String
		entry.PlaybookUUID = playbookUUID.String
		entry.Module = module.String
		entry.TaskName = taskName.String
		entry.Status = models.Status(status.String)
		entry.Result = result.String

		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate task logs: %w", err)
	}

	return entries, total, nil
}

// ListPlaybookRuns aggregates task log entries into one summary row per
// playbook run, newest start first. Entries without a real run
// identifier (NULL or the N/A sentinel) are excluded.
func (c *SQLiteClient) ListPlaybookRuns(ctx context.Context) ([]models.PlaybookRun, error) {
	query := `
		SELECT
			playbook_uuid,
			playbook,
			MIN(timestamp) AS start_time,
			MAX(timestamp) AS end_time,
			COUNT(*) AS task_count
		FROM task_logs
		WHERE playbook_uuid IS NOT NULL AND playbook_uuid != ?
		GROUP BY playbook_uuid
		ORDER BY start_time DESC
	`

	rows, err := c.db.QueryContext(ctx, query, models.PlaybookUUIDNone)
	if err != nil {
		return nil, fmt.Errorf("list playbook runs: %w", err)
	}
	defer rows.Close()

	runs := []models.PlaybookRun{}
	for rows.Next() {
		var (
			run      models.PlaybookRun
			playbook sql.NullString
		)
		if err := rows.Scan(&run.PlaybookUUID, &playbook, &run.StartTime, &run.EndTime, &run.TaskCount); err != nil {
			return nil, fmt.Errorf("scan playbook run: %w", err)
		}
		run.Playbook = playbook.String
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate playbook runs: %w", err)
	}

	return runs, nil
}

// Stats reports aggregate counts over the whole store.
func (c *SQLiteClient) Stats(ctx context.Context) (models.StoreStats, error) {
	stats := models.StoreStats{StatusCounts: make(map[models.Status]int64)}

	if err := c.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM task_logs").Scan(&stats.TotalEntries); err != nil {
		return models.StoreStats{}, fmt.Errorf("count task logs: %w", err)
	}

	playbookQuery := "SELECT COUNT(DISTINCT playbook_uuid) FROM task_logs WHERE playbook_uuid IS NOT NULL AND playbook_uuid != ?"
	if err := c.db.QueryRowContext(ctx, playbookQuery, models.PlaybookUUIDNone).Scan(&stats.PlaybookCount); err != nil {
		return models.StoreStats{}, fmt.Errorf("count playbook runs: %w", err)
	}

	rows, err := c.db.QueryContext(ctx, "SELECT status, COUNT(*) FROM task_logs GROUP BY status")
	if err != nil {
		return models.StoreStats{}, fmt.Errorf("count statuses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status sql.NullString
			count  int64
		)
		if err := rows.Scan(&status, &count); err != nil {
			return models.StoreStats{}, fmt.Errorf("scan status count: %w", err)
		}
		stats.StatusCounts[models.Status(status.String)] = count
	}
	if err := rows.Err(); err != nil {
		return models.StoreStats{}, fmt.Errorf("iterate status counts: %w", err)
	}

	return stats, nil
}
