// Package logsvc answers the read queries over the task log store:
// playbook run summaries and filtered, paginated task log pages.
package logsvc

import (
	"context"
	"strconv"
	"strings"

	"github.com/marcverde/ansilog/internal/models"
	"github.com/marcverde/ansilog/internal/storage"
)

// Store is the read side of the task log store.
type Store interface {
	ListTaskLogs(ctx context.Context, f models.LogFilter) ([]models.TaskLogRow, int64, error)
	ListPlaybookRuns(ctx context.Context) ([]models.PlaybookRun, error)
	Stats(ctx context.Context) (models.StoreStats, error)
}

// Service encapsulates query business logic. It holds no per-request
// state; one instance serves all requests.
type Service struct {
	store Store
}

// NewService creates a query service over the given store.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// ListPlaybooks returns the playbook run summaries, newest first.
func (s *Service) ListPlaybooks(ctx context.Context) ([]models.PlaybookRun, error) {
	return s.store.ListPlaybookRuns(ctx)
}

// ListLogs returns one page of task log entries matching the query,
// plus pagination metadata. The count and the page come from the same
// filter, so total_records always agrees with the concatenated pages.
func (s *Service) ListLogs(ctx context.Context, q models.LogQuery) (models.LogPage, error) {
	filter := normalize(q)

	entries, total, err := s.store.ListTaskLogs(ctx, filter)
	if err != nil {
		return models.LogPage{}, err
	}

	for i := range entries {
		if entries[i].Playbook == "" {
			entries[i].Playbook = models.FieldPlaceholder
		}
		if entries[i].PlaybookUUID == "" {
			entries[i].PlaybookUUID = models.FieldPlaceholder
		}
		if entries[i].Module == "" {
			entries[i].Module = models.FieldPlaceholder
		}
	}

	totalPages := 0
	if total > 0 {
		totalPages = int((total + storage.PerPage - 1) / storage.PerPage)
	}

	return models.LogPage{
		Data:         entries,
		Page:         filter.Page,
		TotalPages:   totalPages,
		TotalRecords: total,
	}, nil
}

// Stats returns store-wide aggregate counts.
func (s *Service) Stats(ctx context.Context) (models.StoreStats, error) {
	return s.store.Stats(ctx)
}

// normalize turns raw query parameters into a storage filter: the page
// string becomes a 1-based integer, date components are zero-padded and
// the ALL status sentinel clears the status filter.
func normalize(q models.LogQuery) models.LogFilter {
	status := q.Status
	if status == models.StatusAll {
		status = ""
	}

	return models.LogFilter{
		Host:         q.Host,
		Playbook:     q.Playbook,
		PlaybookUUID: q.PlaybookUUID,
		Module:       q.Module,
		Task:         q.Task,
		Status:       status,
		Year:         q.Year,
		Month:        pad2(q.Month),
		Day:          pad2(q.Day),
		Hour:         pad2(q.Hour),
		Page:         ParsePage(q.Page),
	}
}

// ParsePage resolves the 1-based page number. Missing or non-numeric
// input defaults to page 1; values below 1 are clamped to 1 so they can
// never turn into a negative offset.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// pad2 left-pads a date component to two digits, so month=3 and
// month=03 filter identically.
func pad2(s string) string {
	if len(s) == 1 {
		return "0" + s
	}
	return s
}
