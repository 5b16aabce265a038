package models

import "time"

// Status is the terminal outcome recorded for one task execution.
type Status string

const (
	StatusOK            Status = "OK"
	StatusChanged       Status = "CHANGED"
	StatusFailed        Status = "FAILED"
	StatusFailedIgnored Status = "FAILED_IGNORED"
	StatusUnreachable   Status = "UNREACHABLE"
	StatusSkipped       Status = "SKIPPED"
)

// StatusAll is the reserved filter value meaning "do not filter by status".
const StatusAll = "ALL"

// Sentinel values substituted when real data is absent.
const (
	PlaybookAdHoc    = "Ad-Hoc" // run started without a playbook file
	PlaybookUUIDNone = "N/A"    // run carries no identifier
	FieldPlaceholder = "-"      // shown for columns missing from older rows
)

// TaskLogEntry is one task outcome as written by the recorder.
type TaskLogEntry struct {
	Timestamp         time.Time `json:"timestamp"`
	InventoryHostname string    `json:"inventory_hostname"`
	Playbook          string    `json:"playbook"`
	PlaybookUUID      string    `json:"playbook_uuid"`
	Module            string    `json:"module"`
	TaskName          string    `json:"task_name"`
	Status            Status    `json:"status"`
	Result            string    `json:"result"`
}

// TaskLogRow is one stored entry as read back by the query service.
// Timestamp keeps the store's DATETIME text form so callers see exactly
// what was persisted. Playbook, PlaybookUUID and Module may have been
// added to the schema after the row was written; empty values are
// replaced with FieldPlaceholder before the row leaves the service.
type TaskLogRow struct {
	ID                int64  `json:"id"`
	Timestamp         string `json:"timestamp"`
	InventoryHostname string `json:"inventory_hostname"`
	Playbook          string `json:"playbook"`
	PlaybookUUID      string `json:"playbook_uuid"`
	Module            string `json:"module"`
	TaskName          string `json:"task_name"`
	Status            Status `json:"status"`
	Result            string `json:"result"`
} // @name TaskLogRow

// PlaybookRun is the aggregated view of one playbook execution, derived
// from its task log entries. Runs without a real playbook_uuid are
// excluded from this view entirely.
type PlaybookRun struct {
	PlaybookUUID string `json:"playbook_uuid"`
	Playbook     string `json:"playbook"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	TaskCount    int64  `json:"task_count"`
} // @name PlaybookRun

// LogQuery carries the raw /api/logs query parameters. Everything is a
// string at this layer; normalization (page parsing, date padding, the
// ALL status sentinel) happens in the service.
type LogQuery struct {
	Host         string `form:"host"`
	Playbook     string `form:"playbook"`
	PlaybookUUID string `form:"playbook_uuid"`
	Module       string `form:"module"`
	Task         string `form:"task"`
	Status       string `form:"status"`
	Year         string `form:"year"`
	Month        string `form:"month"`
	Day          string `form:"day"`
	Hour         string `form:"hour"`
	Page         string `form:"page"`
} // @name LogQuery

// LogFilter is the normalized form of LogQuery handed to storage.
// Month, Day and Hour are already zero-padded; Status is empty when no
// status filter applies; Page is 1-based and never below 1.
type LogFilter struct {
	Host         string
	Playbook     string
	PlaybookUUID string
	Module       string
	Task         string
	Status       string
	Year         string
	Month        string
	Day          string
	Hour         string
	Page         int
}

// LogPage is the paginated /api/logs response body.
type LogPage struct {
	Data         []TaskLogRow `json:"data"`
	Page         int          `json:"page"`
	TotalPages   int          `json:"total_pages"`
	TotalRecords int64        `json:"total_records"`
} // @name LogPage

// StoreStats summarizes the store contents for the metrics endpoint.
type StoreStats struct {
	TotalEntries  int64            `json:"total_entries"`
	PlaybookCount int64            `json:"playbook_count"`
	StatusCounts  map[Status]int64 `json:"status_counts"`
} // @name StoreStats
