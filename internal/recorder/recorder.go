// Package recorder persists one task_logs row per task outcome observed
// from an Ansible run. Every failure path is fail-open: a broken store
// must never abort the automation run that is being logged.
package recorder

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/marcverde/ansilog/internal/logging"
	"github.com/marcverde/ansilog/internal/models"
	"github.com/marcverde/ansilog/internal/storage"
	"github.com/marcverde/ansilog/pkg/clock"
)

// Store is the write side of the task log store.
type Store interface {
	InsertTaskLog(ctx context.Context, entry *models.TaskLogEntry) error
	Close() error
}

// Publisher mirrors recorded entries to an external sink. Publish
// failures are logged and otherwise ignored.
type Publisher interface {
	Publish(ctx context.Context, entry models.TaskLogEntry) error
}

// Recorder holds the run-scoped playbook identity and appends one entry
// per task-outcome signal. A Recorder whose store could not be opened
// stays usable; it just drops everything silently.
type Recorder struct {
	store  Store
	mirror Publisher
	logger logging.Logger
	clock  clock.Clock

	playbook     string
	playbookUUID string
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithClock overrides the wall clock used for entry timestamps.
func WithClock(c clock.Clock) Option {
	return func(r *Recorder) { r.clock = c }
}

// WithMirror attaches an entry mirror, e.g. a Kafka publisher.
func WithMirror(p Publisher) Option {
	return func(r *Recorder) { r.mirror = p }
}

// New opens the store at dbPath and prepares its schema. Directory
// creation, connection and schema failures disable the recorder for the
// rest of the process instead of being returned: logging must not be
// able to fail the run.
func New(dbPath string, logger logging.Logger, opts ...Option) *Recorder {
	r := newRecorder(logger, opts...)

	client, err := storage.Open(dbPath)
	if err != nil {
		logger.Warn("task logging disabled: could not open store",
			zap.String("path", dbPath),
			zap.Error(err),
		)
		return r
	}

	if err := client.InitSchema(context.Background()); err != nil {
		logger.Warn("task logging disabled: could not initialize schema",
			zap.String("path", dbPath),
			zap.Error(err),
		)
		client.Close()
		return r
	}

	r.store = client
	return r
}

// NewWithStore builds a recorder over an already-open store. The caller
// keeps ownership of schema initialization.
func NewWithStore(store Store, logger logging.Logger, opts ...Option) *Recorder {
	r := newRecorder(logger, opts...)
	r.store = store
	return r
}

func newRecorder(logger logging.Logger, opts ...Option) *Recorder {
	r := &Recorder{
		logger:       logger,
		clock:        clock.RealClock{},
		playbook:     models.PlaybookAdHoc,
		playbookUUID: models.PlaybookUUIDNone,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Enabled reports whether the recorder has a usable store.
func (r *Recorder) Enabled() bool {
	return r.store != nil
}

// Close releases the store connection, if any.
func (r *Recorder) Close() error {
	if r.store == nil {
		return nil
	}
	return r.store.Close()
}

// PlaybookStart records the identity of a new run. Every subsequent
// entry carries these values until the next start signal; there is no
// implicit reset.
func (r *Recorder) PlaybookStart(path, uuid string) {
	if path != "" {
		r.playbook = filepath.Base(path)
	}
	if uuid != "" {
		r.playbookUUID = uuid
	}
}

// TaskOK records a successful task. The result's changed flag upgrades
// the status from OK to CHANGED.
func (r *Recorder) TaskOK(host, task, module string, result map[string]interface{}) {
	status := models.StatusOK
	if resultChanged(result) {
		status = models.StatusChanged
	}
	r.logResult(host, task, module, status, result)
}

// TaskFailed records a failed task. ignoreErrors marks failures the run
// was configured to tolerate.
func (r *Recorder) TaskFailed(host, task, module string, ignoreErrors bool, result map[string]interface{}) {
	status := models.StatusFailed
	if ignoreErrors {
		status = models.StatusFailedIgnored
	}
	r.logResult(host, task, module, status, result)
}

// TaskUnreachable records a host that could not be contacted.
func (r *Recorder) TaskUnreachable(host, task, module string, result map[string]interface{}) {
	r.logResult(host, task, module, models.StatusUnreachable, result)
}

// TaskSkipped records a task the engine decided not to run.
func (r *Recorder) TaskSkipped(host, task, module string, result map[string]interface{}) {
	r.logResult(host, task, module, models.StatusSkipped, result)
}

func (r *Recorder) logResult(host, task, module string, status models.Status, result map[string]interface{}) {
	if r.store == nil {
		return
	}

	entry := models.TaskLogEntry{
		Timestamp:         r.clock.Now(),
		InventoryHostname: host,
		Playbook:          r.playbook,
		PlaybookUUID:      r.playbookUUID,
		Module:            module,
		TaskName:          task,
		Status:            status,
		Result:            SerializeResult(result),
	}

	ctx := context.Background()
	if err := r.store.InsertTaskLog(ctx, &entry); err != nil {
		r.logger.Warn("could not log task result",
			zap.String("host", host),
			zap.String("task", task),
			zap.Error(err),
		)
		return
	}

	if r.mirror != nil {
		if err := r.mirror.Publish(ctx, entry); err != nil {
			r.logger.Warn("could not mirror task result",
				zap.String("host", host),
				zap.String("task", task),
				zap.Error(err),
			)
		}
	}
}

// resultChanged mimics the engine's truthiness check on the changed flag.
func resultChanged(result map[string]interface{}) bool {
	if result == nil {
		return false
	}
	changed, ok := result["changed"].(bool)
	return ok && changed
}
