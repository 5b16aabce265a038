// Package ingest bridges the automation engine's callback hook to the
// recorder. The hook writes one JSON object per signal on stdout; this
// reader consumes that stream line by line.
package ingest

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"

	"go.uber.org/zap"

	"github.com/marcverde/ansilog/internal/logging"
)

// Signal kinds accepted on the wire.
const (
	EventPlaybookStart     = "playbook_start"
	EventRunnerOK          = "runner_ok"
	EventRunnerFailed      = "runner_failed"
	EventRunnerUnreachable = "runner_unreachable"
	EventRunnerSkipped     = "runner_skipped"
)

// maxLineSize bounds a single event line. Result payloads can carry
// whole file contents, so this is deliberately generous.
const maxLineSize = 1 << 20

// Event is one decoded signal from the callback stream.
type Event struct {
	Event        string                 `json:"event"`
	Playbook     string                 `json:"playbook,omitempty"`
	UUID         string                 `json:"uuid,omitempty"`
	Host         string                 `json:"host,omitempty"`
	Task         string                 `json:"task,omitempty"`
	Module       string                 `json:"module,omitempty"`
	IgnoreErrors bool                   `json:"ignore_errors,omitempty"`
	Result       map[string]interface{} `json:"result,omitempty"`
}

// Sink receives decoded signals. *recorder.Recorder satisfies it.
type Sink interface {
	PlaybookStart(path, uuid string)
	TaskOK(host, task, module string, result map[string]interface{})
	TaskFailed(host, task, module string, ignoreErrors bool, result map[string]interface{})
	TaskUnreachable(host, task, module string, result map[string]interface{})
	TaskSkipped(host, task, module string, result map[string]interface{})
}

// Run consumes the event stream until EOF, dispatching each signal to
// the sink. Malformed lines and unknown event kinds are skipped; only a
// read error on the stream itself is returned.
func Run(r io.Reader, sink Sink, logger logging.Logger) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}

		var ev Event
		if err := json.Unmarshal(line, &ev); err != nil {
			logger.Warn("skipping malformed event line", zap.Error(err))
			continue
		}

		Dispatch(ev, sink, logger)
	}

	return scanner.Err()
}

// Dispatch routes one decoded event to the matching sink call.
func Dispatch(ev Event, sink Sink, logger logging.Logger) {
	switch ev.Event {
	case EventPlaybookStart:
		sink.PlaybookStart(ev.Playbook, ev.UUID)
	case EventRunnerOK:
		sink.TaskOK(ev.Host, ev.Task, ev.Module, ev.Result)
	case EventRunnerFailed:
		sink.TaskFailed(ev.Host, ev.Task, ev.Module, ev.IgnoreErrors, ev.Result)
	case EventRunnerUnreachable:
		sink.TaskUnreachable(ev.Host, ev.Task, ev.Module, ev.Result)
	case EventRunnerSkipped:
		sink.TaskSkipped(ev.Host, ev.Task, ev.Module, ev.Result)
	default:
		logger.Debug("skipping unknown event kind", zap.String("event", ev.Event))
	}
}
