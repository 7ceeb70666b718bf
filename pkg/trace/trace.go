// Package trace defines the logging collaborator the graph and search code report to.
//
// Events carry a verbosity level. The core never decides whether an event is shown;
// a Logger implementation compares the level against its own threshold.
package trace

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// Verbosity levels of trace events. Lower levels are more important.
const (
	LevelSummary  = 1 // search finished, heuristic map built
	LevelSearch   = 2 // frontier push/pop, relaxations
	LevelMutation = 3 // node and arc changes
	LevelDetail   = 4 // per node bookkeeping
)

type Logger interface {
	Emit(level int, msg string)
}

// Printf formats and emits the message. Formatting is skipped for a Nop logger.
func Printf(l Logger, level int, format string, args ...any) {
	if l == nil {
		return
	}
	if _, ok := l.(nopLogger); ok {
		return
	}
	if lv, ok := l.(*Leveled); ok && !lv.Enabled(level) {
		return
	}
	l.Emit(level, fmt.Sprintf(format, args...))
}

type nopLogger struct{}

func (nopLogger) Emit(int, string) {}

// Nop discards every event
var Nop Logger = nopLogger{}

// Leveled renders events up to a verbosity threshold through slog.
type Leveled struct {
	logger    *slog.Logger
	verbosity int
}

func NewLeveled(logger *slog.Logger, verbosity int) *Leveled {
	if logger == nil {
		logger = slog.Default()
	}
	return &Leveled{logger: logger, verbosity: verbosity}
}

func (l *Leveled) Enabled(level int) bool { return level <= l.verbosity }
func (l *Leveled) Verbosity() int         { return l.verbosity }
func (l *Leveled) SetVerbosity(v int)     { l.verbosity = v }

func (l *Leveled) Emit(level int, msg string) {
	if !l.Enabled(level) {
		return
	}
	// the threshold is ours, so everything that passes is logged at info
	l.logger.LogAttrs(context.Background(), slog.LevelInfo, msg, slog.Int("verbosity", level))
}

type Event struct {
	Level   int
	Message string
}

// Recorder keeps every event in memory
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Emit(level int, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, Event{Level: level, Message: msg})
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	events := make([]Event, len(r.events))
	copy(events, r.events)
	return events
}

func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
