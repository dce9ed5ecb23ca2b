// Package trace provides structured tracing for the Ren interpreter.
//
// Events are JSON lines written to stderr by default, or to a rotating
// log file when one is configured. The evaluator emits eval events;
// the parse dialect engine emits dispatch/match/fail events so a rule
// walk can be replayed offline.
package trace

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Session manages trace event collection and output.
type Session struct {
	mu      sync.Mutex
	enabled atomic.Bool
	sink    io.Writer
	logger  *lumberjack.Logger
	step    int64
}

// Event is a single trace record.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Step      int64     `json:"step"`
	Kind      string    `json:"kind"`               // "eval", "parse-dispatch", "parse-match", "parse-fail"
	Word      string    `json:"word,omitempty"`     // word or keyword being handled
	Value     string    `json:"value,omitempty"`    // molded value or rule element
	Position  int       `json:"position,omitempty"` // input position (parse events)
	Error     string    `json:"error,omitempty"`
}

// Global is the active trace session.
var Global = &Session{sink: os.Stderr}

// Init configures the global session. An empty traceFile keeps stderr;
// otherwise a rotating file sink is installed (maxSizeMB per file,
// 5 compressed backups).
func Init(enabled bool, traceFile string, maxSizeMB int) {
	Global.mu.Lock()
	defer Global.mu.Unlock()
	if traceFile != "" {
		Global.logger = &lumberjack.Logger{
			Filename:   traceFile,
			MaxSize:    maxSizeMB,
			MaxBackups: 5,
			Compress:   true,
		}
		Global.sink = Global.logger
	} else {
		Global.sink = os.Stderr
	}
	Global.enabled.Store(enabled)
}

// Enabled reports whether tracing is on; cheap enough for hot loops.
func Enabled() bool { return Global.enabled.Load() }

// SetEnabled toggles tracing at runtime.
func SetEnabled(on bool) { Global.enabled.Store(on) }

// Close flushes and closes a file sink, if any.
func Close() error {
	Global.mu.Lock()
	defer Global.mu.Unlock()
	if Global.logger != nil {
		return Global.logger.Close()
	}
	return nil
}

// Emit writes one event. No-op when tracing is off.
func Emit(ev Event) {
	if !Enabled() {
		return
	}
	ev.Timestamp = time.Now()
	ev.Step = atomic.AddInt64(&Global.step, 1)
	Global.mu.Lock()
	defer Global.mu.Unlock()
	data, err := json.Marshal(ev)
	if err != nil {
		return
	}
	Global.sink.Write(append(data, '\n'))
}

// ParseDispatch records the engine reaching a rule element.
func ParseDispatch(element string, pos int) {
	Emit(Event{Kind: "parse-dispatch", Value: element, Position: pos})
}

// ParseOutcome records an element match or failure.
func ParseOutcome(element string, pos int, matched bool) {
	kind := "parse-match"
	if !matched {
		kind = "parse-fail"
	}
	Emit(Event{Kind: kind, Value: element, Position: pos})
}

// Eval records a word evaluation.
func Eval(word string, molded string) {
	Emit(Event{Kind: "eval", Word: word, Value: molded})
}
