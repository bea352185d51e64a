package testlog

import (
	"sync"

	"service-assistance/internal/logx"
)

// Entry is one captured log call.
type Entry struct {
	Level  string
	Msg    string
	Fields []logx.Field
}

// Field returns the value logged under key, or nil when absent.
func (e Entry) Field(key string) any {
	for _, f := range e.Fields {
		if f.Key == key {
			return f.Value
		}
	}
	return nil
}

// Recorder captures log calls for assertions in tests.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// New creates an empty Recorder.
func New() *Recorder { return &Recorder{} }

// Logger returns a logx.Logger that writes into the Recorder.
func (r *Recorder) Logger() logx.Logger { return recLogger{rec: r} }

// Entries returns the captured entries in call order.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Entry(nil), r.entries...)
}

func (r *Recorder) record(level, msg string, fields []logx.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, Entry{
		Level:  level,
		Msg:    msg,
		Fields: append([]logx.Field(nil), fields...),
	})
}

type recLogger struct {
	rec  *Recorder
	with []logx.Field
}

func (l recLogger) log(level, msg string, fields []logx.Field) {
	merged := append(append([]logx.Field(nil), l.with...), fields...)
	l.rec.record(level, msg, merged)
}

func (l recLogger) Debug(msg string, f ...logx.Field) { l.log("debug", msg, f) }
func (l recLogger) Info(msg string, f ...logx.Field)  { l.log("info", msg, f) }
func (l recLogger) Warn(msg string, f ...logx.Field)  { l.log("warn", msg, f) }
func (l recLogger) Error(msg string, f ...logx.Field) { l.log("error", msg, f) }

func (l recLogger) With(f ...logx.Field) logx.Logger {
	return recLogger{rec: l.rec, with: append(append([]logx.Field(nil), l.with...), f...)}
}

func (l recLogger) Sync() error { return nil }

var _ logx.Logger = recLogger{}
