// Package events carries the per-file occurrences of a generation run so the
// CLI can stream them and tests can assert on them.
package events

type Level uint8

const (
	Info Level = iota
	Warn
	Error
)

func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Warn:
		return "warn"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Event is one generation occurrence: a path created or skipped, or a
// problem worth surfacing.
type Event struct {
	Level   Level
	Path    string
	Message string
	Err     error
}

func Created(path string) Event {
	return Event{Level: Info, Path: path, Message: "created"}
}

func Skipped(path, reason string) Event {
	return Event{Level: Info, Path: path, Message: "skipped (" + reason + ")"}
}

func Warning(path, message string, err error) Event {
	return Event{Level: Warn, Path: path, Message: message, Err: err}
}

type Handler interface {
	Handle(event Event)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(event Event)

func (f HandlerFunc) Handle(event Event) { f(event) }

// Noop returns a Handler that discards everything.
func Noop() Handler {
	return HandlerFunc(func(Event) {})
}
