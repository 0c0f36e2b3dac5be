package interfaces

import "context"

// Logger is the leveled logger every codeprob package writes to. Its method
// set matches github.com/goliatone/go-logger loggers.
type Logger interface {
	Trace(msg string, args ...any)
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	Fatal(msg string, args ...any)
	WithContext(ctx context.Context) Logger
}

// LoggerProvider hands out loggers by module name (codeprob.export,
// codeprob.markdown and so on).
type LoggerProvider interface {
	GetLogger(name string) Logger
}

// FieldsLogger is implemented by loggers that can carry fields on every
// entry. WithFields returns a new logger and leaves the receiver unchanged.
type FieldsLogger interface {
	WithFields(fields map[string]any) Logger
}
