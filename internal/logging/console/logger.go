package console

import (
	"context"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goliatone/go-codeprob/internal/logging"
	"github.com/goliatone/go-codeprob/pkg/interfaces"
)

// Level is the severity of a log entry.
type Level uint8

const (
	LevelTrace Level = iota
	LevelDebug
	LevelInfo
	LevelWarn
	LevelError
	LevelFatal
)

var levelNames = [...]string{"TRACE", "DEBUG", "INFO", "WARN", "ERROR", "FATAL"}

func (l Level) String() string {
	if int(l) < len(levelNames) {
		return levelNames[l]
	}
	return "INFO"
}

// ParseLevel maps a configuration value to a Level. Empty input selects
// LevelInfo.
func ParseLevel(value string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "":
		return LevelInfo, nil
	case "trace":
		return LevelTrace, nil
	case "debug":
		return LevelDebug, nil
	case "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	case "fatal":
		return LevelFatal, nil
	default:
		return LevelInfo, fmt.Errorf("console: unknown log level %q", value)
	}
}

// Options configures the console provider. The CLI writes diagnostics to
// stderr so stdout stays reserved for generated HTML and metadata.
type Options struct {
	Writer   io.Writer
	TimeFunc func() time.Time
	MinLevel Level
	// Focus restricts output to loggers whose name starts with one of the
	// listed prefixes. Empty means every logger writes.
	Focus []string
}

type provider struct {
	out      io.Writer
	now      func() time.Time
	minLevel Level
	focus    []string
	mu       sync.Mutex
}

// NewProvider returns a key=value console provider.
func NewProvider(opts Options) interfaces.LoggerProvider {
	p := &provider{
		out:      opts.Writer,
		now:      opts.TimeFunc,
		minLevel: opts.MinLevel,
	}
	if p.out == nil {
		p.out = os.Stderr
	}
	if p.now == nil {
		p.now = time.Now
	}
	for _, prefix := range opts.Focus {
		if trimmed := strings.TrimSpace(prefix); trimmed != "" {
			p.focus = append(p.focus, trimmed)
		}
	}
	return p
}

func (p *provider) GetLogger(name string) interfaces.Logger {
	if !p.focused(name) {
		return logging.NoOp()
	}
	return &entryLogger{p: p, fields: map[string]any{"logger": name}}
}

func (p *provider) focused(name string) bool {
	if len(p.focus) == 0 {
		return true
	}
	for _, prefix := range p.focus {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

func (p *provider) write(line string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	// Diagnostics are best effort.
	_, _ = io.WriteString(p.out, line)
}

type entryLogger struct {
	p      *provider
	fields map[string]any
	ctx    context.Context
}

var (
	_ interfaces.Logger       = (*entryLogger)(nil)
	_ interfaces.FieldsLogger = (*entryLogger)(nil)
)

func (l *entryLogger) Trace(msg string, args ...any) { l.emit(LevelTrace, msg, args) }
func (l *entryLogger) Debug(msg string, args ...any) { l.emit(LevelDebug, msg, args) }
func (l *entryLogger) Info(msg string, args ...any)  { l.emit(LevelInfo, msg, args) }
func (l *entryLogger) Warn(msg string, args ...any)  { l.emit(LevelWarn, msg, args) }
func (l *entryLogger) Error(msg string, args ...any) { l.emit(LevelError, msg, args) }
func (l *entryLogger) Fatal(msg string, args ...any) { l.emit(LevelFatal, msg, args) }

func (l *entryLogger) WithFields(fields map[string]any) interfaces.Logger {
	if len(fields) == 0 {
		return l
	}
	return &entryLogger{p: l.p, fields: merge(l.fields, fields), ctx: l.ctx}
}

func (l *entryLogger) WithContext(ctx context.Context) interfaces.Logger {
	return &entryLogger{p: l.p, fields: l.fields, ctx: ctx}
}

func (l *entryLogger) emit(level Level, msg string, args []any) {
	if level < l.p.minLevel {
		return
	}
	fields := merge(l.fields, logging.ContextFields(l.ctx))
	fields = merge(fields, pairs(args))
	l.p.write(render(l.p.now().UTC(), level, msg, fields) + "\n")
}

// merge returns a new map holding base overlaid with extra.
func merge(base, extra map[string]any) map[string]any {
	out := make(map[string]any, len(base)+len(extra))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range extra {
		out[key] = value
	}
	return out
}

// pairs turns alternating key/value arguments into fields. Non-string keys
// and a trailing key without value are kept under positional names.
func pairs(args []any) map[string]any {
	if len(args) == 0 {
		return nil
	}
	fields := make(map[string]any, (len(args)+1)/2)
	for i := 0; i < len(args); i += 2 {
		if i+1 == len(args) {
			fields[fmt.Sprintf("arg_%d", i)] = args[i]
			break
		}
		key, ok := args[i].(string)
		if !ok || key == "" {
			key = fmt.Sprintf("arg_%d", i)
		}
		fields[key] = args[i+1]
	}
	return fields
}

func render(ts time.Time, level Level, msg string, fields map[string]any) string {
	var b strings.Builder
	b.WriteString(ts.Format(time.RFC3339Nano))
	b.WriteByte(' ')
	b.WriteString(level.String())
	b.WriteByte(' ')
	b.WriteString(msg)

	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		b.WriteByte(' ')
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(value(fields[key]))
	}
	return b.String()
}

func value(v any) string {
	var s string
	switch typed := v.(type) {
	case nil:
		return "null"
	case string:
		s = typed
	case time.Time:
		s = typed.UTC().Format(time.RFC3339Nano)
	case error:
		s = typed.Error()
	case fmt.Stringer:
		s = typed.String()
	case float64:
		return strconv.FormatFloat(typed, 'f', -1, 64)
	case []string:
		s = strings.Join(typed, ",")
	default:
		s = fmt.Sprint(typed)
	}
	if s == "" {
		return `""`
	}
	if strings.ContainsAny(s, " \t\n\r=\"") {
		return strconv.Quote(s)
	}
	return s
}
