package dialog

import (
	"fmt"
	"log"
	"os"
)

// Field is one key/value pair attached to a log line.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field. Kept short since call sites build several per line.
func F(key string, value interface{}) Field { return Field{Key: key, Value: value} }

// ErrField wraps an error as a Field named "error".
func ErrField(err error) Field { return Field{Key: "error", Value: err} }

// Logger is the structured logging interface the package's operations
// are written against. The default implementation below is intentionally
// minimal — see SPEC_FULL.md's AMBIENT STACK note on why this package
// rolls its own instead of adopting logrus/zap/zerolog.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	WithComponent(component string) Logger
}

// stdLogger is the default Logger, writing to os.Stderr through the
// standard library's log.Logger.
type stdLogger struct {
	component string
	out       *log.Logger
}

// NewLogger returns the default Logger implementation.
func NewLogger() Logger {
	return &stdLogger{out: log.New(os.Stderr, "", log.LstdFlags|log.Lmicroseconds)}
}

func (l *stdLogger) WithComponent(component string) Logger {
	return &stdLogger{component: component, out: l.out}
}

func (l *stdLogger) log(level, msg string, fields []Field) {
	line := fmt.Sprintf("[%s]", level)
	if l.component != "" {
		line += fmt.Sprintf(" %s:", l.component)
	}
	line += " " + msg
	for _, f := range fields {
		line += fmt.Sprintf(" %s=%v", f.Key, f.Value)
	}
	l.out.Print(line)
}

func (l *stdLogger) Debug(msg string, fields ...Field) { l.log("DEBUG", msg, fields) }
func (l *stdLogger) Info(msg string, fields ...Field)  { l.log("INFO", msg, fields) }
func (l *stdLogger) Warn(msg string, fields ...Field)  { l.log("WARN", msg, fields) }
func (l *stdLogger) Error(msg string, fields ...Field) { l.log("ERROR", msg, fields) }

// noopLogger discards everything; used as the zero-value default so a
// Dialog operation never has to nil-check its logger.
type noopLogger struct{}

func (noopLogger) Debug(string, ...Field)         {}
func (noopLogger) Info(string, ...Field)          {}
func (noopLogger) Warn(string, ...Field)          {}
func (noopLogger) Error(string, ...Field)         {}
func (n noopLogger) WithComponent(string) Logger { return n }
