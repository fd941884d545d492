package log

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

type LoggerType uint8

const (
	ConsoleLogger LoggerType = iota
	JSONLogger
)

// Component loggers. They discard everything until Init is called, so the
// library packages stay silent when embedded.
var (
	Root = zerolog.Nop()
	Calc = zerolog.Nop()
	CLI  = zerolog.Nop()
)

// Options for Init
type Options struct {
	// Zero value is zerolog.DebugLevel
	LogLevel zerolog.Level
	Type     LoggerType
	// Defaults to stderr, leaving stdout for results.
	Out io.Writer
}

func ParseLogLevel(loglevel string) (zerolog.Level, error) {
	return zerolog.ParseLevel(loglevel)
}

func Init(opts Options) {
	out := opts.Out
	if out == nil {
		out = os.Stderr
	}
	if opts.Type == ConsoleLogger {
		out = newConsoleWriter(out)
	}

	Root = zerolog.New(out).Level(opts.LogLevel).
		With().Timestamp().Logger()
	Calc = Root.With().Str("component", "calc").Logger()
	CLI = Root.With().Str("component", "cli").Logger()
}

func newConsoleWriter(out io.Writer) zerolog.ConsoleWriter {
	cw := zerolog.ConsoleWriter{Out: out, NoColor: true, TimeFormat: time.RFC3339}

	cw.FormatLevel = func(i interface{}) string {
		return strings.ToUpper(fmt.Sprintf("| %-6s|", i))
	}
	cw.FormatMessage = func(i interface{}) string {
		return fmt.Sprintf("message: %q |", i)
	}
	cw.FormatFieldName = func(i interface{}) string {
		return fmt.Sprintf("%q: ", i)
	}
	cw.FormatFieldValue = func(i interface{}) string {
		return fmt.Sprintf("\"%s\" |", i)
	}
	cw.FormatErrFieldValue = func(i interface{}) string {
		return fmt.Sprintf(" %s |", i)
	}
	return cw
}
