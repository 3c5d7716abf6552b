package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	corelogger "github.com/kilianp07/ersim/core/logger"
)

// Logger mirrors the core logger interface.
type Logger = corelogger.Logger

// NopLogger implements Logger with no-op methods.
type NopLogger = corelogger.NopLogger

// Formats accepted by Setup.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

var (
	mu   sync.RWMutex
	base = newBase(os.Stderr, FormatConsole, zerolog.WarnLevel)
)

// Setup configures the output shared by loggers created afterwards. Logs go
// to w so that stdout stays reserved for the simulation display.
func Setup(level, format string, w io.Writer) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	switch format {
	case "", FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", format)
	}
	if w == nil {
		w = os.Stderr
	}
	mu.Lock()
	base = newBase(w, format, lvl)
	mu.Unlock()
	return nil
}

// ParseLevel converts a textual level into a zerolog level. An empty string
// selects warn.
func ParseLevel(s string) (zerolog.Level, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return zerolog.WarnLevel, nil
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("unknown log level %q", s)
	}
	return lvl, nil
}

// New returns a Logger for the given component.
func New(component string) Logger {
	mu.RLock()
	z := base.With().Str("component", component).Logger()
	mu.RUnlock()
	return &ZerologLogger{log: z}
}

func newBase(w io.Writer, format string, lvl zerolog.Level) zerolog.Logger {
	if format != FormatJSON {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger()
}
