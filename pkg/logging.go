package inventorize

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"sync"
)

// LevelTrace sits below slog.LevelDebug and carries per-function tracing
const LevelTrace = slog.Level(-8)

var (
	globalVerboseLevel int
	logLevel           = new(slog.LevelVar)
	logger             = newLogger(os.Stderr)

	debugMu    sync.RWMutex
	debugFlags map[string]bool
)

func newLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl <= LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			if a.Key == slog.TimeKey && len(groups) == 0 {
				a.Value = slog.StringValue(a.Value.Time().Format("2006-01-02T15:04:05.000Z07:00"))
			}
			return a
		},
	}))
}

// Logger returns the package logger
func Logger() *slog.Logger {
	return logger
}

// SetLogOutput redirects log output, mainly for tests
func SetLogOutput(w io.Writer) {
	logger = newLogger(w)
}

// SetVerboseLevel maps a -v count onto a log level:
// 0 is info, 1 is debug and 2 or more is trace.
func SetVerboseLevel(level int) {
	globalVerboseLevel = level
	logLevel.Set(verboseToLevel(level))
}

// GetVerboseLevel returns the current verbose level
func GetVerboseLevel() int {
	return globalVerboseLevel
}

func verboseToLevel(level int) slog.Level {
	switch {
	case level <= 0:
		return slog.LevelInfo
	case level == 1:
		return slog.LevelDebug
	default:
		return LevelTrace
	}
}

// VerboseLog logs a formatted message at the level matching a verbose count
func VerboseLog(level int, format string, args ...interface{}) {
	lvl := verboseToLevel(level)
	if !logger.Enabled(context.Background(), lvl) {
		return
	}
	logger.Log(context.Background(), lvl, strings.TrimSuffix(fmt.Sprintf(format, args...), "\n"))
}

// VerboseEnter logs function entry at trace level and returns a func for exit logging
func VerboseEnter() func() {
	if !logger.Enabled(context.Background(), LevelTrace) {
		return func() {}
	}

	pc, _, _, ok := runtime.Caller(1)
	if !ok {
		return func() {}
	}

	funcName := runtime.FuncForPC(pc).Name()
	if idx := strings.LastIndex(funcName, "."); idx != -1 {
		funcName = funcName[idx+1:]
	}

	logger.Log(context.Background(), LevelTrace, "entering function", "func", funcName)
	return func() {
		logger.Log(context.Background(), LevelTrace, "exiting function", "func", funcName)
	}
}

// SetDebugFlags sets the debug flags from a comma-separated string.
// Accepts plain names ("walk,hash") and name:value pairs ("walk:true,hash:off").
func SetDebugFlags(flagsStr string) {
	flags := make(map[string]bool)
	for _, flag := range strings.Split(flagsStr, ",") {
		flag = strings.TrimSpace(flag)
		if flag == "" {
			continue
		}

		parts := strings.SplitN(flag, ":", 2)
		flagValue := true
		if len(parts) > 1 {
			switch strings.ToLower(parts[1]) {
			case "false", "0", "no", "off":
				flagValue = false
			}
		}
		flags[strings.ToLower(parts[0])] = flagValue
	}

	debugMu.Lock()
	debugFlags = flags
	debugMu.Unlock()
}

// IsDebugEnabled returns true if the specified debug flag is enabled
func IsDebugEnabled(flag string) bool {
	debugMu.RLock()
	defer debugMu.RUnlock()
	return debugFlags[strings.ToLower(flag)]
}
