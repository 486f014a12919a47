// Package logging builds the zap logger used for diagnostics. Prompt output
// goes to stdout, so diagnostics are written to a separate writer (stderr)
// and are disabled unless a level is requested.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EnvLogLevel names the environment variable holding the default log level.
const EnvLogLevel = "CUPPA_LOG"

// ParseLevel converts a level name to a zap level. "" and "off" disable
// logging and report enabled=false.
func ParseLevel(level string) (lvl zapcore.Level, enabled bool, err error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "", "off":
		return zapcore.InfoLevel, false, nil
	case "debug":
		return zapcore.DebugLevel, true, nil
	case "info":
		return zapcore.InfoLevel, true, nil
	case "warn":
		return zapcore.WarnLevel, true, nil
	case "error":
		return zapcore.ErrorLevel, true, nil
	default:
		return zapcore.InfoLevel, false, fmt.Errorf("unknown log level %q (use debug, info, warn, error or off)", level)
	}
}

// New returns a console logger writing to w at the given level, or a no-op
// logger when the level disables logging.
func New(level string, w io.Writer) (*zap.Logger, error) {
	lvl, enabled, err := ParseLevel(level)
	if err != nil {
		return zap.NewNop(), err
	}
	if !enabled {
		return zap.NewNop(), nil
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(lvl),
	)
	return zap.New(core).Named("cuppa"), nil
}
