package logger

import "go.uber.org/zap/zapcore"

// Verbosity level constants for CLI flag counts.
const (
	VerbosityUser  = 0 // No flags: results and errors only
	VerbosityInfo  = 1 // -v: + progress, migration status
	VerbosityDebug = 2 // -vv: + generated SQL, resolution details
	VerbosityTrace = 3 // -vvv: + per-row matcher candidates
)

// VerbosityToLevel maps verbosity flags (-v, -vv, etc.) to zap log levels.
func VerbosityToLevel(verbosity int) zapcore.Level {
	switch verbosity {
	case VerbosityUser:
		return zapcore.WarnLevel
	case VerbosityInfo:
		return zapcore.InfoLevel
	default:
		return zapcore.DebugLevel
	}
}

// ShouldLogTrace returns true for verbosity >= 3 (-vvv).
func ShouldLogTrace(verbosity int) bool {
	return verbosity >= VerbosityTrace
}
