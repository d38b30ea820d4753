package core

// LogLevel represents logging severity levels
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the lower-case level name used in configuration
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "debug"
	case LogLevelInfo:
		return "info"
	case LogLevelWarn:
		return "warn"
	case LogLevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Logger emits structured entries. Each call carries a short message naming
// the decision or step plus a flat map of fields.
type Logger interface {
	SetLevel(level LogLevel)
	GetLevel() LogLevel

	Debug(message string, fields map[string]any)
	Info(message string, fields map[string]any)
	Warn(message string, fields map[string]any)
	Error(message string, fields map[string]any)

	// Flush writes out any buffered entries
	Flush() error
}
