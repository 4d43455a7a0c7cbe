package interfaces

// Logger is the structured logging contract used by every package.
// Fields are rendered by the backend; nil fields are allowed.
//
//	logger.Warn("Source skipped", map[string]interface{}{
//		"source": "https://example.com/feed.xml",
//		"kind":   "timeout",
//	})
type Logger interface {
	// Debug logs per-item and per-request detail.
	Debug(msg string, fields map[string]interface{})

	// Info logs lifecycle events and per-query summaries.
	Info(msg string, fields map[string]interface{})

	// Warn logs recovered failures such as a skipped source.
	Warn(msg string, fields map[string]interface{})

	// Error logs failures that need attention.
	Error(msg string, fields map[string]interface{})
}

// NopLogger discards everything. Used when no logger is injected.
type NopLogger struct{}

func (NopLogger) Debug(string, map[string]interface{}) {}
func (NopLogger) Info(string, map[string]interface{})  {}
func (NopLogger) Warn(string, map[string]interface{})  {}
func (NopLogger) Error(string, map[string]interface{}) {}

// LoggerOrNop returns l, or a NopLogger when l is nil
func LoggerOrNop(l Logger) Logger {
	if l == nil {
		return NopLogger{}
	}
	return l
}
