package logging

import (
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// ZerologAdapter adapts zerolog.Logger to the key-value Logger interfaces used by the engine.
type ZerologAdapter struct {
	logger zerolog.Logger
}

// NewZerologAdapter creates a new ZerologAdapter wrapping a zerolog.Logger.
func NewZerologAdapter(logger zerolog.Logger) *ZerologAdapter {
	return &ZerologAdapter{logger: logger}
}

// NewJSONLogger creates a zerolog logger writing JSON lines to w. Attributes from ctx,
// if non-nil, are added to every event.
func NewJSONLogger(w io.Writer, level string, ctx ContextProvider) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	logger := zerolog.New(w).Level(lvl).With().Timestamp().Str("service", ServiceName).Logger()
	if ctx != nil {
		logger = logger.Hook(zerolog.HookFunc(func(e *zerolog.Event, _ zerolog.Level, _ string) {
			for _, a := range ctx() {
				e.Interface(a.Key, a.Value.Any())
			}
		}))
	}
	return logger
}

// Debug logs a debug message with optional key-value pairs.
func (l *ZerologAdapter) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug().Fields(toFields(keysAndValues)).Msg(msg)
}

// Info logs an info message with optional key-value pairs.
func (l *ZerologAdapter) Info(msg string, keysAndValues ...any) {
	l.logger.Info().Fields(toFields(keysAndValues)).Msg(msg)
}

// Warn logs a warning message with optional key-value pairs.
func (l *ZerologAdapter) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn().Fields(toFields(keysAndValues)).Msg(msg)
}

// Error logs an error message with optional key-value pairs.
func (l *ZerologAdapter) Error(msg string, keysAndValues ...any) {
	l.logger.Error().Fields(toFields(keysAndValues)).Msg(msg)
}

// toFields converts key-value pairs to a map for zerolog.
func toFields(keysAndValues []any) map[string]any {
	fields := make(map[string]any, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			fields[key] = keysAndValues[i+1]
		}
	}
	return fields
}
