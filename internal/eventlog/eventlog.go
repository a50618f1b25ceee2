package eventlog

import (
	"go.uber.org/zap"
)

// EventType represents the type of gateway event
type EventType string

const (
	EventSynthesisTaskStarted EventType = "synthesis_task_started"
	EventSynthesisTaskFetched EventType = "synthesis_task_fetched"
	EventVoicesListed         EventType = "voices_listed"
	EventEntitiesDetected     EventType = "entities_detected"
	EventSpeechStreamed       EventType = "speech_streamed"
	EventProviderError        EventType = "provider_error"
)

// Logger writes structured gateway events
type Logger struct {
	z *zap.Logger
}

// New creates a new event logger. A nil zap logger discards events.
func New(z *zap.Logger) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{z: z.Named("event")}
}

// Log writes one event. Provider errors are logged at warn level.
func (l *Logger) Log(requestID string, eventType EventType, data map[string]any) {
	if l == nil {
		return
	}

	fields := make([]zap.Field, 0, len(data)+2)
	fields = append(fields, zap.String("event", string(eventType)))
	if requestID != "" {
		fields = append(fields, zap.String("request_id", requestID))
	}
	for k, v := range data {
		fields = append(fields, zap.Any(k, v))
	}

	if eventType == EventProviderError {
		l.z.Warn("gateway event", fields...)
		return
	}
	l.z.Info("gateway event", fields...)
}
