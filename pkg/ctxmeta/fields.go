package ctxmeta

import "context"

// LogFields — пары ключ/значение для структурированного логгера:
// request_id и, в сборке с `otel`, trace_id/span_id.
func LogFields(ctx context.Context) []any {
	var fields []any
	if id, ok := RequestIDFromContext(ctx); ok {
		fields = append(fields, string(KeyRequestID), id)
	}
	if id, ok := TraceIDFromContext(ctx); ok {
		fields = append(fields, "trace_id", id)
	}
	if id, ok := SpanIDFromContext(ctx); ok {
		fields = append(fields, "span_id", id)
	}
	return fields
}
