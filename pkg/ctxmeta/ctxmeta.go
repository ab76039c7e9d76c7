// Пакет ctxmeta — метаданные запроса в context.Context (request_id, trace_id/span_id).
// От него зависят и HTTP-слой, и логгер, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

// KeyRequestID — ключ request_id; он же имя поля в логах.
const KeyRequestID ctxKey = "request_id"

// WithRequestID кладёт request_id в контекст (пустой id или nil-контекст не меняются).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(KeyRequestID).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// RequestID — request_id или пустая строка.
func RequestID(ctx context.Context) string {
	id, _ := RequestIDFromContext(ctx)
	return id
}
