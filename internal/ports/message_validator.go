package ports

import (
	"context"

	"github.com/Gunvolt24/sand_conformance/internal/domain"
)

// MessageValidator — проверка тела SAND-сообщения по предзагруженной схеме.
// Реализация должна быть безопасна для конкурентного вызова без внешней синхронизации.
type MessageValidator interface {
	Validate(ctx context.Context, body []byte) domain.CheckOutcome
}
