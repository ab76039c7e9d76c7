package ports

import (
	"context"

	"github.com/Gunvolt24/sand_conformance/internal/domain"
)

// ReportPublisher — внешний приёмник готовых отчётов (например, топик Kafka).
// Ошибка публикации не влияет на вердикт.
type ReportPublisher interface {
	Publish(ctx context.Context, report *domain.ConformanceReport) error
	Close() error
}
