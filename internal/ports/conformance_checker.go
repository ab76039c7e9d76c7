package ports

import (
	"context"

	"github.com/Gunvolt24/sand_conformance/internal/domain"
)

// ConformanceChecker — последовательности проверок, которые вызывает транспортный слой.
type ConformanceChecker interface {
	CheckMessage(ctx context.Context, req *domain.ConformanceRequest) *domain.ConformanceReport
	CheckHeaders(ctx context.Context, req *domain.ConformanceRequest) *domain.ConformanceReport
}
