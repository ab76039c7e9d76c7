package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/Gunvolt24/sand_conformance/internal/domain"
	"github.com/Gunvolt24/sand_conformance/internal/ports"
	"github.com/Gunvolt24/sand_conformance/pkg/ctxmeta"
	"github.com/Gunvolt24/sand_conformance/pkg/metrics"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Проверка, что Publisher удовлетворяет интерфейсу верхнего уровня (порт приложения).
var _ ports.ReportPublisher = (*Publisher)(nil)

// writer — минимальный контракт над kafka.Writer, чтобы подменять его моками в тестах.
type writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Envelope — JSON-представление отчёта в топике.
type Envelope struct {
	ReportID     string                `json:"report_id"`
	RequestID    string                `json:"request_id,omitempty"`
	Kind         domain.ReportKind     `json:"kind"`
	Passed       bool                  `json:"passed"`
	Outcomes     []domain.CheckOutcome `json:"outcomes"`
	NoSANDHeader bool                  `json:"no_sand_header"`
	CheckedAt    time.Time             `json:"checked_at"`
}

// Publisher — отправка готовых отчётов в Kafka с повторами (экспоненциальный backoff + equal jitter).
type Publisher struct {
	writer       writer
	topic        string
	log          ports.Logger
	writeTimeout time.Duration
	maxAttempts  int
	retryInitial time.Duration
	retryMax     time.Duration

	jitterMu   sync.Mutex // *rand.Rand не потокобезопасен, а Publish вызывается конкурентно
	jitterRand *rand.Rand

	now       func() time.Time
	newID     func() string
	closeOnce sync.Once
}

// NewPublisher — конструктор; незаданные параметры получают значения по умолчанию.
func NewPublisher(cfg *PublisherConfig, log ports.Logger) *Publisher {
	wt := cfg.WriteTimeout
	if wt <= 0 {
		wt = 5 * time.Second
	}

	attempts := cfg.MaxAttempts
	if attempts <= 0 {
		attempts = 1
	}

	rInit := cfg.RetryInitial
	if rInit <= 0 {
		rInit = 100 * time.Millisecond
	}

	rMax := cfg.RetryMax
	if rMax <= 0 {
		rMax = 2 * time.Second
	}

	return &Publisher{
		writer:       cfg.writerConfig(),
		topic:        cfg.Topic,
		log:          log,
		writeTimeout: wt,
		maxAttempts:  attempts,
		retryInitial: rInit,
		retryMax:     rMax,
		jitterRand:   rand.New(rand.NewSource(time.Now().UnixNano())),
		now:          time.Now,
		newID:        func() string { return uuid.New().String() },
	}
}

// Publish — сериализует отчёт и пишет его в топик; ключ сообщения — request id.
// Ошибка возвращается после исчерпания попыток или отмены контекста.
func (p *Publisher) Publish(ctx context.Context, report *domain.ConformanceReport) error {
	env := p.envelope(ctx, report)

	raw, err := json.Marshal(env)
	if err != nil {
		metrics.ReportsPublishFailed.WithLabelValues(p.topic).Inc()
		return fmt.Errorf("marshal report: %w", err)
	}

	key := env.RequestID
	if key == "" {
		key = env.ReportID
	}
	msg := kafka.Message{
		Key:   []byte(key),
		Value: raw,
		Headers: []kafka.Header{
			{Key: "kind", Value: []byte(env.Kind)},
		},
	}

	retry := p.retryInitial
	for attempt := 1; ; attempt++ {
		wctx, cancel := context.WithTimeout(ctx, p.writeTimeout)
		err = p.writer.WriteMessages(wctx, msg)
		cancel()

		if err == nil {
			metrics.ReportsPublished.WithLabelValues(p.topic).Inc()
			return nil
		}
		if attempt >= p.maxAttempts || ctx.Err() != nil {
			break
		}

		sleep := p.withJitterEqual(retry)
		p.log.Warnf(ctx, "report publish attempt=%d/%d failed: %v (will retry in %s)", attempt, p.maxAttempts, err, sleep)
		if !sleepWithBackoff(ctx, sleep) {
			break
		}
		retry = p.nextBackoff(retry)
	}

	metrics.ReportsPublishFailed.WithLabelValues(p.topic).Inc()
	return fmt.Errorf("publish report %s to %s: %w", env.ReportID, p.topic, err)
}

// Close - закрывает writer. Вызывается при остановке приложения.
func (p *Publisher) Close() (retErr error) {
	p.closeOnce.Do(func() {
		retErr = p.writer.Close()
	})
	return retErr
}

func (p *Publisher) envelope(ctx context.Context, report *domain.ConformanceReport) Envelope {
	outcomes := report.Outcomes
	if outcomes == nil {
		outcomes = []domain.CheckOutcome{}
	}
	return Envelope{
		ReportID:     p.newID(),
		RequestID:    ctxmeta.RequestID(ctx),
		Kind:         report.Kind,
		Passed:       report.Passed(),
		Outcomes:     outcomes,
		NoSANDHeader: report.NoSANDHeader,
		CheckedAt:    p.now().UTC(),
	}
}
