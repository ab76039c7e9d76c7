package kafka

import (
	"context"
	"errors"
	"sync"

	"github.com/Gunvolt24/sand_conformance/internal/domain"
	"github.com/Gunvolt24/sand_conformance/internal/ports"
	"github.com/Gunvolt24/sand_conformance/pkg/metrics"
)

var (
	ErrQueueFull       = errors.New("report publish queue is full")
	ErrPublisherClosed = errors.New("report publisher is closed")
)

var _ ports.ReportPublisher = (*Dispatcher)(nil)

const defaultQueueSize = 256

type job struct {
	ctx    context.Context
	report *domain.ConformanceReport
}

// Dispatcher — асинхронная обёртка над публикатором: Publish только ставит отчёт в очередь,
// отправку с повторами делает фоновый воркер. Ответ клиенту не ждёт брокера.
type Dispatcher struct {
	next ports.ReportPublisher
	log  ports.Logger

	mu     sync.RWMutex // защищает closed и отправку в queue
	closed bool
	queue  chan job

	wg        sync.WaitGroup
	closeOnce sync.Once
	closeErr  error
}

// NewDispatcher — запускает воркер; size <= 0 означает размер очереди по умолчанию.
func NewDispatcher(next ports.ReportPublisher, size int, log ports.Logger) *Dispatcher {
	if size <= 0 {
		size = defaultQueueSize
	}
	d := &Dispatcher{
		next:  next,
		log:   log,
		queue: make(chan job, size),
	}
	d.wg.Add(1)
	go d.run()
	return d
}

// Publish — не блокируется: при заполненной очереди отчёт отбрасывается с ErrQueueFull.
// Контекст запроса отвязывается от отмены, значения (request id, span) сохраняются.
func (d *Dispatcher) Publish(ctx context.Context, report *domain.ConformanceReport) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		metrics.ReportsDropped.Inc()
		return ErrPublisherClosed
	}

	select {
	case d.queue <- job{ctx: context.WithoutCancel(ctx), report: report}:
		return nil
	default:
		metrics.ReportsDropped.Inc()
		return ErrQueueFull
	}
}

// Close — перестаёт принимать отчёты, дожидается отправки уже поставленных и закрывает публикатор.
func (d *Dispatcher) Close() error {
	d.closeOnce.Do(func() {
		d.mu.Lock()
		d.closed = true
		close(d.queue)
		d.mu.Unlock()

		d.wg.Wait()
		d.closeErr = d.next.Close()
	})
	return d.closeErr
}

func (d *Dispatcher) run() {
	defer d.wg.Done()
	for j := range d.queue {
		if err := d.next.Publish(j.ctx, j.report); err != nil {
			d.log.Errorf(j.ctx, "report publish failed kind=%s err=%v", j.report.Kind, err)
		}
	}
}
