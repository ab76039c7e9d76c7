package usecase

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"github.com/Gunvolt24/sand_conformance/internal/domain"
	"github.com/Gunvolt24/sand_conformance/internal/ports"
	"github.com/Gunvolt24/sand_conformance/pkg/metrics"
	"github.com/Gunvolt24/sand_conformance/pkg/sandheader"
	"github.com/Gunvolt24/sand_conformance/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	// ExpectedMethod — метод, которым клиент обязан отправлять SAND-сообщения.
	ExpectedMethod = http.MethodPost
	// SANDContentType — тип содержимого SAND-сообщения; сравнивается побайтно.
	SANDContentType = "application/sand+xml"
)

// unsupportedLabel — метка метрики для SAND-заголовков без проверки в реестре.
const unsupportedLabel = "unsupported"

var _ ports.ConformanceChecker = (*ConformanceService)(nil)

// ConformanceService — последовательности проверок (без знаний о транспорте).
// Схема и реестр неизменяемы, поэтому сервис безопасен для конкурентных запросов.
type ConformanceService struct {
	validator ports.MessageValidator
	registry  ports.CheckerRegistry
	publisher ports.ReportPublisher // nil — публикация отключена
	log       ports.Logger
	tracer    trace.Tracer
}

// NewConformanceService — DI-конструктор.
func NewConformanceService(
	validator ports.MessageValidator,
	registry ports.CheckerRegistry,
	publisher ports.ReportPublisher,
	log ports.Logger,
) *ConformanceService {
	return &ConformanceService{
		validator: validator,
		registry:  registry,
		publisher: publisher,
		log:       log,
		tracer:    telemetry.Tracer(),
	}
}

// CheckMessage — метод, Content-Type и тело сообщения; вердикт — логическое И трёх проверок.
func (s *ConformanceService) CheckMessage(ctx context.Context, req *domain.ConformanceRequest) *domain.ConformanceReport {
	ctx, span := s.tracer.Start(ctx, "CheckMessage")
	defer span.End()

	report := domain.NewReport(domain.KindMessage)
	report.Add(s.record(ctx, checkMethod(req.Method), domain.CheckMethod))
	report.Add(s.record(ctx, checkContentType(req.ContentType), domain.CheckContentType))
	report.Add(s.record(ctx, s.checkBody(ctx, req), domain.CheckMessageBody))

	s.finish(ctx, span, report)
	return report
}

// CheckHeaders — синтаксис каждого SAND-заголовка; прочие заголовки не попадают в отчёт.
func (s *ConformanceService) CheckHeaders(ctx context.Context, req *domain.ConformanceRequest) *domain.ConformanceReport {
	ctx, span := s.tracer.Start(ctx, "CheckHeaders")
	defer span.End()

	report := domain.NewReport(domain.KindHeaders)
	for _, name := range sandHeaderNames(req.Headers) {
		outcome, label := s.checkHeader(name, req.Headers[name])
		metrics.HeaderChecksTotal.WithLabelValues(label, metrics.Result(outcome.Passed)).Inc()
		report.Add(s.record(ctx, outcome, label))
	}
	// отсутствие SAND-заголовков фиксируется один раз, после просмотра всех заголовков
	report.NoSANDHeader = len(report.Outcomes) == 0

	s.finish(ctx, span, report)
	return report
}

func checkMethod(method string) domain.CheckOutcome {
	if method == ExpectedMethod {
		return domain.Pass(domain.CheckMethod)
	}
	return domain.Fail(domain.CheckMethod, fmt.Sprintf("observed %q, expected %q", method, ExpectedMethod))
}

func checkContentType(contentType string) domain.CheckOutcome {
	switch contentType {
	case SANDContentType:
		return domain.Pass(domain.CheckContentType)
	case "":
		return domain.Fail(domain.CheckContentType,
			fmt.Sprintf("missing Content-Type header, expected %q", SANDContentType))
	default:
		return domain.Fail(domain.CheckContentType,
			fmt.Sprintf("observed %q, expected %q", contentType, SANDContentType))
	}
}

func (s *ConformanceService) checkBody(ctx context.Context, req *domain.ConformanceRequest) domain.CheckOutcome {
	if req.BodyErr != nil {
		return domain.Fail(domain.CheckMessageBody, fmt.Sprintf("cannot read message body: %v", req.BodyErr))
	}
	return s.validator.Validate(ctx, req.Body)
}

// checkHeader возвращает результат и метку заголовка для метрик.
func (s *ConformanceService) checkHeader(name, value string) (domain.CheckOutcome, string) {
	checker, ok := s.registry.Lookup(name)
	if !ok {
		return domain.Fail(name, sandheader.UnsupportedDiagnostic), unsupportedLabel
	}

	diagnostics := checker.CheckSyntax(strings.TrimSpace(value))
	if len(diagnostics) == 0 {
		return domain.Pass(checker.Name()), checker.Name()
	}
	return domain.Fail(checker.Name(), diagnostics...), checker.Name()
}

// record пишет строку лога и метрику по одной проверке.
// label — ограниченное множество значений; имя, пришедшее от клиента, в метку не попадает.
func (s *ConformanceService) record(ctx context.Context, outcome domain.CheckOutcome, label string) domain.CheckOutcome {
	result := "OK"
	if !outcome.Passed {
		result = "KO"
	}
	s.log.Infof(ctx, "check=%s result=%s diagnostics=%q", outcome.Name, result, outcome.Diagnostics)
	metrics.ChecksTotal.WithLabelValues(label, metrics.Result(outcome.Passed)).Inc()
	return outcome
}

func (s *ConformanceService) finish(ctx context.Context, span trace.Span, report *domain.ConformanceReport) {
	passed := report.Passed()
	span.SetAttributes(attribute.Bool("sand.passed", passed))
	metrics.ReportsTotal.WithLabelValues(string(report.Kind), metrics.Result(passed)).Inc()

	if passed {
		s.log.Infof(ctx, "report kind=%s result=OK checks=%d", report.Kind, len(report.Outcomes))
	} else {
		s.log.Warnf(ctx, "report kind=%s result=KO failed=%d/%d", report.Kind, len(report.Failed()), len(report.Outcomes))
	}

	// публикатор не должен блокировать ответ: в сервере это kafka.Dispatcher с очередью
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, report); err != nil {
		s.log.Errorf(ctx, "report publish failed kind=%s err=%v", report.Kind, err)
	}
}

// sandHeaderNames — SAND-заголовки запроса в порядке имени без учёта регистра.
func sandHeaderNames(headers map[string]string) []string {
	names := make([]string, 0, len(headers))
	for name := range headers {
		if sandheader.IsSANDHeader(name) {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		li, lj := strings.ToLower(names[i]), strings.ToLower(names[j])
		if li != lj {
			return li < lj
		}
		return names[i] < names[j]
	})
	return names
}
