package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/Gunvolt24/sand_conformance/internal/domain"
	"github.com/Gunvolt24/sand_conformance/internal/ports/mocks"
	"github.com/Gunvolt24/sand_conformance/internal/usecase"
	"github.com/Gunvolt24/sand_conformance/pkg/metrics"
	"github.com/Gunvolt24/sand_conformance/pkg/sandheader"
	"github.com/golang/mock/gomock"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

// recLogger — собирает строки лога для проверок.
type recLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *recLogger) add(level, format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.lines = append(l.lines, level+" "+fmt.Sprintf(format, args...))
}

func (l *recLogger) Infof(_ context.Context, f string, a ...any)  { l.add("INFO", f, a...) }
func (l *recLogger) Warnf(_ context.Context, f string, a ...any)  { l.add("WARN", f, a...) }
func (l *recLogger) Errorf(_ context.Context, f string, a ...any) { l.add("ERROR", f, a...) }

func (l *recLogger) contains(sub string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, line := range l.lines {
		if strings.Contains(line, sub) {
			return true
		}
	}
	return false
}

func validMessageRequest(body string) *domain.ConformanceRequest {
	return &domain.ConformanceRequest{
		Method:      "POST",
		ContentType: usecase.SANDContentType,
		Body:        []byte(body),
	}
}

func TestCheckMessage_AllPass(t *testing.T) {
	ctrl := gomock.NewController(t)

	validator := mocks.NewMockMessageValidator(ctrl)
	validator.EXPECT().Validate(gomock.Any(), []byte("<SANDMessage/>")).Return(domain.Pass(domain.CheckMessageBody))

	log := &recLogger{}
	svc := usecase.NewConformanceService(validator, sandheader.DefaultRegistry(), nil, log)

	report := svc.CheckMessage(context.Background(), validMessageRequest("<SANDMessage/>"))
	if !report.Passed() || len(report.Outcomes) != 3 {
		t.Fatalf("expected passing report with 3 outcomes, got %+v", report)
	}

	wantOrder := []string{domain.CheckMethod, domain.CheckContentType, domain.CheckMessageBody}
	for i, name := range wantOrder {
		if report.Outcomes[i].Name != name {
			t.Fatalf("outcome %d: want %q, got %q", i, name, report.Outcomes[i].Name)
		}
	}
	if !log.contains("check=HTTP method result=OK") || !log.contains("report kind=message result=OK") {
		t.Fatalf("missing log lines: %q", log.lines)
	}
}

func TestCheckMessage_SingleFailureFlipsVerdict(t *testing.T) {
	type testCase struct {
		name      string
		method    string
		ctype     string
		bodyOK    bool
		failCheck string
		diag      string
	}

	cases := []testCase{
		{"wrong method", "GET", usecase.SANDContentType, true, domain.CheckMethod, `observed "GET", expected "POST"`},
		{"wrong content type", "POST", "text/xml", true, domain.CheckContentType, `observed "text/xml", expected "application/sand+xml"`},
		{"content type with params", "POST", "application/sand+xml; charset=utf-8", true, domain.CheckContentType, "observed"},
		{"missing content type", "POST", "", true, domain.CheckContentType, "missing Content-Type header"},
		{"invalid body", "POST", usecase.SANDContentType, false, domain.CheckMessageBody, "schema violation"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			validator := mocks.NewMockMessageValidator(ctrl)

			outcome := domain.Pass(domain.CheckMessageBody)
			if !tc.bodyOK {
				outcome = domain.Fail(domain.CheckMessageBody, "schema violation: missing senderId")
			}
			validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(outcome)

			svc := usecase.NewConformanceService(validator, sandheader.DefaultRegistry(), nil, noopLogger{})
			report := svc.CheckMessage(context.Background(), &domain.ConformanceRequest{
				Method: tc.method, ContentType: tc.ctype, Body: []byte("<x/>"),
			})

			if report.Passed() {
				t.Fatalf("expected failing report, got %+v", report)
			}
			failed := report.Failed()
			if len(failed) != 1 || failed[0].Name != tc.failCheck {
				t.Fatalf("want exactly %q failed, got %+v", tc.failCheck, failed)
			}
			if !strings.Contains(strings.Join(failed[0].Diagnostics, "\n"), tc.diag) {
				t.Fatalf("diagnostics %q must contain %q", failed[0].Diagnostics, tc.diag)
			}
		})
	}
}

func TestCheckMessage_BodyReadErrorSkipsValidator(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := mocks.NewMockMessageValidator(ctrl)
	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Times(0)

	svc := usecase.NewConformanceService(validator, sandheader.DefaultRegistry(), nil, noopLogger{})

	req := validMessageRequest("")
	req.BodyErr = errors.New("http: request body too large")

	report := svc.CheckMessage(context.Background(), req)
	if report.Passed() {
		t.Fatalf("expected failing report")
	}
	body := report.Outcomes[2]
	if body.Name != domain.CheckMessageBody || body.Passed || !strings.Contains(body.Diagnostics[0], "too large") {
		t.Fatalf("unexpected body outcome %+v", body)
	}
}

func TestCheckMessage_PublishesReport(t *testing.T) {
	ctrl := gomock.NewController(t)

	validator := mocks.NewMockMessageValidator(ctrl)
	publisher := mocks.NewMockReportPublisher(ctrl)

	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(domain.Pass(domain.CheckMessageBody))
	publisher.EXPECT().Publish(gomock.Any(), gomock.AssignableToTypeOf(&domain.ConformanceReport{})).
		DoAndReturn(func(_ context.Context, r *domain.ConformanceReport) error {
			if r.Kind != domain.KindMessage || !r.Passed() {
				t.Fatalf("unexpected published report %+v", r)
			}
			return nil
		})

	svc := usecase.NewConformanceService(validator, sandheader.DefaultRegistry(), publisher, noopLogger{})
	if report := svc.CheckMessage(context.Background(), validMessageRequest("<x/>")); !report.Passed() {
		t.Fatalf("expected passing report")
	}
}

func TestCheckMessage_PublishErrorDoesNotChangeVerdict(t *testing.T) {
	ctrl := gomock.NewController(t)

	validator := mocks.NewMockMessageValidator(ctrl)
	publisher := mocks.NewMockReportPublisher(ctrl)

	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(domain.Pass(domain.CheckMessageBody))
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("broker down"))

	log := &recLogger{}
	svc := usecase.NewConformanceService(validator, sandheader.DefaultRegistry(), publisher, log)

	if report := svc.CheckMessage(context.Background(), validMessageRequest("<x/>")); !report.Passed() {
		t.Fatalf("publish error must not affect verdict")
	}
	if !log.contains("ERROR report publish failed") {
		t.Fatalf("publish error must be logged, got %q", log.lines)
	}
}

func TestCheckMessage_CountsChecks(t *testing.T) {
	metrics.MustRegister()

	ctrl := gomock.NewController(t)
	validator := mocks.NewMockMessageValidator(ctrl)
	validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(domain.Pass(domain.CheckMessageBody))

	methodKO := metrics.ChecksTotal.WithLabelValues(domain.CheckMethod, metrics.ResultKO)
	reportsKO := metrics.ReportsTotal.WithLabelValues(string(domain.KindMessage), metrics.ResultKO)
	beforeMethod, beforeReports := testutil.ToFloat64(methodKO), testutil.ToFloat64(reportsKO)

	svc := usecase.NewConformanceService(validator, sandheader.DefaultRegistry(), nil, noopLogger{})
	_ = svc.CheckMessage(context.Background(), &domain.ConformanceRequest{Method: "PUT", ContentType: usecase.SANDContentType})

	if got := testutil.ToFloat64(methodKO); got != beforeMethod+1 {
		t.Fatalf("sand_checks_total(method,ko): got=%v want=%v", got, beforeMethod+1)
	}
	if got := testutil.ToFloat64(reportsKO); got != beforeReports+1 {
		t.Fatalf("sand_reports_total(message,ko): got=%v want=%v", got, beforeReports+1)
	}
}

func TestCheckHeaders_Mixed(t *testing.T) {
	ctrl := gomock.NewController(t)
	validator := mocks.NewMockMessageValidator(ctrl)

	svc := usecase.NewConformanceService(validator, sandheader.DefaultRegistry(), nil, noopLogger{})

	report := svc.CheckHeaders(context.Background(), &domain.ConformanceRequest{
		Method: "GET",
		Headers: map[string]string{
			"Sand-Maxrtt":      "rtt=150",
			"Sand-Bufferlevel": "  level=-3  ",
			"Sand-Foo":         "x=1",
			"Accept":           "*/*",
			"User-Agent":       "dash.js",
		},
	})

	if report.NoSANDHeader {
		t.Fatalf("NoSANDHeader must be false when SAND headers are present")
	}
	if len(report.Outcomes) != 3 {
		t.Fatalf("want 3 outcomes (non-SAND headers excluded), got %+v", report.Outcomes)
	}

	// порядок — по имени заголовка без учёта регистра
	want := []struct {
		name   string
		passed bool
	}{
		{sandheader.HeaderBufferLevel, false},
		{"Sand-Foo", false},
		{sandheader.HeaderMaxRTT, true},
	}
	for i, w := range want {
		got := report.Outcomes[i]
		if got.Name != w.name || got.Passed != w.passed {
			t.Fatalf("outcome %d: want %s passed=%v, got %+v", i, w.name, w.passed, got)
		}
	}
	if d := report.Outcomes[1].Diagnostics; len(d) != 1 || d[0] != sandheader.UnsupportedDiagnostic {
		t.Fatalf("unsupported header diagnostics: %q", d)
	}
	if report.Passed() {
		t.Fatalf("report with failed headers must not pass")
	}
}

func TestCheckHeaders_NoSANDHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	publisher := mocks.NewMockReportPublisher(ctrl)
	publisher.EXPECT().Publish(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *domain.ConformanceReport) error {
			if !r.NoSANDHeader {
				t.Fatalf("published report must be finalized before publishing")
			}
			return nil
		}).Times(2)

	svc := usecase.NewConformanceService(mocks.NewMockMessageValidator(ctrl), sandheader.DefaultRegistry(), publisher, noopLogger{})

	for _, headers := range []map[string]string{nil, {"Accept": "*/*", "X-Sand": "1"}} {
		report := svc.CheckHeaders(context.Background(), &domain.ConformanceRequest{Method: "GET", Headers: headers})
		if !report.NoSANDHeader || len(report.Outcomes) != 0 {
			t.Fatalf("want no-SAND-header report for %v, got %+v", headers, report)
		}
		if report.Render() != domain.NoSANDHeaderText+"\n" {
			t.Fatalf("unexpected rendering %q", report.Render())
		}
	}
}

func TestCheckHeaders_UsesRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)

	registry := mocks.NewMockCheckerRegistry(ctrl)
	checker := mocks.NewMockHeaderChecker(ctrl)

	registry.EXPECT().Lookup("SAND-Custom").Return(checker, true)
	checker.EXPECT().CheckSyntax("v=1").Return(nil)
	checker.EXPECT().Name().Return("SAND-Custom").AnyTimes()

	svc := usecase.NewConformanceService(mocks.NewMockMessageValidator(ctrl), registry, nil, noopLogger{})

	report := svc.CheckHeaders(context.Background(), &domain.ConformanceRequest{
		Headers: map[string]string{"SAND-Custom": " v=1\t"},
	})
	if len(report.Outcomes) != 1 || !report.Outcomes[0].Passed || report.Outcomes[0].Name != "SAND-Custom" {
		t.Fatalf("unexpected outcomes %+v", report.Outcomes)
	}
}

// Имена неизвестных заголовков приходят от клиента и не должны порождать новые серии метрик.
func TestCheckHeaders_UnknownHeadersKeepSeriesBounded(t *testing.T) {
	metrics.MustRegister()

	svc := usecase.NewConformanceService(nil, sandheader.DefaultRegistry(), nil, noopLogger{})

	// серия (unsupported, ko) может появиться при первом вызове
	_ = svc.CheckHeaders(context.Background(), &domain.ConformanceRequest{
		Headers: map[string]string{"Sand-Warmup": "x=1"},
	})
	before := testutil.CollectAndCount(metrics.ChecksTotal)

	for i := 0; i < 200; i++ {
		report := svc.CheckHeaders(context.Background(), &domain.ConformanceRequest{
			Headers: map[string]string{fmt.Sprintf("Sand-Rand%d", i): "x=1"},
		})
		// в отчёте по-прежнему имя, которое прислал клиент
		if got := report.Outcomes[0].Name; got != fmt.Sprintf("Sand-Rand%d", i) {
			t.Fatalf("outcome name: want Sand-Rand%d, got %q", i, got)
		}
	}

	if after := testutil.CollectAndCount(metrics.ChecksTotal); after != before {
		t.Fatalf("sand_checks_total series grew with client input: before=%d after=%d", before, after)
	}
	unsupportedKO := metrics.ChecksTotal.WithLabelValues("unsupported", metrics.ResultKO)
	if got := testutil.ToFloat64(unsupportedKO); got < 201 {
		t.Fatalf("sand_checks_total(unsupported,ko): want >= 201, got %v", got)
	}
}
