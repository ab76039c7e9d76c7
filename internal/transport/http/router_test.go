package rest_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Gunvolt24/sand_conformance/internal/domain"
	"github.com/Gunvolt24/sand_conformance/internal/ports/mocks"
	rest "github.com/Gunvolt24/sand_conformance/internal/transport/http"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestPing(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := rest.NewRouter(rest.NewHandler(mocks.NewMockConformanceChecker(ctrl), noopLogger{}, 0), "")

	w := serve(r, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))
	if w.Code != http.StatusOK || w.Body.String() != "pong" {
		t.Fatalf("want 200 pong, got %d %q", w.Code, w.Body.String())
	}
}

func TestMetrics_PassesRequestToService(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockConformanceChecker(ctrl)

	passed := domain.NewReport(domain.KindMessage)
	passed.Add(domain.Pass(domain.CheckMethod))

	svc.EXPECT().CheckMessage(gomock.Any(), gomock.AssignableToTypeOf(&domain.ConformanceRequest{})).
		DoAndReturn(func(_ context.Context, req *domain.ConformanceRequest) *domain.ConformanceReport {
			if req.Method != http.MethodPost || req.ContentType != "application/sand+xml" {
				t.Fatalf("unexpected request %+v", req)
			}
			if string(req.Body) != "<SANDMessage/>" || req.BodyErr != nil {
				t.Fatalf("unexpected body %q err=%v", req.Body, req.BodyErr)
			}
			return passed
		})

	r := rest.NewRouter(rest.NewHandler(svc, noopLogger{}, 1024), "")

	req := httptest.NewRequest(http.MethodPost, "/metrics", strings.NewReader("<SANDMessage/>"))
	req.Header.Set("Content-Type", "application/sand+xml")
	w := serve(r, req)

	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d body=%s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), domain.SuccessMarker) {
		t.Fatalf("missing success marker: %q", w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("want text/plain, got %q", ct)
	}
	if w.Header().Get("X-Request-ID") == "" {
		t.Fatalf("X-Request-ID must be set")
	}
}

func TestMetrics_FailedReportIs400(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockConformanceChecker(ctrl)

	failed := domain.NewReport(domain.KindMessage)
	failed.Add(domain.Fail(domain.CheckMethod, `observed "PUT", expected "POST"`))
	svc.EXPECT().CheckMessage(gomock.Any(), gomock.Any()).Return(failed)

	r := rest.NewRouter(rest.NewHandler(svc, noopLogger{}, 0), "")
	w := serve(r, httptest.NewRequest(http.MethodPut, "/metrics", http.NoBody))

	if w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), domain.FailureMarker) {
		t.Fatalf("missing failure marker: %q", w.Body.String())
	}
}

func TestMetrics_OversizedBodyIsPassedAsBodyError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockConformanceChecker(ctrl)

	svc.EXPECT().CheckMessage(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *domain.ConformanceRequest) *domain.ConformanceReport {
			if req.BodyErr == nil {
				t.Fatalf("expected body error for oversized body")
			}
			rep := domain.NewReport(domain.KindMessage)
			rep.Add(domain.Fail(domain.CheckMessageBody, req.BodyErr.Error()))
			return rep
		})

	r := rest.NewRouter(rest.NewHandler(svc, noopLogger{}, 8), "")
	req := httptest.NewRequest(http.MethodPost, "/metrics", strings.NewReader(strings.Repeat("x", 64)))
	req.Header.Set("Content-Type", "application/sand+xml")

	if w := serve(r, req); w.Code != http.StatusBadRequest {
		t.Fatalf("want 400, got %d", w.Code)
	}
}

func TestHeaders_PassesJoinedHeaders(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockConformanceChecker(ctrl)

	rep := domain.NewReport(domain.KindHeaders)
	rep.Add(domain.Fail("Sand-Foo", "header not supported by this version"))

	svc.EXPECT().CheckHeaders(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req *domain.ConformanceRequest) *domain.ConformanceReport {
			if got := req.Headers["Sand-Foo"]; got != "a=1, b=2" {
				t.Fatalf("joined header value: got %q", got)
			}
			return rep
		})

	r := rest.NewRouter(rest.NewHandler(svc, noopLogger{}, 0), "")
	req := httptest.NewRequest(http.MethodGet, "/headers", http.NoBody)
	req.Header.Add("SAND-Foo", "a=1")
	req.Header.Add("SAND-Foo", "b=2")
	w := serve(r, req)

	// провал проверок не меняет статус
	if w.Code != http.StatusOK {
		t.Fatalf("want 200, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Sand-Foo: FAILED") {
		t.Fatalf("unexpected body %q", w.Body.String())
	}
}

func TestHeaders_MethodNotAllowed(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockConformanceChecker(ctrl)
	svc.EXPECT().CheckHeaders(gomock.Any(), gomock.Any()).Times(0)

	r := rest.NewRouter(rest.NewHandler(svc, noopLogger{}, 0), "")

	for _, m := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
		w := serve(r, httptest.NewRequest(m, "/headers", http.NoBody))
		if w.Code != http.StatusMethodNotAllowed {
			t.Fatalf("%s: want 405, got %d", m, w.Code)
		}
		if got := w.Header().Get("Allow"); got != http.MethodGet {
			t.Fatalf("%s: Allow header: got %q", m, got)
		}
	}
}

func TestUnknownPath_404(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := rest.NewRouter(rest.NewHandler(mocks.NewMockConformanceChecker(ctrl), noopLogger{}, 0), "")

	if w := serve(r, httptest.NewRequest(http.MethodGet, "/nope", http.NoBody)); w.Code != http.StatusNotFound {
		t.Fatalf("want 404, got %d", w.Code)
	}
}
