package rest

import (
	"net/http"

	"github.com/Gunvolt24/sand_conformance/internal/domain"
	"github.com/Gunvolt24/sand_conformance/internal/ports"
	"github.com/Gunvolt24/sand_conformance/pkg/httpx"
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const contentTypeText = "text/plain; charset=utf-8"

type Handler struct {
	service      ports.ConformanceChecker
	log          ports.Logger
	maxBodyBytes int64
}

// NewHandler — maxBodyBytes <= 0 снимает ограничение на размер тела.
func NewHandler(service ports.ConformanceChecker, log ports.Logger, maxBodyBytes int64) *Handler {
	return &Handler{service: service, log: log, maxBodyBytes: maxBodyBytes}
}

// NewRouter — пустой serviceName отключает otel-middleware.
func NewRouter(h *Handler, serviceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if serviceName != "" {
		r.Use(otelgin.Middleware(serviceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	// /metrics принимает любой метод: неверный метод — это проваленная проверка, а не 405
	r.Any("/metrics", h.checkMessage)
	r.Any("/headers", h.checkHeaders)

	return r
}

func (h *Handler) checkMessage(c *gin.Context) {
	req := &domain.ConformanceRequest{
		Method:      c.Request.Method,
		ContentType: c.GetHeader("Content-Type"),
	}
	req.Body, req.BodyErr = httpx.ReadBody(c, h.maxBodyBytes)
	if req.BodyErr != nil {
		h.log.Warnf(c.Request.Context(), "read body failed err=%v", req.BodyErr)
	}

	report := h.service.CheckMessage(c.Request.Context(), req)

	status := http.StatusOK
	if !report.Passed() {
		status = http.StatusBadRequest
	}
	c.Data(status, contentTypeText, []byte(report.Render()))
}

func (h *Handler) checkHeaders(c *gin.Context) {
	if c.Request.Method != http.MethodGet {
		c.Header("Allow", http.MethodGet)
		c.Data(http.StatusMethodNotAllowed, contentTypeText, []byte("method not allowed\n"))
		return
	}

	report := h.service.CheckHeaders(c.Request.Context(), &domain.ConformanceRequest{
		Method:  c.Request.Method,
		Headers: httpx.HeaderMap(c.Request.Header),
	})

	// наблюдение за трафиком само по себе не ошибка: всегда 200
	c.Data(http.StatusOK, contentTypeText, []byte(report.Render()))
}
