package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/sand_conformance/config"
	"github.com/Gunvolt24/sand_conformance/internal/kafka"
	"github.com/Gunvolt24/sand_conformance/internal/ports"
	rest "github.com/Gunvolt24/sand_conformance/internal/transport/http"
	"github.com/Gunvolt24/sand_conformance/internal/usecase"
	"github.com/Gunvolt24/sand_conformance/pkg/logger"
	"github.com/Gunvolt24/sand_conformance/pkg/metrics"
	"github.com/Gunvolt24/sand_conformance/pkg/sandheader"
	"github.com/Gunvolt24/sand_conformance/pkg/telemetry"
	"github.com/Gunvolt24/sand_conformance/pkg/validate"
	"github.com/Gunvolt24/sand_conformance/schemas"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, Prometheus, Kafka).
type App struct {
	Logger          ports.Logger          // логгер
	HTTPServer      *http.Server          // SAND-эндпоинты
	MetricsServer   *http.Server          // Prometheus; nil — метрики не отдаются
	Publisher       ports.ReportPublisher // nil — публикация отчётов отключена
	gracefulTimeout time.Duration         // время ожидания завершения HTTP-серверов
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// LoadValidator — валидатор по пути к XSD; пустой путь — встроенная схема.
func LoadValidator(path string) (*validate.SchemaValidator, error) {
	if path == "" {
		return validate.NewSchemaValidator(schemas.SANDMessages)
	}
	return validate.LoadSchemaValidator(path)
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
// Ошибка загрузки схемы фатальна: сервер без схемы не стартует.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Схема SAND-сообщений загружается один раз и дальше только читается.
	validator, err := LoadValidator(cfg.Schema.Path)
	if err != nil {
		logg.Errorf(ctx, "schema load failed path=%q err=%v", cfg.Schema.Path, err)
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}
	if cfg.Schema.Path == "" {
		logg.Infof(ctx, "using embedded SAND schema")
	} else {
		logg.Infof(ctx, "SAND schema loaded path=%s", cfg.Schema.Path)
	}

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Публикация отчётов в Kafka (опционально).
	var publisher ports.ReportPublisher
	if cfg.Kafka.Enabled {
		// Отправка идёт в фоне: ответ клиенту не ждёт брокера.
		publisher = kafka.NewDispatcher(kafka.NewPublisher(&kafka.PublisherConfig{
			Brokers:      cfg.Kafka.Brokers,
			Topic:        cfg.Kafka.Topic,
			WriteTimeout: cfg.Kafka.WriteTimeout,
			MaxAttempts:  cfg.Kafka.MaxAttempts,
			RetryInitial: cfg.Kafka.RetryInitial,
			RetryMax:     cfg.Kafka.RetryMax,
		}, logg), cfg.Kafka.QueueSize, logg)
		logg.Infof(ctx, "report publishing enabled topic=%s brokers=%v queue=%d",
			cfg.Kafka.Topic, cfg.Kafka.Brokers, cfg.Kafka.QueueSize)
	}

	// Сборка зависимостей доменного слоя.
	registry := sandheader.DefaultRegistry()
	service := usecase.NewConformanceService(validator, registry, publisher, logg)
	logg.Infof(ctx, "supported SAND headers: %v", registry.Names())

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(service, logg, cfg.HTTP.MaxBodyBytes)
	router := rest.NewRouter(httpHandler, otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	// Prometheus на отдельном листенере: /metrics основного сервера — SAND-эндпоинт.
	var metricsSrv *http.Server
	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		metricsSrv = &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           mux,
			ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		}
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		MetricsServer:   metricsSrv,
		Publisher:       publisher,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if publisher != nil {
			if err := publisher.Close(); err != nil {
				logg.Warnf(ctx, "kafka publisher close error: %v", err)
			}
		}

		validator.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-серверы; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	serve := func(name string, srv *http.Server) {
		a.Logger.Infof(ctx, "%s server starting (addr=%s)", name, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}

	go serve("http", a.HTTPServer)
	if a.MetricsServer != nil {
		go serve("metrics", a.MetricsServer)
	}

	// Ожидание сигнала остановки или фоновой ошибки.
	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case runErr = <-errCh:
		a.Logger.Errorf(ctx, "server error: %v", runErr)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-серверов.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}
	if a.MetricsServer != nil {
		if err := a.MetricsServer.Shutdown(shutdownCtx); err != nil {
			a.Logger.Warnf(ctx, "metrics server shutdown failed: %v", err)
		}
	}

	// Остановка публикации отчётов после того, как обработчики завершились.
	if a.Publisher != nil {
		if err := a.Publisher.Close(); err != nil {
			a.Logger.Warnf(ctx, "kafka publisher close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}
