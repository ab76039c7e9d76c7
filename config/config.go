package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// DefaultPrefix — префикс переменных окружения сервиса.
const DefaultPrefix = "SANDCONF"

type HTTP struct {
	Addr              string        `default:":5000" envconfig:"ADDR"`
	GinMode           string        `default:"debug" envconfig:"GIN_MODE"`
	ReadTimeout       time.Duration `default:"10s" envconfig:"READ_TIMEOUT"`
	WriteTimeout      time.Duration `default:"10s" envconfig:"WRITE_TIMEOUT"`
	ReadHeaderTimeout time.Duration `default:"5s" envconfig:"READ_HEADER_TIMEOUT"`
	IdleTimeout       time.Duration `default:"60s" envconfig:"IDLE_TIMEOUT"`
	GracefulTimeout   time.Duration `default:"5s" envconfig:"GRACEFUL_TIMEOUT"`
	MaxBodyBytes      int64         `default:"1048576" envconfig:"MAX_BODY_BYTES"`
}

// Metrics — отдельный листенер для Prometheus: путь /metrics основного сервера занят SAND-эндпоинтом.
type Metrics struct {
	Enabled bool   `default:"true" envconfig:"ENABLED"`
	Addr    string `default:":2112" envconfig:"ADDR"`
}

type Tracing struct {
	Enabled     bool    `default:"false" envconfig:"OTEL_ENABLED"`
	ServiceName string  `default:"sand-conformance-server" envconfig:"OTEL_SERVICE_NAME"`
	Endpoint    string  `default:"localhost:4318" envconfig:"OTEL_ENDPOINT"`
	SampleRatio float64 `default:"1" envconfig:"OTEL_SAMPLE_RATIO"`
}

// Schema — путь к XSD; пустое значение означает встроенную схему.
type Schema struct {
	Path string `envconfig:"XSD_PATH"`
}

type Kafka struct {
	Enabled      bool          `default:"false" envconfig:"ENABLED"`
	Brokers      []string      `default:"kafka:9092" envconfig:"BROKERS"`
	Topic        string        `default:"sand-conformance-reports" envconfig:"TOPIC"`
	WriteTimeout time.Duration `default:"5s" envconfig:"WRITE_TIMEOUT"`
	MaxAttempts  int           `default:"3" envconfig:"MAX_ATTEMPTS"`
	RetryInitial time.Duration `default:"100ms" envconfig:"RETRY_INITIAL"`
	RetryMax     time.Duration `default:"2s" envconfig:"RETRY_MAX"`
	QueueSize    int           `default:"256" envconfig:"QUEUE_SIZE"`
}

type Logger struct {
	IsProd bool `default:"false" envconfig:"IS_PROD"`
}

type Config struct {
	HTTP    HTTP
	Metrics Metrics
	Tracing Tracing
	Schema  Schema
	Kafka   Kafka
	Logger  Logger
}

// Load — читает конфигурацию с префиксом по умолчанию.
func Load() (Config, error) {
	return LoadWithPrefix(DefaultPrefix)
}

// LoadWithPrefix — читает конфигурацию из окружения с заданным префиксом (удобно для тестов).
func LoadWithPrefix(prefix string) (Config, error) {
	var c Config

	if err := envconfig.Process(prefix, &c); err != nil {
		return Config{}, err
	}

	return c, nil
}
