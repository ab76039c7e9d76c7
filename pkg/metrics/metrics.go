package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	ResultOK = "ok"
	ResultKO = "ko"
)

var (
	ChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sand_checks_total",
			Help: "Number of individual conformance checks by outcome",
		},
		[]string{"check", "result"},
	)
	ReportsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sand_reports_total",
			Help: "Number of conformance reports produced",
		},
		[]string{"kind", "result"}, // message|headers, ok|ko
	)
	HeaderChecksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sand_header_checks_total",
			Help: "Number of SAND header syntax checks",
		},
		[]string{"header", "result"}, // имя из реестра или unsupported
	)
)

var (
	ReportsPublished = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sand_reports_published_total",
			Help: "Number of reports published to Kafka",
		},
		[]string{"topic"},
	)
	ReportsPublishFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "sand_reports_publish_failed_total",
			Help: "Number of reports that could not be published",
		},
		[]string{"topic"},
	)
	ReportsDropped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "sand_reports_dropped_total",
			Help: "Number of reports dropped because the publish queue was full or closed",
		},
	)
)

var registerOnce sync.Once

// Result — метка результата по вердикту.
func Result(passed bool) string {
	if passed {
		return ResultOK
	}
	return ResultKO
}

// MustRegister регистрирует коллекторы в глобальном реестре; повторные вызовы ничего не делают.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(ChecksTotal, ReportsTotal, HeaderChecksTotal, ReportsPublished, ReportsPublishFailed, ReportsDropped)
	})
}
