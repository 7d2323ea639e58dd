package provisioning

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Result label values.
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// Metrics records per-step outcomes for a single CLI run. Each run owns its
// registry so the result can be written out as a node-exporter textfile.
type Metrics struct {
	Registry *prometheus.Registry

	stepTotal     *prometheus.CounterVec
	stepDuration  *prometheus.HistogramVec
	rollbackTotal *prometheus.CounterVec
}

// NewMetrics creates and registers the run metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		stepTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "adbvnet",
				Name:      "step_total",
				Help:      "Total number of provisioning steps by result",
			},
			[]string{"pipeline", "step", "result"},
		),
		stepDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "adbvnet",
				Name:      "step_duration_seconds",
				Help:      "Duration of provisioning steps in seconds",
				Buckets:   prometheus.ExponentialBuckets(1, 2, 12), // 1s to ~34min
			},
			[]string{"pipeline", "step"},
		),
		rollbackTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "adbvnet",
				Name:      "rollback_total",
				Help:      "Total number of rollback deletes by result",
			},
			[]string{"pipeline", "step", "result"},
		),
	}
	m.Registry.MustRegister(m.stepTotal, m.stepDuration, m.rollbackTotal)
	return m
}

func resultLabel(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}

// ObserveStep records a finished step. Safe on a nil receiver.
func (m *Metrics) ObserveStep(pipeline, step string, err error, d time.Duration) {
	if m == nil {
		return
	}
	m.stepTotal.WithLabelValues(pipeline, step, resultLabel(err)).Inc()
	m.stepDuration.WithLabelValues(pipeline, step).Observe(d.Seconds())
}

// ObserveRollback records a finished revert. Safe on a nil receiver.
func (m *Metrics) ObserveRollback(pipeline, step string, err error) {
	if m == nil {
		return
	}
	m.rollbackTotal.WithLabelValues(pipeline, step, resultLabel(err)).Inc()
}

// WriteTextfile writes the registry in text exposition format to path.
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	return prometheus.WriteToTextfile(path, m.Registry)
}
