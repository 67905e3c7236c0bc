package provisioning

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records step outcomes in its own registry so a run can be
// exported as a node_exporter textfile.
type Metrics struct {
	registry *prometheus.Registry

	stepsTotal   *prometheus.CounterVec
	stepDuration *prometheus.HistogramVec
	runsTotal    *prometheus.CounterVec
	runDuration  prometheus.Gauge
}

// NewMetrics creates and registers the provisioning metrics.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		stepsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rnsetup",
				Subsystem: "provisioning",
				Name:      "steps_total",
				Help:      "Provisioning steps by result",
			},
			[]string{"step", "result"},
		),
		stepDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "rnsetup",
				Subsystem: "provisioning",
				Name:      "step_duration_seconds",
				Help:      "Duration of executed provisioning steps in seconds",
				Buckets:   prometheus.ExponentialBuckets(0.5, 2, 10), // 0.5s to ~4min
			},
			[]string{"step"},
		),
		runsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "rnsetup",
				Subsystem: "provisioning",
				Name:      "runs_total",
				Help:      "Provisioning runs by result",
			},
			[]string{"result"},
		),
		runDuration: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "rnsetup",
				Subsystem: "provisioning",
				Name:      "last_run_duration_seconds",
				Help:      "Duration of the last provisioning run in seconds",
			},
		),
	}

	m.registry.MustRegister(m.stepsTotal, m.stepDuration, m.runsTotal, m.runDuration)
	return m
}

// Event implements Observer.
func (m *Metrics) Event(event Event) {
	switch event.Type {
	case EventStepCompleted:
		m.stepsTotal.WithLabelValues(event.Step, "success").Inc()
		m.stepDuration.WithLabelValues(event.Step).Observe(event.Duration.Seconds())
	case EventStepFailed:
		m.stepsTotal.WithLabelValues(event.Step, "error").Inc()
		m.stepDuration.WithLabelValues(event.Step).Observe(event.Duration.Seconds())
	case EventStepSkipped:
		m.stepsTotal.WithLabelValues(event.Step, "skipped").Inc()
	case EventRunCompleted:
		m.runsTotal.WithLabelValues("success").Inc()
		m.runDuration.Set(event.Duration.Seconds())
	case EventRunFailed:
		m.runsTotal.WithLabelValues("error").Inc()
		m.runDuration.Set(event.Duration.Seconds())
	}
}

// WriteTextfile writes the metrics in the text exposition format to path.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
