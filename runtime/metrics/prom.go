package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// PromRecorder implements Recorder using Prometheus.
type PromRecorder struct {
	records  *prometheus.CounterVec
	warnings *prometheus.CounterVec
	changed  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

func registerCollector[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, fmt.Errorf("register collector: %w", err)
	}
	return c, nil
}

// New creates a PromRecorder and registers its collectors with reg.
//
// Metrics registered:
//   - {namespace}_{subsystem}_records_total{domain, result}
//   - {namespace}_{subsystem}_warnings_total{domain, code}
//   - {namespace}_{subsystem}_changed_fields_total{domain}
//   - {namespace}_{subsystem}_process_duration_seconds{domain}
//
// Collectors already registered under the same names are reused.
func New(reg prometheus.Registerer, namespace, subsystem string) (*PromRecorder, error) {
	if reg == nil {
		return nil, errors.New("prometheus registerer is nil")
	}

	var (
		pr  PromRecorder
		err error
	)

	pr.records, err = registerCollector(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: subsystem,
		Name: "records_total", Help: "Processed records by domain and result",
	}, []string{"domain", "result"}))
	if err != nil {
		return nil, err
	}

	pr.warnings, err = registerCollector(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: subsystem,
		Name: "warnings_total", Help: "Emitted warning codes by domain",
	}, []string{"domain", "code"}))
	if err != nil {
		return nil, err
	}

	pr.changed, err = registerCollector(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace, Subsystem: subsystem,
		Name: "changed_fields_total", Help: "Fields whose value changed during normalization",
	}, []string{"domain"}))
	if err != nil {
		return nil, err
	}

	pr.duration, err = registerCollector(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace, Subsystem: subsystem,
		Name:    "process_duration_seconds",
		Help:    "Time spent normalizing one record",
		Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
	}, []string{"domain"}))
	if err != nil {
		return nil, err
	}

	return &pr, nil
}

func (p *PromRecorder) ObserveRecord(domain, result string, d time.Duration) {
	p.records.WithLabelValues(domain, result).Inc()
	p.duration.WithLabelValues(domain).Observe(d.Seconds())
}

func (p *PromRecorder) AddWarnings(domain string, codes []string) {
	for _, c := range codes {
		p.warnings.WithLabelValues(domain, c).Inc()
	}
}

func (p *PromRecorder) AddChangedFields(domain string, n int) {
	if n <= 0 {
		return
	}
	p.changed.WithLabelValues(domain).Add(float64(n))
}
