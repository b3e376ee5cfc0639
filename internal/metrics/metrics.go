package metrics

import "github.com/prometheus/client_golang/prometheus"

type Counter interface {
	Inc(labels ...string)
}

type Counters struct {
	GraphQLRequests Counter

	LogLoads Counter
}

type PrometheusCounter struct {
	counter *prometheus.CounterVec
}

func newCounterVec(name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: name,
		Help: help,
	}, labels)
}

func NewPrometheusCounter(reg prometheus.Registerer, name, help string, labels []string) *PrometheusCounter {
	c := &PrometheusCounter{counter: newCounterVec(name, help, labels)}
	reg.MustRegister(c.counter)
	return c
}

func (p *PrometheusCounter) Inc(labels ...string) {
	p.counter.WithLabelValues(labels...).Inc()
}

func newCounters(reg prometheus.Registerer) *Counters {
	return &Counters{
		GraphQLRequests: NewPrometheusCounter(reg,
			"graphql_requests_total",
			"Number of resolved GraphQL fields by operation and outcome",
			[]string{"operation", "status"},
		),
		LogLoads: NewPrometheusCounter(reg,
			"log_loads_total",
			"Number of bulk loads by source format and outcome",
			[]string{"format", "status"},
		),
	}
}

func New() *Counters {
	return newCounters(prometheus.DefaultRegisterer)
}

func NewWithRegisterer(reg prometheus.Registerer) *Counters {
	return newCounters(reg)
}

// NewTestCounters registers on a private registry so tests can build many.
func NewTestCounters() *Counters {
	return newCounters(prometheus.NewRegistry())
}
