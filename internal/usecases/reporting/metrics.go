package reporting

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	resultSuccess    = "success"
	resultError      = "error"
	resultSuperseded = "superseded"
)

type Metrics struct {
	computations *prometheus.CounterVec
	cacheHits    *prometheus.CounterVec
	fetchSeconds prometheus.Histogram
	activities   prometheus.Histogram
}

// NewMetrics registra as métricas dos relatórios no registerer informado
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		computations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "outreach",
			Subsystem: "reports",
			Name:      "computations_total",
			Help:      "Cálculos de relatório por resultado.",
		}, []string{"result"}),
		cacheHits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "outreach",
			Subsystem: "reports",
			Name:      "cache_hits_total",
			Help:      "Relatórios servidos a partir de snapshot.",
		}, []string{"kind"}),
		fetchSeconds: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "outreach",
			Subsystem: "reports",
			Name:      "crm_fetch_seconds",
			Help:      "Tempo para carregar os dados de um projeto do CRM.",
			Buckets:   prometheus.DefBuckets,
		}),
		activities: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "outreach",
			Subsystem: "reports",
			Name:      "project_activities",
			Help:      "Quantidade de atividades por projeto calculado.",
			Buckets:   prometheus.ExponentialBuckets(10, 4, 7),
		}),
	}
}
