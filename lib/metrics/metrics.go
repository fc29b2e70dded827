package metrics

import (
	"sync"

	apperrors "helpdesk-backend/lib/utils/app-errors"
	"helpdesk-backend/models"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	hiringTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "helpdesk",
			Subsystem: "hiring",
			Name:      "transitions_total",
			Help:      "Total number of hiring workflow operations by result",
		},
		[]string{"operation", "result"},
	)
	hiringRequests = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "helpdesk",
			Subsystem: "hiring",
			Name:      "requests",
			Help:      "Number of requests per hiring workflow status",
		},
		[]string{"status"},
	)
)

var registerMetrics sync.Once

func init() {
	registerMetrics.Do(func() {
		prometheus.MustRegister(hiringTransitions, hiringRequests)
	})
}

// ObserveTransition учитывает результат операции, используется через defer
func ObserveTransition(operation string, err *error) {
	result := "success"
	if err != nil && *err != nil {
		result = apperrors.KindOf(*err).String()
	}
	hiringTransitions.WithLabelValues(operation, result).Inc()
}

func SetPipelineCounts(counts map[models.RequestStatus]int64) {
	for status, cnt := range counts {
		hiringRequests.WithLabelValues(string(status)).Set(float64(cnt))
	}
}
