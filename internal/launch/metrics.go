package launch

import "github.com/prometheus/client_golang/prometheus"

var (
	outcomesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "atmoctl",
			Subsystem: "launch",
			Name:      "outcomes_total",
			Help:      "Total number of account pipelines by terminal classification",
		},
		[]string{"classification"},
	)

	statusPollsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "atmoctl",
			Subsystem: "launch",
			Name:      "status_polls_total",
			Help:      "Total number of instance status fetches by result",
		},
		[]string{"result"},
	)

	activationDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "atmoctl",
			Subsystem: "launch",
			Name:      "activation_duration_seconds",
			Help:      "Time from instance submission to active-and-settled",
			Buckets:   prometheus.ExponentialBuckets(30, 2, 8), // 30s to ~64min
		},
	)
)

func init() {
	prometheus.MustRegister(outcomesTotal, statusPollsTotal, activationDuration)
}
