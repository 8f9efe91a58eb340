package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Business Metrics
var (
	XPAwarded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameXPAwarded,
			Help: HelpTextXPAwarded,
		},
		[]string{LabelAction},
	)

	LevelUps = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLevelUps,
			Help: HelpTextLevelUps,
		},
	)

	ModificationsRecorded = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameModificationsRecorded,
			Help: HelpTextModificationsRecorded,
		},
		[]string{LabelCategory},
	)

	PointsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePointsRejected,
			Help: HelpTextPointsRejected,
		},
		[]string{LabelReason},
	)

	PurchaseCredits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNamePurchaseCredits,
			Help: HelpTextPurchaseCredits,
		},
	)

	EvaluatorFallbacks = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameEvaluatorFallbacks,
			Help: HelpTextEvaluatorFallbacks,
		},
	)
)
