package counters

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var requestsReceived = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ocpp",
	Name:      "requests_received_total",
	Help:      "Total number of requests received from the central system.",
}, []string{"station", "action"})

var requestsSent = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ocpp",
	Name:      "requests_sent_total",
	Help:      "Total number of requests sent to the central system.",
}, []string{"station", "action"})

var responseDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Namespace: "ocpp",
	Name:      "response_duration_seconds",
	Help:      "Time spent processing an inbound request.",
	Buckets:   prometheus.DefBuckets,
}, []string{"station", "action"})

var signatureFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "ocpp",
	Name:      "signature_failures_total",
	Help:      "Total number of requests rejected on signature verification.",
}, []string{"station", "action"})

var activeTransactionsGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "station",
	Name:      "transactions_active",
	Help:      "Number of active transactions",
}, []string{"station"})

var queuedRequestsGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Namespace: "station",
	Name:      "requests_queued",
	Help:      "Number of outbound requests waiting for a live channel",
}, []string{"station"})

func ObserveRequestReceived(station, action string) {
	if len(station) == 0 || len(action) == 0 {
		return
	}
	requestsReceived.With(prometheus.Labels{"station": station, "action": action}).Inc()
}

func ObserveRequestSent(station, action string) {
	if len(station) == 0 || len(action) == 0 {
		return
	}
	requestsSent.With(prometheus.Labels{"station": station, "action": action}).Inc()
}

func ObserveResponseSent(station, action string, elapsed time.Duration) {
	if len(station) == 0 || len(action) == 0 {
		return
	}
	responseDuration.With(prometheus.Labels{"station": station, "action": action}).Observe(elapsed.Seconds())
}

func ObserveSignatureFailure(station, action string) {
	if len(station) == 0 || len(action) == 0 {
		return
	}
	signatureFailures.With(prometheus.Labels{"station": station, "action": action}).Inc()
}

func ObserveTransactions(station string, count int) {
	if len(station) == 0 {
		return
	}
	activeTransactionsGauge.With(prometheus.Labels{"station": station}).Set(float64(count))
}

func ObserveQueuedRequests(station string, count int) {
	if len(station) == 0 {
		return
	}
	queuedRequestsGauge.With(prometheus.Labels{"station": station}).Set(float64(count))
}
