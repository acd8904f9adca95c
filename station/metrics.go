package station

import (
	"time"

	"evstation/metrics/counters"
	"evstation/ocpp/transactions"
)

// BindMetrics registers listeners that feed the prometheus counters with
// traffic and transaction observations.
func (cs *ChargingStation) BindMetrics() {
	stationId := cs.conf.Station.Id
	cs.events.OnRequestReceived(AnyFeature, func(feature string, payload interface{}) {
		counters.ObserveRequestReceived(stationId, feature)
	})
	cs.events.OnRequestSent(AnyFeature, func(feature string, payload interface{}) {
		counters.ObserveRequestSent(stationId, feature)
		counters.ObserveQueuedRequests(stationId, cs.queue.Size())
	})
	cs.events.OnResponseSent(AnyFeature, func(feature string, payload interface{}, elapsed time.Duration) {
		counters.ObserveResponseSent(stationId, feature, elapsed)
		if feature == transactions.RequestStartTransactionFeatureName ||
			feature == transactions.RequestStopTransactionFeatureName {
			counters.ObserveTransactions(stationId, cs.handler.ChargingCount())
		}
	})
}
