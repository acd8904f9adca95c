package station

import (
	"fmt"
	"sync"
	"time"

	"evstation/internal"
)

type RequestListener func(feature string, payload interface{})
type ResponseListener func(feature string, payload interface{}, elapsed time.Duration)

// AnyFeature subscribes a listener to every message type.
const AnyFeature = ""

// EventRegistry fans out request/response notifications per message type.
// Listener failures are isolated: a panicking listener is logged and its
// siblings still run.
type EventRegistry struct {
	logger           internal.LogHandler
	requestReceived  map[string][]RequestListener
	responseSent     map[string][]ResponseListener
	requestSent      map[string][]RequestListener
	responseReceived map[string][]ResponseListener
	mutex            sync.RWMutex
}

func NewEventRegistry(logger internal.LogHandler) *EventRegistry {
	return &EventRegistry{
		logger:           logger,
		requestReceived:  make(map[string][]RequestListener),
		responseSent:     make(map[string][]ResponseListener),
		requestSent:      make(map[string][]RequestListener),
		responseReceived: make(map[string][]ResponseListener),
	}
}

func (r *EventRegistry) OnRequestReceived(feature string, listener RequestListener) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.requestReceived[feature] = append(r.requestReceived[feature], listener)
}

func (r *EventRegistry) OnResponseSent(feature string, listener ResponseListener) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.responseSent[feature] = append(r.responseSent[feature], listener)
}

func (r *EventRegistry) OnRequestSent(feature string, listener RequestListener) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.requestSent[feature] = append(r.requestSent[feature], listener)
}

func (r *EventRegistry) OnResponseReceived(feature string, listener ResponseListener) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	r.responseReceived[feature] = append(r.responseReceived[feature], listener)
}

// Unregister removes every listener for the feature across all four slots.
func (r *EventRegistry) Unregister(feature string) {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	delete(r.requestReceived, feature)
	delete(r.responseSent, feature)
	delete(r.requestSent, feature)
	delete(r.responseReceived, feature)
}

func (r *EventRegistry) fireRequest(slot map[string][]RequestListener, feature string, payload interface{}) {
	r.mutex.RLock()
	listeners := make([]RequestListener, 0, len(slot[feature])+len(slot[AnyFeature]))
	listeners = append(listeners, slot[feature]...)
	if feature != AnyFeature {
		listeners = append(listeners, slot[AnyFeature]...)
	}
	r.mutex.RUnlock()
	for _, listener := range listeners {
		r.invoke(feature, func() { listener(feature, payload) })
	}
}

func (r *EventRegistry) fireResponse(slot map[string][]ResponseListener, feature string, payload interface{}, elapsed time.Duration) {
	r.mutex.RLock()
	listeners := make([]ResponseListener, 0, len(slot[feature])+len(slot[AnyFeature]))
	listeners = append(listeners, slot[feature]...)
	if feature != AnyFeature {
		listeners = append(listeners, slot[AnyFeature]...)
	}
	r.mutex.RUnlock()
	for _, listener := range listeners {
		r.invoke(feature, func() { listener(feature, payload, elapsed) })
	}
}

func (r *EventRegistry) invoke(feature string, call func()) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error(fmt.Sprintf("event listener for %s failed", feature), fmt.Errorf("%v", rec))
		}
	}()
	call()
}

func (r *EventRegistry) RequestReceived(feature string, payload interface{}) {
	r.fireRequest(r.requestReceived, feature, payload)
}

func (r *EventRegistry) ResponseSent(feature string, payload interface{}, elapsed time.Duration) {
	r.fireResponse(r.responseSent, feature, payload, elapsed)
}

func (r *EventRegistry) RequestSent(feature string, payload interface{}) {
	r.fireRequest(r.requestSent, feature, payload)
}

func (r *EventRegistry) ResponseReceived(feature string, payload interface{}, elapsed time.Duration) {
	r.fireResponse(r.responseReceived, feature, payload, elapsed)
}
