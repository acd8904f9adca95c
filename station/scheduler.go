package station

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// requestIdOffset keeps station-generated request ids visually distinct
// from ids minted by the central system.
const requestIdOffset = 100000

type RequestIdGenerator struct {
	counter int64
}

func NewRequestIdGenerator() *RequestIdGenerator {
	return &RequestIdGenerator{counter: requestIdOffset}
}

func (g *RequestIdGenerator) Next() string {
	id := atomic.AddInt64(&g.counter, 1)
	return fmt.Sprintf("%d", id)
}

// EnqueuedRequest is a pre-serialized call waiting for a live channel.
// Continuation receives the raw response frame once the send succeeds.
type EnqueuedRequest struct {
	UniqueId     string
	Feature      string
	Data         []byte
	Continuation func(data []byte)
}

type RequestQueue struct {
	mutex    sync.Mutex
	requests []*EnqueuedRequest
}

func NewRequestQueue() *RequestQueue {
	return &RequestQueue{}
}

func (q *RequestQueue) Enqueue(request *EnqueuedRequest) {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	q.requests = append(q.requests, request)
}

func (q *RequestQueue) Size() int {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	return len(q.requests)
}

// TakeAll removes and returns all pending requests; requests that fail to
// send are handed back via Requeue.
func (q *RequestQueue) TakeAll() []*EnqueuedRequest {
	q.mutex.Lock()
	defer q.mutex.Unlock()
	pending := q.requests
	q.requests = nil
	return pending
}

func (q *RequestQueue) Requeue(requests []*EnqueuedRequest) {
	if len(requests) == 0 {
		return
	}
	q.mutex.Lock()
	defer q.mutex.Unlock()
	q.requests = append(requests, q.requests...)
}

func (cs *ChargingStation) heartbeatLoop() {
	cs.timingMutex.Lock()
	interval := cs.heartbeatInterval
	cs.timingMutex.Unlock()
	timer := time.NewTimer(interval)
	defer timer.Stop()
	for {
		select {
		case <-cs.stop:
			return
		case interval = <-cs.heartbeatReset:
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(interval)
		case <-timer.C:
			cs.SendHeartbeat()
			timer.Reset(interval)
		}
	}
}

func (cs *ChargingStation) maintenanceLoop() {
	interval := time.Duration(cs.conf.Scheduler.MaintenanceSeconds) * time.Second
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-cs.stop:
			return
		case <-ticker.C:
			cs.runMaintenance()
		}
	}
}

// runMaintenance drains the outbound queue. The pass is skipped when the
// maintenance lock cannot be taken within the configured timeout.
func (cs *ChargingStation) runMaintenance() {
	lockTimeout := time.Duration(cs.conf.Scheduler.LockTimeoutSeconds) * time.Second
	if lockTimeout <= 0 {
		lockTimeout = 5 * time.Second
	}
	select {
	case cs.maintenanceLock <- struct{}{}:
	case <-time.After(lockTimeout):
		cs.logger.Warn("maintenance lock busy, skipping cycle")
		return
	}
	defer func() { <-cs.maintenanceLock }()

	if cs.queue.Size() == 0 {
		return
	}
	channel := cs.liveChannel()
	if channel == nil {
		return
	}
	pending := cs.queue.TakeAll()
	var failed []*EnqueuedRequest
	for _, request := range pending {
		data, err := channel.Send(request.UniqueId, request.Data)
		if err != nil {
			cs.logger.Error(fmt.Sprintf("queued %s send failed", request.Feature), err)
			failed = append(failed, request)
			continue
		}
		cs.logger.FeatureEvent(request.Feature, cs.conf.Station.Id, "queued request delivered")
		if request.Continuation != nil {
			request.Continuation(data)
		}
	}
	cs.queue.Requeue(failed)
}
