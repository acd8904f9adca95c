package station

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"evstation/internal/config"
	"evstation/ocpp/provisioning"
	"evstation/types"
)

type nopLogger struct{}

func (l *nopLogger) FeatureEvent(feature, id, text string) {}
func (l *nopLogger) Debug(text string)                     {}
func (l *nopLogger) Warn(text string)                      {}
func (l *nopLogger) Error(text string, err error)          {}
func (l *nopLogger) RawDataEvent(direction, data string)   {}

// fakeChannel records every frame pushed through it and answers Send with
// a canned response, an empty call result by default.
type fakeChannel struct {
	mutex   sync.Mutex
	written [][]byte
	sent    [][]byte
	respond func(requestId string, data []byte) ([]byte, error)
	dead    bool
}

func (c *fakeChannel) PeerId() string { return "csms-test" }

func (c *fakeChannel) IsAlive() bool { return !c.dead }

func (c *fakeChannel) Close() error { return nil }

func (c *fakeChannel) Write(data []byte) error {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.written = append(c.written, data)
	return nil
}

func (c *fakeChannel) Send(requestId string, data []byte) ([]byte, error) {
	c.mutex.Lock()
	c.sent = append(c.sent, data)
	c.mutex.Unlock()
	if c.respond != nil {
		return c.respond(requestId, data)
	}
	return []byte(fmt.Sprintf(`[3,%q,{}]`, requestId)), nil
}

func (c *fakeChannel) lastWritten() []byte {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	if len(c.written) == 0 {
		return nil
	}
	return c.written[len(c.written)-1]
}

func (c *fakeChannel) sentCount() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.sent)
}

func testConfig() *config.Config {
	conf := &config.Config{}
	conf.Station.Id = "station-1"
	conf.Station.Vendor = "GraphDefined OEM"
	conf.Station.Model = "VSE-1"
	conf.Station.FirmwareVersion = "1.0"
	conf.Csms.Url = "ws://localhost:5000/ws/station-1"
	conf.Evse.Count = 2
	conf.Evse.ConnectorsPerEvse = 1
	conf.Scheduler.HeartbeatSeconds = 30
	conf.Scheduler.MaintenanceSeconds = 1
	conf.Scheduler.LockTimeoutSeconds = 1
	return conf
}

func newTestStation() (*ChargingStation, *fakeChannel) {
	cs := NewChargingStation(testConfig(), &nopLogger{})
	channel := &fakeChannel{}
	cs.SetChannel(channel)
	return cs, channel
}

func TestAdoptBootResponseFloorsInterval(t *testing.T) {
	cs, _ := newTestStation()
	cs.adoptBootResponse(&provisioning.BootNotificationResponse{
		Status:   provisioning.RegistrationStatusAccepted,
		Interval: 1,
	})
	cs.timingMutex.Lock()
	interval := cs.heartbeatInterval
	cs.timingMutex.Unlock()
	if interval != minHeartbeatInterval {
		t.Errorf("expected interval %s, got %s", minHeartbeatInterval, interval)
	}
}

func TestAdoptBootResponseAdjustsClock(t *testing.T) {
	cs, _ := newTestStation()
	ahead := time.Now().Add(2 * time.Hour)
	cs.adoptBootResponse(&provisioning.BootNotificationResponse{
		Status:      provisioning.RegistrationStatusAccepted,
		CurrentTime: types.NewDateTime(ahead),
		Interval:    60,
	})
	drift := cs.CurrentTime().Sub(ahead)
	if drift < -time.Second || drift > time.Second {
		t.Errorf("station clock not adopted, drift %s", drift)
	}
}

func TestAdoptBootResponseIgnoresPending(t *testing.T) {
	cs, _ := newTestStation()
	before := cs.heartbeatInterval
	cs.adoptBootResponse(&provisioning.BootNotificationResponse{
		Status:   provisioning.RegistrationStatusPending,
		Interval: 600,
	})
	if cs.heartbeatInterval != before {
		t.Errorf("pending boot response must not change the interval")
	}
}

func TestNextSeqNoMonotonic(t *testing.T) {
	cs, _ := newTestStation()
	for want := 0; want < 5; want++ {
		if got := cs.nextSeqNo(); got != want {
			t.Fatalf("seqNo = %d, want %d", got, want)
		}
	}
}

func TestMaintenanceDrainsQueue(t *testing.T) {
	cs, channel := newTestStation()
	cs.SetChannel(nil)

	if _, err := cs.SendRequest(provisioning.NewHeartbeatRequest()); err == nil {
		t.Fatal("expected unreachable failure without a channel")
	}
	if cs.queue.Size() != 1 {
		t.Fatalf("queue size = %d, want 1", cs.queue.Size())
	}

	cs.SetChannel(channel)
	cs.runMaintenance()
	if cs.queue.Size() != 0 {
		t.Errorf("queue not drained, size = %d", cs.queue.Size())
	}
	if channel.sentCount() != 1 {
		t.Errorf("queued request not delivered, sent = %d", channel.sentCount())
	}
}

func TestMaintenanceRequeuesOnFailure(t *testing.T) {
	cs, channel := newTestStation()
	cs.SetChannel(nil)
	_, _ = cs.SendRequest(provisioning.NewHeartbeatRequest())

	channel.respond = func(requestId string, data []byte) ([]byte, error) {
		return nil, fmt.Errorf("connection reset")
	}
	cs.SetChannel(channel)
	cs.runMaintenance()
	if cs.queue.Size() != 1 {
		t.Errorf("failed request must stay queued, size = %d", cs.queue.Size())
	}
}
