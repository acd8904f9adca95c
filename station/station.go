package station

import (
	"fmt"
	"sync"
	"time"

	"evstation/codec"
	"evstation/internal"
	"evstation/internal/config"
	"evstation/ocpp/provisioning"
	"evstation/signature"
	"evstation/transport"
)

const minHeartbeatInterval = 5 * time.Second

// ChargingStation is the protocol endpoint. It routes inbound calls from
// the central system through the five-step pipeline, drives the outbound
// call engine and runs the background scheduler.
type ChargingStation struct {
	conf      *config.Config
	logger    internal.LogHandler
	handler   *SystemHandler
	policies  *signature.PolicySet
	codec     codec.Codec
	events    *EventRegistry
	queue     *RequestQueue
	requestId *RequestIdGenerator

	channel      transport.Channel
	channelMutex sync.Mutex

	heartbeatInterval time.Duration
	heartbeatReset    chan time.Duration
	clockOffset       time.Duration
	timingMutex       sync.Mutex

	// maintenanceLock serializes maintenance passes; acquisition waits at
	// most the configured lock timeout, then the cycle is skipped.
	maintenanceLock chan struct{}

	seqMutex sync.Mutex
	seqNo    int

	stop chan struct{}
}

func NewChargingStation(conf *config.Config, logger internal.LogHandler) *ChargingStation {
	policies := signature.NewPolicySet()
	if conf.Signing.HmacKey != "" {
		policies.Add(signature.NewHmacPolicy("default", []byte(conf.Signing.HmacKey)))
	}
	handler := NewSystemHandler(conf, policies)
	handler.SetLogger(logger)

	heartbeat := time.Duration(conf.Scheduler.HeartbeatSeconds) * time.Second
	if heartbeat <= 0 {
		heartbeat = 30 * time.Second
	}
	cs := &ChargingStation{
		conf:              conf,
		logger:            logger,
		handler:           handler,
		policies:          policies,
		codec:             codec.NewJsonCodec(),
		events:            NewEventRegistry(logger),
		queue:             NewRequestQueue(),
		requestId:         NewRequestIdGenerator(),
		heartbeatInterval: heartbeat,
		heartbeatReset:    make(chan time.Duration, 1),
		maintenanceLock:   make(chan struct{}, 1),
		stop:              make(chan struct{}),
	}
	handler.SetSender(cs)
	return cs
}

func (cs *ChargingStation) Handler() *SystemHandler {
	return cs.handler
}

func (cs *ChargingStation) Events() *EventRegistry {
	return cs.events
}

func (cs *ChargingStation) Policies() *signature.PolicySet {
	return cs.policies
}

// SetChannel installs the live channel, nil when disconnected.
func (cs *ChargingStation) SetChannel(channel transport.Channel) {
	cs.channelMutex.Lock()
	defer cs.channelMutex.Unlock()
	cs.channel = channel
}

func (cs *ChargingStation) liveChannel() transport.Channel {
	cs.channelMutex.Lock()
	defer cs.channelMutex.Unlock()
	if cs.channel == nil || !cs.channel.IsAlive() {
		return nil
	}
	return cs.channel
}

// Start announces the station to the central system and launches the
// background timers. It does not block.
func (cs *ChargingStation) Start() {
	go cs.SendBootNotification()
	if !cs.conf.Scheduler.DisableHeartbeat {
		go cs.heartbeatLoop()
	}
	if !cs.conf.Scheduler.DisableMaintenance {
		go cs.maintenanceLoop()
	}
}

func (cs *ChargingStation) Stop() {
	close(cs.stop)
}

// CurrentTime returns the station clock adjusted by the offset adopted from
// the last accepted BootNotification.
func (cs *ChargingStation) CurrentTime() time.Time {
	cs.timingMutex.Lock()
	defer cs.timingMutex.Unlock()
	return time.Now().Add(cs.clockOffset)
}

func (cs *ChargingStation) adoptBootResponse(response *provisioning.BootNotificationResponse) {
	if response.Status != provisioning.RegistrationStatusAccepted {
		return
	}
	cs.timingMutex.Lock()
	if response.CurrentTime != nil {
		cs.clockOffset = time.Until(response.CurrentTime.Time)
	}
	interval := time.Duration(response.Interval) * time.Second
	if interval < minHeartbeatInterval {
		interval = minHeartbeatInterval
	}
	changed := interval != cs.heartbeatInterval
	cs.heartbeatInterval = interval
	cs.timingMutex.Unlock()
	if changed {
		select {
		case cs.heartbeatReset <- interval:
		default:
		}
		cs.logger.FeatureEvent(provisioning.BootNotificationFeatureName, cs.conf.Station.Id,
			fmt.Sprintf("heartbeat interval set to %s", interval))
	}
}

func (cs *ChargingStation) nextSeqNo() int {
	cs.seqMutex.Lock()
	defer cs.seqMutex.Unlock()
	seq := cs.seqNo
	cs.seqNo++
	return seq
}
