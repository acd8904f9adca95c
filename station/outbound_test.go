package station

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"evstation/ocpp"
	"evstation/ocpp/provisioning"
	"evstation/signature"
	"evstation/types"
)

func TestSendAuthorizeDecodesResponse(t *testing.T) {
	cs, channel := newTestStation()
	channel.respond = func(requestId string, data []byte) ([]byte, error) {
		return []byte(fmt.Sprintf(`[3,%q,{"idTokenInfo":{"status":"Accepted"}}]`, requestId)), nil
	}
	response, err := cs.SendAuthorize(types.IdToken{IdToken: "TAG-1", Type: types.IdTokenTypeISO14443})
	if err != nil {
		t.Fatalf("authorize: %v", err)
	}
	if response.IdTokenInfo.Status != types.AuthorizationStatusAccepted {
		t.Errorf("status = %s, want Accepted", response.IdTokenInfo.Status)
	}
}

func TestSendRequestCallError(t *testing.T) {
	cs, channel := newTestStation()
	channel.respond = func(requestId string, data []byte) ([]byte, error) {
		return []byte(fmt.Sprintf(`[4,%q,"InternalError","boom",{}]`, requestId)), nil
	}
	_, err := cs.SendRequest(provisioning.NewHeartbeatRequest())
	if err == nil {
		t.Fatal("expected failure for a call error response")
	}
	var failure *CallFailure
	if !errors.As(err, &failure) {
		t.Fatalf("error type = %T, want *CallFailure", err)
	}
	if failure.Kind != FailureGeneric {
		t.Errorf("kind = %s, want %s", failure.Kind, FailureGeneric)
	}
	if !strings.Contains(failure.Reason, "InternalError") {
		t.Errorf("reason = %q, want the wire error code included", failure.Reason)
	}
}

func TestSendRequestUnreachable(t *testing.T) {
	cs, _ := newTestStation()
	cs.SetChannel(nil)
	_, err := cs.SendRequest(provisioning.NewHeartbeatRequest())
	var failure *CallFailure
	if !errors.As(err, &failure) {
		t.Fatalf("error type = %T, want *CallFailure", err)
	}
	if failure.Kind != FailureUnreachable {
		t.Errorf("kind = %s, want %s", failure.Kind, FailureUnreachable)
	}
	if failure.PeerId != cs.conf.Csms.Url {
		t.Errorf("peer = %s, want %s", failure.PeerId, cs.conf.Csms.Url)
	}
}

func TestSendRequestUsesOffsetIds(t *testing.T) {
	cs, channel := newTestStation()
	var gotId string
	channel.respond = func(requestId string, data []byte) ([]byte, error) {
		gotId = requestId
		return []byte(fmt.Sprintf(`[3,%q,{}]`, requestId)), nil
	}
	if _, err := cs.SendRequest(provisioning.NewHeartbeatRequest()); err != nil {
		t.Fatalf("heartbeat: %v", err)
	}
	if gotId != fmt.Sprintf("%d", requestIdOffset+1) {
		t.Errorf("request id = %s, want %d", gotId, requestIdOffset+1)
	}
}

func TestBootNotificationAdoptsInterval(t *testing.T) {
	cs, channel := newTestStation()
	serverNow := time.Now().Add(30 * time.Minute).UTC().Format("2006-01-02T15:04:05Z")
	channel.respond = func(requestId string, data []byte) ([]byte, error) {
		frame := fmt.Sprintf(`[3,%q,{"currentTime":%q,"interval":90,"status":"Accepted"}]`, requestId, serverNow)
		return []byte(frame), nil
	}
	cs.SendBootNotification()
	cs.timingMutex.Lock()
	interval := cs.heartbeatInterval
	cs.timingMutex.Unlock()
	if interval != 90*time.Second {
		t.Errorf("heartbeat interval = %s, want 90s", interval)
	}
	if cs.CurrentTime().Sub(time.Now()) < 29*time.Minute {
		t.Error("station clock not moved forward to the server time")
	}
}

func TestSendBootNotificationPayload(t *testing.T) {
	cs, channel := newTestStation()
	cs.SendBootNotification()
	if channel.sentCount() != 1 {
		t.Fatalf("sent frames = %d, want 1", channel.sentCount())
	}
	var fields []json.RawMessage
	if err := json.Unmarshal(channel.sent[0], &fields); err != nil {
		t.Fatalf("frame is not a json array: %v", err)
	}
	var action string
	if err := json.Unmarshal(fields[2], &action); err != nil {
		t.Fatalf("reading action: %v", err)
	}
	if action != provisioning.BootNotificationFeatureName {
		t.Errorf("action = %s, want BootNotification", action)
	}
	var payload struct {
		Reason          string `json:"reason"`
		ChargingStation struct {
			Model      string `json:"model"`
			VendorName string `json:"vendorName"`
		} `json:"chargingStation"`
	}
	if err := json.Unmarshal(fields[3], &payload); err != nil {
		t.Fatalf("decoding payload: %v", err)
	}
	if payload.Reason != "PowerUp" {
		t.Errorf("reason = %s, want PowerUp", payload.Reason)
	}
	if payload.ChargingStation.Model != "VSE-1" {
		t.Errorf("model = %s, want VSE-1", payload.ChargingStation.Model)
	}
}

func TestResponseReceivedEventFired(t *testing.T) {
	cs, _ := newTestStation()
	var features []string
	cs.Events().OnResponseReceived(AnyFeature, func(feature string, payload interface{}, elapsed time.Duration) {
		features = append(features, feature)
	})
	if _, err := cs.SendRequest(provisioning.NewHeartbeatRequest()); err != nil {
		t.Fatalf("heartbeat: %v", err)
	}
	if len(features) != 1 || features[0] != provisioning.HeartbeatFeatureName {
		t.Errorf("response events = %v, want [Heartbeat]", features)
	}
}

// signFailPolicy fails outbound signing only.
type signFailPolicy struct{}

func (p *signFailPolicy) Id() string { return "sign-fail" }

func (p *signFailPolicy) VerifyRequestMessage(ocpp.Request, []byte) (bool, string) {
	return true, ""
}

func (p *signFailPolicy) SignResponseMessage(ocpp.Response, []byte) (bool, string) {
	return true, ""
}

func (p *signFailPolicy) SignRequestMessage(ocpp.Request, []byte) (bool, string) {
	return false, "bad key"
}

func (p *signFailPolicy) VerifyResponseMessage(ocpp.Response, []byte) (bool, string) {
	return true, ""
}

var _ signature.Policy = (*signFailPolicy)(nil)

func TestSendRequestUnreachableBeforeSigning(t *testing.T) {
	cs, _ := newTestStation()
	cs.policies.Add(&signFailPolicy{})
	cs.SetChannel(nil)
	_, err := cs.SendRequest(provisioning.NewHeartbeatRequest())
	var failure *CallFailure
	if !errors.As(err, &failure) {
		t.Fatalf("error type = %T, want *CallFailure", err)
	}
	if failure.Kind != FailureUnreachable {
		t.Errorf("kind = %s, want %s even with a broken signing key", failure.Kind, FailureUnreachable)
	}
	if cs.queue.Size() != 1 {
		t.Errorf("queue size = %d, want the request queued regardless", cs.queue.Size())
	}
}

func TestSendRequestSigningFailure(t *testing.T) {
	cs, _ := newTestStation()
	cs.policies.Add(&signFailPolicy{})
	_, err := cs.SendRequest(provisioning.NewHeartbeatRequest())
	var failure *CallFailure
	if !errors.As(err, &failure) {
		t.Fatalf("error type = %T, want *CallFailure", err)
	}
	if failure.Kind != FailureSignature {
		t.Errorf("kind = %s, want %s", failure.Kind, FailureSignature)
	}
}
