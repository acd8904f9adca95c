package station

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"evstation/ocpp"
	"evstation/signature"
)

// decodeFrame splits a wire frame into message type, unique id and the
// remaining fields.
func decodeFrame(t *testing.T, data []byte) (int, string, []json.RawMessage) {
	t.Helper()
	var fields []json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("frame is not a json array: %v", err)
	}
	if len(fields) < 3 {
		t.Fatalf("frame too short: %s", string(data))
	}
	var messageType int
	if err := json.Unmarshal(fields[0], &messageType); err != nil {
		t.Fatalf("reading message type: %v", err)
	}
	var uniqueId string
	if err := json.Unmarshal(fields[1], &uniqueId); err != nil {
		t.Fatalf("reading unique id: %v", err)
	}
	return messageType, uniqueId, fields[2:]
}

func TestHandleIncomingReset(t *testing.T) {
	cs, channel := newTestStation()
	frame := []byte(`[2,"19223201","Reset",{"type":"Immediate"}]`)
	if err := cs.HandleIncomingMessage(frame); err != nil {
		t.Fatalf("handling reset: %v", err)
	}
	messageType, uniqueId, rest := decodeFrame(t, channel.lastWritten())
	if messageType != 3 {
		t.Errorf("message type = %d, want 3", messageType)
	}
	if uniqueId != "19223201" {
		t.Errorf("unique id = %s, want 19223201", uniqueId)
	}
	var payload map[string]interface{}
	if err := json.Unmarshal(rest[0], &payload); err != nil {
		t.Fatalf("decoding payload: %v", err)
	}
	if payload["status"] != "Accepted" {
		t.Errorf("status = %v, want Accepted", payload["status"])
	}
}

func TestHandleIncomingUnknownAction(t *testing.T) {
	cs, channel := newTestStation()
	frame := []byte(`[2,"42","FluxCapacitor",{}]`)
	if err := cs.HandleIncomingMessage(frame); err != nil {
		t.Fatalf("handling unknown action: %v", err)
	}
	messageType, uniqueId, rest := decodeFrame(t, channel.lastWritten())
	if messageType != 4 {
		t.Fatalf("message type = %d, want 4", messageType)
	}
	if uniqueId != "42" {
		t.Errorf("unique id = %s, want 42", uniqueId)
	}
	var code string
	if err := json.Unmarshal(rest[0], &code); err != nil {
		t.Fatalf("reading error code: %v", err)
	}
	if code != ocpp.NotSupportedError {
		t.Errorf("error code = %s, want %s", code, ocpp.NotSupportedError)
	}
}

func TestHandleIncomingMalformedPayload(t *testing.T) {
	cs, channel := newTestStation()
	frame := []byte(`[2,"7","Reset",{"type":13}]`)
	if err := cs.HandleIncomingMessage(frame); err != nil {
		t.Fatalf("handling malformed payload: %v", err)
	}
	messageType, _, rest := decodeFrame(t, channel.lastWritten())
	if messageType != 4 {
		t.Fatalf("message type = %d, want 4", messageType)
	}
	var code string
	if err := json.Unmarshal(rest[0], &code); err != nil {
		t.Fatalf("reading error code: %v", err)
	}
	if code != ocpp.FormationViolationError {
		t.Errorf("error code = %s, want %s", code, ocpp.FormationViolationError)
	}
}

func TestHandleIncomingNotAnArray(t *testing.T) {
	cs, _ := newTestStation()
	if err := cs.HandleIncomingMessage([]byte(`{"action":"Reset"}`)); err == nil {
		t.Error("expected error for a non-array frame")
	}
}

func TestHandleIncomingResultFrameRejected(t *testing.T) {
	cs, _ := newTestStation()
	if err := cs.HandleIncomingMessage([]byte(`[3,"1",{}]`)); err == nil {
		t.Error("expected error for an unsolicited call result")
	}
}

// rejectingPolicy fails every inbound verification.
type rejectingPolicy struct{}

func (p *rejectingPolicy) Id() string { return "reject-all" }

func (p *rejectingPolicy) VerifyRequestMessage(ocpp.Request, []byte) (bool, string) {
	return false, "key mismatch"
}

func (p *rejectingPolicy) SignResponseMessage(ocpp.Response, []byte) (bool, string) {
	return true, ""
}

func (p *rejectingPolicy) SignRequestMessage(ocpp.Request, []byte) (bool, string) {
	return true, ""
}

func (p *rejectingPolicy) VerifyResponseMessage(ocpp.Response, []byte) (bool, string) {
	return true, ""
}

var _ signature.Policy = (*rejectingPolicy)(nil)

func TestSignatureGateSkipsBusinessLogic(t *testing.T) {
	cs, channel := newTestStation()
	cs.Policies().Add(&rejectingPolicy{})

	frame := []byte(`[2,"77","RequestStartTransaction",` +
		`{"evseId":1,"remoteStartId":5,"idToken":{"idToken":"TAG-1","type":"ISO14443"}}]`)
	if err := cs.HandleIncomingMessage(frame); err != nil {
		t.Fatalf("handling request: %v", err)
	}

	messageType, _, rest := decodeFrame(t, channel.lastWritten())
	if messageType != 3 {
		t.Fatalf("rejected request still answers with a call result, got type %d", messageType)
	}
	var payload struct {
		Status     string `json:"status"`
		StatusInfo struct {
			ReasonCode     string `json:"reasonCode"`
			AdditionalInfo string `json:"additionalInfo"`
		} `json:"statusInfo"`
	}
	if err := json.Unmarshal(rest[0], &payload); err != nil {
		t.Fatalf("decoding payload: %v", err)
	}
	if payload.Status != "Rejected" {
		t.Errorf("status = %s, want Rejected", payload.Status)
	}
	if payload.StatusInfo.ReasonCode != ocpp.SecurityError {
		t.Errorf("reason code = %s, want %s", payload.StatusInfo.ReasonCode, ocpp.SecurityError)
	}
	if !strings.HasPrefix(payload.StatusInfo.AdditionalInfo, "Invalid signature:") {
		t.Errorf("additional info = %q, want Invalid signature prefix", payload.StatusInfo.AdditionalInfo)
	}
	if cs.Handler().EVSE(1).Charging() {
		t.Error("rejected request must not start a transaction")
	}
}

func TestRequestIdOffset(t *testing.T) {
	generator := NewRequestIdGenerator()
	if got, want := generator.Next(), fmt.Sprintf("%d", requestIdOffset+1); got != want {
		t.Errorf("first id = %s, want %s", got, want)
	}
	if got, want := generator.Next(), fmt.Sprintf("%d", requestIdOffset+2); got != want {
		t.Errorf("second id = %s, want %s", got, want)
	}
}

func TestRequestQueueRequeueOrder(t *testing.T) {
	queue := NewRequestQueue()
	queue.Enqueue(&EnqueuedRequest{UniqueId: "a"})
	queue.Enqueue(&EnqueuedRequest{UniqueId: "b"})
	pending := queue.TakeAll()
	if len(pending) != 2 || queue.Size() != 0 {
		t.Fatalf("TakeAll must empty the queue, got %d pending, %d left", len(pending), queue.Size())
	}
	queue.Enqueue(&EnqueuedRequest{UniqueId: "c"})
	queue.Requeue(pending[:1])
	refilled := queue.TakeAll()
	if len(refilled) != 2 || refilled[0].UniqueId != "a" || refilled[1].UniqueId != "c" {
		t.Errorf("requeued entries must come first, got %v", ids(refilled))
	}
}

func ids(requests []*EnqueuedRequest) []string {
	list := make([]string, 0, len(requests))
	for _, r := range requests {
		list = append(list, r.UniqueId)
	}
	return list
}
