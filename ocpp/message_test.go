package ocpp

import (
	"encoding/json"
	"testing"

	"evstation/utility"
)

type pingRequest struct {
	Token string `json:"token"`
}

func (r *pingRequest) GetFeatureName() string { return "Ping" }

type pingResponse struct {
	Status string `json:"status"`
}

func (r *pingResponse) GetFeatureName() string { return "Ping" }

func TestCallMarshal(t *testing.T) {
	call, err := CreateCall(&pingRequest{Token: "abc"}, "101")
	if err != nil {
		t.Fatalf("creating call: %v", err)
	}
	data, err := json.Marshal(call)
	if err != nil {
		t.Fatalf("marshalling call: %v", err)
	}
	want := `[2,"101","Ping",{"token":"abc"}]`
	if string(data) != want {
		t.Errorf("frame = %s, want %s", string(data), want)
	}
}

func TestCallRequiresRequest(t *testing.T) {
	if _, err := CreateCall(nil, "101"); err == nil {
		t.Error("expected error for nil request")
	}
}

func TestCallResultMarshal(t *testing.T) {
	result, err := CreateCallResult(&pingResponse{Status: "Accepted"}, "102")
	if err != nil {
		t.Fatalf("creating call result: %v", err)
	}
	data, err := json.Marshal(result)
	if err != nil {
		t.Fatalf("marshalling call result: %v", err)
	}
	want := `[3,"102",{"status":"Accepted"}]`
	if string(data) != want {
		t.Errorf("frame = %s, want %s", string(data), want)
	}
}

func TestCallErrorMarshal(t *testing.T) {
	data, err := json.Marshal(CreateCallError("103", NotSupportedError, "FluxCapacitor"))
	if err != nil {
		t.Fatalf("marshalling call error: %v", err)
	}
	want := `[4,"103","NotSupported","FluxCapacitor",{}]`
	if string(data) != want {
		t.Errorf("frame = %s, want %s", string(data), want)
	}
}

func TestMessageType(t *testing.T) {
	fields, err := utility.ParseJson([]byte(`[2,"1","Reset",{}]`))
	if err != nil {
		t.Fatalf("parsing frame: %v", err)
	}
	callType, err := MessageType(fields)
	if err != nil {
		t.Fatalf("reading message type: %v", err)
	}
	if callType != CallTypeRequest {
		t.Errorf("call type = %v, want %v", callType, CallTypeRequest)
	}
}

func TestMessageTypeTooShort(t *testing.T) {
	if _, err := MessageType([]interface{}{2.0, "1"}); err == nil {
		t.Error("expected error for a short frame")
	}
}

func TestParseRawCall(t *testing.T) {
	fields, _ := utility.ParseJson([]byte(`[2,"19223201","Reset",{"type":"Immediate"}]`))
	rawCall, err := ParseRawCall(fields)
	if err != nil {
		t.Fatalf("parsing call: %v", err)
	}
	if rawCall.UniqueId != "19223201" {
		t.Errorf("unique id = %s, want 19223201", rawCall.UniqueId)
	}
	if rawCall.Action != "Reset" {
		t.Errorf("action = %s, want Reset", rawCall.Action)
	}
}

func TestParseRawCallBadUniqueId(t *testing.T) {
	fields, _ := utility.ParseJson([]byte(`[2,42,"Reset",{}]`))
	if _, err := ParseRawCall(fields); err == nil {
		t.Error("expected error for a numeric unique id")
	}
}

func TestParseRawError(t *testing.T) {
	fields, _ := utility.ParseJson([]byte(`[4,"7","NotSupported","FluxCapacitor",{}]`))
	rawError, err := ParseRawError(fields)
	if err != nil {
		t.Fatalf("parsing error frame: %v", err)
	}
	if rawError.ErrorCode != NotSupportedError {
		t.Errorf("error code = %s, want NotSupported", rawError.ErrorCode)
	}
}
