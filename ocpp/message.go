package ocpp

import (
	"encoding/json"
	"evstation/utility"
	"fmt"
)

type CallType int

const (
	CallTypeRequest CallType = 2
	CallTypeResult  CallType = 3
	CallTypeError   CallType = 4
)

// Protocol-level error codes used in CALLERROR frames.
const (
	FormationViolationError = "FormationViolation"
	NotSupportedError       = "NotSupported"
	SecurityError           = "SecurityError"
	InternalError           = "InternalError"
)

// Call An OCPP-J CALL message, containing an OCPP Request.
type Call struct {
	TypeId   CallType
	UniqueId string
	Action   string
	Payload  Request
}

func (call *Call) MarshalJSON() ([]byte, error) {
	fields := make([]interface{}, 4)
	fields[0] = int(call.TypeId)
	fields[1] = call.UniqueId
	fields[2] = call.Action
	fields[3] = call.Payload
	return json.Marshal(fields)
}

func CreateCall(request Request, uniqueId string) (*Call, error) {
	if request == nil {
		return nil, utility.Err("cannot create call with empty request")
	}
	call := Call{
		TypeId:   CallTypeRequest,
		UniqueId: uniqueId,
		Action:   request.GetFeatureName(),
		Payload:  request,
	}
	return &call, nil
}

// CallResult An OCPP-J CALLRESULT message, containing an OCPP Response.
type CallResult struct {
	TypeId   CallType
	UniqueId string
	Payload  Response
}

func (callResult *CallResult) MarshalJSON() ([]byte, error) {
	fields := make([]interface{}, 3)
	fields[0] = int(callResult.TypeId)
	fields[1] = callResult.UniqueId
	fields[2] = callResult.Payload
	return json.Marshal(fields)
}

func CreateCallResult(response Response, uniqueId string) (*CallResult, error) {
	callResult := CallResult{
		TypeId:   CallTypeResult,
		UniqueId: uniqueId,
		Payload:  response,
	}
	return &callResult, nil
}

// CallError An OCPP-J CALLERROR message.
type CallError struct {
	TypeId           CallType
	UniqueId         string
	ErrorCode        string
	ErrorDescription string
	ErrorDetails     interface{}
}

func (callError *CallError) MarshalJSON() ([]byte, error) {
	fields := make([]interface{}, 5)
	fields[0] = int(callError.TypeId)
	fields[1] = callError.UniqueId
	fields[2] = callError.ErrorCode
	fields[3] = callError.ErrorDescription
	if callError.ErrorDetails == nil {
		fields[4] = struct{}{}
	} else {
		fields[4] = callError.ErrorDetails
	}
	return json.Marshal(fields)
}

func CreateCallError(uniqueId, code, description string) *CallError {
	return &CallError{
		TypeId:           CallTypeError,
		UniqueId:         uniqueId,
		ErrorCode:        code,
		ErrorDescription: description,
	}
}

// MessageType reads the call type id from a decoded OCPP-J array.
func MessageType(fields []interface{}) (CallType, error) {
	if len(fields) < 3 {
		return 0, utility.Err("incompatible message structure")
	}
	rawTypeId, ok := fields[0].(float64)
	if !ok {
		return 0, utility.Err("invalid message type id")
	}
	return CallType(rawTypeId), nil
}

// RawCall An inbound CALL before payload decoding; the payload stays raw until
// the dispatch table selects the concrete request type.
type RawCall struct {
	UniqueId string
	Action   string
	Payload  interface{}
}

func ParseRawCall(fields []interface{}) (*RawCall, error) {
	if len(fields) != 4 {
		return nil, utility.Err("unsupported request format; expected length: 4 elements")
	}
	uniqueId, ok := fields[1].(string)
	if !ok {
		return nil, utility.Err("invalid message unique id in request")
	}
	action, ok := fields[2].(string)
	if !ok {
		return nil, utility.Err("invalid action in request")
	}
	return &RawCall{UniqueId: uniqueId, Action: action, Payload: fields[3]}, nil
}

// RawResult An inbound CALLRESULT before payload decoding.
type RawResult struct {
	UniqueId string
	Payload  interface{}
}

func ParseRawResult(fields []interface{}) (*RawResult, error) {
	if len(fields) < 3 {
		return nil, utility.Err("unsupported result format; expected length: 3 elements")
	}
	uniqueId, ok := fields[1].(string)
	if !ok {
		return nil, utility.Err("invalid message unique id in result")
	}
	return &RawResult{UniqueId: uniqueId, Payload: fields[2]}, nil
}

// RawError An inbound CALLERROR.
type RawError struct {
	UniqueId         string
	ErrorCode        string
	ErrorDescription string
}

func ParseRawError(fields []interface{}) (*RawError, error) {
	if len(fields) < 4 {
		return nil, utility.Err("unsupported error format; expected length: 4 elements")
	}
	uniqueId, ok := fields[1].(string)
	if !ok {
		return nil, utility.Err("invalid message unique id in error")
	}
	code := fmt.Sprintf("%v", fields[2])
	description := fmt.Sprintf("%v", fields[3])
	return &RawError{UniqueId: uniqueId, ErrorCode: code, ErrorDescription: description}, nil
}
