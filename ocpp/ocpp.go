package ocpp

import (
	"encoding/json"
	"reflect"
)

// Request message
type Request interface {
	// GetFeatureName Returns the unique name of the feature, to which this request belongs to.
	GetFeatureName() string
}

// Response message
type Response interface {
	// GetFeatureName Returns the unique name of the feature, to which this request belongs to.
	GetFeatureName() string
}

// ParseRawJsonPayload decodes a raw OCPP-J payload element into the given concrete type.
func ParseRawJsonPayload(raw interface{}, payloadType reflect.Type) (interface{}, error) {
	if raw == nil {
		raw = &struct{}{}
	}
	bytes, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	payload := reflect.New(payloadType).Interface()
	err = json.Unmarshal(bytes, &payload)
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// ParseRawJsonRequest decodes a raw OCPP-J payload element into a concrete Request.
func ParseRawJsonRequest(raw interface{}, requestType reflect.Type) (Request, error) {
	payload, err := ParseRawJsonPayload(raw, requestType)
	if err != nil {
		return nil, err
	}
	result := payload.(Request)
	return result, nil
}

// ParseRawJsonResponse decodes a raw OCPP-J payload element into a concrete Response.
func ParseRawJsonResponse(raw interface{}, responseType reflect.Type) (Response, error) {
	payload, err := ParseRawJsonPayload(raw, responseType)
	if err != nil {
		return nil, err
	}
	result := payload.(Response)
	return result, nil
}
