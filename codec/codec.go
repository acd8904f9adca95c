// Package codec produces the canonical byte form of a protocol payload.
// The bytes are used only as input for signing and verification, never
// sent on the wire.
package codec

import (
	"encoding/json"
	"fmt"
)

type Codec interface {
	Encode(entity interface{}) ([]byte, error)
}

// JsonCodec encodes payloads as compact JSON. Map keys are emitted in
// sorted order by encoding/json, which keeps the output stable for
// signature input.
type JsonCodec struct{}

func NewJsonCodec() *JsonCodec {
	return &JsonCodec{}
}

func (c *JsonCodec) Encode(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("encode payload: %w", err)
	}
	return data, nil
}
