package utility

import "encoding/json"

// ParseJson decodes a raw OCPP-J frame into its top-level array fields.
// Non-array input fails, which is what the message router relies on.
func ParseJson(b []byte) ([]interface{}, error) {
	var fields []interface{}
	if err := json.Unmarshal(b, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
