package recorder

import (
	"encoding/json"
	"fmt"
)

// SerializeFallback is recorded when a result payload cannot be
// serialized at all. The entry is still written.
const SerializeFallback = "Could not serialize result"

// SerializeResult renders an arbitrary nested result payload as JSON.
// Leaves that have no JSON representation are replaced by their string
// form; if marshaling still fails (NaN floats, cyclic data), the fixed
// fallback string is returned instead of an error.
func SerializeResult(payload interface{}) string {
	data, err := json.Marshal(sanitize(payload))
	if err != nil {
		return SerializeFallback
	}
	return string(data)
}

// sanitize walks the payload and rewrites unknown leaf types into
// strings so one odd value does not lose the whole result.
func sanitize(v interface{}) interface{} {
	switch t := v.(type) {
	case nil, bool, string,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, json.Number:
		return t
	case map[string]interface{}:
		out := make(map[string]interface{}, len(t))
		for key, val := range t {
			out[key] = sanitize(val)
		}
		return out
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, val := range t {
			out[i] = sanitize(val)
		}
		return out
	default:
		if _, err := json.Marshal(t); err != nil {
			return fmt.Sprint(t)
		}
		return t
	}
}
