package recorder

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSerializeResult_WhenNestedPayload_ThenValidJSON(t *testing.T) {
	payload := map[string]interface{}{
		"changed": true,
		"rc":      0,
		"stdout_lines": []interface{}{
			"line one",
			"line two",
		},
		"invocation": map[string]interface{}{
			"module_args": map[string]interface{}{
				"name":  "nginx",
				"state": "present",
			},
		},
	}

	serialized := SerializeResult(payload)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(serialized), &decoded))
	assert.Equal(t, true, decoded["changed"])
	assert.Len(t, decoded["stdout_lines"], 2)
}

func TestSerializeResult_WhenUnknownLeafType_ThenFallsBackToString(t *testing.T) {
	payload := map[string]interface{}{
		"msg":    "ok",
		"handle": make(chan int), // no JSON representation
	}

	serialized := SerializeResult(payload)

	require.NotEqual(t, SerializeFallback, serialized)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(serialized), &decoded))
	assert.Equal(t, "ok", decoded["msg"])
	// The leaf is preserved as its string form, not dropped.
	assert.IsType(t, "", decoded["handle"])
}

func TestSerializeResult_WhenUnserializable_ThenPlaceholder(t *testing.T) {
	// NaN survives sanitization as a float64 but has no JSON encoding,
	// so marshaling the whole payload fails.
	payload := map[string]interface{}{
		"duration": math.NaN(),
	}

	assert.Equal(t, SerializeFallback, SerializeResult(payload))
}

func TestSerializeResult_WhenNil_ThenNullLiteral(t *testing.T) {
	assert.Equal(t, "null", SerializeResult(nil))
}
