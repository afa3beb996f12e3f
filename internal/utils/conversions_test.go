package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
)

func TestParseCommand(t *testing.T) {
	request, err := ParseCommand("pushat 2 40")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"command": "PUSHAT", "index": "2", "value": "40"}, request)

	request, err = ParseCommand("  PRINT ")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"command": "PRINT"}, request)

	for _, input := range []string{"", "FLIP", "POPHEAD 1", "PUSHAT 1", "GET"} {
		_, err := ParseCommand(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestToInt64(t *testing.T) {
	for _, v := range []interface{}{int(7), int8(7), int16(7), int32(7), int64(7), uint8(7), uint16(7), uint32(7), uint64(7), float64(7), " 7"} {
		n, err := ToInt64(v)
		require.NoError(t, err, "%T", v)
		assert.Equal(t, int64(7), n)
	}
	for _, v := range []interface{}{nil, 7.5, 1e20, -1e20, float64(1 << 63), "seven", uint64(1 << 63), true} {
		_, err := ToInt64(v)
		assert.Error(t, err, "%v", v)
	}
}

func TestResponseRoundTrip(t *testing.T) {
	data, err := EncodeResponse(map[string]interface{}{"status": "OK", "value": int64(300)})
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, msgpack.Unmarshal(data, &decoded))
	assert.Equal(t, "OK", decoded["status"])
	n, err := ToInt64(decoded["value"])
	require.NoError(t, err)
	assert.Equal(t, int64(300), n)
}

func TestDecodeScripts(t *testing.T) {
	yamlScript := []byte(`
- command: PUSHHEAD
  value: 5
- command: POPAT
  index: 2
`)
	requests, err := DecodeYAMLScript(yamlScript)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "PUSHHEAD", requests[0]["command"])
	assert.Equal(t, 5, requests[0]["value"])

	data, err := msgpack.Marshal([]map[string]interface{}{{"command": "POPHEAD"}, {"command": "GET", "index": 1}})
	require.NoError(t, err)
	requests, err = DecodeMsgpackScript(data)
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "GET", requests[1]["command"])

	_, err = DecodeMsgpackScript([]byte{0xc1})
	assert.Error(t, err)
}

func TestParseTextScript(t *testing.T) {
	requests, err := ParseTextScript("# scenario\nPUSHHEAD 1\n\nPOPAT 0\n")
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "POPAT", requests[1]["command"])

	_, err = ParseTextScript("PUSHHEAD 1\nBOGUS\n")
	assert.EqualError(t, err, "line 2: unknown command: BOGUS")
}
