package utils

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"
)

// argCounts lists the arguments each text command takes, in order.
var argCounts = map[string][]string{
	"PING":     nil,
	"PUSHHEAD": {"value"},
	"PUSHTAIL": {"value"},
	"POPHEAD":  nil,
	"POPTAIL":  nil,
	"PUSHAT":   {"index", "value"},
	"POPAT":    {"index"},
	"GET":      {"index"},
	"SET":      {"index", "value"},
	"SIZE":     nil,
	"CLEAR":    nil,
	"PRINT":    nil,
	"DUMP":     nil,
}

// ParseCommand parses and validates a text command such as "PUSHAT 2 40"
// into a request map.
func ParseCommand(input string) (map[string]interface{}, error) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return nil, fmt.Errorf("no command entered")
	}

	command := strings.ToUpper(parts[0])
	args, ok := argCounts[command]
	if !ok {
		return nil, fmt.Errorf("unknown command: %s", command)
	}
	if len(parts)-1 != len(args) {
		if len(args) == 0 {
			return nil, fmt.Errorf("%s does not require any arguments", command)
		}
		return nil, fmt.Errorf("%s requires %s", command, strings.Join(args, " and "))
	}

	request := map[string]interface{}{
		"command": command,
	}
	for i, name := range args {
		request[name] = parts[i+1]
	}
	return request, nil
}

// ToInt64 converts any integer type produced by the msgpack, yaml or
// json decoders, or a numeric string, to int64.
func ToInt64(v interface{}) (int64, error) {
	switch n := v.(type) {
	case int:
		return int64(n), nil
	case int8:
		return int64(n), nil
	case int16:
		return int64(n), nil
	case int32:
		return int64(n), nil
	case int64:
		return n, nil
	case uint8:
		return int64(n), nil
	case uint16:
		return int64(n), nil
	case uint32:
		return int64(n), nil
	case uint64:
		if n > math.MaxInt64 {
			return 0, fmt.Errorf("integer %d overflows int64", n)
		}
		return int64(n), nil
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("%v is not an integer", n)
		}
		// 2^63 is exactly representable; MaxInt64 is not.
		if n < math.MinInt64 || n >= 1<<63 {
			return 0, fmt.Errorf("%v overflows int64", n)
		}
		return int64(n), nil
	case string:
		return strconv.ParseInt(strings.TrimSpace(n), 10, 64)
	case nil:
		return 0, errors.New("missing integer")
	default:
		return 0, fmt.Errorf("invalid integer type %T", v)
	}
}

// EncodeResponse serializes a response map into a byte slice
func EncodeResponse(response map[string]interface{}) ([]byte, error) {
	return msgpack.Marshal(response)
}

// DecodeMsgpackScript deserializes a msgpack array of request maps.
func DecodeMsgpackScript(data []byte) ([]map[string]interface{}, error) {
	var requests []map[string]interface{}
	if err := msgpack.Unmarshal(data, &requests); err != nil {
		return nil, fmt.Errorf("decode msgpack script: %w", err)
	}
	return requests, nil
}

// DecodeYAMLScript deserializes a YAML sequence of request maps.
func DecodeYAMLScript(data []byte) ([]map[string]interface{}, error) {
	var requests []map[string]interface{}
	if err := yaml.Unmarshal(data, &requests); err != nil {
		return nil, fmt.Errorf("decode yaml script: %w", err)
	}
	return requests, nil
}

// ParseTextScript parses one text command per line. Blank lines and lines
// starting with '#' are skipped.
func ParseTextScript(data string) ([]map[string]interface{}, error) {
	var requests []map[string]interface{}
	for n, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		request, err := ParseCommand(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		requests = append(requests, request)
	}
	return requests, nil
}
