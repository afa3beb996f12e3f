package core

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/vskvj3/dlist/internal/datastructures"
	"github.com/vskvj3/dlist/internal/utils"
)

// CommandHandler executes list commands against a single list.
// It is not safe for concurrent use.
type CommandHandler struct {
	List   *datastructures.List[int64]
	Logger *utils.Logger
}

// Create a new CommandHandler instance
func NewCommandHandler(list *datastructures.List[int64], logger *utils.Logger) *CommandHandler {
	return &CommandHandler{List: list, Logger: logger}
}

// HandleCommand processes a request and returns the response to send back
func (h *CommandHandler) HandleCommand(request map[string]interface{}) (map[string]interface{}, error) {
	command, ok := request["command"].(string)
	if !ok {
		return nil, errors.New("invalid or missing 'command' field")
	}
	command = strings.ToUpper(command)

	switch command {
	case "PING":
		return map[string]interface{}{"status": "OK", "message": "PONG"}, nil

	case "PUSHHEAD", "PUSHTAIL":
		value, err := intField(request, command, "value")
		if err != nil {
			return nil, err
		}
		if command == "PUSHHEAD" {
			h.List.PushHead(value)
		} else {
			h.List.PushTail(value)
		}
		h.debugf("%s %d", command, value)
		return map[string]interface{}{"status": "OK", "size": h.List.Len()}, nil

	case "POPHEAD", "POPTAIL":
		var popped datastructures.Option[int64]
		if command == "POPHEAD" {
			popped = h.List.PopHead()
		} else {
			popped = h.List.PopTail()
		}
		value, ok := popped.Get()
		if !ok {
			return map[string]interface{}{"status": "EMPTY"}, nil
		}
		h.debugf("%s -> %d", command, value)
		return map[string]interface{}{"status": "OK", "value": value}, nil

	case "PUSHAT":
		index, err := indexField(request, command)
		if err != nil {
			return nil, err
		}
		value, err := intField(request, command, "value")
		if err != nil {
			return nil, err
		}
		if err := h.List.PushAt(index, value); err != nil {
			return nil, err
		}
		h.debugf("PUSHAT %d %d", index, value)
		return map[string]interface{}{"status": "OK", "size": h.List.Len()}, nil

	case "POPAT":
		index, err := indexField(request, command)
		if err != nil {
			return nil, err
		}
		value, err := h.List.PopAt(index)
		if err != nil {
			return nil, err
		}
		h.debugf("POPAT %d -> %d", index, value)
		return map[string]interface{}{"status": "OK", "value": value}, nil

	case "GET":
		index, err := indexField(request, command)
		if err != nil {
			return nil, err
		}
		value, err := h.List.At(index)
		if err != nil {
			return nil, err
		}
		return map[string]interface{}{"status": "OK", "value": value}, nil

	case "SET":
		index, err := indexField(request, command)
		if err != nil {
			return nil, err
		}
		value, err := intField(request, command, "value")
		if err != nil {
			return nil, err
		}
		old, err := h.set(index, value)
		if err != nil {
			return nil, err
		}
		h.debugf("SET %d %d (was %d)", index, value, old)
		return map[string]interface{}{"status": "OK", "value": old}, nil

	case "SIZE":
		return map[string]interface{}{"status": "OK", "value": h.List.Size()}, nil

	case "CLEAR":
		h.List.Clear()
		h.debugf("CLEAR")
		return map[string]interface{}{"status": "OK"}, nil

	case "PRINT":
		return map[string]interface{}{"status": "OK", "message": h.List.String()}, nil

	case "DUMP":
		return map[string]interface{}{"status": "OK", "values": h.List.Values()}, nil

	default:
		return nil, fmt.Errorf("unknown command: %s", command)
	}
}

// set replaces the value at index by popping it and pushing the new one
// in its place.
func (h *CommandHandler) set(index int, value int64) (int64, error) {
	old, err := h.List.PopAt(index)
	if err != nil {
		return 0, err
	}
	if err := h.List.PushAt(index, value); err != nil {
		return 0, err
	}
	return old, nil
}

func (h *CommandHandler) debugf(format string, args ...interface{}) {
	if h.Logger != nil {
		h.Logger.Debugf(format, args...)
	}
}

// ErrorResponse builds the response sent for a failed command
func ErrorResponse(err error) map[string]interface{} {
	return map[string]interface{}{"status": "ERROR", "message": err.Error()}
}

func intField(request map[string]interface{}, command, name string) (int64, error) {
	raw, ok := request[name]
	if !ok {
		return 0, fmt.Errorf("%s requires a '%s' field", command, name)
	}
	n, err := utils.ToInt64(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid '%s': %w", command, name, err)
	}
	return n, nil
}

func indexField(request map[string]interface{}, command string) (int, error) {
	n, err := intField(request, command, "index")
	if err != nil {
		return 0, err
	}
	if n < math.MinInt || n > math.MaxInt {
		return 0, fmt.Errorf("%s: index %d: %w", command, n, datastructures.ErrIndexOutOfRange)
	}
	return int(n), nil
}
