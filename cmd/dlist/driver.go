package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vskvj3/dlist/internal/core"
	"github.com/vskvj3/dlist/internal/utils"
)

// Driver feeds requests to a CommandHandler and writes the responses.
type Driver struct {
	handler *core.CommandHandler
	logger  *utils.Logger
	out     io.Writer
	output  string
}

func NewDriver(handler *core.CommandHandler, logger *utils.Logger, out io.Writer, output string) *Driver {
	return &Driver{handler: handler, logger: logger, out: out, output: output}
}

// demoScript reproduces the walkthrough of the list operations.
const demoScript = `
PUSHHEAD 1
PUSHHEAD 2
PUSHHEAD 3
PUSHHEAD 4
PUSHHEAD 5
PUSHTAIL 10
PUSHTAIL 11
PUSHTAIL 12
PRINT
PUSHAT 0 99
PRINT
POPAT 2
PRINT
GET 4
`

// RunDemo runs the built-in walkthrough.
func (d *Driver) RunDemo() error {
	requests, err := utils.ParseTextScript(demoScript)
	if err != nil {
		return err
	}
	return d.run(requests)
}

// RunScriptFile loads requests from path, choosing the decoder by extension.
func (d *Driver) RunScriptFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read script: %w", err)
	}

	var requests []map[string]interface{}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		requests, err = utils.DecodeYAMLScript(data)
	case ".msgpack", ".mp":
		requests, err = utils.DecodeMsgpackScript(data)
	default:
		requests, err = utils.ParseTextScript(string(data))
	}
	if err != nil {
		return err
	}
	return d.run(requests)
}

// RunInteractive reads one command per line until EOF.
func (d *Driver) RunInteractive(in io.Reader) error {
	fmt.Fprintln(d.out, "Type commands (e.g., PUSHHEAD 5, POPAT 2, GET 0, PRINT) and press Enter.")
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(d.out, ">> ")
		if !scanner.Scan() {
			fmt.Fprintln(d.out)
			return scanner.Err()
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		request, err := utils.ParseCommand(input)
		if err != nil {
			d.logger.Debug("Rejected input: " + err.Error())
			fmt.Fprintln(d.out, "Error:", err)
			continue
		}
		if err := d.execute(request); err != nil {
			return err
		}
	}
}

// run executes requests in order. Command failures are reported as
// responses; only output failures stop the run.
func (d *Driver) run(requests []map[string]interface{}) error {
	for _, request := range requests {
		if err := d.execute(request); err != nil {
			return err
		}
	}
	return nil
}

func (d *Driver) execute(request map[string]interface{}) error {
	response, err := d.handler.HandleCommand(request)
	if err != nil {
		d.logger.Warn(fmt.Sprintf("Command %v failed: %v", request["command"], err))
		response = core.ErrorResponse(err)
	}
	return d.writeResponse(response)
}

func (d *Driver) writeResponse(response map[string]interface{}) error {
	if d.output == utils.OutputMsgpack {
		data, err := utils.EncodeResponse(response)
		if err != nil {
			return fmt.Errorf("encode response: %w", err)
		}
		_, err = d.out.Write(data)
		return err
	}

	var err error
	switch response["status"] {
	case "OK":
		if message, ok := response["message"].(string); ok {
			_, err = fmt.Fprint(d.out, strings.TrimSuffix(message, "\n")+"\n")
		} else if value, ok := response["value"]; ok {
			_, err = fmt.Fprintln(d.out, value)
		} else if size, ok := response["size"]; ok {
			_, err = fmt.Fprintf(d.out, "OK (size %v)\n", size)
		} else if values, ok := response["values"]; ok {
			_, err = fmt.Fprintln(d.out, values)
		} else {
			_, err = fmt.Fprintln(d.out, "OK")
		}
	case "EMPTY":
		_, err = fmt.Fprintln(d.out, "(empty)")
	case "ERROR":
		_, err = fmt.Fprintln(d.out, "Error:", response["message"])
	default:
		_, err = fmt.Fprintln(d.out, "Unexpected response:", response)
	}
	return err
}
