// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/decred/secp256k1ops/dispatch"
	flags "github.com/jessevdk/go-flags"
)

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
	os.Exit(1)
}

func usage(parser *flags.Parser) {
	parser.WriteHelp(os.Stderr)
	os.Exit(2)
}

type config struct {
	Format     string `short:"f" long:"format" description:"encoding of returned buffers (one of: hex, bytes)"`
	DebugLevel string `short:"d" long:"debuglevel" description:"logging level for all subsystems {trace, debug, info, warn, error, critical} -- You may also specify <subsystem>=<level>,<subsystem>=<level>,... to set the log level for individual subsystems -- Use show to list available subsystems"`
	JSON       bool   `short:"j" long:"json" description:"read a {\"method\":..., \"params\":{...}} request from stdin"`
	Methods    bool   `short:"l" long:"methods" description:"list the supported methods and exit"`
}

// parseParam parses a name=value command line argument.  Values that are JSON
// literals are used as is and anything else is treated as a string.
func parseParam(arg string) (string, json.RawMessage, error) {
	name, value, ok := strings.Cut(arg, "=")
	if !ok || name == "" {
		return "", nil, fmt.Errorf("parameter %q is not of the form "+
			"name=value", arg)
	}
	switch value {
	case "true", "false", "null":
		return name, json.RawMessage(value), nil
	}
	quoted, err := json.Marshal(value)
	if err != nil {
		return "", nil, err
	}
	return name, quoted, nil
}

// readRequest builds the request from the remaining command line arguments or
// from r when cfg.JSON is set.
func readRequest(cfg *config, args []string, r io.Reader) (*dispatch.Request, error) {
	var req dispatch.Request
	if cfg.JSON {
		if len(args) != 0 {
			return nil, errors.New("no arguments may be given with --json")
		}
		if err := json.NewDecoder(r).Decode(&req); err != nil {
			return nil, fmt.Errorf("decode request: %w", err)
		}
	} else {
		if len(args) == 0 {
			return nil, errors.New("no method specified")
		}
		req.Method = args[0]
		req.Params = make(map[string]json.RawMessage, len(args)-1)
		for _, arg := range args[1:] {
			name, value, err := parseParam(arg)
			if err != nil {
				return nil, err
			}
			req.Params[name] = value
		}
	}
	if req.Params == nil {
		req.Params = make(map[string]json.RawMessage)
	}

	// Apply the configured output format to methods that return buffers
	// unless the request selects one itself.
	if _, ok := req.Params["format"]; !ok && dispatch.AcceptsOption(req.Method, "format") {
		quoted, err := json.Marshal(cfg.Format)
		if err != nil {
			return nil, err
		}
		req.Params["format"] = quoted
	}
	return &req, nil
}

func main() {
	cfg := config{
		Format:     "hex",
		DebugLevel: "info",
	}
	parser := flags.NewParser(&cfg, flags.Default)
	parser.Usage = "[OPTIONS] method [name=value ...]"
	args, err := parser.Parse()
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			if e.Type != flags.ErrHelp {
				os.Exit(1)
			}
			os.Exit(0)
		}
		os.Exit(1)
	}

	if cfg.DebugLevel == "show" {
		fmt.Println("Supported subsystems", supportedSubsystems())
		os.Exit(0)
	}
	if err := parseAndSetDebugLevels(cfg.DebugLevel); err != nil {
		fatalf("%v\n", err)
	}

	if cfg.Methods {
		for _, method := range dispatch.Methods() {
			fmt.Println(method)
		}
		os.Exit(0)
	}

	switch cfg.Format {
	case "hex", "bytes":
	default:
		fmt.Fprintf(os.Stderr, "unknown format %q\n", cfg.Format)
		usage(parser)
	}

	req, err := readRequest(&cfg, args, os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		usage(parser)
	}
	log.Debugf("Dispatching %s with %d parameters", req.Method, len(req.Params))

	result, err := dispatch.Call(req)
	if err != nil {
		fatalf("%s: %v\n", req.Method, err)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(result); err != nil {
		fatalf("encode result: %v\n", err)
	}
}
