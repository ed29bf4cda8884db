// Copyright (c) 2026 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/decred/secp256k1ops"
	"github.com/decred/secp256k1ops/compat"
	"github.com/decred/secp256k1ops/dispatch"
	"github.com/decred/slog"
)

// backendLog is the logging backend used to create all subsystem loggers.
// Logs are written to standard error so they never mix with results.
var backendLog = slog.NewBackend(os.Stderr)

// Loggers per subsystem.
var (
	log     = backendLog.Logger("MAIN")
	opsLog  = backendLog.Logger("OPS")
	cmptLog = backendLog.Logger("CMPT")
	dsptLog = backendLog.Logger("DSPT")
)

// Initialize package-global logger variables.
func init() {
	secp256k1ops.UseLogger(opsLog)
	compat.UseLogger(cmptLog)
	dispatch.UseLogger(dsptLog)
}

// subsystemLoggers maps each subsystem identifier to its associated logger.
var subsystemLoggers = map[string]slog.Logger{
	"MAIN": log,
	"OPS":  opsLog,
	"CMPT": cmptLog,
	"DSPT": dsptLog,
}

// supportedSubsystems returns a sorted slice of the supported subsystems for
// logging purposes.
func supportedSubsystems() []string {
	subsystems := make([]string, 0, len(subsystemLoggers))
	for subsysID := range subsystemLoggers {
		subsystems = append(subsystems, subsysID)
	}
	sort.Strings(subsystems)
	return subsystems
}

// setLogLevels sets the log level for all subsystem loggers to the passed
// level.
func setLogLevels(level slog.Level) {
	for _, logger := range subsystemLoggers {
		logger.SetLevel(level)
	}
}

// parseAndSetDebugLevels attempts to parse the specified debug level and set
// the levels accordingly.  An appropriate error is returned if anything is
// invalid.
//
// The level is either a single level that applies to all subsystems or a
// comma-separated list of subsystem=level pairs.
func parseAndSetDebugLevels(debugLevel string) error {
	if !strings.Contains(debugLevel, "=") {
		level, ok := slog.LevelFromString(debugLevel)
		if !ok {
			return fmt.Errorf("the specified debug level [%v] is invalid",
				debugLevel)
		}
		setLogLevels(level)
		return nil
	}

	for _, pair := range strings.Split(debugLevel, ",") {
		fields := strings.Split(pair, "=")
		if len(fields) != 2 {
			return fmt.Errorf("the specified debug level contains an "+
				"invalid subsystem/level pair [%v]", pair)
		}
		subsysID, logLevel := fields[0], fields[1]

		logger, ok := subsystemLoggers[subsysID]
		if !ok {
			return fmt.Errorf("the specified subsystem [%v] is invalid -- "+
				"supported subsystems %v", subsysID, supportedSubsystems())
		}
		level, ok := slog.LevelFromString(logLevel)
		if !ok {
			return fmt.Errorf("the specified debug level [%v] is invalid",
				logLevel)
		}
		logger.SetLevel(level)
	}
	return nil
}
