package main

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// newLogger builds the engine's internal telemetry logger. It is
// independent of the line-oriented stdout trace the -q flag controls — by
// default it is set to a level that emits nothing, so it never interferes
// with the CLI's own observable output. Set FORMALSYSTEMS_LOG_LEVEL to "trace" or
// "debug" to see it.
func newLogger() hclog.Logger {
	level := hclog.LevelFromString(os.Getenv("FORMALSYSTEMS_LOG_LEVEL"))
	if level == hclog.NoLevel {
		level = hclog.Off
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "formalsystems",
		Level:  level,
		Output: os.Stderr,
	})
}
