// Package logging configures the process-wide structured logger via
// hashicorp/go-hclog, grounded on the Nomad-style logger setup pattern
// (a single named root logger, leveled via config, with per-request
// loggers derived via With/Named for request correlation).
package logging

import (
	"os"

	"github.com/hashicorp/go-hclog"
)

// New builds the root logger for the process, named after the service
// and leveled from the string config value ("debug", "info", "warn",
// "error").
func New(name, level string) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		Output:     os.Stderr,
		JSONFormat: true,
	})
}

// ForRequest derives a request-scoped logger carrying the request's
// correlation id, so every log line emitted while handling one request
// can be grep'd together.
func ForRequest(root hclog.Logger, requestID string) hclog.Logger {
	return root.With("request_id", requestID)
}
