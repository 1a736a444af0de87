// Package lifecycle holds shared constants for process start/stop handling.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown of
// process-wide resources (HTTP server, store connection).
const DefaultTimeout = 10 * time.Second
