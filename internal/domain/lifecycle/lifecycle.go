// Package lifecycle holds shared lifecycle constants for graceful shutdown.
package lifecycle

import "time"

// DefaultTimeout bounds how long shutdown hooks may take.
const DefaultTimeout = 10 * time.Second
