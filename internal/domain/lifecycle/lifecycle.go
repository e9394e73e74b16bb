// Package lifecycle holds timing constants shared by start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start-up ping and graceful shutdown.
const DefaultTimeout = 10 * time.Second
