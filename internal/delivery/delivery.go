// Package delivery defines the entry points that expose the use cases.
package delivery

import "context"

// Delivery is a long-running transport started by cmd/ayra.
type Delivery interface {
	// Serve blocks until the transport stops.
	Serve(ctx context.Context) error
}
