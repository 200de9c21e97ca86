// Package delivery defines the contract every transport entry point
// (HTTP server, worker, ...) satisfies so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport that serves until the context ends
// or the Fx lifecycle shuts it down.
type Delivery interface {
	Serve(ctx context.Context) error
}
