// Package delivery defines the contract that every transport entrypoint
// (HTTP, workers, ...) satisfies so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running server that blocks inside Serve until it fails
// or is shut down through its lifecycle hook.
type Delivery interface {
	Serve(ctx context.Context) error
}
