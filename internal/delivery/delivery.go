// Package delivery defines the contract every transport-facing server
// (HTTP, workers) must satisfy so the entrypoint can start them uniformly.
package delivery

import "context"

// Delivery is a long-running server started by the application entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
