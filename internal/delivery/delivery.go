// Package delivery holds the servers that expose the use cases.
package delivery

import "context"

// Delivery is a server started by the application lifecycle.
type Delivery interface {
	// Serve blocks until the server stops
	Serve(ctx context.Context) error
}
