// Package delivery defines the entry points that expose the application to the outside.
package delivery

import "context"

// Delivery is a long-running entry point such as an HTTP server or a queue consumer.
// Serve blocks until the delivery stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
