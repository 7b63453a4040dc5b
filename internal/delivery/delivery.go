// Package delivery defines the inbound surfaces of the application.
package delivery

import "context"

// Delivery is one serving surface (HTTP API, worker, ticker). Serve blocks
// until the server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
