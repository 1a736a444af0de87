// Package delivery defines the contract for transport servers (HTTP today).
package delivery

import "context"

// Delivery is a transport surface that can serve requests until stopped.
type Delivery interface {
	Serve(ctx context.Context) error
}
