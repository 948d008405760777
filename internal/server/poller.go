package server

import (
	"context"

	"scriptblox-service/internal/poller"
)

// Poller abstracts the health poll loop for testing.
type Poller interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
	Status() poller.Status
}
