// Package consumer contains interface of background chain consumers.
package consumer

import (
	"context"

	"github.com/Decentr-net/go-api/health"
)

// Consumer follows chain state in background.
type Consumer interface {
	health.Pinger

	Run(ctx context.Context) error
}
