package producer

import (
	"context"

	"github.com/NVIDIA/census/pkg/record"
)

// Producer yields zero or more configuration records for a single host.
// Implementations own everything environment-specific: directory lookup,
// transport, and the exact fact set retrieved. A Producer must be safe for
// concurrent calls with different hosts.
type Producer interface {
	Produce(ctx context.Context, host string) ([]*record.Record, error)
}

// Func adapts a plain function to the Producer interface.
type Func func(ctx context.Context, host string) ([]*record.Record, error)

// Produce implements Producer.
func (f Func) Produce(ctx context.Context, host string) ([]*record.Record, error) {
	return f(ctx, host)
}
