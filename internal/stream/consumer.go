package stream

import "context"

// StreamConsumer pulls chat events off a message stream and feeds them to the
// guardrail pipeline. Setup is idempotent; Start blocks until ctx is done.
type StreamConsumer interface {
	Setup(ctx context.Context) error
	Start(ctx context.Context) error
	Stop() error
}
