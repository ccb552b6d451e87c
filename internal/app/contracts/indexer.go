package contracts

import "context"

// ReindexPublisher enqueues a rebuild of the property search index. Callers
// fire and forget: a publish failure is logged, never surfaced to the client.
type ReindexPublisher interface {
	EnqueueReindex(ctx context.Context) error
}
