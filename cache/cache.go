package cache

import "context"

// PropertyCache holds pre-serialized property listings keyed by owner.
type PropertyCache interface {
	Get(ctx context.Context, ownerID int64) ([]byte, bool)
	Set(ctx context.Context, ownerID int64, payload []byte)
	Invalidate(ctx context.Context)
}
