package segment

import "context"

// Store is the persistence contract for precomputed performance segments
// (e.g. "STAR", "ZOMBIE", "POTENTIAL") keyed by product entity id.
type Store interface {
	GetSegment(ctx context.Context, productID uint64) (label string, ok bool, err error)
	UpsertSegment(ctx context.Context, productID uint64, label string) error
}
