package segment

import "context"

// Resolver is the lookup seam the feed pipeline uses. Any store failure
// (missing record, storage fault, nil store) is translated to "no label";
// a broken segment store must never fail feed generation.
type Resolver struct {
	Store Store
}

func (r Resolver) Lookup(ctx context.Context, productID uint64) (string, bool) {
	if r.Store == nil {
		return "", false
	}

	label, ok, err := r.Store.GetSegment(ctx, productID)
	if err != nil || !ok {
		return "", false
	}
	if label == "" {
		return "", false
	}
	return label, true
}
