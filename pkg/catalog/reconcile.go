package catalog

// Result holds the output of one reconciliation run. It is constructed fresh
// per run and never persisted as an entity.
type Result struct {
	// MatchedCount is the number of active marketplace items whose identity
	// is already present on the storefront side.
	MatchedCount int `json:"matched_count"`

	// NeedsPublishing lists the active marketplace items absent from the
	// storefront, in the order they appeared in the marketplace input.
	NeedsPublishing []Item `json:"needs_publishing"`
}

// Reconcile finds marketplace items with no matching identity on the
// storefront side.
//
// Only marketplace items with an active listing status are considered;
// everything else is excluded from both counts. Matching is a set lookup on
// the precomputed identities, so untitled items carrying the sentinel
// identity match only when the storefront side also contains an untitled
// item (an accepted edge case of name-based identity).
//
// Reconcile is pure: it performs no I/O, never mutates its inputs, and is
// deterministic given identical inputs.
func Reconcile(storefront, marketplace []Item) Result {
	known := make(map[string]struct{}, len(storefront))
	for _, item := range storefront {
		known[item.Identity] = struct{}{}
	}

	var result Result
	for _, item := range marketplace {
		if !item.ActiveListing() {
			continue
		}
		if _, ok := known[item.Identity]; ok {
			result.MatchedCount++
			continue
		}
		result.NeedsPublishing = append(result.NeedsPublishing, item)
	}
	return result
}
