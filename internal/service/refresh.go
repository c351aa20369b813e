package service

// RefreshPolicy is how a list view reconciles its collection after a
// mutation. Historically this was ad hoc per call site; it is now a named
// policy so every view states its behaviour explicitly.
type RefreshPolicy string

const (
	// RefreshFull re-fetches the entire collection after the mutation
	// succeeds and hands it back to the caller.
	RefreshFull RefreshPolicy = "full"
	// RefreshLocal performs the mutation only; on success the caller
	// removes the affected row locally, on failure it keeps the row.
	RefreshLocal RefreshPolicy = "local"
)

// Every view follows the same split: creates and updates are RefreshFull,
// deletes are RefreshLocal. The stock view's restock action is RefreshFull
// because the upstream call mutates every product, not just one row.
