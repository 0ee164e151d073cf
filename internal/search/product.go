package search

import "context"

// Product is a concrete purchasable item derived from a gift idea.
type Product struct {
	ID       string
	Title    string
	Price    string // display string, never parsed
	ImageURL string
	Link     string
	Rating   float64
	Reviews  int
	Reason   string
}

// ProductSearcher resolves a free-text query to a single purchasable product.
//
// The contract callers rely on:
//   - unconfigured credential: a deterministic placeholder, nil error
//   - query matched nothing: a "Check price" placeholder, nil error
//   - transport or parse failure: nil product, non-nil error ("this idea
//     contributed no product")
type ProductSearcher interface {
	Search(ctx context.Context, query string) (*Product, error)
}

// PriceUnknown is the sentinel shown when no price could be determined.
// Products never carry an empty price string.
const PriceUnknown = "Check price"
