// Package catalog holds the static curated product pool used when neither
// the idea generator nor the product-search service can produce results.
package catalog

import (
	"math/rand"

	"github.com/kiran/giftwiz/internal/search"
	"github.com/kiran/giftwiz/internal/wizard"
)

// Item is a curated pool entry: a product plus the swipe-category tag it
// matches against.
type Item struct {
	Product  search.Product
	Category string
}

// resultCount is how many products a fallback run returns.
const resultCount = 3

// defaultTags are used when the session produced no accepted categories.
var defaultTags = []string{"tech", "home"}

var pool = []Item{
	{Category: "tech", Product: search.Product{
		ID:       "t1",
		Title:    "Fujifilm Instax Mini 12",
		Price:    "$79.99",
		ImageURL: "https://images.unsplash.com/photo-1526170315873-3a921fab4703?w=400",
		Reason:   "Perfect for capturing memories at any occasion.",
	}},
	{Category: "tech", Product: search.Product{
		ID:       "t2",
		Title:    "Ember Temperature Control Mug",
		Price:    "$129.95",
		ImageURL: "https://images.unsplash.com/photo-1517142089942-ba376ce32a2e?w=400",
		Reason:   "A premium practical gift for daily use.",
	}},
	{Category: "tech", Product: search.Product{
		ID:       "t3",
		Title:    "Noise Cancelling Headphones",
		Price:    "$249.00",
		ImageURL: "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=400",
		Reason:   "Ideal for focus and travel.",
	}},
	{Category: "outdoors", Product: search.Product{
		ID:       "o1",
		Title:    "YETI Rambler 20 oz Tumbler",
		Price:    "$35.00",
		ImageURL: "https://images.unsplash.com/photo-1589365278144-c9e705f843ba?w=400",
		Reason:   "Keeps drinks at the perfect temperature all day.",
	}},
	{Category: "outdoors", Product: search.Product{
		ID:       "o2",
		Title:    "Ultralight Camping Hammock",
		Price:    "$45.00",
		ImageURL: "https://images.unsplash.com/photo-1504280390367-361c6d9f38f4?w=400",
		Reason:   "For the nature lover who enjoys relaxing.",
	}},
	{Category: "fitness", Product: search.Product{
		ID:       "f1",
		Title:    "Theragun Mini Massager",
		Price:    "$179.00",
		ImageURL: "https://images.unsplash.com/photo-1591123120675-6f7f1aae0e5b?w=400",
		Reason:   "Essential for post-workout recovery.",
	}},
	{Category: "cooking", Product: search.Product{
		ID:       "c1",
		Title:    "Artisanal Olive Oil Set",
		Price:    "$55.00",
		ImageURL: "https://images.unsplash.com/photo-1474979266404-7eaacbadcbaf?w=400",
		Reason:   "Upgrade their kitchen with premium flavors.",
	}},
	{Category: "home", Product: search.Product{
		ID:       "h1",
		Title:    "Aura Carver Smart Frame",
		Price:    "$149.00",
		ImageURL: "https://images.unsplash.com/photo-1544244015-0df4b3ffc6b0?w=400",
		Reason:   "Combines tech with personal sentiment.",
	}},
}

// Fallback selects 3 products from the pool by liked category tags: items
// matching an accepted category first, padded with arbitrary pool items when
// fewer than 3 match, shuffled with rng, truncated to 3. Deterministic given
// a seeded rng; never empty, never network-bound.
func Fallback(signal wizard.PreferenceSignal, rng *rand.Rand) []search.Product {
	tags := signal.Liked()
	if len(tags) == 0 {
		tags = defaultTags
	}
	wanted := make(map[string]bool, len(tags))
	for _, t := range tags {
		wanted[t] = true
	}

	var picked []search.Product
	for _, item := range pool {
		if wanted[item.Category] {
			picked = append(picked, item.Product)
		}
	}
	if len(picked) < resultCount {
		seen := make(map[string]bool, len(picked))
		for _, p := range picked {
			seen[p.ID] = true
		}
		for _, item := range pool {
			if len(picked) >= resultCount {
				break
			}
			if !seen[item.Product.ID] {
				picked = append(picked, item.Product)
			}
		}
	}

	rng.Shuffle(len(picked), func(i, j int) {
		picked[i], picked[j] = picked[j], picked[i]
	})
	if len(picked) > resultCount {
		picked = picked[:resultCount]
	}
	return picked
}
