package wizard

// SwipeCard is a single preference-category prompt the user accepts or
// rejects with a swipe.
type SwipeCard struct {
	ID          string
	Label       string
	Description string
}

var categoriesByRelation = map[string][]SwipeCard{
	"Partner": {
		{ID: "romantic", Label: "Romantic Experiences", Description: "Surprise dates or getaways"},
		{ID: "jewelry", Label: "Personalized Jewelry", Description: "Watches, necklaces, engraved items"},
		{ID: "tech", Label: "Latest Tech", Description: "Gadgets and productivity tools"},
		{ID: "wellness", Label: "Wellness & Relaxation", Description: "Spa days or self-care kits"},
	},
	"Child": {
		{ID: "educational", Label: "STEM & Learning", Description: "Robotics, science kits, books"},
		{ID: "creative", Label: "Arts & Crafts", Description: "Drawing sets, musical instruments"},
		{ID: "active", Label: "Outdoor Action", Description: "Bikes, scooters, sports gear"},
		{ID: "toys", Label: "Fun & Play", Description: "Building blocks, dolls, puzzles"},
	},
	"Parent": {
		{ID: "home", Label: "Personalized Home", Description: "Frames, kitchenware, custom decor"},
		{ID: "comfort", Label: "Cozy Comfort", Description: "Blankets, loungewear, high-end tea"},
		{ID: "books", Label: "Books & Culture", Description: "Bestsellers, magazines, hobby books"},
		{ID: "garden", Label: "Garden & Nature", Description: "Planting kits, outdoor decor"},
	},
	"Friend": {
		{ID: "social", Label: "Social Games", Description: "Board games, party activities"},
		{ID: "style", Label: "Self Style", Description: "Accessories, trendy decor"},
		{ID: "foodie", Label: "Gourmet Treats", Description: "Coffee sets, snack boxes"},
		{ID: "tech", Label: "Tech Gadgets", Description: "Cool peripherals and novelties"},
	},
}

var defaultCategories = []SwipeCard{
	{ID: "practical", Label: "Practical Items", Description: "Daily utility and essentials"},
	{ID: "whimsical", Label: "Whimsical & Fun", Description: "Funny gifts and novelties"},
	{ID: "experience", Label: "Experiences", Description: "Events, classes, or tickets"},
}

// SwipeCategories returns the swipe deck for a relation. Unknown relations
// get the generic default deck. The returned slice is a copy; callers may
// consume it freely.
func SwipeCategories(relation string) []SwipeCard {
	src, ok := categoriesByRelation[relation]
	if !ok {
		src = defaultCategories
	}
	out := make([]SwipeCard, len(src))
	copy(out, src)
	return out
}
