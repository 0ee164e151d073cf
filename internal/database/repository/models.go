package repository

import "time"

// User represents a user row. The app runs single-user ("guest") today.
type User struct {
	ID        string
	Email     *string
	Provider  string
	CreatedAt time.Time
}

// RecipientProfile represents a recipient_profiles row. Immutable once saved.
type RecipientProfile struct {
	ID        string
	UserID    string
	Name      string
	Relation  string
	Age       string
	Occasion  string
	BudgetMin float64
	BudgetMax float64
	CreatedAt time.Time
}

// SwipeSession represents a swipe_sessions row. Preferences and rejected
// tags are stored as JSON strings.
type SwipeSession struct {
	ID           string
	ProfileID    string
	Preferences  string
	RejectedTags string
	CreatedAt    time.Time
}

// Recommendation statuses cycle suggested -> purchased -> wrapped.
const (
	StatusSuggested = "suggested"
	StatusPurchased = "purchased"
	StatusWrapped   = "wrapped"
)

// Recommendation represents a recommendations row.
type Recommendation struct {
	ID           string
	ProfileID    string
	ProductTitle string
	ImageURL     string
	Price        string
	PurchaseLink string
	Saved        bool
	Status       string
	CreatedAt    time.Time
}

// NextStatus returns the status following s in the three-state cycle.
func NextStatus(s string) string {
	switch s {
	case StatusSuggested:
		return StatusPurchased
	case StatusPurchased:
		return StatusWrapped
	default:
		return StatusSuggested
	}
}
