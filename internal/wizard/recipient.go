package wizard

// Recipient is the structured context collected before swiping. Immutable
// once the deck is dealt.
type Recipient struct {
	Relation  string
	Age       string
	Occasion  string
	BudgetMin float64
	BudgetMax float64
}

// Ready reports whether enough context exists to start swiping.
func (r Recipient) Ready() bool {
	return r.Relation != "" && r.Occasion != "" && r.Age != ""
}
