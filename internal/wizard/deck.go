package wizard

// SwipeThresholdFraction is the fraction of the interaction surface's width a
// drag must cover before releasing commits a swipe. The comparison is
// inclusive: a displacement of exactly the threshold resolves the card.
const SwipeThresholdFraction = 0.25

// Phase is the deck's gesture state.
type Phase int

const (
	// Idle: top card at rest, no active gesture.
	Idle Phase = iota
	// Dragging: an active gesture is moving the top card.
	Dragging
	// Resolving: the gesture ended past the threshold; the card is committed
	// and on its way off the deck.
	Resolving
	// DeckEmpty: terminal, every card has resolved.
	DeckEmpty
)

// Outcome reports what an EndDrag did.
type Outcome struct {
	Resolved  bool   // false means the card snapped back
	CardID    string // set when Resolved
	Direction int    // Accepted or Rejected when Resolved
	Exhausted bool   // true when the resolved card was the last
}

// Deck drives preference collection: it owns the remaining cards, converts
// drag displacement into accept/reject decisions, and commits outcomes into
// the session's preference signal. Gesture handling is pure in-memory state;
// it must never touch the network.
type Deck struct {
	cards  []SwipeCard
	signal PreferenceSignal
	phase  Phase
	dragX  float64
}

// NewDeck builds a deck from cards in presentation order.
func NewDeck(cards []SwipeCard) *Deck {
	d := &Deck{
		cards:  make([]SwipeCard, len(cards)),
		signal: PreferenceSignal{},
	}
	copy(d.cards, cards)
	if len(d.cards) == 0 {
		d.phase = DeckEmpty
	}
	return d
}

// Phase returns the current gesture state.
func (d *Deck) Phase() Phase { return d.phase }

// Top returns the active card, or false when the deck is empty.
func (d *Deck) Top() (SwipeCard, bool) {
	if len(d.cards) == 0 {
		return SwipeCard{}, false
	}
	return d.cards[0], true
}

// Remaining returns how many cards are still unresolved.
func (d *Deck) Remaining() int { return len(d.cards) }

// Signal returns the accumulated preference signal.
func (d *Deck) Signal() PreferenceSignal { return d.signal }

// BeginDrag starts a gesture on the top card. No-op unless Idle.
func (d *Deck) BeginDrag() {
	if d.phase == Idle && len(d.cards) > 0 {
		d.phase = Dragging
		d.dragX = 0
	}
}

// Drag updates the horizontal displacement of the active gesture.
func (d *Deck) Drag(dx float64) {
	if d.phase == Dragging {
		d.dragX = dx
	}
}

// DragX returns the current horizontal displacement, for rendering.
func (d *Deck) DragX() float64 {
	return d.dragX
}

// EndDrag finishes the gesture. width is the horizontal extent of the
// interaction surface. Displacement at or past width*SwipeThresholdFraction
// resolves the card (right = accept, left = reject); anything less snaps it
// back to center.
func (d *Deck) EndDrag(width float64) Outcome {
	if d.phase != Dragging {
		return Outcome{}
	}
	dx := d.dragX
	d.dragX = 0

	threshold := width * SwipeThresholdFraction
	if abs(dx) < threshold {
		d.phase = Idle
		return Outcome{}
	}

	d.phase = Resolving
	dir := Accepted
	if dx < 0 {
		dir = Rejected
	}
	card := d.cards[0]
	d.signal.Record(card.ID, dir)
	d.cards = d.cards[1:]

	out := Outcome{Resolved: true, CardID: card.ID, Direction: dir}
	if len(d.cards) == 0 {
		d.phase = DeckEmpty
		out.Exhausted = true
	} else {
		d.phase = Idle
	}
	return out
}

// Swipe resolves the top card directly, as from the accept/reject buttons or
// key bindings: a synthetic full-width drag in the given direction.
func (d *Deck) Swipe(direction int) Outcome {
	if d.phase != Idle || len(d.cards) == 0 {
		return Outcome{}
	}
	d.BeginDrag()
	d.Drag(float64(direction))
	return d.EndDrag(1)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
