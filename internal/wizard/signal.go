package wizard

import "sort"

// Swipe directions as stored in the preference signal.
const (
	Accepted = 1
	Rejected = -1
)

// PreferenceSignal maps a card id to +1 (accepted) or -1 (rejected).
// It grows monotonically during a session; each card resolves once.
type PreferenceSignal map[string]int

// Record stores the outcome for a card. Values other than Accepted and
// Rejected are invalid and ignored.
func (s PreferenceSignal) Record(cardID string, value int) {
	if value != Accepted && value != Rejected {
		return
	}
	s[cardID] = value
}

// Liked returns the accepted card ids, sorted for determinism.
func (s PreferenceSignal) Liked() []string {
	var out []string
	for id, v := range s {
		if v == Accepted {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}

// RejectedIDs returns the rejected card ids, sorted for determinism.
func (s PreferenceSignal) RejectedIDs() []string {
	var out []string
	for id, v := range s {
		if v == Rejected {
			out = append(out, id)
		}
	}
	sort.Strings(out)
	return out
}
