package tui

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/kiran/giftwiz/internal/config"
	"github.com/kiran/giftwiz/internal/occasions"
	"github.com/kiran/giftwiz/internal/wizard"
)

func newTestApp() *App {
	return New(context.Background(), config.Config{}, Repos{}, Services{})
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestContextOccasionPickerCycles(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	a.step = stepContext
	a.ctxField = 1 // occasion

	_, _ = a.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, "Anniversary", a.recipient.Occasion)

	// wraps backwards past the first entry
	_, _ = a.Update(tea.KeyMsg{Type: tea.KeyLeft})
	_, _ = a.Update(tea.KeyMsg{Type: tea.KeyLeft})
	require.Equal(t, occasionOptions[len(occasionOptions)-1], a.recipient.Occasion)
}

func TestRevealShareKeyBuildsMessageAndLink(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	a.step = stepReveal
	a.profileID = "p1"
	a.recipient = wizard.Recipient{Relation: "Parent"}

	_, _ = a.Update(keyRunes("c"))
	require.Equal(t, "Check out these gifts for my Parent! https://giftwiz.ai/share/p1", a.status)
}

func TestLandingListsUpcomingOccasions(t *testing.T) {
	t.Parallel()

	a := newTestApp()
	a.services.Upcoming = []occasions.Event{{Title: "Priya's Birthday"}}
	require.Contains(t, a.View(), "Priya's Birthday")
}
