package wizard

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSwipeCategoriesKnownRelations(t *testing.T) {
	t.Parallel()

	cases := map[string][]string{
		"Partner": {"romantic", "jewelry", "tech", "wellness"},
		"Child":   {"educational", "creative", "active", "toys"},
		"Parent":  {"home", "comfort", "books", "garden"},
		"Friend":  {"social", "style", "foodie", "tech"},
	}
	for relation, want := range cases {
		cards := SwipeCategories(relation)
		require.Len(t, cards, len(want), relation)
		for i, id := range want {
			require.Equal(t, id, cards[i].ID, "%s card %d", relation, i)
			require.NotEmpty(t, cards[i].Label)
		}
	}
}

func TestSwipeCategoriesUnknownRelationGetsDefaults(t *testing.T) {
	t.Parallel()

	for _, relation := range []string{"Colleague", "Neighbour", "", "partner"} {
		cards := SwipeCategories(relation)
		require.Len(t, cards, 3, relation)
		require.Equal(t, "practical", cards[0].ID)
		require.Equal(t, "whimsical", cards[1].ID)
		require.Equal(t, "experience", cards[2].ID)
	}
}

func TestSwipeCategoriesReturnsCopy(t *testing.T) {
	t.Parallel()

	cards := SwipeCategories("Friend")
	cards[0].ID = "mutated"
	require.Equal(t, "social", SwipeCategories("Friend")[0].ID)
}
