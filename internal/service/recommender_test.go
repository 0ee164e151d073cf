package service

import (
	"context"
	"database/sql"
	"fmt"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kiran/giftwiz/internal/ai"
	"github.com/kiran/giftwiz/internal/database"
	"github.com/kiran/giftwiz/internal/database/repository"
	"github.com/kiran/giftwiz/internal/search"
	"github.com/kiran/giftwiz/internal/wizard"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("../database/migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.SeedDefaults(context.Background(), db))
	return db
}

type fakeIdeas struct {
	ideas []ai.GiftIdea
	err   error
}

func (f fakeIdeas) GenerateIdeas(ctx context.Context, req ai.IdeaRequest) ([]ai.GiftIdea, error) {
	return f.ideas, f.err
}

type fakeSearch struct {
	configured bool
	calls      *int
	resolve    func(query string) (*search.Product, error)
}

func (f fakeSearch) Configured() bool { return f.configured }

func (f fakeSearch) Search(ctx context.Context, query string) (*search.Product, error) {
	if f.calls != nil {
		*f.calls++
	}
	return f.resolve(query)
}

func echoSearch(calls *int) fakeSearch {
	return fakeSearch{
		configured: true,
		calls:      calls,
		resolve: func(query string) (*search.Product, error) {
			return &search.Product{Title: query, Price: "$10.00", Link: "https://shop/" + query}, nil
		},
	}
}

func newRecommender(t *testing.T, db *sql.DB, ideas ai.IdeaProvider, searcher search.ProductSearcher) *Recommender {
	t.Helper()
	return &Recommender{
		Ideas:    ideas,
		Search:   searcher,
		Recs:     repository.NewRecommendationRepo(db),
		Sessions: repository.NewSessionRepo(db),
		Rand:     rand.New(rand.NewSource(1)),
	}
}

func testRecipient() wizard.Recipient {
	return wizard.Recipient{Relation: "Friend", Age: "30", Occasion: "Birthday", BudgetMin: 25, BudgetMax: 50}
}

func TestProduceNoCredentialsUsesStaticCatalog(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	calls := 0
	r := newRecommender(t, db,
		fakeIdeas{err: ai.ErrNoAPIKey},
		fakeSearch{configured: false, calls: &calls, resolve: func(string) (*search.Product, error) {
			t.Fatal("search must not be called without credentials")
			return nil, nil
		}},
	)

	signal := wizard.PreferenceSignal{"foodie": 1, "tech": -1}
	products := r.Produce(ctx, testRecipient(), signal, "")

	require.Len(t, products, 3)
	require.Zero(t, calls, "no network calls attempted")

	// persisted under the sentinel profile
	recs, err := r.Recs.ListByProfile(ctx, database.DefaultProfileID)
	require.NoError(t, err)
	require.Len(t, recs, 3)
	for i, rec := range recs {
		require.Equal(t, products[i].Title, rec.ProductTitle)
		require.Equal(t, repository.StatusSuggested, rec.Status)
	}

	// the swipe session was captured too
	sessions, err := r.Sessions.ListByProfile(ctx, database.DefaultProfileID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.JSONEq(t, `{"foodie":1,"tech":-1}`, sessions[0].Preferences)
	require.JSONEq(t, `["tech"]`, sessions[0].RejectedTags)
}

func TestProduceMissingIdeaKeyFallsBackToMockIdeas(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	calls := 0
	r := newRecommender(t, db, fakeIdeas{err: ai.ErrNoAPIKey}, echoSearch(&calls))

	products := r.Produce(ctx, testRecipient(), wizard.PreferenceSignal{}, "")
	require.Len(t, products, 3)
	require.Equal(t, 3, calls)
	// product titles echo the mock idea queries, in idea order
	for i, idea := range ai.MockIdeas() {
		require.Equal(t, idea.Query, products[i].Title)
		require.Equal(t, idea.Reason, products[i].Reason)
	}
}

func TestProducePartialResolutionPreservesIdeaOrder(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	ideas := []ai.GiftIdea{
		{Title: "One", Query: "first gadget", Reason: "r1"},
		{Title: "Two", Query: "second gadget", Reason: "r2"},
		{Title: "Three", Query: "third gadget", Reason: "r3"},
	}
	r := newRecommender(t, db, fakeIdeas{ideas: ideas}, fakeSearch{
		configured: true,
		resolve: func(query string) (*search.Product, error) {
			if query == "second gadget" {
				return nil, fmt.Errorf("boom")
			}
			return &search.Product{Title: query, Price: "$10.00"}, nil
		},
	})

	products := r.Produce(ctx, testRecipient(), wizard.PreferenceSignal{}, "")
	require.Len(t, products, 2)
	require.Equal(t, "first gadget", products[0].Title)
	require.Equal(t, "third gadget", products[1].Title)

	recs, err := r.Recs.ListByProfile(ctx, database.DefaultProfileID)
	require.NoError(t, err)
	require.Len(t, recs, 2)
}

func TestProduceIdeaFailureFallsBackToCatalog(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	calls := 0
	r := newRecommender(t, db, fakeIdeas{err: fmt.Errorf("upstream down")}, echoSearch(&calls))

	products := r.Produce(ctx, testRecipient(), wizard.PreferenceSignal{"tech": 1}, "")
	require.Len(t, products, 3)
	require.Zero(t, calls)
}

func TestProduceEmptyIdeasFallsBackToCatalog(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	calls := 0
	r := newRecommender(t, db, fakeIdeas{}, echoSearch(&calls))

	products := r.Produce(ctx, testRecipient(), wizard.PreferenceSignal{}, "")
	require.Len(t, products, 3)
	require.Zero(t, calls)
}

func TestProduceAllResolutionsFailFallsBackToCatalog(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	ideas := []ai.GiftIdea{{Query: "a"}, {Query: "b"}, {Query: "c"}}
	r := newRecommender(t, db, fakeIdeas{ideas: ideas}, fakeSearch{
		configured: true,
		resolve:    func(string) (*search.Product, error) { return nil, fmt.Errorf("down") },
	})

	products := r.Produce(ctx, testRecipient(), wizard.PreferenceSignal{}, "")
	require.Len(t, products, 3) // catalog tier
}

func TestProduceSuppressesNearDuplicateTitles(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	ideas := []ai.GiftIdea{
		{Query: "camera"},
		{Query: "instant camera"},
		{Query: "hammock"},
	}
	r := newRecommender(t, db, fakeIdeas{ideas: ideas}, fakeSearch{
		configured: true,
		resolve: func(query string) (*search.Product, error) {
			// both camera queries resolve to the same bestseller
			if query == "hammock" {
				return &search.Product{Title: "Ultralight Camping Hammock", Price: "$45.00"}, nil
			}
			return &search.Product{Title: "Fujifilm Instax Mini 12", Price: "$79.99"}, nil
		},
	})

	products := r.Produce(ctx, testRecipient(), wizard.PreferenceSignal{}, "")
	require.Len(t, products, 2)
	require.Equal(t, "Fujifilm Instax Mini 12", products[0].Title)
	require.Equal(t, "Ultralight Camping Hammock", products[1].Title)
}

func TestProducePersistsUnderSuppliedProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	profiles := repository.NewProfileRepo(db)
	require.NoError(t, profiles.Insert(ctx, repository.RecipientProfile{
		ID: "p1", UserID: database.GuestUserID, Relation: "Parent", Age: "60", Occasion: "Holiday",
	}))

	calls := 0
	ideas := []ai.GiftIdea{{Query: "tea set", Reason: "cozy"}}
	r := newRecommender(t, db, fakeIdeas{ideas: ideas}, echoSearch(&calls))

	products := r.Produce(ctx, testRecipient(), wizard.PreferenceSignal{}, "p1")
	require.Len(t, products, 1)

	recs, err := r.Recs.ListByProfile(ctx, "p1")
	require.NoError(t, err)
	require.Len(t, recs, 1)
	require.Equal(t, "tea set", recs[0].ProductTitle)

	// nothing leaked to the sentinel profile
	fallback, err := r.Recs.ListByProfile(ctx, database.DefaultProfileID)
	require.NoError(t, err)
	require.Empty(t, fallback)
}

func TestProducePersistenceFailureStillReturnsResults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	ideas := []ai.GiftIdea{{Query: "tea set"}}
	r := newRecommender(t, db, fakeIdeas{ideas: ideas}, echoSearch(nil))

	// point persistence at a profile that violates the foreign key
	products := r.Produce(ctx, testRecipient(), wizard.PreferenceSignal{}, "ghost_profile")
	require.Len(t, products, 1)
}
