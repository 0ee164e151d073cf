package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/kiran/giftwiz/internal/database"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	migrations, err := filepath.Abs("../migrations")
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(dbPath, migrations))

	db, err := database.Open(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, database.SeedDefaults(context.Background(), db))
	return db
}

func TestSeedDefaultsIdempotent(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	require.NoError(t, database.SeedDefaults(ctx, db))

	var users, profiles int
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM users").Scan(&users))
	require.NoError(t, db.QueryRowContext(ctx, "SELECT COUNT(*) FROM recipient_profiles").Scan(&profiles))
	require.Equal(t, 1, users)
	require.Equal(t, 1, profiles)

	sentinel, err := NewProfileRepo(db).Get(ctx, database.DefaultProfileID)
	require.NoError(t, err)
	require.NotNil(t, sentinel)
	require.Equal(t, "Friend", sentinel.Relation)
}

func TestProfileInsertAndList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	repo := NewProfileRepo(db)

	p := RecipientProfile{
		ID:        uuid.NewString(),
		UserID:    database.GuestUserID,
		Name:      "Mum",
		Relation:  "Parent",
		Age:       "58",
		Occasion:  "Birthday",
		BudgetMin: 50,
		BudgetMax: 100,
	}
	require.NoError(t, repo.Insert(ctx, p))

	got, err := repo.Get(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Parent", got.Relation)
	require.Equal(t, 100.0, got.BudgetMax)

	list, err := repo.ListByUser(ctx, database.GuestUserID)
	require.NoError(t, err)
	require.Len(t, list, 2) // sentinel + inserted

	missing, err := repo.Get(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestRecommendationRoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRecommendationRepo(db)

	rec := Recommendation{
		ID:           uuid.NewString(),
		ProfileID:    database.DefaultProfileID,
		ProductTitle: "Wooden Chess Set",
		ImageURL:     "https://img/x.jpg",
		Price:        "$49.99",
		PurchaseLink: "https://www.amazon.com/dp/B00X?tag=giftwiz-20",
	}
	require.NoError(t, repo.Insert(ctx, rec))

	got, err := repo.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, StatusSuggested, got.Status)
	require.False(t, got.Saved)
	require.Equal(t, "$49.99", got.Price)

	// persistence fidelity for an explicit status write
	require.NoError(t, repo.UpdateStatus(ctx, rec.ID, StatusPurchased))
	got, err = repo.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.Equal(t, StatusPurchased, got.Status)

	require.NoError(t, repo.UpdateSaved(ctx, rec.ID, true))
	got, err = repo.Get(ctx, rec.ID)
	require.NoError(t, err)
	require.True(t, got.Saved)
}

func TestRecommendationStatusCycle(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRecommendationRepo(db)

	id := uuid.NewString()
	require.NoError(t, repo.Insert(ctx, Recommendation{
		ID: id, ProfileID: database.DefaultProfileID, ProductTitle: "Mug", Price: "$10",
	}))

	for _, want := range []string{StatusPurchased, StatusWrapped, StatusSuggested} {
		got, err := repo.CycleStatus(ctx, id)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}
}

func TestRecommendationRequiresExistingProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	repo := NewRecommendationRepo(db)

	err := repo.Insert(ctx, Recommendation{
		ID: uuid.NewString(), ProfileID: "ghost_profile", ProductTitle: "X", Price: "$1",
	})
	require.Error(t, err) // foreign keys are on
}

func TestSessionInsertAndList(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := newTestDB(t)
	repo := NewSessionRepo(db)

	require.NoError(t, repo.Insert(ctx, SwipeSession{
		ID:           uuid.NewString(),
		ProfileID:    database.DefaultProfileID,
		Preferences:  `{"foodie":1,"tech":-1}`,
		RejectedTags: `["tech"]`,
	}))

	sessions, err := repo.ListByProfile(ctx, database.DefaultProfileID)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	require.JSONEq(t, `{"foodie":1,"tech":-1}`, sessions[0].Preferences)
}
