package service

import (
	"context"
	"encoding/json"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/kiran/giftwiz/internal/ai"
	"github.com/kiran/giftwiz/internal/catalog"
	"github.com/kiran/giftwiz/internal/database"
	"github.com/kiran/giftwiz/internal/database/repository"
	"github.com/kiran/giftwiz/internal/search"
	"github.com/kiran/giftwiz/internal/wizard"
)

// titles closer than this (normalized edit distance) are treated as the same
// product within one produced list
const duplicateTitleRatio = 0.25

// Recommender owns the recommendation pipeline: idea generation, per-idea
// product resolution, the static-catalog fallback, and persistence.
//
// No error escapes Produce. Every failure inside the pipeline degrades to
// fewer or more generic results.
type Recommender struct {
	Ideas    ai.IdeaProvider
	Search   search.ProductSearcher
	Recs     *repository.RecommendationRepo
	Sessions *repository.SessionRepo
	Logger   *zap.Logger
	Rand     *rand.Rand
}

// Produce turns recipient context plus the session's preference signal into
// an ordered product list and persists it under profileID (the sentinel
// profile when blank).
//
// Tiers: ideas+search, then the static catalog when that yields nothing,
// then empty. Ideas resolve sequentially (sqlite runs on one connection and
// idea order must be preserved); a failed resolution is isolated from its
// siblings.
func (r *Recommender) Produce(ctx context.Context, recipient wizard.Recipient, signal wizard.PreferenceSignal, profileID string) []search.Product {
	products := r.resolveIdeas(ctx, recipient, signal)
	if len(products) == 0 {
		products = catalog.Fallback(signal, r.rng())
	}

	r.persist(ctx, signal, profileID, products)
	return products
}

func (r *Recommender) resolveIdeas(ctx context.Context, recipient wizard.Recipient, signal wizard.PreferenceSignal) []search.Product {
	ideas, err := r.Ideas.GenerateIdeas(ctx, ai.IdeaRequest{
		Relation:  recipient.Relation,
		Age:       recipient.Age,
		Occasion:  recipient.Occasion,
		BudgetMin: recipient.BudgetMin,
		BudgetMax: recipient.BudgetMax,
		Liked:     signal.Liked(),
	})
	if err != nil {
		if errors.Is(err, ai.ErrNoAPIKey) {
			if !r.searchConfigured() {
				// Neither service has a credential: the static catalog is the
				// only tier that can produce anything. Skip all remote work.
				return nil
			}
			ideas = ai.MockIdeas()
		} else {
			r.logger().Warn("idea generation failed", zap.Error(err))
			return nil
		}
	}
	if len(ideas) > ai.MaxIdeas {
		ideas = ideas[:ai.MaxIdeas]
	}

	var products []search.Product
	for _, idea := range ideas {
		product, err := r.Search.Search(ctx, idea.Query)
		if err != nil {
			r.logger().Warn("product resolution failed",
				zap.String("query", idea.Query), zap.Error(err))
			continue
		}
		if product == nil {
			continue
		}
		if product.Reason == "" {
			product.Reason = idea.Reason
		}
		if duplicateOf(products, product.Title) {
			r.logger().Info("dropped near-duplicate product", zap.String("title", product.Title))
			continue
		}
		products = append(products, *product)
	}
	return products
}

func (r *Recommender) persist(ctx context.Context, signal wizard.PreferenceSignal, profileID string, products []search.Product) {
	if profileID == "" {
		profileID = database.DefaultProfileID
	}

	if r.Sessions != nil {
		prefs, _ := json.Marshal(signal)
		rejected, _ := json.Marshal(signal.RejectedIDs())
		err := r.Sessions.Insert(ctx, repository.SwipeSession{
			ID:           uuid.NewString(),
			ProfileID:    profileID,
			Preferences:  string(prefs),
			RejectedTags: string(rejected),
		})
		if err != nil {
			r.logger().Warn("persist swipe session failed", zap.Error(err))
		}
	}

	if r.Recs == nil {
		return
	}
	for _, p := range products {
		err := r.Recs.Insert(ctx, repository.Recommendation{
			ID:           uuid.NewString(),
			ProfileID:    profileID,
			ProductTitle: p.Title,
			ImageURL:     p.ImageURL,
			Price:        p.Price,
			PurchaseLink: p.Link,
			Status:       repository.StatusSuggested,
		})
		if err != nil {
			// Results still go to the user; history just has a gap.
			r.logger().Warn("persist recommendation failed",
				zap.String("title", p.Title), zap.Error(err))
		}
	}
}

func (r *Recommender) searchConfigured() bool {
	type configured interface{ Configured() bool }
	if c, ok := r.Search.(configured); ok {
		return c.Configured()
	}
	return true
}

func (r *Recommender) logger() *zap.Logger {
	if r.Logger == nil {
		return zap.NewNop()
	}
	return r.Logger
}

func (r *Recommender) rng() *rand.Rand {
	if r.Rand == nil {
		r.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return r.Rand
}

// duplicateOf reports whether title is a near-duplicate of an already
// resolved product. Catches the "two ideas resolve to the same bestseller"
// case within a single run; cross-session dedup is out of scope.
func duplicateOf(products []search.Product, title string) bool {
	a := normalizeTitle(title)
	for _, p := range products {
		b := normalizeTitle(p.Title)
		longest := len(a)
		if len(b) > longest {
			longest = len(b)
		}
		if longest == 0 {
			continue
		}
		dist := levenshtein.ComputeDistance(a, b)
		if float64(dist)/float64(longest) <= duplicateTitleRatio {
			return true
		}
	}
	return false
}

func normalizeTitle(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
