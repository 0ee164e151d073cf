package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/kiran/giftwiz/internal/ai"
	"github.com/kiran/giftwiz/internal/config"
	"github.com/kiran/giftwiz/internal/database"
	"github.com/kiran/giftwiz/internal/database/repository"
	"github.com/kiran/giftwiz/internal/logging"
	"github.com/kiran/giftwiz/internal/occasions"
	"github.com/kiran/giftwiz/internal/search"
	"github.com/kiran/giftwiz/internal/secrets"
	"github.com/kiran/giftwiz/internal/service"
	"github.com/kiran/giftwiz/internal/tui"
)

func main() {
	ctx := context.Background()

	// key management runs without the TUI: giftwiz set-key <provider> <key>
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "set-key":
			if len(os.Args) != 4 {
				log.Fatal("usage: giftwiz set-key <openai|serpapi> <key>")
			}
			if err := secrets.StoreProviderKey(os.Args[2], os.Args[3]); err != nil {
				log.Fatalf("store key: %v", err)
			}
			fmt.Printf("stored %s key\n", os.Args[2])
			return
		case "delete-key":
			if len(os.Args) != 3 {
				log.Fatal("usage: giftwiz delete-key <openai|serpapi>")
			}
			if err := secrets.DeleteProviderKey(os.Args[2]); err != nil {
				log.Fatalf("delete key: %v", err)
			}
			fmt.Printf("deleted %s key\n", os.Args[2])
			return
		default:
			log.Fatalf("unknown command %q", os.Args[1])
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Database.Path), 0o755); err != nil {
		log.Fatalf("mkdir db dir: %v", err)
	}

	if err := database.RunMigrations(cfg.Database.Path, "internal/database/migrations"); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := database.SeedDefaults(ctx, db); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	logger, err := logging.New(filepath.Join(filepath.Dir(cfg.Database.Path), "giftwiz.log"))
	if err != nil {
		log.Printf("warn: file logging disabled: %v", err)
		logger = zap.NewNop()
	}
	defer logger.Sync()

	// repositories
	profileRepo := repository.NewProfileRepo(db)
	recRepo := repository.NewRecommendationRepo(db)
	sessionRepo := repository.NewSessionRepo(db)

	// providers; absent keys are a valid state that triggers fallbacks
	ideaProvider := ai.NewOpenAIProvider(resolveKey("openai", cfg.AI.APIKeyEnv, cfg.AI.APIKey), cfg.AI.Model)
	searcher := search.NewSerpAPIClient(resolveKey("serpapi", cfg.Search.APIKeyEnv, cfg.Search.APIKey),
		cfg.Search.Engine, cfg.Search.AffiliateTag)

	recommender := &service.Recommender{
		Ideas:    ideaProvider,
		Search:   searcher,
		Recs:     recRepo,
		Sessions: sessionRepo,
		Logger:   logger,
	}

	// optional local calendar: drop an occasions.json next to the database
	upcoming := loadUpcoming(ctx, cfg.Database.Path, logger)

	p := tea.NewProgram(tui.New(ctx, cfg,
		tui.Repos{Profiles: profileRepo, Recommendations: recRepo, Sessions: sessionRepo},
		tui.Services{Recommender: recommender, Upcoming: upcoming},
	), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

func loadUpcoming(ctx context.Context, dbPath string, logger *zap.Logger) []occasions.Event {
	src := occasions.NewFileSource(filepath.Join(filepath.Dir(dbPath), "occasions.json"))
	events, err := occasions.Upcoming(ctx, src, time.Now(), 30)
	if err != nil {
		logger.Warn("occasions unavailable", zap.Error(err))
		return nil
	}
	scheduler := occasions.LogScheduler{Logger: logger}
	for _, e := range events {
		if at := occasions.ReminderTime(e.Start, time.Now()); !at.IsZero() {
			_ = scheduler.Schedule(ctx, e.Title, at)
		}
	}
	return events
}

func resolveKey(provider, env, configured string) string {
	if env != "" {
		if v := os.Getenv(env); v != "" {
			return v
		}
	}
	if k, err := secrets.FetchProviderKey(provider); err == nil {
		return k
	}
	return strings.TrimSpace(configured)
}
