// Command seed fills the configured database with generated accounts
// and posts for local development.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"

	"bloglist/internal/auth"
	"bloglist/internal/cache"
	"bloglist/internal/config"
	"bloglist/internal/database"
	"bloglist/internal/middleware"
	"bloglist/internal/repository"
	"bloglist/internal/seed"
	"bloglist/internal/service"
)

func main() {
	numAccounts := flag.Int("accounts", 3, "number of accounts to create")
	numPosts := flag.Int("posts", 10, "number of posts to create")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	slog.SetDefault(middleware.NewLogger(cfg.Env))

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	accountRepo := repository.NewAccountRepository(db, cache.New(cfg.RedisURL))
	postRepo := repository.NewPostRepository(db)
	hasher := auth.NewPasswordHasher()
	codec := auth.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)
	seeder := seed.New(
		service.NewAccountService(accountRepo, hasher, codec),
		service.NewPostService(postRepo, accountRepo),
	)

	ctx := context.Background()
	accounts, err := seeder.Accounts(ctx, *numAccounts)
	if err != nil {
		log.Fatalf("Seeding accounts failed: %v", err)
	}
	posts, err := seeder.Posts(ctx, accounts, *numPosts)
	if err != nil {
		log.Fatalf("Seeding posts failed: %v", err)
	}

	slog.Info("seeding complete", "accounts", len(accounts), "posts", len(posts))
}
