// Package seed populates the store with generated development data.
package seed

import (
	"context"
	"fmt"

	"bloglist/internal/models"
	"bloglist/internal/service"

	"github.com/brianvoe/gofakeit/v6"
)

// Seeder creates generated accounts and posts through the normal
// service paths, so seeded data satisfies the same constraints as
// API-created data.
type Seeder struct {
	accounts *service.AccountService
	posts    *service.PostService
}

// New returns a Seeder over the given services.
func New(accounts *service.AccountService, posts *service.PostService) *Seeder {
	return &Seeder{accounts: accounts, posts: posts}
}

// Accounts registers n generated accounts.
func (s *Seeder) Accounts(ctx context.Context, n int) ([]*models.Account, error) {
	out := make([]*models.Account, 0, n)
	for i := 0; i < n; i++ {
		// Suffix the username to dodge generator collisions against
		// the unique index.
		username := fmt.Sprintf("%s%d", gofakeit.Username(), i)
		account, err := s.accounts.Register(ctx, username, gofakeit.Name(), gofakeit.Password(true, true, true, false, false, 12))
		if err != nil {
			return nil, fmt.Errorf("seed account %d: %w", i, err)
		}
		out = append(out, account)
	}
	return out, nil
}

// Posts creates n generated posts spread across the given owners.
func (s *Seeder) Posts(ctx context.Context, owners []*models.Account, n int) ([]*models.Post, error) {
	if len(owners) == 0 {
		return nil, fmt.Errorf("seed posts: no owners")
	}

	out := make([]*models.Post, 0, n)
	for i := 0; i < n; i++ {
		likes := gofakeit.Number(0, 100)
		post, err := s.posts.Create(ctx, service.CreatePostInput{
			Title:  gofakeit.Sentence(3),
			Author: gofakeit.Name(),
			URL:    gofakeit.URL(),
			Likes:  &likes,
		}, owners[i%len(owners)].ID)
		if err != nil {
			return nil, fmt.Errorf("seed post %d: %w", i, err)
		}
		out = append(out, post)
	}
	return out, nil
}
