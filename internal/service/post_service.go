package service

import (
	"context"
	"errors"

	"bloglist/internal/models"
	"bloglist/internal/repository"
)

// PostService implements post creation, listing, partial update and
// deletion.
type PostService struct {
	posts    repository.PostRepository
	accounts repository.AccountRepository
}

// NewPostService returns a new PostService.
func NewPostService(posts repository.PostRepository, accounts repository.AccountRepository) *PostService {
	return &PostService{posts: posts, accounts: accounts}
}

// CreatePostInput carries the caller-supplied fields of a new post.
// The owner is never part of it; it comes from the resolved identity.
type CreatePostInput struct {
	Title  string
	Author string
	URL    string
	Likes  *int
}

// UpdatePostInput carries a partial field replacement. Nil means "leave
// unchanged".
type UpdatePostInput struct {
	Title  *string
	Author *string
	URL    *string
	Likes  *int
}

// Create validates the fields and writes the post, then appends its id
// to the owner's postIds in a second write. The two writes are not
// transactional: when the append fails the post stays behind with no
// back-reference, and no rollback is attempted.
func (s *PostService) Create(ctx context.Context, in CreatePostInput, ownerID uint) (*models.Post, error) {
	if err := models.ValidatePostFields(&in.Title, &in.URL, in.Likes); err != nil {
		return nil, err
	}

	likes := 0
	if in.Likes != nil {
		likes = *in.Likes
	}

	post := &models.Post{
		Title:   in.Title,
		Author:  in.Author,
		URL:     in.URL,
		Likes:   likes,
		OwnerID: ownerID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	if err := s.accounts.AppendPostID(ctx, ownerID, post.ID); err != nil {
		return nil, err
	}

	return post, nil
}

// List returns all posts annotated with their owner projection.
func (s *PostService) List(ctx context.Context) ([]models.PostWithOwner, error) {
	posts, err := s.posts.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]models.PostWithOwner, 0, len(posts))
	for i := range posts {
		out = append(out, posts[i].WithOwner())
	}
	return out, nil
}

// Update replaces only the supplied fields, running the same validators
// as Create. The owner is never checked or changed. An unknown id
// yields (nil, nil), not an error.
func (s *PostService) Update(ctx context.Context, id uint, in UpdatePostInput) (*models.Post, error) {
	if err := models.ValidatePostFields(in.Title, in.URL, in.Likes); err != nil {
		return nil, err
	}

	post, err := s.posts.GetByID(ctx, id)
	if err != nil {
		var appErr *models.AppError
		if errors.As(err, &appErr) && appErr.Kind == models.KindNotFound {
			return nil, nil
		}
		return nil, err
	}

	if in.Title != nil {
		post.Title = *in.Title
	}
	if in.Author != nil {
		post.Author = *in.Author
	}
	if in.URL != nil {
		post.URL = *in.URL
	}
	if in.Likes != nil {
		post.Likes = *in.Likes
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// Delete removes the post unconditionally. There is no ownership check:
// any caller holding a valid id may delete any post. Deleting an
// unknown id is a no-op.
func (s *PostService) Delete(ctx context.Context, id uint) error {
	return s.posts.Delete(ctx, id)
}
