package service

import (
	"context"
	"errors"
	"testing"

	"bloglist/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPostCreateDefaultsLikes(t *testing.T) {
	posts := new(MockPostRepository)
	accounts := new(MockAccountRepository)
	svc := NewPostService(posts, accounts)

	posts.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Post).ID = 1
	}).Return(nil)
	accounts.On("AppendPostID", mock.Anything, uint(7), uint(1)).Return(nil)

	post, err := svc.Create(context.Background(), CreatePostInput{
		Title: "Go proverbs",
		URL:   "https://go-proverbs.github.io",
	}, 7)
	require.NoError(t, err)

	assert.Equal(t, 0, post.Likes)
	assert.Equal(t, uint(7), post.OwnerID)
	posts.AssertExpectations(t)
	accounts.AssertExpectations(t)
}

func TestPostCreateValidation(t *testing.T) {
	posts := new(MockPostRepository)
	accounts := new(MockAccountRepository)
	svc := NewPostService(posts, accounts)
	ctx := context.Background()

	var appErr *models.AppError

	_, err := svc.Create(ctx, CreatePostInput{URL: "u"}, 7)
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Message, "title")

	_, err = svc.Create(ctx, CreatePostInput{Title: "t"}, 7)
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Message, "url")

	negative := -3
	_, err = svc.Create(ctx, CreatePostInput{Title: "t", URL: "u", Likes: &negative}, 7)
	require.True(t, errors.As(err, &appErr))
	assert.Contains(t, appErr.Message, "likes")

	posts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// The post insert and the back-reference append are two independent
// writes. When the append fails the post stays behind; nothing rolls
// it back. This test pins that gap.
func TestPostCreateBackReferenceFailureLeavesPost(t *testing.T) {
	posts := new(MockPostRepository)
	accounts := new(MockAccountRepository)
	svc := NewPostService(posts, accounts)

	posts.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Post).ID = 1
	}).Return(nil)
	accounts.On("AppendPostID", mock.Anything, uint(7), uint(1)).
		Return(models.NewNotFoundError("account", 7))

	_, err := svc.Create(context.Background(), CreatePostInput{Title: "t", URL: "u"}, 7)
	require.Error(t, err)

	// The post write happened and no delete compensates for it.
	posts.AssertCalled(t, "Create", mock.Anything, mock.Anything)
	posts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestPostUpdatePartialFields(t *testing.T) {
	posts := new(MockPostRepository)
	accounts := new(MockAccountRepository)
	svc := NewPostService(posts, accounts)

	existing := &models.Post{ID: 1, Title: "old", Author: "a", URL: "u", Likes: 2, OwnerID: 7}
	posts.On("GetByID", mock.Anything, uint(1)).Return(existing, nil)
	posts.On("Update", mock.Anything, mock.Anything).Return(nil)

	likes := 9
	post, err := svc.Update(context.Background(), 1, UpdatePostInput{Likes: &likes})
	require.NoError(t, err)

	assert.Equal(t, 9, post.Likes)
	assert.Equal(t, "old", post.Title)
	assert.Equal(t, uint(7), post.OwnerID)
}

func TestPostUpdateUnknownIDIsNil(t *testing.T) {
	posts := new(MockPostRepository)
	accounts := new(MockAccountRepository)
	svc := NewPostService(posts, accounts)

	posts.On("GetByID", mock.Anything, uint(99)).
		Return(nil, models.NewNotFoundError("post", 99))

	title := "t"
	post, err := svc.Update(context.Background(), 99, UpdatePostInput{Title: &title})
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestPostUpdateRejectsInvalidFields(t *testing.T) {
	posts := new(MockPostRepository)
	accounts := new(MockAccountRepository)
	svc := NewPostService(posts, accounts)
	ctx := context.Background()

	empty := ""
	_, err := svc.Update(ctx, 1, UpdatePostInput{Title: &empty})
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.KindValidation, appErr.Kind)

	negative := -1
	_, err = svc.Update(ctx, 1, UpdatePostInput{Likes: &negative})
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, models.KindValidation, appErr.Kind)

	posts.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestPostDeleteDelegates(t *testing.T) {
	posts := new(MockPostRepository)
	accounts := new(MockAccountRepository)
	svc := NewPostService(posts, accounts)

	posts.On("Delete", mock.Anything, uint(5)).Return(nil)
	require.NoError(t, svc.Delete(context.Background(), 5))
	posts.AssertExpectations(t)
}

func TestPostListAnnotatesOwner(t *testing.T) {
	posts := new(MockPostRepository)
	accounts := new(MockAccountRepository)
	svc := NewPostService(posts, accounts)

	owner := &models.Account{ID: 7, Username: "root", Name: "Root", PasswordHash: "hash"}
	posts.On("List", mock.Anything).Return([]models.Post{
		{ID: 1, Title: "a", URL: "u", OwnerID: 7, Owner: owner},
		{ID: 2, Title: "b", URL: "u", OwnerID: 7, Owner: owner},
	}, nil)

	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, p := range list {
		assert.Equal(t, "root", p.Owner.Username)
		assert.Equal(t, uint(7), p.Owner.ID)
	}
}
