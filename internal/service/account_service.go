// Package service implements the application's domain operations over
// the repository layer.
package service

import (
	"context"
	"strconv"

	"bloglist/internal/auth"
	"bloglist/internal/models"
	"bloglist/internal/repository"
)

// AccountService implements registration, listing and login.
type AccountService struct {
	accounts repository.AccountRepository
	hasher   *auth.PasswordHasher
	codec    *auth.TokenCodec
}

// NewAccountService returns a new AccountService.
func NewAccountService(accounts repository.AccountRepository, hasher *auth.PasswordHasher, codec *auth.TokenCodec) *AccountService {
	return &AccountService{accounts: accounts, hasher: hasher, codec: codec}
}

// Register validates and creates a new account. The plaintext password
// is hashed before the record is built and not retained.
func (s *AccountService) Register(ctx context.Context, username, name, password string) (*models.Account, error) {
	if err := models.ValidateRegistration(username, password); err != nil {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	account := &models.Account{
		Username:     username,
		Name:         name,
		PasswordHash: hash,
		PostIDs:      []uint{},
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// List returns all accounts.
func (s *AccountService) List(ctx context.Context) ([]models.Account, error) {
	return s.accounts.List(ctx)
}

// Login verifies the credentials and issues a bearer token for the
// account. Unknown username and wrong password are indistinguishable
// to the caller.
func (s *AccountService) Login(ctx context.Context, username, password string) (string, *models.Account, error) {
	account, err := s.accounts.GetByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if account == nil || !s.hasher.Verify(password, account.PasswordHash) {
		return "", nil, models.NewUnauthenticatedError("invalid username or password")
	}

	token, err := s.codec.Issue(strconv.FormatUint(uint64(account.ID), 10))
	if err != nil {
		return "", nil, models.NewInternalError(err)
	}
	return token, account, nil
}
