// Package repository implements the data access layer for the application.
package repository

import (
	"context"
	"errors"
	"strings"

	"bloglist/internal/cache"
	"bloglist/internal/models"

	"gorm.io/gorm"
)

// AccountRepository defines persistence operations for accounts.
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	List(ctx context.Context) ([]models.Account, error)
	GetByID(ctx context.Context, id uint) (*models.Account, error)
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
	AppendPostID(ctx context.Context, accountID, postID uint) error
}

type accountRepository struct {
	db    *gorm.DB
	cache *cache.Cache
}

// NewAccountRepository returns a new AccountRepository implementation.
func NewAccountRepository(db *gorm.DB, c *cache.Cache) AccountRepository {
	return &accountRepository{db: db, cache: c}
}

func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewDuplicateKeyError("username")
		}
		return models.NewInternalError(err)
	}
	return nil
}

func (r *accountRepository) List(ctx context.Context) ([]models.Account, error) {
	var accounts []models.Account
	if err := r.db.WithContext(ctx).Order("id").Find(&accounts).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return accounts, nil
}

func (r *accountRepository) GetByID(ctx context.Context, id uint) (*models.Account, error) {
	var account models.Account
	key := cache.AccountKey(id)

	err := r.cache.Aside(ctx, key, &account, cache.AccountTTL, func() error {
		if err := r.db.WithContext(ctx).First(&account, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.NewNotFoundError("account", id)
			}
			return models.NewInternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *accountRepository) GetByUsername(ctx context.Context, username string) (*models.Account, error) {
	var account models.Account
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, models.NewInternalError(err)
	}
	return &account, nil
}

// AppendPostID records a post id in the account's back-reference list.
// This is a read-modify-write of a single record with no locking: two
// concurrent appends to the same account can lose one id, and a failure
// here leaves the already-written post without a back-reference.
func (r *accountRepository) AppendPostID(ctx context.Context, accountID, postID uint) error {
	var account models.Account
	if err := r.db.WithContext(ctx).First(&account, accountID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NewNotFoundError("account", accountID)
		}
		return models.NewInternalError(err)
	}

	account.PostIDs = append(account.PostIDs, postID)
	if err := r.db.WithContext(ctx).Save(&account).Error; err != nil {
		return models.NewInternalError(err)
	}

	r.cache.Invalidate(ctx, cache.AccountKey(accountID))
	return nil
}

// isUniqueConstraintError checks if a DB error is a unique constraint violation.
func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	// PostgreSQL unique violation SQLSTATE 23505; sqlite reports
	// "UNIQUE constraint failed".
	return strings.Contains(msg, "duplicate key") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "23505")
}
