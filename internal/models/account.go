// Package models contains data structures for the application's domain models.
package models

import (
	"time"
)

// Account represents a registered user account.
//
// PasswordHash is never serialized; every representation leaving the
// store boundary excludes it. PostIDs is a back-reference to the posts
// this account authored: the Post row owns the relationship, the
// account merely indexes it. The list lives in a single JSON column so
// appending to it is a plain read-modify-write of one record.
type Account struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Username     string    `gorm:"uniqueIndex;not null" json:"username"`
	Name         string    `json:"name"`
	PasswordHash string    `gorm:"not null" json:"-"`
	PostIDs      []uint    `gorm:"serializer:json" json:"postIds"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// OwnerRef is the projection of an account attached to posts returned
// by the API: identity fields only, never the hash.
type OwnerRef struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// Ref returns the owner projection of the account.
func (a *Account) Ref() OwnerRef {
	return OwnerRef{ID: a.ID, Username: a.Username, Name: a.Name}
}

const (
	// MinUsernameLen is the minimum accepted username length.
	MinUsernameLen = 3
	// MinPasswordLen is the minimum accepted plaintext password length.
	MinPasswordLen = 3
)

// ValidateRegistration checks the registration constraints. The message
// names the violated field.
func ValidateRegistration(username, password string) *AppError {
	if len(username) < MinUsernameLen {
		return NewValidationError("username must be at least 3 characters long")
	}
	if len(password) < MinPasswordLen {
		return NewValidationError("password must be at least 3 characters long")
	}
	return nil
}
