package models

import (
	"time"
)

// Post represents an authored link post.
//
// OwnerID is set once at creation from the resolved identity and never
// changes afterwards. Referential validity of OwnerID is enforced at
// creation time only.
type Post struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"not null" json:"title"`
	Author    string    `json:"author"`
	URL       string    `gorm:"not null" json:"url"`
	Likes     int       `gorm:"not null;default:0" json:"likes"`
	OwnerID   uint      `gorm:"not null;index" json:"ownerId"`
	Owner     *Account  `gorm:"foreignKey:OwnerID" json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// PostWithOwner is the list representation of a post, annotated with
// the owner projection.
type PostWithOwner struct {
	Post
	Owner OwnerRef `json:"owner"`
}

// WithOwner attaches the owner projection to the post. A missing
// preloaded owner leaves a zero projection rather than failing; the
// store does not guarantee continued referential validity.
func (p *Post) WithOwner() PostWithOwner {
	out := PostWithOwner{Post: *p}
	if p.Owner != nil {
		out.Owner = p.Owner.Ref()
	}
	return out
}

// ValidatePostFields checks the field constraints shared by create and
// update. Pointer arguments distinguish "absent" from "supplied empty".
func ValidatePostFields(title, url *string, likes *int) *AppError {
	if title != nil && *title == "" {
		return NewValidationError("title is required")
	}
	if url != nil && *url == "" {
		return NewValidationError("url is required")
	}
	if likes != nil && *likes < 0 {
		return NewValidationError("likes must not be negative")
	}
	return nil
}
