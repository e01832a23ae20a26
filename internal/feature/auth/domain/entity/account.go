// Package entity defines the domain entities for the auth feature.
package entity

import "time"

// Account represents a registered account in the system.
// It is the only persisted entity: created once via register,
// read via login, never updated or deleted.
type Account struct {
	// ID is the unique identifier for the account, assigned by the store.
	ID uint `gorm:"primaryKey"`

	// Username is the natural key used for lookup.
	// It is stored trimmed and must be unique (case-sensitive).
	Username string `gorm:"uniqueIndex;size:50;not null"`

	// Password is the bcrypt hash of the account password.
	// This never stores plaintext and is never serialized to a caller.
	Password string `gorm:"size:255;not null" json:"-"`

	// Email is an optional contact address, stored trimmed or NULL.
	Email *string `gorm:"size:100"`

	// Phone is an optional contact number, stored trimmed or NULL.
	Phone *string `gorm:"size:20"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time
}

// TableName maps the entity onto the users table created by the
// original schema.
func (Account) TableName() string {
	return "users"
}
