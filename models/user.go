// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User represents an account entity used for authentication and as the owner
// of bookmarks.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the store-assigned unique identifier of the user.
	UserID int64 `json:"id"`

	// Email is the unique login identifier of the user.
	Email string `json:"email"`

	// Hash is the encoded argon2id digest of the user's password.
	// It is never serialized into responses.
	Hash string `json:"-"`

	// FirstName is an optional display attribute.
	FirstName *string `json:"firstName"`

	// LastName is an optional display attribute.
	LastName *string `json:"lastName"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// UserUpdate describes a partial update of a user profile.
// Only non-nil fields are written.
type UserUpdate struct {
	Email     *string
	FirstName *string
	LastName  *string
}

// IsEmpty reports whether the update carries no fields to write.
func (u UserUpdate) IsEmpty() bool {
	return u.Email == nil && u.FirstName == nil && u.LastName == nil
}
