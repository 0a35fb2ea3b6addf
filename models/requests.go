// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// AuthRequest is the body of POST /auth/signup and POST /auth/signin.
type AuthRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// EditUserRequest is the partial body of PATCH /users.
// Absent fields are left unchanged.
type EditUserRequest struct {
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	FirstName *string `json:"firstName,omitempty"`
	LastName  *string `json:"lastName,omitempty"`
}

// ToUpdate converts the request into a store-level partial update.
func (r EditUserRequest) ToUpdate() UserUpdate {
	return UserUpdate{
		Email:     r.Email,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	}
}

// CreateBookmarkRequest is the body of POST /bookmarks.
type CreateBookmarkRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description,omitempty"`
	Link        string  `json:"link" validate:"required,url"`
}

// EditBookmarkRequest is the partial body of PATCH /bookmarks/{id}.
// Absent fields are left unchanged.
type EditBookmarkRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1"`
	Description *string `json:"description,omitempty"`
	Link        *string `json:"link,omitempty" validate:"omitempty,url"`
}

// IsEmpty reports whether the request carries no fields to change.
func (r EditBookmarkRequest) IsEmpty() bool {
	return r.Title == nil && r.Description == nil && r.Link == nil
}
