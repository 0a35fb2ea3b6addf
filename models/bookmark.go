// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Bookmark is a saved link owned exclusively by the user who created it.
type Bookmark struct {
	// ID is the store-assigned unique identifier of the bookmark.
	ID int64 `json:"id"`

	// UserID is the owner of the bookmark. It always comes from the
	// authenticated caller, never from the request body.
	UserID int64 `json:"userId"`

	Title       string  `json:"title"`
	Description *string `json:"description"`
	Link        string  `json:"link"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the Bookmark model.
func (b Bookmark) TableName() string {
	return "bookmarks"
}

// BookmarkUpdate represents criteria for updating a single bookmark.
// Only non-nil fields will be updated (partial update support).
type BookmarkUpdate struct {
	// ID is the unique identifier of the record to update.
	// Required.
	ID int64

	// UserID is the owner of the record.
	// Required for data isolation: rows of other users are never touched.
	UserID int64

	// Title is the new title. If nil, the field will not be updated.
	Title *string

	// Description is the new description. If nil, the field will not be updated.
	Description *string

	// Link is the new URL. If nil, the field will not be updated.
	Link *string
}
