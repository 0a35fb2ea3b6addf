// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-bookmarks/models"
)

// rowScanner is implemented by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(
		&user.UserID,
		&user.Email,
		&user.Hash,
		&user.FirstName,
		&user.LastName,
		timestamp{&user.CreatedAt},
		timestamp{&user.UpdatedAt},
	)
	return user, err
}

func scanBookmark(row rowScanner) (models.Bookmark, error) {
	var bookmark models.Bookmark
	err := row.Scan(
		&bookmark.ID,
		&bookmark.UserID,
		&bookmark.Title,
		&bookmark.Description,
		&bookmark.Link,
		timestamp{&bookmark.CreatedAt},
		timestamp{&bookmark.UpdatedAt},
	)
	return bookmark, err
}

// timestamp scans a timestamp column into a time.Time. pgx always yields
// time.Time; go-sqlite3 yields text when it cannot see the declared column
// type (e.g. expression or RETURNING columns).
type timestamp struct {
	t *time.Time
}

func (ts timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*ts.t = v
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	case nil:
		*ts.t = time.Time{}
		return nil
	default:
		return fmt.Errorf("unsupported timestamp source type %T", src)
	}
}

func (ts timestamp) parse(s string) error {
	for _, layout := range sqlite3.SQLiteTimestampFormats {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*ts.t = t
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp format %q", s)
}
