// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-bookmarks/models"
)

const (
	usersTable     = "users"
	bookmarksTable = "bookmarks"
)

var (
	userColumns     = []string{"id", "email", "hash", "first_name", "last_name", "created_at", "updated_at"}
	bookmarkColumns = []string{"id", "user_id", "title", "description", "link", "created_at", "updated_at"}

	returningUser     = "RETURNING " + strings.Join(userColumns, ", ")
	returningBookmark = "RETURNING " + strings.Join(bookmarkColumns, ", ")
)

// Query builders take the dialect's statement builder, so the same code
// renders $n placeholders for Postgres and ? for SQLite.

func buildCreateUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("email", "hash", "first_name", "last_name").
		Values(user.Email, user.Hash, user.FirstName, user.LastName).
		Suffix(returningUser).
		ToSql()
}

func buildFindUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func buildFindUserByIDQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"id": userID}).
		ToSql()
}

// buildUpdateUserQuery sets only the non-nil fields of update; updated_at is
// always refreshed.
func buildUpdateUserQuery(b sq.StatementBuilderType, userID int64, update models.UserUpdate, now time.Time) (string, []any, error) {
	query := b.Update(usersTable)

	if update.Email != nil {
		query = query.Set("email", *update.Email)
	}
	if update.FirstName != nil {
		query = query.Set("first_name", *update.FirstName)
	}
	if update.LastName != nil {
		query = query.Set("last_name", *update.LastName)
	}

	return query.
		Set("updated_at", now).
		Where(sq.Eq{"id": userID}).
		Suffix(returningUser).
		ToSql()
}

func buildCreateBookmarkQuery(b sq.StatementBuilderType, bookmark models.Bookmark) (string, []any, error) {
	return b.Insert(bookmarksTable).
		Columns("user_id", "title", "description", "link").
		Values(bookmark.UserID, bookmark.Title, bookmark.Description, bookmark.Link).
		Suffix(returningBookmark).
		ToSql()
}

func buildGetBookmarksQuery(b sq.StatementBuilderType, userID int64) (string, []any, error) {
	return b.Select(bookmarkColumns...).
		From(bookmarksTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id").
		ToSql()
}

func buildGetBookmarkByIDQuery(b sq.StatementBuilderType, bookmarkID int64) (string, []any, error) {
	return b.Select(bookmarkColumns...).
		From(bookmarksTable).
		Where(sq.Eq{"id": bookmarkID}).
		ToSql()
}

// buildUpdateBookmarkQuery is scoped by both id and user_id: a bookmark owned
// by someone else matches no row.
func buildUpdateBookmarkQuery(b sq.StatementBuilderType, update models.BookmarkUpdate, now time.Time) (string, []any, error) {
	query := b.Update(bookmarksTable)

	if update.Title != nil {
		query = query.Set("title", *update.Title)
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
	}
	if update.Link != nil {
		query = query.Set("link", *update.Link)
	}

	return query.
		Set("updated_at", now).
		Where(sq.Eq{"id": update.ID, "user_id": update.UserID}).
		Suffix(returningBookmark).
		ToSql()
}

func buildDeleteBookmarkQuery(b sq.StatementBuilderType, userID, bookmarkID int64) (string, []any, error) {
	return b.Delete(bookmarksTable).
		Where(sq.Eq{"id": bookmarkID, "user_id": userID}).
		ToSql()
}
