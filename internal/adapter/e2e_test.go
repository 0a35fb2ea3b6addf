package adapter_test

import (
	"context"
	"fmt"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-bookmarks/internal/adapter"
	"github.com/MKhiriev/go-bookmarks/internal/config"
	"github.com/MKhiriev/go-bookmarks/internal/handler"
	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/internal/service"
	"github.com/MKhiriev/go-bookmarks/internal/store"
	"github.com/MKhiriev/go-bookmarks/internal/validators"
	"github.com/MKhiriev/go-bookmarks/models"
)

// newTestServer runs the whole server stack over an in-memory SQLite
// database and returns its URL.
func newTestServer(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	log := logger.Nop()

	cfg := config.StructuredConfig{
		App: config.App{
			TokenSignKey: "e2e-sign-key",
			TokenIssuer:  config.DefaultTokenIssuer,
			Version:      "e2e",
		},
		Storage: config.Storage{DB: config.DB{
			DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name()),
			Driver: config.DriverSQLite,
		}},
		Server: config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: 5 * time.Second},
	}

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	services, err := service.NewServices(storages, cfg, log)
	require.NoError(t, err)

	handlers, err := handler.NewHandlers(services, validators.NewRequestValidator(), cfg.Server, log)
	require.NoError(t, err)

	srv := httptest.NewServer(handlers.HTTP.Init())
	t.Cleanup(srv.Close)

	return srv.URL
}

func newClient(t *testing.T, url string) adapter.BookmarksAPI {
	t.Helper()
	api, err := adapter.NewHTTPBookmarksAPI(config.Adapter{HTTPAddress: url, RequestTimeout: 5 * time.Second}, logger.Nop())
	require.NoError(t, err)
	return api
}

func TestE2E_BookmarkLifecycle(t *testing.T) {
	ctx := context.Background()
	url := newTestServer(t)
	api := newClient(t, url)

	version, err := api.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "e2e", version)

	creds := models.AuthRequest{Email: "vlad@gmail.com", Password: "123"}

	_, err = api.SignUp(ctx, creds)
	require.NoError(t, err)

	_, err = api.SignUp(ctx, creds)
	assert.ErrorIs(t, err, adapter.ErrCredentialsTaken)

	_, err = api.SignIn(ctx, models.AuthRequest{Email: creds.Email, Password: "wrong"})
	assert.ErrorIs(t, err, adapter.ErrCredentialsIncorrect)

	token, err := api.SignIn(ctx, creds)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	me, err := api.Me(ctx)
	require.NoError(t, err)
	assert.Equal(t, creds.Email, me.Email)
	assert.Nil(t, me.FirstName)

	firstName := "Vladimir"
	me, err = api.EditMe(ctx, models.EditUserRequest{FirstName: &firstName})
	require.NoError(t, err)
	require.NotNil(t, me.FirstName)
	assert.Equal(t, firstName, *me.FirstName)
	assert.Equal(t, creds.Email, me.Email)

	list, err := api.ListBookmarks(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	created, err := api.CreateBookmark(ctx, models.CreateBookmarkRequest{Title: "Go", Link: "https://go.dev"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, me.UserID, created.UserID)
	assert.Nil(t, created.Description)

	got, err := api.GetBookmark(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Link, got.Link)

	description := "the language"
	edited, err := api.EditBookmark(ctx, created.ID, models.EditBookmarkRequest{Description: &description})
	require.NoError(t, err)
	assert.Equal(t, "Go", edited.Title)
	require.NotNil(t, edited.Description)
	assert.Equal(t, description, *edited.Description)

	list, err = api.ListBookmarks(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, created.ID, list[0].ID)

	require.NoError(t, api.DeleteBookmark(ctx, created.ID))

	list, err = api.ListBookmarks(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = api.GetBookmark(ctx, created.ID)
	assert.ErrorIs(t, err, adapter.ErrNotFound)

	assert.ErrorIs(t, api.DeleteBookmark(ctx, created.ID), adapter.ErrAccessDenied)
}

func TestE2E_OwnershipIsolation(t *testing.T) {
	ctx := context.Background()
	url := newTestServer(t)

	owner := newClient(t, url)
	_, err := owner.SignUp(ctx, models.AuthRequest{Email: "owner@gmail.com", Password: "123"})
	require.NoError(t, err)

	intruder := newClient(t, url)
	_, err = intruder.SignUp(ctx, models.AuthRequest{Email: "intruder@gmail.com", Password: "123"})
	require.NoError(t, err)

	bookmark, err := owner.CreateBookmark(ctx, models.CreateBookmarkRequest{Title: "Mine", Link: "https://example.com"})
	require.NoError(t, err)

	list, err := intruder.ListBookmarks(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = intruder.GetBookmark(ctx, bookmark.ID)
	assert.ErrorIs(t, err, adapter.ErrNotFound)

	title := "Stolen"
	_, err = intruder.EditBookmark(ctx, bookmark.ID, models.EditBookmarkRequest{Title: &title})
	assert.ErrorIs(t, err, adapter.ErrAccessDenied)

	assert.ErrorIs(t, intruder.DeleteBookmark(ctx, bookmark.ID), adapter.ErrAccessDenied)

	got, err := owner.GetBookmark(ctx, bookmark.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mine", got.Title)
}

func TestE2E_ValidationAndAuth(t *testing.T) {
	ctx := context.Background()
	api := newClient(t, newTestServer(t))

	_, err := api.SignUp(ctx, models.AuthRequest{Email: "not-an-email", Password: "123"})
	require.ErrorIs(t, err, adapter.ErrBadRequest)
	assert.Contains(t, err.Error(), "email must be a valid email")

	_, err = api.Me(ctx)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	api.SetToken("garbage")
	_, err = api.ListBookmarks(ctx)
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	_, err = api.SignUp(ctx, models.AuthRequest{Email: "vlad@gmail.com", Password: "123"})
	require.NoError(t, err)

	_, err = api.CreateBookmark(ctx, models.CreateBookmarkRequest{Title: "Bad", Link: "not a url"})
	require.ErrorIs(t, err, adapter.ErrBadRequest)
	assert.Contains(t, err.Error(), "link must be a URL address")
}
