package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-bookmarks/internal/config"
	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/internal/utils"
	"github.com/MKhiriev/go-bookmarks/models"
)

type httpBookmarksAPI struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPBookmarksAPI constructs the REST implementation of [BookmarksAPI].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying client with the request timeout. A non-empty
// adapterCfg.Token is used for authenticated calls until SignUp or SignIn
// replaces it.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPBookmarksAPI(adapterCfg config.Adapter, logger *logger.Logger) (BookmarksAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	api := &httpBookmarksAPI{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	api.SetToken(adapterCfg.Token)

	return api, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpBookmarksAPI) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpBookmarksAPI) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// SignUp POSTs the credentials to /auth/signup and stores the access token
// from the response body.
func (h *httpBookmarksAPI) SignUp(ctx context.Context, req models.AuthRequest) (string, error) {
	return h.authenticate(ctx, "/auth/signup", req)
}

// SignIn POSTs the credentials to /auth/signin and stores the access token
// from the response body.
func (h *httpBookmarksAPI) SignIn(ctx context.Context, req models.AuthRequest) (string, error) {
	return h.authenticate(ctx, "/auth/signin", req)
}

func (h *httpBookmarksAPI) authenticate(ctx context.Context, path string, req models.AuthRequest) (string, error) {
	var token models.AccessTokenResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(req).
		SetResult(&token).
		Post(path)
	if err != nil {
		return "", fmt.Errorf("%s request: %w", path, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if token.AccessToken == "" {
		return "", fmt.Errorf("%s: %w", path, ErrNoToken)
	}

	h.SetToken(token.AccessToken)
	h.logger.Debug().Str("func", "httpBookmarksAPI.authenticate").Str("path", path).Msg("access token received")

	return token.AccessToken, nil
}

func (h *httpBookmarksAPI) Me(ctx context.Context) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetResult(&user).
		Get("/users/me")
	if err != nil {
		return models.User{}, fmt.Errorf("me request: %w", err)
	}

	return user, mapHTTPError(resp)
}

func (h *httpBookmarksAPI) EditMe(ctx context.Context, req models.EditUserRequest) (models.User, error) {
	var user models.User

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&user).
		Patch("/users")
	if err != nil {
		return models.User{}, fmt.Errorf("edit me request: %w", err)
	}

	return user, mapHTTPError(resp)
}

func (h *httpBookmarksAPI) ListBookmarks(ctx context.Context) ([]models.Bookmark, error) {
	bookmarks := make([]models.Bookmark, 0)

	resp, err := h.authedRequest(ctx).
		SetResult(&bookmarks).
		Get("/bookmarks")
	if err != nil {
		return nil, fmt.Errorf("list bookmarks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return bookmarks, nil
}

func (h *httpBookmarksAPI) GetBookmark(ctx context.Context, bookmarkID int64) (models.Bookmark, error) {
	var bookmark models.Bookmark

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(bookmarkID, 10)).
		SetResult(&bookmark).
		Get("/bookmarks/{id}")
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("get bookmark request: %w", err)
	}

	return bookmark, mapHTTPError(resp)
}

func (h *httpBookmarksAPI) CreateBookmark(ctx context.Context, req models.CreateBookmarkRequest) (models.Bookmark, error) {
	var bookmark models.Bookmark

	resp, err := h.authedRequest(ctx).
		SetBody(req).
		SetResult(&bookmark).
		Post("/bookmarks")
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("create bookmark request: %w", err)
	}

	return bookmark, mapHTTPError(resp)
}

func (h *httpBookmarksAPI) EditBookmark(ctx context.Context, bookmarkID int64, req models.EditBookmarkRequest) (models.Bookmark, error) {
	var bookmark models.Bookmark

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(bookmarkID, 10)).
		SetBody(req).
		SetResult(&bookmark).
		Patch("/bookmarks/{id}")
	if err != nil {
		return models.Bookmark{}, fmt.Errorf("edit bookmark request: %w", err)
	}

	return bookmark, mapHTTPError(resp)
}

func (h *httpBookmarksAPI) DeleteBookmark(ctx context.Context, bookmarkID int64) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", strconv.FormatInt(bookmarkID, 10)).
		Delete("/bookmarks/{id}")
	if err != nil {
		return fmt.Errorf("delete bookmark request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpBookmarksAPI) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Accept", "text/plain").
		Get("/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpBookmarksAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
