package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-bookmarks/internal/app"
	"github.com/MKhiriev/go-bookmarks/internal/service"
	"github.com/MKhiriev/go-bookmarks/internal/utils"
	"github.com/MKhiriev/go-bookmarks/models"
)

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)
	return rr
}

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		setup       func(s *testServices)
		wantStatus  int
		wantMessage string
		wantNext    bool
	}{
		{
			name:        "missing header",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgUnauthorized,
		},
		{
			name:        "wrong scheme",
			header:      "Basic dXNlcjpwYXNz",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgUnauthorized,
		},
		{
			name:        "scheme only",
			header:      "Bearer",
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgUnauthorized,
		},
		{
			name:   "expired token",
			header: "Bearer old",
			setup: func(s *testServices) {
				s.auth.EXPECT().ParseToken(gomock.Any(), "old").Return(models.Token{}, service.ErrTokenIsExpired)
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgTokenIsExpired,
		},
		{
			name:   "invalid token",
			header: "Bearer forged",
			setup: func(s *testServices) {
				s.auth.EXPECT().ParseToken(gomock.Any(), "forged").Return(models.Token{}, service.ErrTokenIsExpiredOrInvalid)
			},
			wantStatus:  http.StatusUnauthorized,
			wantMessage: app.MsgTokenIsExpiredOrInvalid,
		},
		{
			name:   "valid token, lowercase scheme",
			header: "bearer " + testToken,
			setup: func(s *testServices) {
				s.expectAuthorized()
			},
			wantStatus: http.StatusOK,
			wantNext:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s := newTestHandler(t)
			if tt.setup != nil {
				tt.setup(s)
			}

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.header, next)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, tt.wantNext, nextCalled)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, decodeErrorResponse(t, rr).Message)
			}
		})
	}
}

func TestAuth_UserInContext(t *testing.T) {
	h, s := newTestHandler(t)
	s.expectAuthorized()

	var (
		gotID    int64
		gotEmail string
		okID     bool
		okEmail  bool
	)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID, okID = utils.GetUserIDFromContext(r.Context())
		gotEmail, okEmail = utils.GetEmailFromContext(r.Context())
	})

	executeAuth(h, "Bearer "+testToken, next)

	require.True(t, okID)
	require.True(t, okEmail)
	assert.Equal(t, testUserID, gotID)
	assert.Equal(t, "vlad@gmail.com", gotEmail)
}

func TestProtectedHandler_WithoutAuthMiddleware(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.getBookmarks(rr, httptest.NewRequest(http.MethodGet, "/bookmarks", nil))

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
