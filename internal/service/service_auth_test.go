package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-bookmarks/internal/config"
	"github.com/MKhiriev/go-bookmarks/internal/logger"
	"github.com/MKhiriev/go-bookmarks/internal/mock"
	"github.com/MKhiriev/go-bookmarks/internal/store"
	"github.com/MKhiriev/go-bookmarks/internal/utils"
	"github.com/MKhiriev/go-bookmarks/models"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "go-bookmarks-test"
)

func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *mock.MockPasswordHasher) {
	t.Helper()
	repo := mock.NewMockUserRepository(ctrl)
	hasher := mock.NewMockPasswordHasher(ctrl)

	svc := NewAuthService(repo, hasher, config.App{TokenSignKey: testSignKey, TokenIssuer: testIssuer}, logger.Nop()).(*authService)

	return svc, repo, hasher
}

// ── SignUp ───────────────────────────────────────────────────────────────────

func TestAuthService_SignUp_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		hasher.EXPECT().Hash("super-secret").Return("$argon2id$encoded", nil),
		repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.Equal(t, "vlad@gmail.com", u.Email)
				assert.Equal(t, "$argon2id$encoded", u.Hash, "only the hash is stored")
				u.UserID = 42
				return u, nil
			},
		),
	)

	token, err := svc.SignUp(ctx, models.AuthRequest{Email: "vlad@gmail.com", Password: "super-secret"})
	require.NoError(t, err)

	parsed, err := utils.ValidateAndParseJWTToken(token.SignedString, testSignKey, testIssuer)
	require.NoError(t, err)
	assert.Equal(t, int64(42), parsed.UserID)
	assert.Equal(t, "vlad@gmail.com", parsed.Email)
}

func TestAuthService_SignUp_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
		Return(models.User{}, store.ErrEmailAlreadyExists)

	_, err := svc.SignUp(context.Background(), models.AuthRequest{Email: "vlad@gmail.com", Password: "x"})
	assert.ErrorIs(t, err, ErrCredentialsTaken)
}

func TestAuthService_SignUp_HashFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, hasher := newTestAuthSvc(t, ctrl)

	hasher.EXPECT().Hash(gomock.Any()).Return("", errors.New("no entropy"))

	_, err := svc.SignUp(context.Background(), models.AuthRequest{Email: "vlad@gmail.com", Password: "x"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrCredentialsTaken)
}

func TestAuthService_SignUp_StoreFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, repo, hasher := newTestAuthSvc(t, ctrl)

	dbErr := errors.New("connection reset")
	hasher.EXPECT().Hash(gomock.Any()).Return("hash", nil)
	repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, dbErr)

	_, err := svc.SignUp(context.Background(), models.AuthRequest{Email: "vlad@gmail.com", Password: "x"})
	assert.ErrorIs(t, err, dbErr)
}

// ── SignIn ───────────────────────────────────────────────────────────────────

func TestAuthService_SignIn(t *testing.T) {
	stored := models.User{UserID: 7, Email: "vlad@gmail.com", Hash: "$argon2id$stored"}

	tests := []struct {
		name    string
		setup   func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher)
		wantErr error
		anyErr  bool
	}{
		{
			name: "success",
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), "vlad@gmail.com").Return(stored, nil)
				hasher.EXPECT().Verify("secret", stored.Hash).Return(true, nil)
			},
		},
		{
			name: "unknown email",
			setup: func(repo *mock.MockUserRepository, _ *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), "vlad@gmail.com").Return(models.User{}, store.ErrNoUserWasFound)
			},
			wantErr: ErrCredentialsIncorrect,
		},
		{
			name: "wrong password",
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), "vlad@gmail.com").Return(stored, nil)
				hasher.EXPECT().Verify("secret", stored.Hash).Return(false, nil)
			},
			wantErr: ErrCredentialsIncorrect,
		},
		{
			name: "corrupt stored hash",
			setup: func(repo *mock.MockUserRepository, hasher *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), "vlad@gmail.com").Return(stored, nil)
				hasher.EXPECT().Verify("secret", stored.Hash).Return(false, errors.New("invalid hash"))
			},
			anyErr: true,
		},
		{
			name: "store failure",
			setup: func(repo *mock.MockUserRepository, _ *mock.MockPasswordHasher) {
				repo.EXPECT().FindUserByEmail(gomock.Any(), "vlad@gmail.com").Return(models.User{}, store.ErrExecutingQuery)
			},
			wantErr: store.ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, repo, hasher := newTestAuthSvc(t, ctrl)
			tt.setup(repo, hasher)

			token, err := svc.SignIn(context.Background(), models.AuthRequest{Email: "vlad@gmail.com", Password: "secret"})
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.anyErr:
				require.Error(t, err)
				assert.NotErrorIs(t, err, ErrCredentialsIncorrect)
			default:
				require.NoError(t, err)
				assert.Equal(t, stored.UserID, token.UserID)
				assert.NotEmpty(t, token.SignedString)
			}
		})
	}
}

// ── Tokens ───────────────────────────────────────────────────────────────────

func TestAuthService_SignToken_ExpiresInFifteenMinutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	token, err := svc.SignToken(context.Background(), 1, "a@b.c")
	require.NoError(t, err)

	exp, err := token.Claims.GetExpirationTime()
	require.NoError(t, err)
	iat, err := token.Claims.GetIssuedAt()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, exp.Sub(iat.Time))
}

func TestAuthService_SignToken_NoSignKey(t *testing.T) {
	svc := NewAuthService(nil, nil, config.App{TokenIssuer: testIssuer}, logger.Nop())

	_, err := svc.SignToken(context.Background(), 1, "a@b.c")
	assert.ErrorIs(t, err, ErrTokenCreationFailed)
}

func TestAuthService_ParseToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	valid, err := svc.SignToken(ctx, 5, "a@b.c")
	require.NoError(t, err)

	expired, err := utils.GenerateJWTToken(testIssuer, 5, "a@b.c", -time.Minute, testSignKey)
	require.NoError(t, err)

	foreign, err := utils.GenerateJWTToken("someone-else", 5, "a@b.c", time.Minute, testSignKey)
	require.NoError(t, err)

	forged, err := utils.GenerateJWTToken(testIssuer, 5, "a@b.c", time.Minute, "other-key")
	require.NoError(t, err)

	parsed, err := svc.ParseToken(ctx, valid.SignedString)
	require.NoError(t, err)
	assert.Equal(t, int64(5), parsed.UserID)
	assert.Equal(t, "a@b.c", parsed.Email)

	_, err = svc.ParseToken(ctx, expired.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)

	for _, raw := range []string{foreign.SignedString, forged.SignedString, "not-a-jwt", ""} {
		_, err = svc.ParseToken(ctx, raw)
		assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid, raw)
	}
}
