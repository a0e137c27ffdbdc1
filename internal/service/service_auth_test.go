package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-recipe-book/internal/config"
	"github.com/MKhiriev/go-recipe-book/internal/logger"
	"github.com/MKhiriev/go-recipe-book/internal/mock"
	"github.com/MKhiriev/go-recipe-book/internal/store"
	"github.com/MKhiriev/go-recipe-book/internal/utils"
	"github.com/MKhiriev/go-recipe-book/internal/validators"
	"github.com/MKhiriev/go-recipe-book/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

var testAppConfig = config.App{
	TokenSignKey:     "test-sign-key",
	TokenIssuer:      "go-recipe-book",
	TokenDuration:    time.Hour,
	PasswordHashCost: bcrypt.MinCost,
	Version:          "test",
}

var fixedNow = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

// newTestAuthSvc creates an authService with mocked dependencies.
func newTestAuthSvc(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *mock.MockIDGenerator) {
	t.Helper()
	users := mock.NewMockUserRepository(ctrl)
	ids := mock.NewMockIDGenerator(ctrl)

	svc := NewAuthService(users, testAppConfig, logger.Nop()).(*authService)
	svc.ids = ids
	svc.now = func() time.Time { return fixedNow }

	return svc, users, ids
}

func hashed(t *testing.T, password string) string {
	t.Helper()
	h, err := utils.HashPassword(password, bcrypt.MinCost)
	require.NoError(t, err)
	return h
}

// ── Register ─────────────────────────────────────────────────────────────────

func TestAuthService_Register_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, ids := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	ids.EXPECT().Generate().Return("u-1")
	users.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			assert.Equal(t, "u-1", u.ID)
			assert.Equal(t, "john@example.com", u.Email)
			assert.Equal(t, fixedNow, u.CreatedAt)
			assert.NotEqual(t, "secret1", u.Password, "password must be hashed before storing")
			ok, err := utils.CheckPassword(u.Password, "secret1")
			assert.NoError(t, err)
			assert.True(t, ok)
			return u, nil
		},
	)

	user, token, err := svc.Register(ctx, models.Credentials{Name: "John", Email: "john@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Empty(t, user.Password)

	parsed, err := utils.ValidateAndParseJWTToken(token.SignedString, testAppConfig.TokenSignKey, testAppConfig.TokenIssuer)
	require.NoError(t, err)
	assert.Equal(t, "u-1", parsed.UserID)
}

func TestAuthService_Register_InvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		credentials models.Credentials
	}{
		{"missing name", models.Credentials{Email: "john@example.com", Password: "secret1"}},
		{"bad email", models.Credentials{Name: "John", Email: "not-an-email", Password: "secret1"}},
		{"short password", models.Credentials{Name: "John", Email: "john@example.com", Password: "123"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestAuthSvc(t, ctrl)

			_, _, err := svc.Register(context.Background(), tt.credentials)
			assert.ErrorIs(t, err, validators.ErrInvalidUser)
		})
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, ids := newTestAuthSvc(t, ctrl)

	ids.EXPECT().Generate().Return("u-2")
	users.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrEmailAlreadyExists)

	_, _, err := svc.Register(context.Background(), models.Credentials{Name: "John", Email: "john@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, store.ErrEmailAlreadyExists)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)
	ctx := context.Background()

	users.EXPECT().FindUserByEmail(ctx, "john@example.com").
		Return(models.User{ID: "u-1", Email: "john@example.com", Password: hashed(t, "secret1")}, nil)

	user, token, err := svc.Login(ctx, models.Credentials{Email: "john@example.com", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "u-1", user.ID)
	assert.Empty(t, user.Password)
	assert.NotEmpty(t, token.SignedString)
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestAuthSvc(t, ctrl)

	_, _, err := svc.Login(context.Background(), models.Credentials{Email: "john@example.com"})
	assert.ErrorIs(t, err, validators.ErrMissingCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)

	users.EXPECT().FindUserByEmail(gomock.Any(), "nobody@example.com").Return(models.User{}, store.ErrUserNotFound)

	_, _, err := svc.Login(context.Background(), models.Credentials{Email: "nobody@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)

	users.EXPECT().FindUserByEmail(gomock.Any(), "john@example.com").
		Return(models.User{ID: "u-1", Password: hashed(t, "secret1")}, nil)

	_, _, err := svc.Login(context.Background(), models.Credentials{Email: "john@example.com", Password: "wrong-password"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthService_Login_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)

	users.EXPECT().FindUserByEmail(gomock.Any(), gomock.Any()).Return(models.User{}, store.ErrScanningRow)

	_, _, err := svc.Login(context.Background(), models.Credentials{Email: "john@example.com", Password: "secret1"})
	assert.ErrorIs(t, err, store.ErrScanningRow)
	assert.False(t, errors.Is(err, ErrInvalidCredentials))
}

// ── Authenticate ─────────────────────────────────────────────────────────────

func TestAuthService_Authenticate_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)

	token, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, "u-1", time.Hour, testAppConfig.TokenSignKey)
	require.NoError(t, err)

	users.EXPECT().FindUserByID(gomock.Any(), "u-1").Return(models.User{ID: "u-1", Name: "John", Password: "hash"}, nil)

	user, err := svc.Authenticate(context.Background(), token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, "John", user.Name)
	assert.Empty(t, user.Password)
}

func TestAuthService_Authenticate_Failures(t *testing.T) {
	otherKey, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, "u-1", time.Hour, "other-key")
	require.NoError(t, err)
	otherIssuer, err := utils.GenerateJWTToken("someone-else", "u-1", time.Hour, testAppConfig.TokenSignKey)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"garbage", "not.a.jwt"},
		{"wrong signing key", otherKey.SignedString},
		{"wrong issuer", otherIssuer.SignedString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _, _ := newTestAuthSvc(t, ctrl)

			_, err := svc.Authenticate(context.Background(), tt.token)
			assert.ErrorIs(t, err, ErrUnauthorized)
		})
	}
}

func TestAuthService_Authenticate_UnknownSubject(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, users, _ := newTestAuthSvc(t, ctrl)

	token, err := utils.GenerateJWTToken(testAppConfig.TokenIssuer, "deleted-user", time.Hour, testAppConfig.TokenSignKey)
	require.NoError(t, err)

	users.EXPECT().FindUserByID(gomock.Any(), "deleted-user").Return(models.User{}, store.ErrUserNotFound)

	_, err = svc.Authenticate(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrUnauthorized)
}
