package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/JoseAcuna0/insightflow-users-service/internal/domain/user"
	memoryuser "github.com/JoseAcuna0/insightflow-users-service/internal/infrastructure/db/memory/user"
	"github.com/JoseAcuna0/insightflow-users-service/internal/infrastructure/jwt"
)

func newJWTService() *jwt.Service { return jwt.New("test-secret") }

func TestGenerateToken_ExactPasswordMatch(t *testing.T) {
	as := NewAuthService(newJWTService())
	u := &domain.User{Password: "test", Username: "j_acuna"}

	tok, err := as.GenerateToken(u, "test")
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
}

func TestGenerateToken_PasswordIsCaseSensitive(t *testing.T) {
	as := NewAuthService(newJWTService())
	u := &domain.User{Password: "Secret", Username: "admin"}

	tests := []struct {
		name     string
		password string
	}{
		{"wrong case", "secret"},
		{"wrong password", "other"},
		{"empty password", ""},
		{"prefix only", "Secr"},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			_, err := as.GenerateToken(u, tt.password)
			// Always the same failure kind, never which field was wrong.
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthenticate_IdentifierCaseInsensitive(t *testing.T) {
	store := memoryuser.NewStore()
	us := NewUserService(store, nil, nil)
	as := NewAuthService(newJWTService())
	ctx := context.Background()

	_, err := us.CreateUser(ctx, domain.User{
		FullName:    "Administrador InsightFlow",
		Email:       "admin@insightflow.com",
		Username:    "admin",
		Password:    "password123",
		DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	for _, identifier := range []string{"admin", "ADMIN", "Admin", "admin@insightflow.com", "ADMIN@INSIGHTFLOW.COM"} {
		u, err := us.FindUserByIdentifier(ctx, identifier)
		require.NoError(t, err, identifier)
		require.NotNil(t, u, identifier)

		tok, err := as.GenerateToken(u, "password123")
		require.NoError(t, err, identifier)
		assert.NotEmpty(t, tok)
	}

	u, err := us.FindUserByIdentifier(ctx, "unknown")
	require.NoError(t, err)
	assert.Nil(t, u)
}
