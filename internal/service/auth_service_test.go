package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solospark/internal/model"
)

func userWithEmail(id, email string) *model.UserProfile {
	return &model.UserProfile{ID: id, Email: email}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "test-secret")

	_, err := svc.Login(context.Background(), "nobody@example.com")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginTokenRoundTrip(t *testing.T) {
	users := newFakeUserRepo()
	users.profiles["u1"] = userWithEmail("u1", "nova@example.com")
	svc := NewAuthService(users, "test-secret")

	resp, err := svc.Login(context.Background(), "  Nova@Example.com ")
	require.NoError(t, err)
	assert.Equal(t, "u1", resp.UserID)

	claims, err := svc.ValidateToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "u1", claims.UserID)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := NewAuthService(newFakeUserRepo(), "test-secret")

	_, err := svc.ValidateToken("not-a-token")

	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestValidateTokenRejectsWrongSecret(t *testing.T) {
	users := newFakeUserRepo()
	users.profiles["u1"] = userWithEmail("u1", "nova@example.com")

	resp, err := NewAuthService(users, "secret-a").Login(context.Background(), "nova@example.com")
	require.NoError(t, err)

	_, err = NewAuthService(users, "secret-b").ValidateToken(resp.Token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
