package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rifaapp/rifa-api/internal/domain"
)

func TestAuthService_SignupAndLogin(t *testing.T) {
	repo := &fakeUserRepo{byEmail: map[string]domain.User{}}
	s := NewAuthService(repo)

	user, err := s.Signup(context.Background(), domain.User{
		Email:    " Org@Example.com ",
		Password: "secret123",
		Name:     "Org",
	})
	require.NoError(t, err)
	assert.Equal(t, "org@example.com", user.Email)
	assert.NotEqual(t, "secret123", user.Password)

	_, err = s.Signup(context.Background(), domain.User{Email: "org@example.com", Password: "other123"})
	assert.ErrorIs(t, err, ErrUserEmailExists)

	logged, err := s.Login(context.Background(), "ORG@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, logged.ID)

	_, err = s.Login(context.Background(), "org@example.com", "wrong1234")
	assert.ErrorIs(t, err, ErrWrongPassword)

	_, err = s.Login(context.Background(), "nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrUserNotFound)

	found, err := NewUserService(repo).FindByID(context.Background(), user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)
}
