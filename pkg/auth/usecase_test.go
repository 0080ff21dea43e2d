package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memUserRepo struct {
	users []User
}

func (r *memUserRepo) Create(_ context.Context, u User) error {
	for _, existing := range r.users {
		if existing.Provider == "" && u.Provider == "" && existing.Email == u.Email {
			return ErrUserAlreadyExists
		}
	}
	r.users = append(r.users, u)
	return nil
}

func (r *memUserRepo) GetByEmail(_ context.Context, email string) (User, error) {
	for _, u := range r.users {
		if u.Provider == "" && u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

func (r *memUserRepo) GetBySubject(_ context.Context, provider, subject string) (User, error) {
	for _, u := range r.users {
		if u.Provider == provider && u.Subject == subject {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

type staticTokens struct{}

func (staticTokens) Generate(_ context.Context, u User) (string, error) {
	return "token-" + u.ID.String(), nil
}

func TestRegisterThenLogin(t *testing.T) {
	svc := NewAuthService(&memUserRepo{}, staticTokens{})

	reg, err := svc.Register(context.Background(), "anna@example.com", "secret")
	require.NoError(t, err)
	assert.NotEmpty(t, reg.Token)

	login, err := svc.Login(context.Background(), "anna@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, reg.User.ID, login.User.ID)
}

func TestLoginWrongPassword(t *testing.T) {
	svc := NewAuthService(&memUserRepo{}, staticTokens{})
	_, err := svc.Register(context.Background(), "anna@example.com", "secret")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "anna@example.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc := NewAuthService(&memUserRepo{}, staticTokens{})
	_, err := svc.Register(context.Background(), "anna@example.com", "secret")
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "anna@example.com", "other")
	require.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestLoginOAuthCreatesUserOnFirstRequest(t *testing.T) {
	repo := &memUserRepo{}
	svc := NewAuthService(repo, staticTokens{})

	first, err := svc.LoginOAuth(context.Background(), "google", "subj-1", "anna@example.com")
	require.NoError(t, err)
	assert.Equal(t, "google", first.User.Provider)
	assert.Equal(t, "subj-1", first.User.Subject)

	// Повторный вход возвращает тот же аккаунт, не создавая новый.
	second, err := svc.LoginOAuth(context.Background(), "google", "subj-1", "anna@example.com")
	require.NoError(t, err)
	assert.Equal(t, first.User.ID, second.User.ID)
	assert.Len(t, repo.users, 1)
}

func TestLoginOAuthAccountHasNoPassword(t *testing.T) {
	svc := NewAuthService(&memUserRepo{}, staticTokens{})
	_, err := svc.LoginOAuth(context.Background(), "google", "subj-1", "anna@example.com")
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "anna@example.com", "")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
