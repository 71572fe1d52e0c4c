package auth

import (
	"context"
	"testing"

	"github.com/attendly/attendance-backend-go/internal/domain/auth"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	users map[string]user.User // keyed by username
}

func (f *fakeUserRepo) Create(ctx context.Context, u user.User) (user.User, error) {
	f.users[u.Username] = u
	return u, nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (user.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) GetByUsername(ctx context.Context, username string) (user.User, error) {
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return user.User{}, user.ErrUserNotFound
}

func (f *fakeUserRepo) List(ctx context.Context) ([]user.User, error) {
	var out []user.User
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, u user.User) error { return nil }

func (f *fakeUserRepo) Delete(ctx context.Context, id string) error { return nil }

func newLoginService(t *testing.T) auth.AuthService {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-horse"), bcrypt.MinCost)
	require.NoError(t, err)

	repo := &fakeUserRepo{users: map[string]user.User{
		"alice": {
			ID:           "3d9a9c7e-5a1d-46a5-8b30-1f6f2b8a9c03",
			Username:     "alice",
			PasswordHash: string(hash),
			Role:         "user",
		},
	}}
	jwtSvc := jwt.NewJWTService("test-secret-key-for-jwt", "1h")
	return NewAuthService(repo, jwtSvc)
}

func TestLogin_Success(t *testing.T) {
	ctx := context.Background()
	svc := newLoginService(t)

	result, err := svc.Login(ctx, auth.LoginRequest{Username: "alice", Password: "correct-horse"})
	require.NoError(t, err)
	assert.NotEmpty(t, result.AccessToken)
	assert.Equal(t, "bearer", result.TokenType)
	assert.Greater(t, result.ExpiresAt, int64(0))
}

func TestLogin_WrongPassword(t *testing.T) {
	ctx := context.Background()
	svc := newLoginService(t)

	_, err := svc.Login(ctx, auth.LoginRequest{Username: "alice", Password: "wrong"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownUser(t *testing.T) {
	ctx := context.Background()
	svc := newLoginService(t)

	// Unknown usernames are indistinguishable from bad passwords.
	_, err := svc.Login(ctx, auth.LoginRequest{Username: "mallory", Password: "correct-horse"})
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_MissingFields(t *testing.T) {
	ctx := context.Background()
	svc := newLoginService(t)

	_, err := svc.Login(ctx, auth.LoginRequest{})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, auth.ErrInvalidCredentials)
}
