package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vivahsetu/vivahsetu/internal/infrastructure/kvstore"
)

func newAccounts(t *testing.T) *AccountService {
	t.Helper()
	return NewAccountService(kvstore.NewMemory(), nil)
}

func TestRegisterNormalizesEmail(t *testing.T) {
	ctx := context.Background()
	s := newAccounts(t)

	u, err := s.Register(ctx, "Alice", "Alice@X.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "alice@x.com", u.Email)
	assert.NotEmpty(t, u.ID)
	assert.Equal(t, "Alice", u.Name)
}

func TestRegisterDuplicateEmailCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	s := newAccounts(t)

	_, err := s.Register(ctx, "Alice", "a@x.com", "pw")
	require.NoError(t, err)

	_, err = s.Register(ctx, "Other", "A@X.com", "pw2")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestLoginCaseFoldedEmailSetsSession(t *testing.T) {
	ctx := context.Background()
	s := newAccounts(t)

	_, err := s.Register(ctx, "Alice", "a@x.com", "pw")
	require.NoError(t, err)

	u, err := s.Login(ctx, "A@X.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", u.Email)

	cur, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, "a@x.com", cur.Email)
}

func TestLoginWrongPassword(t *testing.T) {
	ctx := context.Background()
	s := newAccounts(t)

	_, err := s.Register(ctx, "Alice", "a@x.com", "pw")
	require.NoError(t, err)

	_, err = s.Login(ctx, "a@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	cur, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)
}

func TestLoginUnknownEmail(t *testing.T) {
	ctx := context.Background()
	s := newAccounts(t)

	_, err := s.Login(ctx, "nobody@x.com", "pw")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogoutClearsSession(t *testing.T) {
	ctx := context.Background()
	s := newAccounts(t)

	_, err := s.Register(ctx, "Alice", "a@x.com", "pw")
	require.NoError(t, err)
	_, err = s.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)

	require.NoError(t, s.Logout(ctx))

	cur, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)

	// Logout with no session is fine too.
	require.NoError(t, s.Logout(ctx))
}

func TestCurrentUserStaleSession(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	s := NewAccountService(store, nil)

	_, err := s.Register(ctx, "Alice", "a@x.com", "pw")
	require.NoError(t, err)
	_, err = s.Login(ctx, "a@x.com", "pw")
	require.NoError(t, err)

	// Directory cleared externally: the session email no longer resolves.
	require.NoError(t, store.Remove(ctx, "users"))

	cur, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)
}

func TestRegisterDoesNotSetSession(t *testing.T) {
	ctx := context.Background()
	s := newAccounts(t)

	_, err := s.Register(ctx, "Alice", "a@x.com", "pw")
	require.NoError(t, err)

	cur, err := s.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Nil(t, cur)
}
