package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/domain"
	userdto "github.com/khaledhaj12/Nanus-Website-Sales-Report-sub001/internal/usecase/dto/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuth(t *testing.T, f *fixture) *DefaultAuthUsecase {
	t.Helper()
	auth, err := NewDefaultAuthUsecase(f.userRepo, f.sessionRepo, time.Hour, bcrypt.MinCost)
	require.NoError(t, err)
	return auth
}

func TestAuthUsecase_LoginAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	auth := newAuth(t, f)

	created, err := f.users.Create(ctx, &userdto.CreateUserInput{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, created.Role)
	assert.True(t, created.MustChangePassword)

	_, _, err = auth.Login(ctx, "alice", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, _, err = auth.Login(ctx, "nobody", "secret1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	session, user, err := auth.Login(ctx, "alice", "secret1")
	require.NoError(t, err)
	assert.Len(t, session.Token, sessionTokenLength)
	assert.Equal(t, created.ID, user.ID)

	got, err := auth.Authenticate(ctx, session.Token)
	require.NoError(t, err)
	assert.Equal(t, "alice", got.Username)

	require.NoError(t, auth.Logout(ctx, session.Token))
	_, err = auth.Authenticate(ctx, session.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuthUsecase_ExpiredSession(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	auth := newAuth(t, f)
	_, err := f.users.Create(ctx, &userdto.CreateUserInput{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	session, _, err := auth.Login(ctx, "alice", "secret1")
	require.NoError(t, err)

	auth.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = auth.Authenticate(ctx, session.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = f.sessionRepo.Get(ctx, session.Token)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAuthUsecase_PurgeExpiredSessions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	auth := newAuth(t, f)
	_, err := f.users.Create(ctx, &userdto.CreateUserInput{Username: "alice", Password: "secret1"})
	require.NoError(t, err)
	_, _, err = auth.Login(ctx, "alice", "secret1")
	require.NoError(t, err)

	purged, err := auth.PurgeExpiredSessions(ctx)
	require.NoError(t, err)
	assert.Zero(t, purged)

	auth.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	purged, err = auth.PurgeExpiredSessions(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, purged)
}

func TestAuthUsecase_ChangePassword(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	auth := newAuth(t, f)
	user, err := f.users.Create(ctx, &userdto.CreateUserInput{Username: "alice", Password: "secret1"})
	require.NoError(t, err)

	assert.ErrorIs(t, auth.ChangePassword(ctx, user, "nope", "secret2"), domain.ErrValidation)
	assert.ErrorIs(t, auth.ChangePassword(ctx, user, "secret1", "secret1"), domain.ErrValidation)
	assert.ErrorIs(t, auth.ChangePassword(ctx, user, "secret1", "abc"), domain.ErrValidation)

	require.NoError(t, auth.ChangePassword(ctx, user, "secret1", "secret2"))
	_, logged, err := auth.Login(ctx, "alice", "secret2")
	require.NoError(t, err)
	assert.False(t, logged.MustChangePassword)
}

func TestUserUsecase_Lifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	auth := newAuth(t, f)

	admin, err := f.users.Create(ctx, &userdto.CreateUserInput{Username: "root", Password: "secret1", Role: "Admin"})
	require.NoError(t, err)
	assert.True(t, admin.IsAdmin())

	_, err = f.users.Create(ctx, &userdto.CreateUserInput{Username: "root", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	_, err = f.users.Create(ctx, &userdto.CreateUserInput{Username: "bob", Password: "secret1", Role: "owner"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	bob, err := f.users.Create(ctx, &userdto.CreateUserInput{Username: "bob", Password: "secret1"})
	require.NoError(t, err)
	session, _, err := auth.Login(ctx, "bob", "secret1")
	require.NoError(t, err)

	inactive := false
	_, err = f.users.Update(ctx, bob.ID, &userdto.UpdateUserInput{IsActive: &inactive})
	require.NoError(t, err)
	_, err = auth.Authenticate(ctx, session.Token)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	_, _, err = auth.Login(ctx, "bob", "secret1")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	assert.ErrorIs(t, f.users.Delete(ctx, admin, admin.ID), domain.ErrValidation)
	require.NoError(t, f.users.Delete(ctx, admin, bob.ID))
	_, err = f.users.Get(ctx, bob.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
