package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubTokens struct{}

func (stubTokens) Generate(_ context.Context, u User) (string, error) {
	return "token-" + string(u.Role), nil
}

func TestLogin(t *testing.T) {
	t.Parallel()
	svc := NewAuthService(stubTokens{})
	ctx := context.Background()

	res, err := svc.Login(ctx, "  a@b.co ", "pw", RoleWorker)
	require.NoError(t, err)
	assert.Equal(t, User{ID: 1, Email: "a@b.co", Name: "Test User", Role: RoleWorker}, res.User)
	assert.Equal(t, "token-worker", res.Token)

	res, err = svc.Login(ctx, "a@b.co", "pw", Role("admin"))
	require.NoError(t, err)
	assert.Equal(t, RoleClient, res.User.Role)

	_, err = svc.Login(ctx, "", "pw", RoleClient)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "a@b.co", "", RoleClient)
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
