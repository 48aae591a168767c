package services

import (
	"context"
	"testing"

	apierrors "github.com/borsibaar/barpos/internal/errors"
	"github.com/borsibaar/barpos/internal/repository"
	"github.com/borsibaar/barpos/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestAuthService_SignupAndLogin(t *testing.T) {
	db := testutil.NewDB(t)
	service := NewAuthService(repository.NewUserRepository(db))
	ctx := context.Background()

	user, err := service.Signup(ctx, SignupInput{Email: "  Bartender@Example.com ", Name: "Bart", Password: "supersecret"})
	require.NoError(t, err)
	require.Equal(t, "bartender@example.com", user.Email)
	require.False(t, user.HasOrganization())
	require.Nil(t, user.RoleID)

	_, err = service.Signup(ctx, SignupInput{Email: "bartender@example.com", Name: "Again", Password: "supersecret"})
	require.ErrorIs(t, err, ErrEmailTaken)

	_, err = service.Signup(ctx, SignupInput{Email: "short@example.com", Name: "Short", Password: "short"})
	require.ErrorIs(t, err, ErrPasswordTooShort)

	loggedIn, err := service.Login(ctx, LoginInput{Email: "BARTENDER@example.com", Password: "supersecret"})
	require.NoError(t, err)
	require.Equal(t, user.ID, loggedIn.ID)

	_, err = service.Login(ctx, LoginInput{Email: "bartender@example.com", Password: "wrong-password"})
	require.Equal(t, apierrors.KindInvalidCredentials, apierrors.KindOf(err))

	_, err = service.Login(ctx, LoginInput{Email: "ghost@example.com", Password: "supersecret"})
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
