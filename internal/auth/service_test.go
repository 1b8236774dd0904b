package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"

	"github.com/dhruvbhat/kagaz/internal/auth"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	user := &auth.User{ID: uuid.New(), Username: "asha"}

	token, err := tokens.Generate(user)
	require.NoError(t, err)

	userID, claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "asha", claims.Username)
}

func TestTokenManager_Verify_Rejects(t *testing.T) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)

	_, _, err := tokens.Verify("not.a.token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	// Signed with a different secret.
	other, err := auth.NewTokenManager("other-secret", time.Hour).
		Generate(&auth.User{ID: uuid.New(), Username: "x"})
	require.NoError(t, err)

	_, _, err = tokens.Verify(other)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	// Expired.
	expired, err := auth.NewTokenManager("test-secret", -time.Minute).
		Generate(&auth.User{ID: uuid.New(), Username: "x"})
	require.NoError(t, err)

	_, _, err = tokens.Verify(expired)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &auth.User{ID: uuid.New(), Username: "asha", PasswordHash: string(hash)}

	repo := auth.NewMockRepository(ctrl)
	repo.EXPECT().GetUserByUsername(gomock.Any(), "asha").Return(user, nil).Times(2)
	repo.EXPECT().GetUserByUsername(gomock.Any(), "ghost").Return(nil, auth.ErrNotFound)

	tokens := auth.NewTokenManager("test-secret", time.Hour)
	svc := auth.NewService(repo, tokens)

	// Username is trimmed and lowercased before lookup.
	token, got, err := svc.Login(context.Background(), " Asha ", "hunter2")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	userID, _, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)

	_, _, err = svc.Login(context.Background(), "asha", "wrong")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)

	// Unknown users get the same error as bad passwords.
	_, _, err = svc.Login(context.Background(), "ghost", "hunter2")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := auth.NewMockRepository(ctrl)
	repo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *auth.User) error {
			assert.Equal(t, "vikram", u.Username)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("s3cret")))
			return nil
		})

	svc := auth.NewService(repo, auth.NewTokenManager("test-secret", time.Hour))

	u, err := svc.Register(context.Background(), " Vikram ", "Vikram Shah", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, "Vikram Shah", u.DisplayName)

	_, err = svc.Register(context.Background(), "x", "", "")
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}
