package services_test

import (
	"testing"
	"time"

	"moonlight/auth"
	"moonlight/errors"
	"moonlight/mocks"
	"moonlight/repositories"
	. "moonlight/services"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewAuthService(mockRepo, 24*time.Hour)

	t.Run("should register successfully when input is valid", func(t *testing.T) {
		req := require.New(t)
		login := "alice42"
		password := "ComplexPass123!"
		expectedUserID := "user-uuid"

		// Expect CreateUser to be called with a hashed password (not the plain one)
		mockRepo.EXPECT().
			CreateUser(login, gomock.Any()).
			Return(expectedUserID, nil).
			Times(1)

		token, err := svc.Register(login, password)

		req.NoError(err)
		req.NotEmpty(token)
	})

	t.Run("should fail when password complexity is not met", func(t *testing.T) {
		req := require.New(t)
		login := "alice42"
		password := "simplepassword"

		// Repository should NEVER be called
		mockRepo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).Times(0)

		token, err := svc.Register(login, password)

		req.Error(err)
		req.ErrorIs(err, errors.ErrInvalidPassword)
		req.Empty(token)
	})

	t.Run("should fail when login is already taken", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().
			CreateUser("duplicate1", gomock.Any()).
			Return("", errors.ErrUserAlreadyExists).
			Times(1)

		_, err := svc.Register("duplicate1", "ComplexPass123!")

		req.ErrorIs(err, errors.ErrUserAlreadyExists)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockIUserRepository(ctrl)
	svc := NewAuthService(mockRepo, 24*time.Hour)

	password := "ComplexPass123!"
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	storedUser := repositories.User{
		ID:           "user-uuid",
		Login:        "alice42",
		PasswordHash: hash,
		Roles:        []string{"user"},
	}

	t.Run("should issue a token for valid credentials", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().GetUserByLogin("alice42").Return(storedUser, nil)

		token, err := svc.Login("alice42", password)
		req.NoError(err)
		req.NotEmpty(token)

		claims, err := auth.ValidateToken(string(token))
		req.NoError(err)
		req.Equal("alice42", claims.Login)
	})

	t.Run("should fail with a generic error for an unknown login", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().GetUserByLogin("nobody").Return(repositories.User{}, errors.ErrUserNotFound)

		_, err := svc.Login("nobody", password)
		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})

	t.Run("should fail with the same error for a wrong password", func(t *testing.T) {
		req := require.New(t)

		mockRepo.EXPECT().GetUserByLogin("alice42").Return(storedUser, nil)

		_, err := svc.Login("alice42", "WrongPass456?")
		req.ErrorIs(err, errors.ErrInvalidCredentials)
	})
}
