//go:generate go run go.uber.org/mock/mockgen -source=auth_service.go -destination=../mocks/mock_auth_service.go -package=mocks
package services

import (
	"fmt"
	"time"

	"moonlight/auth"
	"moonlight/errors"
	"moonlight/repositories"
)

type IAuthService interface {
	Login(login, password string) (Token, error)
	Register(login, password string) (Token, error)
}

type AuthService struct {
	userRepository repositories.IUserRepository
	tokenDuration  time.Duration
}

type Token string

func NewAuthService(repo repositories.IUserRepository, tokenDuration time.Duration) IAuthService {
	return &AuthService{userRepository: repo, tokenDuration: tokenDuration}
}

// Register creates an account whose login doubles as the user's chat
// signature, then issues the initial session token.
func (s *AuthService) Register(login, password string) (Token, error) {
	valReq := auth.RegisterRequest{
		Login:    login,
		Password: password,
	}

	// Validate business rules before any expensive cryptographic operation.
	if err := auth.ValidateRegister(valReq); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidPassword, err)
	}

	// Hashing happens here so the repository never sees a plain password.
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("hashing failed: %w", err)
	}

	userID, err := s.userRepository.CreateUser(login, hashedPassword)
	if err != nil {
		return "", err // Propagates ErrUserAlreadyExists if the login is taken
	}

	token, err := auth.GenerateToken(userID, login, []string{"user"}, s.tokenDuration)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}

	return Token(token), nil
}

func (s *AuthService) Login(login, password string) (Token, error) {
	user, err := s.userRepository.GetUserByLogin(login)
	if err != nil {
		// Generic error to prevent account enumeration.
		return "", errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		return "", errors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Login, user.Roles, s.tokenDuration)
	if err != nil {
		return "", errors.ErrTokenGeneration
	}

	return Token(token), nil
}
