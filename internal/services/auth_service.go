package services

import (
	"errors"
	"fmt"

	"shopfront/internal/models"
	"shopfront/internal/repositories"

	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and credential verification. Session
// establishment and teardown happen at the handler layer; this service only
// deals with the credential store.
type AuthService struct {
	userRepo repositories.UserRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(userRepo repositories.UserRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
	}
}

// Register creates a credential record with a bcrypt-hashed password.
// Returns ErrUsernameTaken if the username already exists.
func (s *AuthService) Register(username, password string) (*models.User, error) {
	if existing, err := s.userRepo.GetByUsername(username); err == nil && existing != nil {
		return nil, fmt.Errorf("%s: %w", username, ErrUsernameTaken)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hashedPassword),
	}
	if err := s.userRepo.Create(user); err != nil {
		// The unique index is the authority; a concurrent registration
		// between the lookup and the insert still lands here.
		if errors.Is(err, repositories.ErrDuplicate) {
			return nil, fmt.Errorf("%s: %w", username, ErrUsernameTaken)
		}
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login verifies the credentials and returns the matching user. Both an
// unknown username and a wrong password yield ErrInvalidCredentials, so the
// response never reveals whether the username exists.
func (s *AuthService) Login(username, password string) (*models.User, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}
