package user

import (
	"errors"
	"fmt"

	"boardroom/models"
)

// ErrUserNotFound signals an unknown user ID or email.
var ErrUserNotFound = errors.New("user not found")

// GetUserByID retrieves a user by ID.
func (s *DefaultUserService) GetUserByID(id string) (*models.User, error) {
	usr, err := s.Repo.GetByIDWithProjection(id, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, ErrUserNotFound
	}
	return usr, nil
}

// GetUserByEmail retrieves a user by email.
func (s *DefaultUserService) GetUserByEmail(email string) (*models.User, error) {
	usr, err := s.Repo.GetByEmailWithProjection(email, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, ErrUserNotFound
	}
	return usr, nil
}

// GetAllUsers retrieves every account (admin view).
func (s *DefaultUserService) GetAllUsers() ([]models.User, error) {
	return s.Repo.GetAllWithProjection(nil)
}
