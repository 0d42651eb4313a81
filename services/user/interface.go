package user

import (
	userRepo "boardroom/database/repository/user"
	"boardroom/models"
)

// UserService manages accounts and authentication.
type UserService interface {
	RegisterUser(name, email, password string) (*models.User, string, error)
	AuthenticateUser(email, password string) (*models.User, string, error)
	GetUserByID(id string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetAllUsers() ([]models.User, error)
	RevokeAuthToken(id string) error
}

// DefaultUserService implements UserService.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
