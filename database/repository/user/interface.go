package userRepo

import (
	"boardroom/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines data access methods for user accounts.
type UserRepository interface {
	Create(user *models.User) error
	// GetByIDWithProjection retrieves a user by ID. Pass nil for projection to
	// retrieve the full document.
	GetByIDWithProjection(id string, projection bson.M) (*models.User, error)
	// GetByEmailWithProjection retrieves a user by email, nil when absent.
	GetByEmailWithProjection(email string, projection bson.M) (*models.User, error)
	GetAllWithProjection(projection bson.M) ([]models.User, error)
	UpdateWithDocument(id string, fields map[string]any) error
	Delete(id string) error
}
