package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"boardroom/models"
	"boardroom/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for unknown emails and wrong passwords
// alike, so callers cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid email or password")

const tokenTTL = 24 * time.Hour

// RegisterUser creates an account and signs the user in. The first ever
// account gets no special treatment; admins are promoted out of band.
func (s *DefaultUserService) RegisterUser(name, email, password string) (*models.User, string, error) {
	logger := utils.GetLogger()

	name = strings.TrimSpace(name)
	email = strings.ToLower(strings.TrimSpace(email))
	if name == "" || email == "" {
		return nil, "", fmt.Errorf("name and email are required")
	}
	if len(password) < 8 {
		return nil, "", fmt.Errorf("password must be at least 8 characters")
	}

	existing, err := s.Repo.GetByEmailWithProjection(email, bson.M{"id": 1})
	if err != nil {
		return nil, "", fmt.Errorf("failed to check existing email: %w", err)
	}
	if existing != nil {
		return nil, "", fmt.Errorf("email %s is already registered", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	usr := &models.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         models.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Repo.Create(usr); err != nil {
		logger.Error("Failed to create user", zap.String("email", email), zap.Error(err))
		return nil, "", fmt.Errorf("failed to create user: %w", err)
	}

	token, err := s.issueToken(usr)
	if err != nil {
		return nil, "", err
	}
	logger.Info("user registered", zap.String("userID", usr.ID))
	return usr, token, nil
}

// AuthenticateUser verifies credentials and issues a fresh token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*models.User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	usr, err := s.Repo.GetByEmailWithProjection(email, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch user: %w", err)
	}
	if usr == nil {
		return nil, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(usr)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// issueToken signs a JWT, stores its hash on the user document and primes the
// auth cache so the middleware usually never touches Mongo.
func (s *DefaultUserService) issueToken(usr *models.User) (string, error) {
	token, err := utils.GenerateToken(usr.ID, usr.Email, tokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	tokenHash := utils.HashToken(token)
	if err := s.Repo.UpdateWithDocument(usr.ID, map[string]any{
		"token_hash": tokenHash,
		"updated_at": time.Now(),
	}); err != nil {
		return "", fmt.Errorf("failed to store token hash: %w", err)
	}

	authCache := utils.GetAuthCacheClient()
	if authCache != nil {
		cacheKey := utils.AuthCachePrefix + usr.ID
		_ = authCache.Set(context.Background(), cacheKey, tokenHash, utils.AuthCacheTTL).Err()
	}
	usr.TokenHash = tokenHash
	return token, nil
}

// RevokeAuthToken invalidates the user's current token everywhere.
func (s *DefaultUserService) RevokeAuthToken(id string) error {
	if err := s.Repo.UpdateWithDocument(id, map[string]any{
		"token_hash": "",
		"updated_at": time.Now(),
	}); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	authCache := utils.GetAuthCacheClient()
	if authCache != nil {
		_ = authCache.Del(context.Background(), utils.AuthCachePrefix+id).Err()
	}
	return nil
}
