package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-book-rental/internal/logger"
	"github.com/sbilibin2017/gw-book-rental/internal/models"
	"github.com/sbilibin2017/gw-book-rental/internal/repositories"
)

//go:generate mockgen -source=users.go -destination=mock_users_test.go -package=services

// UserReader reads user records.
type UserReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) // Returns repositories.ErrNotFound if missing
	List(ctx context.Context) ([]models.User, error)                 // Oldest first
}

// UserWriter writes user records.
type UserWriter interface {
	Create(ctx context.Context, user *models.User) error // Returns repositories.ErrUniqueViolation on a taken email
}

// UserService manages user records.
type UserService struct {
	reader  UserReader
	writer  UserWriter
	timeout time.Duration
	now     func() time.Time
}

// NewUserService creates a new UserService.
func NewUserService(reader UserReader, writer UserWriter, timeout time.Duration) *UserService {
	return &UserService{
		reader:  reader,
		writer:  writer,
		timeout: timeout,
		now:     time.Now,
	}
}

// Create registers a user. The email is trimmed and lowercased and must be unique.
func (s *UserService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	user.Username = strings.TrimSpace(user.Username)
	user.Email = strings.ToLower(strings.TrimSpace(user.Email))
	user.PhoneNumber = strings.TrimSpace(user.PhoneNumber)

	if user.Email == "" {
		return nil, invalidInput("email is required")
	}

	now := s.now().UTC()
	user.UserID = uuid.New()
	user.CreatedAt = now
	user.UpdatedAt = now

	err := withTimeout(ctx, s.timeout, func(ctx context.Context) error {
		return s.writer.Create(ctx, user)
	})
	switch {
	case errors.Is(err, repositories.ErrUniqueViolation):
		return nil, ErrEmailTaken
	case err != nil:
		logger.Log.Errorw("failed to create user", "email", user.Email, "error", err)
		return nil, storeUnavailable(err)
	}

	return user, nil
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return loadUser(ctx, s.timeout, s.reader, id)
}

// List returns every user.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := withTimeout(ctx, s.timeout, func(ctx context.Context) error {
		var err error
		users, err = s.reader.List(ctx)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, storeUnavailable(err)
	}
	return users, nil
}
