package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-book-rental/internal/logger"
	"github.com/sbilibin2017/gw-book-rental/internal/models"
	"github.com/sbilibin2017/gw-book-rental/internal/repositories"
)

// withTimeout runs a single store call bounded by timeout. A zero timeout leaves ctx as is.
func withTimeout(ctx context.Context, timeout time.Duration, call func(ctx context.Context) error) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return call(ctx)
}

func loadBook(ctx context.Context, timeout time.Duration, books BookGetter, id uuid.UUID) (*models.Book, error) {
	return fetchBook(ctx, timeout, books.GetByID, id)
}

// fetchBook runs one of the book getters and maps its errors to service errors.
func fetchBook(
	ctx context.Context,
	timeout time.Duration,
	get func(ctx context.Context, id uuid.UUID) (*models.Book, error),
	id uuid.UUID,
) (*models.Book, error) {
	var book *models.Book
	err := withTimeout(ctx, timeout, func(ctx context.Context) error {
		var err error
		book, err = get(ctx, id)
		return err
	})
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil, ErrBookNotFound
	case err != nil:
		logger.Log.Errorw("failed to load book", "book_id", id, "error", err)
		return nil, storeUnavailable(err)
	}
	return book, nil
}

func loadUser(ctx context.Context, timeout time.Duration, users UserGetter, id uuid.UUID) (*models.User, error) {
	var user *models.User
	err := withTimeout(ctx, timeout, func(ctx context.Context) error {
		var err error
		user, err = users.GetByID(ctx, id)
		return err
	})
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil, ErrUserNotFound
	case err != nil:
		logger.Log.Errorw("failed to load user", "user_id", id, "error", err)
		return nil, storeUnavailable(err)
	}
	return user, nil
}
