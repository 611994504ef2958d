package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/gw-book-rental/internal/logger"
	"github.com/sbilibin2017/gw-book-rental/internal/models"
)

// ErrCacheMiss is returned when a book is not cached.
var ErrCacheMiss = errors.New("cache miss")

var cacheJSON = jsoniter.ConfigCompatibleWithStandardLibrary

// BookCacheRepository caches catalog entries in Redis
type BookCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached books
}

// NewBookCacheRepository creates a new cache repository with the given TTL
func NewBookCacheRepository(client *redis.Client, expiration time.Duration) *BookCacheRepository {
	return &BookCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func bookCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("book:%s", id)
}

// Get returns the cached book or ErrCacheMiss.
func (r *BookCacheRepository) Get(ctx context.Context, id uuid.UUID) (*models.Book, error) {
	key := bookCacheKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Infow("key", key, "result", nil, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var book models.Book
	if err := cacheJSON.Unmarshal(val, &book); err != nil {
		logger.Log.Infow("key", key, "value", string(val), "result", nil, "error", err)
		return nil, err
	}

	logger.Log.Infow("key", key, "result", book.BookID, "error", nil)
	return &book, nil
}

// Set caches the book with the repository TTL.
func (r *BookCacheRepository) Set(ctx context.Context, book *models.Book) error {
	key := bookCacheKey(book.BookID)

	data, err := cacheJSON.Marshal(book)
	if err == nil {
		err = r.client.Set(ctx, key, data, r.exp).Err()
	}

	logger.Log.Infow("key", key, "ttl", r.exp, "result", "ok", "error", err)
	return err
}

// Delete evicts the book from the cache.
func (r *BookCacheRepository) Delete(ctx context.Context, id uuid.UUID) error {
	key := bookCacheKey(id)
	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow("key", key, "result", "deleted", "error", err)
	return err
}
