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

//go:generate mockgen -source=books.go -destination=mock_books_test.go -package=services

// BookReader reads catalog entries.
type BookReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Book, error)             // Returns repositories.ErrNotFound if missing
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Book, error)    // Same, locking the row until the transaction ends
	Search(ctx context.Context, filter models.BookFilter) ([]models.Book, error) // Ordered by name
}

// BookWriter writes catalog entries.
type BookWriter interface {
	Create(ctx context.Context, book *models.Book) error // Inserts a book
	Update(ctx context.Context, book *models.Book) error // Returns repositories.ErrNotFound if missing
	Delete(ctx context.Context, id uuid.UUID) error      // Returns repositories.ErrNotFound if missing
}

// BookCache caches catalog entries by id.
type BookCache interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Book, error) // Returns repositories.ErrCacheMiss on miss
	Set(ctx context.Context, book *models.Book) error            // Stores the book with the cache TTL
	Delete(ctx context.Context, id uuid.UUID) error              // Evicts the book
}

// OpenRentalCounter counts rentals that are still out.
type OpenRentalCounter interface {
	CountOpenByBook(ctx context.Context, bookID uuid.UUID) (int, error)
}

// BookService manages the catalog. Reads go through the cache when one is configured.
type BookService struct {
	reader  BookReader
	writer  BookWriter
	cache   BookCache
	rentals OpenRentalCounter
	timeout time.Duration
	now     func() time.Time
}

// NewBookService creates a new BookService. cache may be nil.
func NewBookService(
	reader BookReader,
	writer BookWriter,
	cache BookCache,
	rentals OpenRentalCounter,
	timeout time.Duration,
) *BookService {
	return &BookService{
		reader:  reader,
		writer:  writer,
		cache:   cache,
		rentals: rentals,
		timeout: timeout,
		now:     time.Now,
	}
}

// Create validates and stores a new book. Id and added date are assigned here
// unless the added date is supplied.
func (s *BookService) Create(ctx context.Context, book *models.Book) (*models.Book, error) {
	if err := normalizeBook(book); err != nil {
		return nil, err
	}

	book.BookID = uuid.New()
	if book.AddedDate.IsZero() {
		book.AddedDate = s.now().UTC()
	}

	err := withTimeout(ctx, s.timeout, func(ctx context.Context) error {
		return s.writer.Create(ctx, book)
	})
	if err != nil {
		logger.Log.Errorw("failed to create book", "book_name", book.BookName, "error", err)
		return nil, storeUnavailable(err)
	}

	return book, nil
}

// Get returns a book by id.
func (s *BookService) Get(ctx context.Context, id uuid.UUID) (*models.Book, error) {
	if s.cache != nil {
		book, err := s.cache.Get(ctx, id)
		if err == nil {
			return book, nil
		}
		if !errors.Is(err, repositories.ErrCacheMiss) {
			logger.Log.Warnw("book cache read failed", "book_id", id, "error", err)
		}
	}

	book, err := loadBook(ctx, s.timeout, s.reader, id)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, book); err != nil {
			logger.Log.Warnw("book cache write failed", "book_id", id, "error", err)
		}
	}
	return book, nil
}

// List returns the whole catalog ordered by name.
func (s *BookService) List(ctx context.Context) ([]models.Book, error) {
	return s.Search(ctx, models.BookFilter{})
}

// Search returns books matching every non-zero field of the filter.
func (s *BookService) Search(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	filter.Category = strings.TrimSpace(filter.Category)
	filter.Name = strings.TrimSpace(filter.Name)

	if filter.MinRent != nil && *filter.MinRent < 0 {
		return nil, invalidInput("minRent must not be negative")
	}
	if filter.MaxRent != nil && *filter.MaxRent < 0 {
		return nil, invalidInput("maxRent must not be negative")
	}
	if filter.MinRent != nil && filter.MaxRent != nil && *filter.MinRent > *filter.MaxRent {
		return nil, invalidInput("minRent must not exceed maxRent")
	}

	var books []models.Book
	err := withTimeout(ctx, s.timeout, func(ctx context.Context) error {
		var err error
		books, err = s.reader.Search(ctx, filter)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to search books", "filter", filter, "error", err)
		return nil, storeUnavailable(err)
	}
	return books, nil
}

// ListByRentRange returns books whose rent per day lies within [minRent, maxRent].
func (s *BookService) ListByRentRange(ctx context.Context, minRent, maxRent float64) ([]models.Book, error) {
	return s.Search(ctx, models.BookFilter{MinRent: &minRent, MaxRent: &maxRent})
}

// Update overwrites a book and evicts it from the cache. The added date is kept.
func (s *BookService) Update(ctx context.Context, book *models.Book) (*models.Book, error) {
	if err := normalizeBook(book); err != nil {
		return nil, err
	}

	err := withTimeout(ctx, s.timeout, func(ctx context.Context) error {
		return s.writer.Update(ctx, book)
	})
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil, ErrBookNotFound
	case err != nil:
		logger.Log.Errorw("failed to update book", "book_id", book.BookID, "error", err)
		return nil, storeUnavailable(err)
	}

	s.evict(ctx, book.BookID)
	return loadBook(ctx, s.timeout, s.reader, book.BookID)
}

// Delete removes a book that is not currently issued. Its returned rentals are kept.
// Run inside a transaction, the row lock taken first serializes the delete with
// concurrent issues of the same book.
func (s *BookService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := fetchBook(ctx, s.timeout, s.reader.GetByIDForUpdate, id); err != nil {
		return err
	}

	var open int
	err := withTimeout(ctx, s.timeout, func(ctx context.Context) error {
		var err error
		open, err = s.rentals.CountOpenByBook(ctx, id)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to count open rentals", "book_id", id, "error", err)
		return storeUnavailable(err)
	}
	if open > 0 {
		return ErrBookHasOpenRentals
	}

	err = withTimeout(ctx, s.timeout, func(ctx context.Context) error {
		return s.writer.Delete(ctx, id)
	})
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return ErrBookNotFound
	case err != nil:
		logger.Log.Errorw("failed to delete book", "book_id", id, "error", err)
		return storeUnavailable(err)
	}

	s.evict(ctx, id)
	return nil
}

func (s *BookService) evict(ctx context.Context, id uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, id); err != nil {
		logger.Log.Warnw("book cache eviction failed", "book_id", id, "error", err)
	}
}

func normalizeBook(book *models.Book) error {
	book.BookName = strings.TrimSpace(book.BookName)
	book.Category = strings.TrimSpace(book.Category)
	book.Author = strings.TrimSpace(book.Author)
	book.ISBN = strings.TrimSpace(book.ISBN)

	switch {
	case book.BookName == "":
		return invalidInput("bookName is required")
	case book.Category == "":
		return invalidInput("category is required")
	case book.RentPerDay < 0:
		return invalidInput("rentPerDay must not be negative")
	case book.AvailableCopies < 0:
		return invalidInput("availableCopies must not be negative")
	}
	return nil
}
