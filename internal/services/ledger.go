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

//go:generate mockgen -source=ledger.go -destination=mock_ledger_test.go -package=services

// BookGetter loads a single book.
type BookGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Book, error) // Returns repositories.ErrNotFound if missing
}

// LedgerBookReader loads books for the ledger. Issue reads the book under a
// share lock so the book cannot be deleted before the rental commits.
type LedgerBookReader interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Book, error)         // Returns repositories.ErrNotFound if missing
	GetByIDForShare(ctx context.Context, id uuid.UUID) (*models.Book, error) // Same, locking the row until the transaction ends
}

// UserGetter loads a single user.
type UserGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) // Returns repositories.ErrNotFound if missing
}

// OpenRentalReader finds the open rental of a book and user pair.
type OpenRentalReader interface {
	GetOpen(ctx context.Context, bookID, userID uuid.UUID) (*models.Rental, error) // Returns repositories.ErrNotFound if none is open
}

// RentalWriter persists ledger transitions.
type RentalWriter interface {
	Create(ctx context.Context, rental *models.Rental) error                                             // Inserts an open rental
	MarkReturned(ctx context.Context, rentalID uuid.UUID, returnDate time.Time, totalRent float64) error // Settles an open rental
}

// LedgerService owns the rental lifecycle: issue, return and rent settlement.
type LedgerService struct {
	books       LedgerBookReader
	users       UserGetter
	rentals     OpenRentalReader
	writer      RentalWriter
	kafkaWriter KafkaWriter
	timeout     time.Duration
	now         func() time.Time
}

// NewLedgerService creates a new LedgerService. Every store call is bounded by timeout.
func NewLedgerService(
	books LedgerBookReader,
	users UserGetter,
	rentals OpenRentalReader,
	writer RentalWriter,
	kafkaWriter KafkaWriter,
	timeout time.Duration,
) *LedgerService {
	return &LedgerService{
		books:       books,
		users:       users,
		rentals:     rentals,
		writer:      writer,
		kafkaWriter: kafkaWriter,
		timeout:     timeout,
		now:         time.Now,
	}
}

// Issue opens a rental of the book for the user. A nil issueDate means now.
func (s *LedgerService) Issue(ctx context.Context, bookID, userID uuid.UUID, issueDate *time.Time) (*models.Rental, error) {
	if bookID == uuid.Nil || userID == uuid.Nil {
		return nil, invalidInput("bookId and userId are required")
	}

	issued := s.now().UTC()
	if issueDate != nil {
		issued = issueDate.UTC()
	}

	// The share lock is held until the request transaction ends, which keeps
	// the book from being deleted under a rental that is not yet committed.
	if _, err := fetchBook(ctx, s.timeout, s.books.GetByIDForShare, bookID); err != nil {
		return nil, err
	}
	if _, err := loadUser(ctx, s.timeout, s.users, userID); err != nil {
		return nil, err
	}

	rental := &models.Rental{
		RentalID:  uuid.New(),
		BookID:    bookID,
		UserID:    userID,
		IssueDate: issued,
	}

	err := withTimeout(ctx, s.timeout, func(ctx context.Context) error {
		return s.writer.Create(ctx, rental)
	})
	switch {
	case errors.Is(err, repositories.ErrUniqueViolation):
		logger.Log.Warnw("book already issued to user", "book_id", bookID, "user_id", userID)
		return nil, ErrAlreadyIssued
	case err != nil:
		logger.Log.Errorw("failed to save rental", "book_id", bookID, "user_id", userID, "error", err)
		return nil, storeUnavailable(err)
	}

	publishRentalEvent(ctx, s.timeout, s.kafkaWriter, newRentalEvent(models.RentalIssued, rental, s.now()))
	return rental, nil
}

// Return closes the open rental of the book for the user and settles its rent.
// The ledger is left untouched on any failure.
func (s *LedgerService) Return(ctx context.Context, bookID, userID uuid.UUID, returnDate time.Time) (*models.Rental, error) {
	if bookID == uuid.Nil || userID == uuid.Nil {
		return nil, invalidInput("bookId and userId are required")
	}
	if returnDate.IsZero() {
		return nil, ErrInvalidReturnDate
	}

	var rental *models.Rental
	err := withTimeout(ctx, s.timeout, func(ctx context.Context) error {
		var err error
		rental, err = s.rentals.GetOpen(ctx, bookID, userID)
		return err
	})
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil, ErrRentalNotFound
	case err != nil:
		logger.Log.Errorw("failed to load open rental", "book_id", bookID, "user_id", userID, "error", err)
		return nil, storeUnavailable(err)
	}

	book, err := loadBook(ctx, s.timeout, s.books, bookID)
	if err != nil {
		return nil, err
	}

	returned := returnDate.UTC()
	if returned.Before(rental.IssueDate) {
		logger.Log.Warnw("return date precedes issue date",
			"rental_id", rental.RentalID, "issue_date", rental.IssueDate, "return_date", returned)
		return nil, ErrReturnBeforeIssue
	}

	totalRent := ComputeRent(rental.IssueDate, returned, book.RentPerDay)

	err = withTimeout(ctx, s.timeout, func(ctx context.Context) error {
		return s.writer.MarkReturned(ctx, rental.RentalID, returned, totalRent)
	})
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		// Another request returned it first.
		return nil, ErrRentalNotFound
	case err != nil:
		logger.Log.Errorw("failed to settle rental", "rental_id", rental.RentalID, "error", err)
		return nil, storeUnavailable(err)
	}

	rental.ReturnDate = &returned
	rental.TotalRent = totalRent

	publishRentalEvent(ctx, s.timeout, s.kafkaWriter, newRentalEvent(models.RentalReturned, rental, s.now()))
	return rental, nil
}
