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

//go:generate mockgen -source=reports.go -destination=mock_reports_test.go -package=services

// BookFinder looks books up by id or by name.
type BookFinder interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.Book, error)   // Returns repositories.ErrNotFound if missing
	GetByName(ctx context.Context, name string) (*models.Book, error) // Case-insensitive exact match
}

// RentalHistoryReader lists ledger entries joined with book and user details.
type RentalHistoryReader interface {
	ListByBook(ctx context.Context, bookID uuid.UUID) ([]models.RentalDetail, error)               // Newest first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RentalDetail, error)               // Newest first
	ListIssuedBetween(ctx context.Context, start, end time.Time) ([]models.RentalDetail, error) // Oldest first, inclusive
}

// ReportService builds read-only projections over the ledger.
type ReportService struct {
	books   BookFinder
	users   UserGetter
	rentals RentalHistoryReader
	timeout time.Duration
	now     func() time.Time
}

// NewReportService creates a new ReportService.
func NewReportService(books BookFinder, users UserGetter, rentals RentalHistoryReader, timeout time.Duration) *ReportService {
	return &ReportService{
		books:   books,
		users:   users,
		rentals: rentals,
		timeout: timeout,
		now:     time.Now,
	}
}

// IssuersOf lists who holds the book now and who held it before.
func (s *ReportService) IssuersOf(ctx context.Context, bookID uuid.UUID) (*models.IssuersReport, error) {
	book, err := loadBook(ctx, s.timeout, s.books, bookID)
	if err != nil {
		return nil, err
	}
	return s.issuersOf(ctx, book)
}

// IssuersOfName is IssuersOf for the book with the given name.
func (s *ReportService) IssuersOfName(ctx context.Context, name string) (*models.IssuersReport, error) {
	book, err := s.findByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.issuersOf(ctx, book)
}

func (s *ReportService) issuersOf(ctx context.Context, book *models.Book) (*models.IssuersReport, error) {
	details, err := s.listByBook(ctx, book.BookID)
	if err != nil {
		return nil, err
	}

	report := &models.IssuersReport{
		BookID:           book.BookID,
		BookName:         book.BookName,
		TotalIssuedCount: len(details),
		PastIssuers:      make([]models.Issuer, 0, len(details)),
	}

	// details are newest first, so the first open rental is the current one.
	for _, d := range details {
		issuer := toIssuer(d)
		if d.IsOpen() && report.CurrentIssuer == nil {
			report.CurrentIssuer = &issuer
			continue
		}
		report.PastIssuers = append(report.PastIssuers, issuer)
	}

	return report, nil
}

// TotalRentGenerated reports the settled rent of returned rentals and an
// estimate of the rent accrued so far by open ones.
func (s *ReportService) TotalRentGenerated(ctx context.Context, bookID uuid.UUID) (*models.RentReport, error) {
	book, err := loadBook(ctx, s.timeout, s.books, bookID)
	if err != nil {
		return nil, err
	}
	return s.totalRentGenerated(ctx, book)
}

// TotalRentGeneratedByName is TotalRentGenerated for the book with the given name.
func (s *ReportService) TotalRentGeneratedByName(ctx context.Context, name string) (*models.RentReport, error) {
	book, err := s.findByName(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.totalRentGenerated(ctx, book)
}

func (s *ReportService) totalRentGenerated(ctx context.Context, book *models.Book) (*models.RentReport, error) {
	details, err := s.listByBook(ctx, book.BookID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	report := &models.RentReport{
		BookID:      book.BookID,
		BookName:    book.BookName,
		RentPerDay:  book.RentPerDay,
		EstimatedAt: now,
	}

	for _, d := range details {
		if d.IsOpen() {
			report.OpenCount++
			report.EstimatedOpenRent += ComputeRent(d.IssueDate, now, book.RentPerDay)
			continue
		}
		report.ReturnedCount++
		report.SettledRent += d.TotalRent
	}

	return report, nil
}

// RentalsForUser lists the rentals of an existing user, newest first.
func (s *ReportService) RentalsForUser(ctx context.Context, userID uuid.UUID) ([]models.UserRental, error) {
	if _, err := loadUser(ctx, s.timeout, s.users, userID); err != nil {
		return nil, err
	}

	var details []models.RentalDetail
	err := withTimeout(ctx, s.timeout, func(ctx context.Context) error {
		var err error
		details, err = s.rentals.ListByUser(ctx, userID)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to list user rentals", "user_id", userID, "error", err)
		return nil, storeUnavailable(err)
	}

	rentals := make([]models.UserRental, 0, len(details))
	for _, d := range details {
		rentals = append(rentals, models.UserRental{
			RentalID:   d.RentalID,
			BookID:     d.BookID,
			BookName:   orDefault(d.BookName, models.UnknownBook),
			Category:   orDefault(d.Category, ""),
			Author:     orDefault(d.Author, ""),
			RentPerDay: d.RentPerDay,
			IssueDate:  d.IssueDate,
			ReturnDate: d.ReturnDate,
			TotalRent:  d.TotalRent,
		})
	}
	return rentals, nil
}

// RentalsIssuedBetween lists rentals issued within [start, end].
func (s *ReportService) RentalsIssuedBetween(ctx context.Context, start, end time.Time) ([]models.RangeRental, error) {
	if start.IsZero() || end.IsZero() {
		return nil, invalidInput("start and end are required")
	}
	if end.Before(start) {
		return nil, invalidInput("end must not be before start")
	}

	var details []models.RentalDetail
	err := withTimeout(ctx, s.timeout, func(ctx context.Context) error {
		var err error
		details, err = s.rentals.ListIssuedBetween(ctx, start.UTC(), end.UTC())
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to list rentals in range", "start", start, "end", end, "error", err)
		return nil, storeUnavailable(err)
	}

	rentals := make([]models.RangeRental, 0, len(details))
	for _, d := range details {
		rentals = append(rentals, models.RangeRental{
			RentalID:   d.RentalID,
			BookID:     d.BookID,
			BookName:   orDefault(d.BookName, models.UnknownBook),
			UserID:     d.UserID,
			Username:   orDefault(d.Username, models.UnknownUser),
			IssueDate:  d.IssueDate,
			ReturnDate: d.ReturnDate,
			TotalRent:  d.TotalRent,
		})
	}
	return rentals, nil
}

func (s *ReportService) findByName(ctx context.Context, name string) (*models.Book, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidInput("bookName is required")
	}

	var book *models.Book
	err := withTimeout(ctx, s.timeout, func(ctx context.Context) error {
		var err error
		book, err = s.books.GetByName(ctx, name)
		return err
	})
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return nil, ErrBookNotFound
	case err != nil:
		logger.Log.Errorw("failed to find book by name", "book_name", name, "error", err)
		return nil, storeUnavailable(err)
	}
	return book, nil
}

func (s *ReportService) listByBook(ctx context.Context, bookID uuid.UUID) ([]models.RentalDetail, error) {
	var details []models.RentalDetail
	err := withTimeout(ctx, s.timeout, func(ctx context.Context) error {
		var err error
		details, err = s.rentals.ListByBook(ctx, bookID)
		return err
	})
	if err != nil {
		logger.Log.Errorw("failed to list book rentals", "book_id", bookID, "error", err)
		return nil, storeUnavailable(err)
	}
	return details, nil
}

func toIssuer(d models.RentalDetail) models.Issuer {
	return models.Issuer{
		RentalID:   d.RentalID,
		UserID:     d.UserID,
		Username:   orDefault(d.Username, models.UnknownUser),
		Email:      orDefault(d.Email, models.UnknownEmail),
		IssueDate:  d.IssueDate,
		ReturnDate: d.ReturnDate,
		TotalRent:  d.TotalRent,
	}
}

func orDefault(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}
