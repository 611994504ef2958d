package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-book-rental/internal/models"
)

const rentalColumns = `rental_id, book_id, user_id, issue_date, return_date, total_rent`

// Book and user columns come from LEFT JOINs so rentals of deleted rows are kept.
const rentalDetailSelect = `
	SELECT r.rental_id, r.book_id, r.user_id, r.issue_date, r.return_date, r.total_rent,
	       b.book_name, b.category, b.author, b.rent_per_day,
	       u.username, u.email
	FROM rentals r
	LEFT JOIN books b ON b.book_id = r.book_id
	LEFT JOIN users u ON u.user_id = r.user_id
`

// RentalReadRepository handles ledger read operations
type RentalReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRentalReadRepository(db *sqlx.DB, txGetter TxGetter) *RentalReadRepository {
	return &RentalReadRepository{db: db, txGetter: txGetter}
}

// GetOpen returns the open rental of the pair and locks it when called inside a transaction.
func (r *RentalReadRepository) GetOpen(ctx context.Context, bookID, userID uuid.UUID) (*models.Rental, error) {
	const query = `
		SELECT ` + rentalColumns + `
		FROM rentals
		WHERE book_id = $1 AND user_id = $2 AND return_date IS NULL
		FOR UPDATE
	`

	var rental models.Rental
	err := sqlx.GetContext(ctx, pickExecutor(ctx, r.db, r.txGetter), &rental, query, bookID, userID)
	logQuery(query, []any{bookID, userID}, rental.RentalID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &rental, nil
}

// CountOpenByBook returns how many rentals of the book are still out.
func (r *RentalReadRepository) CountOpenByBook(ctx context.Context, bookID uuid.UUID) (int, error) {
	const query = `
		SELECT COUNT(*)
		FROM rentals
		WHERE book_id = $1 AND return_date IS NULL
	`

	var count int
	err := sqlx.GetContext(ctx, pickExecutor(ctx, r.db, r.txGetter), &count, query, bookID)
	logQuery(query, []any{bookID}, count, err)

	return count, err
}

// ListByBook returns every rental of the book, newest first.
func (r *RentalReadRepository) ListByBook(ctx context.Context, bookID uuid.UUID) ([]models.RentalDetail, error) {
	query := rentalDetailSelect + `
		WHERE r.book_id = $1
		ORDER BY r.issue_date DESC, r.rental_id
	`
	return r.listDetails(ctx, query, bookID)
}

// ListByUser returns every rental of the user, newest first.
func (r *RentalReadRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.RentalDetail, error) {
	query := rentalDetailSelect + `
		WHERE r.user_id = $1
		ORDER BY r.issue_date DESC, r.rental_id
	`
	return r.listDetails(ctx, query, userID)
}

// ListIssuedBetween returns rentals issued within [start, end], oldest first.
func (r *RentalReadRepository) ListIssuedBetween(ctx context.Context, start, end time.Time) ([]models.RentalDetail, error) {
	query := rentalDetailSelect + `
		WHERE r.issue_date >= $1 AND r.issue_date <= $2
		ORDER BY r.issue_date, r.rental_id
	`
	return r.listDetails(ctx, query, start, end)
}

func (r *RentalReadRepository) listDetails(ctx context.Context, query string, args ...any) ([]models.RentalDetail, error) {
	details := make([]models.RentalDetail, 0)
	err := sqlx.SelectContext(ctx, pickExecutor(ctx, r.db, r.txGetter), &details, query, args...)
	logQuery(query, args, len(details), err)

	if err != nil {
		return nil, err
	}
	return details, nil
}

// RentalWriteRepository handles ledger write operations
type RentalWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewRentalWriteRepository(db *sqlx.DB, txGetter TxGetter) *RentalWriteRepository {
	return &RentalWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts an open rental. A second open rental of the same pair
// violates rentals_open_pair_uidx and yields ErrUniqueViolation.
func (r *RentalWriteRepository) Create(ctx context.Context, rental *models.Rental) error {
	const query = `
		INSERT INTO rentals (` + rentalColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	args := []any{rental.RentalID, rental.BookID, rental.UserID, rental.IssueDate, rental.ReturnDate, rental.TotalRent}

	_, err := pickExecutor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, rental.RentalID, err)

	return mapError(err)
}

// MarkReturned settles an open rental. It yields ErrNotFound if the rental
// is missing or was returned in the meantime.
func (r *RentalWriteRepository) MarkReturned(ctx context.Context, rentalID uuid.UUID, returnDate time.Time, totalRent float64) error {
	const query = `
		UPDATE rentals
		SET return_date = $2, total_rent = $3
		WHERE rental_id = $1 AND return_date IS NULL
	`
	args := []any{rentalID, returnDate, totalRent}

	res, err := pickExecutor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if err == nil {
		rowsAffected, err = affectedOrNotFound(res)
	}
	logQuery(query, args, rowsAffected, err)

	return mapError(err)
}
