package repositories

import (
	"context"
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/sbilibin2017/gw-book-rental/internal/models"
)

const bookSelect = `
	SELECT book_id, book_name, category, rent_per_day, author, published_date,
	       isbn, available_copies, description, added_date
	FROM books
`

var bookColumns = []any{
	"book_id", "book_name", "category", "rent_per_day", "author", "published_date",
	"isbn", "available_copies", "description", "added_date",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// BookReadRepository handles catalog read operations
type BookReadRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBookReadRepository(db *sqlx.DB, txGetter TxGetter) *BookReadRepository {
	return &BookReadRepository{db: db, txGetter: txGetter}
}

// GetByID returns the book with the given id or ErrNotFound.
func (r *BookReadRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Book, error) {
	return r.getByID(ctx, bookSelect+`WHERE book_id = $1`, id)
}

// GetByIDForShare is GetByID that also takes a share lock on the row. The lock
// blocks deletes of the book until the surrounding transaction ends.
func (r *BookReadRepository) GetByIDForShare(ctx context.Context, id uuid.UUID) (*models.Book, error) {
	return r.getByID(ctx, bookSelect+`WHERE book_id = $1 FOR SHARE`, id)
}

// GetByIDForUpdate is GetByID that also takes an exclusive lock on the row.
func (r *BookReadRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Book, error) {
	return r.getByID(ctx, bookSelect+`WHERE book_id = $1 FOR UPDATE`, id)
}

func (r *BookReadRepository) getByID(ctx context.Context, query string, id uuid.UUID) (*models.Book, error) {
	var book models.Book
	err := sqlx.GetContext(ctx, pickExecutor(ctx, r.db, r.txGetter), &book, query, id)
	logQuery(query, []any{id}, book.BookID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &book, nil
}

// GetByName returns the earliest added book whose name equals name ignoring case.
func (r *BookReadRepository) GetByName(ctx context.Context, name string) (*models.Book, error) {
	query := bookSelect + `
		WHERE LOWER(book_name) = LOWER($1)
		ORDER BY added_date, book_id
		LIMIT 1
	`

	var book models.Book
	err := r.db.GetContext(ctx, &book, query, name)
	logQuery(query, []any{name}, book.BookID, err)

	if err != nil {
		return nil, mapError(err)
	}
	return &book, nil
}

// Search lists books matching every non-zero field of the filter, ordered by name.
func (r *BookReadRepository) Search(ctx context.Context, filter models.BookFilter) ([]models.Book, error) {
	ds := goqu.Dialect("postgres").
		From("books").
		Select(bookColumns...)

	if filter.Category != "" {
		ds = ds.Where(goqu.C("category").Eq(filter.Category))
	}
	if filter.Name != "" {
		ds = ds.Where(goqu.C("book_name").ILike("%" + likeEscaper.Replace(filter.Name) + "%"))
	}
	if filter.MinRent != nil {
		ds = ds.Where(goqu.C("rent_per_day").Gte(*filter.MinRent))
	}
	if filter.MaxRent != nil {
		ds = ds.Where(goqu.C("rent_per_day").Lte(*filter.MaxRent))
	}
	ds = ds.Order(goqu.C("book_name").Asc(), goqu.C("book_id").Asc())

	query, args, err := ds.Prepared(true).ToSQL()
	if err != nil {
		return nil, err
	}

	books := make([]models.Book, 0)
	err = r.db.SelectContext(ctx, &books, query, args...)
	logQuery(query, args, len(books), err)

	if err != nil {
		return nil, err
	}
	return books, nil
}

// BookWriteRepository handles catalog write operations
type BookWriteRepository struct {
	db       *sqlx.DB
	txGetter TxGetter
}

func NewBookWriteRepository(db *sqlx.DB, txGetter TxGetter) *BookWriteRepository {
	return &BookWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts a new book row.
func (r *BookWriteRepository) Create(ctx context.Context, book *models.Book) error {
	const query = `
		INSERT INTO books (book_id, book_name, category, rent_per_day, author, published_date,
		                   isbn, available_copies, description, added_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	args := []any{
		book.BookID, book.BookName, book.Category, book.RentPerDay, book.Author, book.PublishedDate,
		book.ISBN, book.AvailableCopies, book.Description, book.AddedDate,
	}

	_, err := pickExecutor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	logQuery(query, args, book.BookID, err)

	return mapError(err)
}

// Update overwrites the mutable fields of a book. The added date is kept.
func (r *BookWriteRepository) Update(ctx context.Context, book *models.Book) error {
	const query = `
		UPDATE books
		SET book_name = $2, category = $3, rent_per_day = $4, author = $5, published_date = $6,
		    isbn = $7, available_copies = $8, description = $9
		WHERE book_id = $1
	`
	args := []any{
		book.BookID, book.BookName, book.Category, book.RentPerDay, book.Author, book.PublishedDate,
		book.ISBN, book.AvailableCopies, book.Description,
	}

	res, err := pickExecutor(ctx, r.db, r.txGetter).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if err == nil {
		rowsAffected, err = affectedOrNotFound(res)
	}
	logQuery(query, args, rowsAffected, err)

	return mapError(err)
}

// Delete removes a book row.
func (r *BookWriteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM books WHERE book_id = $1`

	res, err := pickExecutor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id)
	var rowsAffected int64
	if err == nil {
		rowsAffected, err = affectedOrNotFound(res)
	}
	logQuery(query, []any{id}, rowsAffected, err)

	return mapError(err)
}
