package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-book-rental/internal/logger"
	"github.com/sbilibin2017/gw-book-rental/internal/models"
)

//go:generate mockgen -source=books.go -destination=mock_books_test.go -package=handlers

// BookCatalog defines the catalog methods used by the book handlers.
type BookCatalog interface {
	Create(ctx context.Context, book *models.Book) (*models.Book, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Book, error)
	List(ctx context.Context) ([]models.Book, error)
	Search(ctx context.Context, filter models.BookFilter) ([]models.Book, error)
	ListByRentRange(ctx context.Context, minRent, maxRent float64) ([]models.Book, error)
	Update(ctx context.Context, book *models.Book) (*models.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// BookRequest represents the JSON body for creating or replacing a book
// swagger:model BookRequest
type BookRequest struct {
	// Title of the book
	// required: true
	// default: Dune
	BookName string `json:"bookName" validate:"required,max=255"`

	// Catalog category
	// required: true
	// default: Fiction
	Category string `json:"category" validate:"required,max=100"`

	// Daily rental price
	// required: true
	// default: 5
	RentPerDay *float64 `json:"rentPerDay" validate:"required,gte=0"`

	// Author name
	Author string `json:"author" validate:"max=255"`

	// Publication date
	// default: 1965-08-01
	PublishedDate string `json:"publishedDate,omitempty"`

	// ISBN code
	ISBN string `json:"isbn" validate:"max=32"`

	// Copies on the shelf
	AvailableCopies int `json:"availableCopies" validate:"gte=0"`

	// Free-form description
	Description string `json:"description"`

	// When the book entered the catalog, defaults to now
	AddedDate string `json:"addedDate,omitempty"`
}

// toBook converts the request into a model. The message of the returned error is client safe.
func (req BookRequest) toBook() (*models.Book, error) {
	book := &models.Book{
		BookName:        req.BookName,
		Category:        req.Category,
		RentPerDay:      *req.RentPerDay,
		Author:          req.Author,
		ISBN:            req.ISBN,
		AvailableCopies: req.AvailableCopies,
		Description:     req.Description,
	}

	if req.PublishedDate != "" {
		t, _, err := models.ParseTimestamp(req.PublishedDate)
		if err != nil {
			return nil, prefixError("publishedDate", err)
		}
		book.PublishedDate = &t
	}
	if req.AddedDate != "" {
		t, _, err := models.ParseTimestamp(req.AddedDate)
		if err != nil {
			return nil, prefixError("addedDate", err)
		}
		book.AddedDate = t
	}
	return book, nil
}

// NewCreateBookHandler returns an HTTP handler that adds a book to the catalog.
// @Summary Create a book
// @Tags books
// @Accept json
// @Produce json
// @Param request body handlers.BookRequest true "Book"
// @Success 201 {object} models.Book
// @Failure 400 {object} handlers.ErrorResponse "Invalid book"
// @Router /books [post]
func NewCreateBookHandler(svc BookCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BookRequest
		if err := decodeAndValidate(r, &req); err != nil {
			logger.Log.Warnw("invalid book request", "error", err)
			writeInvalidInput(w, err.Error())
			return
		}

		book, err := req.toBook()
		if err != nil {
			writeInvalidInput(w, err.Error())
			return
		}

		created, err := svc.Create(r.Context(), book)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, created)
	}
}

// NewGetBookHandler returns a single book.
// @Summary Get a book
// @Tags books
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} models.Book
// @Failure 404 {object} handlers.ErrorResponse "Book not found"
// @Router /books/{id} [get]
func NewGetBookHandler(svc BookCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "id")
		if err != nil {
			writeInvalidInput(w, err.Error())
			return
		}

		book, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, book)
	}
}

// NewListBooksHandler returns the whole catalog.
// @Summary List books
// @Tags books
// @Produce json
// @Success 200 {array} models.Book
// @Router /books [get]
func NewListBooksHandler(svc BookCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		books, err := svc.List(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, books)
	}
}

// NewSearchBooksHandler returns books matching the query filters.
// @Summary Search books
// @Description Every filter is optional. name matches a case-insensitive substring, rent bounds are inclusive.
// @Tags books
// @Produce json
// @Param category query string false "Exact category"
// @Param name query string false "Part of the book name"
// @Param minRent query number false "Minimum rent per day"
// @Param maxRent query number false "Maximum rent per day"
// @Success 200 {array} models.Book
// @Failure 400 {object} handlers.ErrorResponse "Invalid filter"
// @Router /books/search [get]
func NewSearchBooksHandler(svc BookCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		filter := models.BookFilter{
			Category: query.Get("category"),
			Name:     query.Get("name"),
		}

		var err error
		if filter.MinRent, err = optionalFloat(query.Get("minRent")); err != nil {
			writeInvalidInput(w, "minRent must be a number")
			return
		}
		if filter.MaxRent, err = optionalFloat(query.Get("maxRent")); err != nil {
			writeInvalidInput(w, "maxRent must be a number")
			return
		}

		books, err := svc.Search(r.Context(), filter)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, books)
	}
}

// NewBooksByRentRangeHandler returns books whose rent per day is within a range.
// @Summary Books by rent range
// @Tags books
// @Produce json
// @Param minRent query number true "Minimum rent per day"
// @Param maxRent query number true "Maximum rent per day"
// @Success 200 {array} models.Book
// @Failure 400 {object} handlers.ErrorResponse "Invalid range"
// @Router /books/rent-range [get]
func NewBooksByRentRangeHandler(svc BookCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		minRent, err := optionalFloat(query.Get("minRent"))
		if err != nil || minRent == nil {
			writeInvalidInput(w, "minRent is required and must be a number")
			return
		}
		maxRent, err := optionalFloat(query.Get("maxRent"))
		if err != nil || maxRent == nil {
			writeInvalidInput(w, "maxRent is required and must be a number")
			return
		}

		books, err := svc.ListByRentRange(r.Context(), *minRent, *maxRent)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, books)
	}
}

// NewUpdateBookHandler returns an HTTP handler that replaces a book.
// @Summary Update a book
// @Tags books
// @Accept json
// @Produce json
// @Param id path string true "Book ID"
// @Param request body handlers.BookRequest true "Book"
// @Success 200 {object} models.Book
// @Failure 400 {object} handlers.ErrorResponse "Invalid book"
// @Failure 404 {object} handlers.ErrorResponse "Book not found"
// @Router /books/{id} [put]
func NewUpdateBookHandler(svc BookCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "id")
		if err != nil {
			writeInvalidInput(w, err.Error())
			return
		}

		var req BookRequest
		if err := decodeAndValidate(r, &req); err != nil {
			writeInvalidInput(w, err.Error())
			return
		}

		book, err := req.toBook()
		if err != nil {
			writeInvalidInput(w, err.Error())
			return
		}
		book.BookID = id

		updated, err := svc.Update(r.Context(), book)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, updated)
	}
}

// NewDeleteBookHandler returns an HTTP handler that removes a book.
// @Summary Delete a book
// @Description A book cannot be deleted while it is issued.
// @Tags books
// @Param id path string true "Book ID"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse "Book not found"
// @Failure 409 {object} handlers.ErrorResponse "Book has open rentals"
// @Router /books/{id} [delete]
func NewDeleteBookHandler(svc BookCatalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "id")
		if err != nil {
			writeInvalidInput(w, err.Error())
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

// RegisterBookHandlers registers the catalog routes
func RegisterBookHandlers(r chi.Router, create, list, search, rentRange, get, update http.HandlerFunc) {
	r.Post("/books", create)
	r.Get("/books", list)
	r.Get("/books/search", search)
	r.Get("/books/rent-range", rentRange)
	r.Get("/books/{id}", get)
	r.Put("/books/{id}", update)
}

// RegisterDeleteBookHandler registers the route for deleting a book.
// It must be mounted under the transaction middleware.
func RegisterDeleteBookHandler(r chi.Router, h http.HandlerFunc) {
	r.Delete("/books/{id}", h)
}

func optionalFloat(value string) (*float64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func prefixError(field string, err error) error {
	return fmt.Errorf("%s: %w", field, err)
}
