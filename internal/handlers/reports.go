package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-book-rental/internal/models"
)

//go:generate mockgen -source=reports.go -destination=mock_reports_test.go -package=handlers

// BookIssuersReader defines the reporting methods for book issuers.
type BookIssuersReader interface {
	IssuersOf(ctx context.Context, bookID uuid.UUID) (*models.IssuersReport, error)
	IssuersOfName(ctx context.Context, name string) (*models.IssuersReport, error)
}

// BookRentReader defines the reporting methods for rent generated by a book.
type BookRentReader interface {
	TotalRentGenerated(ctx context.Context, bookID uuid.UUID) (*models.RentReport, error)
	TotalRentGeneratedByName(ctx context.Context, name string) (*models.RentReport, error)
}

// UserRentalsReader defines the reporting method for a user's history.
type UserRentalsReader interface {
	RentalsForUser(ctx context.Context, userID uuid.UUID) ([]models.UserRental, error)
}

// RentalsInRangeReader defines the reporting method for rentals issued in a period.
type RentalsInRangeReader interface {
	RentalsIssuedBetween(ctx context.Context, start, end time.Time) ([]models.RangeRental, error)
}

// NewBookIssuersHandler returns the issuers of a book.
// @Summary Book issuers
// @Description Lists the current issuer of the book and everyone who held it before.
// @Tags reports
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} models.IssuersReport
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Book not found"
// @Router /books/{id}/issuers [get]
func NewBookIssuersHandler(svc BookIssuersReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "id")
		if err != nil {
			writeInvalidInput(w, err.Error())
			return
		}

		report, err := svc.IssuersOf(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// NewBookIssuersByNameHandler returns the issuers of the book with the given name.
// @Summary Book issuers by name
// @Tags reports
// @Produce json
// @Param bookName query string true "Book name, case-insensitive"
// @Success 200 {object} models.IssuersReport
// @Failure 400 {object} handlers.ErrorResponse "Missing book name"
// @Failure 404 {object} handlers.ErrorResponse "Book not found"
// @Router /book-issuers [get]
func NewBookIssuersByNameHandler(svc BookIssuersReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.URL.Query().Get("bookName"))
		if name == "" {
			writeInvalidInput(w, "bookName is required")
			return
		}

		report, err := svc.IssuersOfName(r.Context(), name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// NewBookRentHandler returns the rent generated by a book.
// @Summary Rent generated by a book
// @Description Settled rent of returned rentals and the estimated accrued rent of open ones, reported separately.
// @Tags reports
// @Produce json
// @Param id path string true "Book ID"
// @Success 200 {object} models.RentReport
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Book not found"
// @Router /books/{id}/rent [get]
func NewBookRentHandler(svc BookRentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "id")
		if err != nil {
			writeInvalidInput(w, err.Error())
			return
		}

		report, err := svc.TotalRentGenerated(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// NewBookRentByNameHandler returns the rent generated by the book with the given name.
// @Summary Rent generated by a book, by name
// @Tags reports
// @Produce json
// @Param bookName query string true "Book name, case-insensitive"
// @Success 200 {object} models.RentReport
// @Failure 400 {object} handlers.ErrorResponse "Missing book name"
// @Failure 404 {object} handlers.ErrorResponse "Book not found"
// @Router /book-rent [get]
func NewBookRentByNameHandler(svc BookRentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimSpace(r.URL.Query().Get("bookName"))
		if name == "" {
			writeInvalidInput(w, "bookName is required")
			return
		}

		report, err := svc.TotalRentGeneratedByName(r.Context(), name)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, report)
	}
}

// NewUserRentalsHandler returns the rental history of a user.
// @Summary User rentals
// @Tags reports
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} models.UserRental
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id}/rentals [get]
func NewUserRentalsHandler(svc UserRentalsReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := uuidParam(r, "id")
		if err != nil {
			writeInvalidInput(w, err.Error())
			return
		}

		rentals, err := svc.RentalsForUser(r.Context(), id)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rentals)
	}
}

// NewRentalsInRangeHandler returns rentals issued within a period.
// @Summary Rentals issued in a period
// @Description Both bounds are inclusive. A plain date as end covers that whole day.
// @Tags reports
// @Produce json
// @Param start query string true "Start timestamp or date"
// @Param end query string true "End timestamp or date"
// @Success 200 {array} models.RangeRental
// @Failure 400 {object} handlers.ErrorResponse "Invalid range"
// @Router /rentals [get]
func NewRentalsInRangeHandler(svc RentalsInRangeReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		start, _, err := models.ParseTimestamp(query.Get("start"))
		if err != nil {
			writeInvalidInput(w, "start: "+err.Error())
			return
		}
		end, dateOnly, err := models.ParseTimestamp(query.Get("end"))
		if err != nil {
			writeInvalidInput(w, "end: "+err.Error())
			return
		}
		if dateOnly {
			end = models.EndOfDay(end)
		}

		rentals, err := svc.RentalsIssuedBetween(r.Context(), start, end)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, rentals)
	}
}

// RegisterReportHandlers registers the reporting routes
func RegisterReportHandlers(r chi.Router, issuers, issuersByName, rent, rentByName, userRentals, inRange http.HandlerFunc) {
	r.Get("/books/{id}/issuers", issuers)
	r.Get("/book-issuers", issuersByName)
	r.Get("/books/{id}/rent", rent)
	r.Get("/book-rent", rentByName)
	r.Get("/users/{id}/rentals", userRentals)
	r.Get("/rentals", inRange)
}
