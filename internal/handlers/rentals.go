package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sbilibin2017/gw-book-rental/internal/logger"
	"github.com/sbilibin2017/gw-book-rental/internal/models"
	"github.com/sbilibin2017/gw-book-rental/internal/services"
)

//go:generate mockgen -source=rentals.go -destination=mock_rentals_test.go -package=handlers

// RentalIssuer defines the ledger method used to issue books.
type RentalIssuer interface {
	Issue(ctx context.Context, bookID, userID uuid.UUID, issueDate *time.Time) (*models.Rental, error)
}

// RentalReturner defines the ledger method used to return books.
type RentalReturner interface {
	Return(ctx context.Context, bookID, userID uuid.UUID, returnDate time.Time) (*models.Rental, error)
}

// IssueRentalRequest represents the JSON body for issuing a book
// swagger:model IssueRentalRequest
type IssueRentalRequest struct {
	// Book to issue
	// required: true
	BookID string `json:"bookId" validate:"required,uuid"`

	// User taking the book
	// required: true
	UserID string `json:"userId" validate:"required,uuid"`

	// Issue timestamp, defaults to now
	// default: 2024-01-01T09:00:00Z
	IssueDate string `json:"issueDate,omitempty"`
}

// ReturnRentalRequest represents the JSON body for returning a book
// swagger:model ReturnRentalRequest
type ReturnRentalRequest struct {
	// Returned book
	// required: true
	BookID string `json:"bookId" validate:"required,uuid"`

	// User returning the book
	// required: true
	UserID string `json:"userId" validate:"required,uuid"`

	// Return timestamp
	// required: true
	// default: 2024-01-04T09:00:00Z
	ReturnDate string `json:"returnDate"`
}

// NewIssueRentalHandler returns an HTTP handler that issues a book to a user.
// @Summary Issue a book
// @Description Opens a rental for the book and user. A book can be issued to the same user only once at a time.
// @Tags rentals
// @Accept json
// @Produce json
// @Param request body handlers.IssueRentalRequest true "Issue Request"
// @Success 201 {object} models.Rental
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Book or user not found"
// @Failure 409 {object} handlers.ErrorResponse "Book already issued to user"
// @Failure 503 {object} handlers.ErrorResponse "Store unavailable"
// @Router /rentals [post]
func NewIssueRentalHandler(svc RentalIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req IssueRentalRequest
		if err := decodeAndValidate(r, &req); err != nil {
			logger.Log.Warnw("invalid issue request", "error", err)
			writeInvalidInput(w, err.Error())
			return
		}

		var issueDate *time.Time
		if req.IssueDate != "" {
			t, _, err := models.ParseTimestamp(req.IssueDate)
			if err != nil {
				writeInvalidInput(w, "issueDate: "+err.Error())
				return
			}
			issueDate = &t
		}

		rental, err := svc.Issue(r.Context(), uuid.MustParse(req.BookID), uuid.MustParse(req.UserID), issueDate)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, rental)
	}
}

// NewReturnRentalHandler returns an HTTP handler that returns a book and settles its rent.
// @Summary Return a book
// @Description Closes the open rental of the book and user. Rent is charged per started day, at least one day.
// @Tags rentals
// @Accept json
// @Produce json
// @Param request body handlers.ReturnRentalRequest true "Return Request"
// @Success 200 {object} models.Rental
// @Failure 400 {object} handlers.ErrorResponse "Invalid request or return before issue"
// @Failure 404 {object} handlers.ErrorResponse "No open rental"
// @Failure 503 {object} handlers.ErrorResponse "Store unavailable"
// @Router /rentals/return [post]
func NewReturnRentalHandler(svc RentalReturner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReturnRentalRequest
		if err := decodeAndValidate(r, &req); err != nil {
			logger.Log.Warnw("invalid return request", "error", err)
			writeInvalidInput(w, err.Error())
			return
		}

		returnDate, _, err := models.ParseTimestamp(req.ReturnDate)
		if err != nil {
			writeError(w, services.ErrInvalidReturnDate)
			return
		}

		rental, err := svc.Return(r.Context(), uuid.MustParse(req.BookID), uuid.MustParse(req.UserID), returnDate)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, rental)
	}
}

// RegisterIssueRentalHandler registers the route for issuing books
func RegisterIssueRentalHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/rentals", h)
}

// RegisterReturnRentalHandler registers the route for returning books
func RegisterReturnRentalHandler(r chi.Router, h http.HandlerFunc) {
	r.Post("/rentals/return", h)
}
