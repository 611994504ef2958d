package models

import (
	"time"

	"github.com/google/uuid"
)

// Rental is a ledger entry linking a book to the user it was issued to.
// A nil ReturnDate means the book is still out.
type Rental struct {
	RentalID   uuid.UUID  `json:"rentalId" db:"rental_id"`     // Primary key
	BookID     uuid.UUID  `json:"bookId" db:"book_id"`         // Issued book
	UserID     uuid.UUID  `json:"userId" db:"user_id"`         // Issuing user
	IssueDate  time.Time  `json:"issueDate" db:"issue_date"`   // When the book was issued
	ReturnDate *time.Time `json:"returnDate" db:"return_date"` // When the book came back
	TotalRent  float64    `json:"totalRent" db:"total_rent"`   // Settled rent, 0 while open
}

// IsOpen reports whether the rental has not been returned yet.
func (r *Rental) IsOpen() bool {
	return r.ReturnDate == nil
}

// RentalDetail is a rental joined with its book and user rows.
// Book and user columns are nil when the referenced row no longer exists.
type RentalDetail struct {
	Rental
	BookName   *string  `db:"book_name"`
	Category   *string  `db:"category"`
	Author     *string  `db:"author"`
	RentPerDay *float64 `db:"rent_per_day"`
	Username   *string  `db:"username"`
	Email      *string  `db:"email"`
}
