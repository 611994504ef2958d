package models

import "time"

// Rental event types published to Kafka.
const (
	RentalIssued   = "rental.issued"
	RentalReturned = "rental.returned"
)

// RentalEvent describes a ledger transition, including the rental, book, user and settled rent.
type RentalEvent struct {
	EventID    string     `json:"eventId"`    // EventID is a unique identifier for the event.
	Type       string     `json:"type"`       // Type is RentalIssued or RentalReturned.
	RentalID   string     `json:"rentalId"`   // RentalID identifies the ledger entry.
	BookID     string     `json:"bookId"`     // BookID is the issued book.
	UserID     string     `json:"userId"`     // UserID is the issuing user.
	IssueDate  time.Time  `json:"issueDate"`  // IssueDate is when the book went out.
	ReturnDate *time.Time `json:"returnDate"` // ReturnDate is set on RentalReturned.
	TotalRent  float64    `json:"totalRent"`  // TotalRent is the settled rent on RentalReturned.
	Timestamp  int64      `json:"timestamp"`  // Timestamp is the Unix time (seconds) of publication.
}
