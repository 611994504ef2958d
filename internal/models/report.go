package models

import (
	"time"

	"github.com/google/uuid"
)

// Placeholders used when a rental references a row that no longer exists.
const (
	UnknownBook  = "Unknown Book"
	UnknownUser  = "Unknown User"
	UnknownEmail = "No email available"
)

// Issuer is one user that has taken a book
// swagger:model Issuer
type Issuer struct {
	RentalID   uuid.UUID  `json:"rentalId"`
	UserID     uuid.UUID  `json:"userId"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	IssueDate  time.Time  `json:"issueDate"`
	ReturnDate *time.Time `json:"returnDate"`
	TotalRent  float64    `json:"totalRent"`
}

// IssuersReport lists everyone who has rented a book
// swagger:model IssuersReport
type IssuersReport struct {
	BookID           uuid.UUID `json:"bookId"`
	BookName         string    `json:"bookName"`
	TotalIssuedCount int       `json:"totalIssuedCount"`
	CurrentIssuer    *Issuer   `json:"currentIssuer"`
	PastIssuers      []Issuer  `json:"pastIssuers"`
}

// RentReport splits the rent a book generated into settled and estimated parts
// swagger:model RentReport
type RentReport struct {
	BookID            uuid.UUID `json:"bookId"`
	BookName          string    `json:"bookName"`
	RentPerDay        float64   `json:"rentPerDay"`
	SettledRent       float64   `json:"settledRent"`       // Sum of totalRent over returned rentals
	EstimatedOpenRent float64   `json:"estimatedOpenRent"` // Accrued rent of open rentals, never persisted
	ReturnedCount     int       `json:"returnedCount"`
	OpenCount         int       `json:"openCount"`
	EstimatedAt       time.Time `json:"estimatedAt"`
}

// UserRental is a rental of one user enriched with book details
// swagger:model UserRental
type UserRental struct {
	RentalID   uuid.UUID  `json:"rentalId"`
	BookID     uuid.UUID  `json:"bookId"`
	BookName   string     `json:"bookName"`
	Category   string     `json:"category"`
	Author     string     `json:"author"`
	RentPerDay *float64   `json:"rentPerDay"`
	IssueDate  time.Time  `json:"issueDate"`
	ReturnDate *time.Time `json:"returnDate"`
	TotalRent  float64    `json:"totalRent"`
}

// RangeRental is a rental issued inside a date range with book and user names
// swagger:model RangeRental
type RangeRental struct {
	RentalID   uuid.UUID  `json:"rentalId"`
	BookID     uuid.UUID  `json:"bookId"`
	BookName   string     `json:"bookName"`
	UserID     uuid.UUID  `json:"userId"`
	Username   string     `json:"username"`
	IssueDate  time.Time  `json:"issueDate"`
	ReturnDate *time.Time `json:"returnDate"`
	TotalRent  float64    `json:"totalRent"`
}
