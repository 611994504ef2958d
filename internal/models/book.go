package models

import (
	"time"

	"github.com/google/uuid"
)

// Book represents a catalog entry in the database
type Book struct {
	BookID          uuid.UUID  `json:"bookId" db:"book_id"`                  // Primary key
	BookName        string     `json:"bookName" db:"book_name"`              // Title of the book
	Category        string     `json:"category" db:"category"`               // Catalog category
	RentPerDay      float64    `json:"rentPerDay" db:"rent_per_day"`         // Daily rental price, never negative
	Author          string     `json:"author" db:"author"`                   // Author name
	PublishedDate   *time.Time `json:"publishedDate" db:"published_date"`    // Publication date, if known
	ISBN            string     `json:"isbn" db:"isbn"`                       // ISBN code
	AvailableCopies int        `json:"availableCopies" db:"available_copies"` // Copies on the shelf (informational)
	Description     string     `json:"description" db:"description"`         // Free-form description
	AddedDate       time.Time  `json:"addedDate" db:"added_date"`            // When the book entered the catalog
}

// BookFilter narrows a catalog search. Zero values are ignored.
type BookFilter struct {
	Category string   // exact category match
	Name     string   // case-insensitive substring of the book name
	MinRent  *float64 // inclusive lower bound on rent per day
	MaxRent  *float64 // inclusive upper bound on rent per day
}
