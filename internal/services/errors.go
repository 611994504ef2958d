package services

import (
	"errors"
	"fmt"
)

// Kind classifies a service failure independently of the transport.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidInput
	KindConflict
	KindInvalidTemporalOrder
	KindStoreUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "NotFound"
	case KindInvalidInput:
		return "InvalidInput"
	case KindConflict:
		return "Conflict"
	case KindInvalidTemporalOrder:
		return "InvalidTemporalOrder"
	case KindStoreUnavailable:
		return "StoreUnavailable"
	default:
		return "Unknown"
	}
}

// Error is a kinded service error. Sentinels below are compared with errors.Is.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func newError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

var (
	// ErrBookNotFound is returned when a referenced book does not exist.
	ErrBookNotFound = newError(KindNotFound, "book not found")
	// ErrUserNotFound is returned when a referenced user does not exist.
	ErrUserNotFound = newError(KindNotFound, "user not found")
	// ErrRentalNotFound is returned when no open rental exists for the book and user.
	ErrRentalNotFound = newError(KindNotFound, "no open rental for this book and user")
	// ErrAlreadyIssued is returned when the book is already issued to the user.
	ErrAlreadyIssued = newError(KindConflict, "book is already issued to this user")
	// ErrEmailTaken is returned when another user already has the email.
	ErrEmailTaken = newError(KindConflict, "email is already registered")
	// ErrBookHasOpenRentals is returned when deleting a book that is still issued.
	ErrBookHasOpenRentals = newError(KindConflict, "book has open rentals")
	// ErrInvalidReturnDate is returned when a return date is missing or cannot be parsed.
	ErrInvalidReturnDate = newError(KindInvalidInput, "invalid return date")
	// ErrReturnBeforeIssue is returned when a return date precedes the issue date.
	ErrReturnBeforeIssue = newError(KindInvalidTemporalOrder, "return date is before issue date")
	// ErrInvalidInput is returned when a request fails validation.
	ErrInvalidInput = newError(KindInvalidInput, "invalid input")
	// ErrStoreUnavailable is returned when a store call fails or times out.
	ErrStoreUnavailable = newError(KindStoreUnavailable, "store unavailable")
)

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func storeUnavailable(err error) error {
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
