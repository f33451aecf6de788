package instance

import (
	"errors"
	"fmt"
)

// ErrInvalidInstance is the umbrella for every validation failure in New.
var ErrInvalidInstance = errors.New("instance: invalid instance")

// Sentinel errors returned by New. Each wraps ErrInvalidInstance, so callers
// can test either the specific cause or the whole family with errors.Is.
var (
	ErrNegativeDays     = fmt.Errorf("%w: negative day budget", ErrInvalidInstance)
	ErrDuplicateBook    = fmt.Errorf("%w: duplicate book id", ErrInvalidInstance)
	ErrNegativeScore    = fmt.Errorf("%w: negative book score", ErrInvalidInstance)
	ErrDuplicateLibrary = fmt.Errorf("%w: duplicate library id", ErrInvalidInstance)
	ErrBadSignup        = fmt.Errorf("%w: signup days must be positive", ErrInvalidInstance)
	ErrBadThroughput    = fmt.Errorf("%w: books per day must be positive", ErrInvalidInstance)
	ErrUnknownBook      = fmt.Errorf("%w: library references unknown book", ErrInvalidInstance)
	ErrRepeatedBook     = fmt.Errorf("%w: library lists a book twice", ErrInvalidInstance)
)

// Book is a scorable unit. It contributes Score once, to whichever library
// scans it first in solution order.
type Book struct {
	ID    int   // caller-visible identity
	Score int64 // non-negative
}

// Library can scan books after a one-time signup.
//
// SignupDays  – consecutive days consumed before scanning may start (> 0).
// BooksPerDay – how many books it can scan per remaining day (> 0).
// Books       – IDs of the books it holds, in input order.
type Library struct {
	ID          int
	SignupDays  int
	BooksPerDay int
	Books       []int
}
