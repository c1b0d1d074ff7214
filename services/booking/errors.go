package booking

import (
	"errors"
	"fmt"
)

var (
	ErrRecordNotFound = errors.New("booking record not found")
	ErrInvalidDate    = errors.New("invalid date, expected YYYY-MM-DD")
	ErrInvalidPrice   = errors.New("room price is not a number")
	ErrInvalidStatus  = errors.New("status must be Approved or Decline")
	ErrDateOrder      = errors.New("check-out date is before check-in date")
	ErrEmptyChange    = errors.New("no booking fields to update")
)

// LookupError is returned when an edit targets a record that is not in the
// current mirror, for example because a concurrent resync removed it.
type LookupError struct {
	ID string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("booking %q: %v", e.ID, ErrRecordNotFound)
}

func (e *LookupError) Unwrap() error {
	return ErrRecordNotFound
}
