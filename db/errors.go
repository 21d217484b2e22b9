package db

import (
	"errors"
	"fmt"
)

// Error taxonomy for the accounting core. Controllers translate these to
// HTTP statuses with errStatus; everything else is treated as internal.
var (
	ErrItemNotFound         = errors.New("item not found")
	ErrLoanNotFound         = errors.New("no matching collection record found")
	ErrUserNotFound         = errors.New("user not found")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrInsufficientQuantity = errors.New("insufficient quantity available")
	ErrAlreadyReturned      = errors.New("collection record already returned")
	// More than one open loan matches a legacy borrower key; the caller must
	// retry with the loan id instead of letting us pick one.
	ErrAmbiguousLoan = errors.New("multiple open collection records match")
	// Item deletion is refused while loans are still open against it.
	ErrItemHasOpenLoans = errors.New("item has unreturned loans")
	// The conditional quantity update matched no row: a concurrent writer won.
	ErrQuantityConflict = errors.New("concurrent quantity update lost the race")
)

func invalidArgf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
